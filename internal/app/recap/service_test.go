package recap

import (
	"context"
	"errors"
	"testing"

	appbox "nba-recap-service/internal/app/boxscore"
	domainbox "nba-recap-service/internal/domain/boxscore"
	"nba-recap-service/internal/domain/playbyplay"
	"nba-recap-service/internal/providers"
	"nba-recap-service/internal/teststubs"
	"nba-recap-service/internal/testutil"
)

func stubGameData() ([]domainbox.PlayerStatLine, []playbyplay.Event) {
	rows := []domainbox.PlayerStatLine{
		testutil.StatLine(1, "BOS", "Tatum", "36:30", 32),
		testutil.StatLine(2, "LAL", "James", "35:12", 30),
	}
	events := []playbyplay.Event{
		testutil.ScoringEvent(1, "10:30", playbyplay.EventMadeShot, "Tatum 22' Jump Shot", "", "2-0"),
		{Period: 1, Clock: "9:58", EventType: 2, VisitorDescription: "MISS James 3PT"},
		testutil.ScoringEvent(4, "0:42", playbyplay.EventMadeThree, "White 26' 3PT Jump Shot", "", "110-105"),
	}
	return rows, events
}

func newTestService(source *teststubs.StubStatSource, gen *teststubs.StubTextGenerator) *Service {
	composer := NewComposer(gen, nil, nil, Options{}, 300, 0.7)
	return NewService(source, appbox.NewNormalizer(nil), composer, nil)
}

func TestServiceBoxScoreNormalizes(t *testing.T) {
	rows, _ := stubGameData()
	source := &teststubs.StubStatSource{BoxScore: rows}
	svc := newTestService(source, &teststubs.StubTextGenerator{})

	table, err := svc.BoxScore(context.Background(), "0022300001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(table.Rows) != 2 || len(table.Teams) != 2 {
		t.Fatalf("unexpected table shape: %+v", table)
	}
	if table.Rows[0].Min != "36:30" {
		t.Fatalf("minutes = %q", table.Rows[0].Min)
	}
}

func TestServiceRecapRunsFullPipeline(t *testing.T) {
	rows, events := stubGameData()
	source := &teststubs.StubStatSource{
		BoxScore:   rows,
		PlayByPlay: events,
		Summary: []domainbox.TeamLine{
			{TeamID: 1, TeamName: "BOS", Points: 112},
			{TeamID: 2, TeamName: "LAL", Points: 105},
		},
	}
	gen := &teststubs.StubTextGenerator{Response: "- Boston held on"}
	svc := newTestService(source, gen)

	table, result, err := svc.Recap(context.Background(), "0022300001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(table.Rows) != 2 {
		t.Fatalf("unexpected table: %+v", table)
	}
	if result.Teams != [2]string{"BOS", "LAL"} {
		t.Fatalf("teams = %v", result.Teams)
	}
	if result.Scores != [2]int{112, 105} {
		t.Fatalf("scores = %v, want the official line scores", result.Scores)
	}
	if len(result.Summary) != 1 || result.Summary[0] != "Boston held on" {
		t.Fatalf("summary = %v", result.Summary)
	}
	if source.BoxScoreCalls.Load() != 1 || source.PlayByPlayCalls.Load() != 1 || source.SummaryCalls.Load() != 1 {
		t.Fatalf("expected one fetch per record set, got (%d, %d, %d)",
			source.BoxScoreCalls.Load(), source.PlayByPlayCalls.Load(), source.SummaryCalls.Load())
	}
	if gen.Calls.Load() != 1 {
		t.Fatalf("expected one generation call, got %d", gen.Calls.Load())
	}
}

func TestServiceRecapSurvivesSummaryFailure(t *testing.T) {
	rows, events := stubGameData()
	source := &teststubs.StubStatSource{
		BoxScore:   rows,
		PlayByPlay: events,
		SummaryErr: errors.New("summary endpoint down"),
	}
	gen := &teststubs.StubTextGenerator{Response: "- Boston held on"}
	svc := newTestService(source, gen)

	_, result, err := svc.Recap(context.Background(), "0022300001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Scores != [2]int{32, 30} {
		t.Fatalf("scores = %v, want player-row totals", result.Scores)
	}
}

func TestServiceRecapPropagatesFetchErrors(t *testing.T) {
	rows, events := stubGameData()
	fetchErr := &providers.NotFoundError{Resource: "game", ID: "0022300001"}

	source := &teststubs.StubStatSource{BoxScoreErr: fetchErr, PlayByPlay: events}
	gen := &teststubs.StubTextGenerator{Response: "- unused"}
	svc := newTestService(source, gen)

	if _, _, err := svc.Recap(context.Background(), "0022300001"); err != nil {
		if _, ok := providers.AsNotFoundError(err); !ok {
			t.Fatalf("expected NotFoundError, got %v", err)
		}
	} else {
		t.Fatal("expected box-score error to propagate")
	}
	if gen.Calls.Load() != 0 {
		t.Fatalf("generator must not run after a fetch failure, got %d calls", gen.Calls.Load())
	}

	source = &teststubs.StubStatSource{BoxScore: rows, PlayByPlayErr: errors.New("pbp down")}
	svc = newTestService(source, gen)
	if _, _, err := svc.Recap(context.Background(), "0022300001"); err == nil {
		t.Fatal("expected play-by-play error to propagate")
	}
}
