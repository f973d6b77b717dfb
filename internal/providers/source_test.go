package providers

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"nba-recap-service/internal/domain/boxscore"
	"nba-recap-service/internal/domain/playbyplay"
	"nba-recap-service/internal/metrics"
	"nba-recap-service/internal/teams"
	"nba-recap-service/internal/testutil"
)

// fakeSource is a minimal in-package StatSource double.
type fakeSource struct {
	err   error
	calls int
}

func (f *fakeSource) FetchScoreboard(ctx context.Context, date string) (Scoreboard, error) {
	f.calls++
	return Scoreboard{}, f.err
}

func (f *fakeSource) FetchBoxScore(ctx context.Context, gameID string) ([]boxscore.PlayerStatLine, error) {
	f.calls++
	return nil, f.err
}

func (f *fakeSource) FetchPlayByPlay(ctx context.Context, gameID string) ([]playbyplay.Event, error) {
	f.calls++
	return nil, f.err
}

func (f *fakeSource) FetchBoxScoreSummary(ctx context.Context, gameID string) ([]boxscore.TeamLine, error) {
	f.calls++
	return nil, f.err
}

func (f *fakeSource) FetchTeamDetails(ctx context.Context, teamID int) (teams.Details, error) {
	f.calls++
	return teams.Details{}, f.err
}

func TestLoggingSourceRecordsMetrics(t *testing.T) {
	recorder := metrics.NewRecorder()
	inner := &fakeSource{}
	source := NewLoggingSource(inner, nil, recorder, "test")

	if _, err := source.FetchBoxScore(context.Background(), "g1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := recorder.ProviderCalls("test"); got != 1 {
		t.Fatalf("provider calls = %d", got)
	}
	if got := recorder.ProviderErrors("test"); got != 0 {
		t.Fatalf("provider errors = %d", got)
	}

	inner.err = errors.New("upstream down")
	if _, err := source.FetchPlayByPlay(context.Background(), "g1"); err == nil {
		t.Fatal("expected error passthrough")
	}
	if got := recorder.ProviderErrors("test"); got != 1 {
		t.Fatalf("provider errors = %d", got)
	}
}

func TestLoggingSourceWarnsOnFailure(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	inner := &fakeSource{err: errors.New("upstream down")}
	source := NewLoggingSource(inner, logger, nil, "test")

	if _, err := source.FetchScoreboard(context.Background(), "2024-01-15"); err == nil {
		t.Fatal("expected error passthrough")
	}
	out := buf.String()
	if !strings.Contains(out, "fetch scoreboard failed") || !strings.Contains(out, "upstream down") {
		t.Fatalf("expected a warning log, got: %s", out)
	}
}

func TestRateLimitedSourceDelegates(t *testing.T) {
	inner := &fakeSource{}
	source := NewRateLimitedSource(inner, 1000)

	if _, err := source.FetchBoxScore(context.Background(), "g1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := source.FetchTeamDetails(context.Background(), 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inner.calls != 2 {
		t.Fatalf("inner calls = %d", inner.calls)
	}
}

func TestRateLimitedSourceThrottles(t *testing.T) {
	inner := &fakeSource{}
	source := NewRateLimitedSource(inner, 20) // 50ms between calls

	start := time.Now()
	for i := 0; i < 3; i++ {
		if _, err := source.FetchPlayByPlay(context.Background(), "g1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if elapsed := time.Since(start); elapsed < 80*time.Millisecond {
		t.Fatalf("expected throttling, three calls took %v", elapsed)
	}
}

func TestRateLimitedSourceHonorsContext(t *testing.T) {
	inner := &fakeSource{}
	source := NewRateLimitedSource(inner, 0.001)

	// Burn the single burst token.
	if _, err := source.FetchBoxScore(context.Background(), "g1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	if _, err := source.FetchBoxScore(ctx, "g1"); err == nil {
		t.Fatal("expected context error while waiting for a token")
	}
	if inner.calls != 1 {
		t.Fatalf("inner calls = %d", inner.calls)
	}
}

func TestRateLimitedSourceNilInner(t *testing.T) {
	source := NewRateLimitedSource(nil, 1)
	if _, err := source.FetchScoreboard(context.Background(), "2024-01-15"); !errors.Is(err, ErrProviderUnavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
}
