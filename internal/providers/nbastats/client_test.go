package nbastats

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"nba-recap-service/internal/providers"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{BaseURL: srv.URL, HTTPClient: srv.Client()})
}

func TestFetchScoreboardMapsResultSets(t *testing.T) {
	var gotQuery map[string]string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/scoreboardv2" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		gotQuery = map[string]string{
			"GameDate":  r.URL.Query().Get("GameDate"),
			"LeagueID":  r.URL.Query().Get("LeagueID"),
			"DayOffset": r.URL.Query().Get("DayOffset"),
		}
		if r.Header.Get("Referer") == "" || r.Header.Get("x-nba-stats-origin") == "" {
			t.Error("expected stats API headers to be set")
		}
		_, _ = w.Write([]byte(`{
			"resource": "scoreboardv2",
			"resultSets": [
				{
					"name": "GameHeader",
					"headers": ["GAME_DATE_EST", "GAME_ID", "GAME_STATUS_TEXT", "HOME_TEAM_ID", "VISITOR_TEAM_ID"],
					"rowSet": [["2024-01-15T00:00:00", "0022300001", "Final", 1610612738, 1610612747]]
				},
				{
					"name": "LineScore",
					"headers": ["GAME_ID", "TEAM_ID", "PTS"],
					"rowSet": [
						["0022300001", 1610612738, 112],
						["0022300001", 1610612747, 105]
					]
				}
			]
		}`))
	})

	board, err := client.FetchScoreboard(context.Background(), "2024-01-15")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotQuery["GameDate"] != "01/15/2024" || gotQuery["LeagueID"] != "00" || gotQuery["DayOffset"] != "0" {
		t.Fatalf("unexpected query: %v", gotQuery)
	}
	if len(board.Games) != 1 || len(board.LineScores) != 2 {
		t.Fatalf("unexpected board: %+v", board)
	}
	game := board.Games[0]
	if game.GameID != "0022300001" || game.HomeTeamID != 1610612738 || game.VisitorTeamID != 1610612747 {
		t.Fatalf("unexpected game: %+v", game)
	}
	if board.LineScores[0].Points != 112 {
		t.Fatalf("unexpected line score: %+v", board.LineScores[0])
	}
}

func TestFetchScoreboardRejectsBadDate(t *testing.T) {
	client := NewClient(Config{BaseURL: "http://unused"})
	_, err := client.FetchScoreboard(context.Background(), "01-15-2024")
	if _, ok := providers.AsFormatError(err); !ok {
		t.Fatalf("expected FormatError, got %v", err)
	}
}

func TestFetchBoxScoreLooksUpColumnsByName(t *testing.T) {
	// Column order deliberately shuffled relative to the mapper's list.
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"resource": "boxscoretraditionalv2",
			"resultSets": [
				{
					"name": "PlayerStats",
					"headers": ["PLAYER_NAME", "TEAM_ID", "PTS", "MIN", "TEAM_ABBREVIATION", "START_POSITION",
						"FGM", "FGA", "FG_PCT", "FG3M", "FG3A", "FG3_PCT", "FTM", "FTA", "FT_PCT",
						"OREB", "DREB", "REB", "AST", "STL", "BLK", "TO", "PF", "PLUS_MINUS"],
					"rowSet": [
						["Tatum", 1610612738, 32, "36:30", "BOS", "F",
							12, 22, 0.545, 4, 9, 0.444, 4, 4, 1.0,
							1, 7, 8, 5, 1, 0, 2, 1, 9],
						["DNP Guy", 1610612738, null, null, "BOS", "",
							null, null, null, null, null, null, null, null, null,
							null, null, null, null, null, null, null, null, null]
					]
				}
			]
		}`))
	})

	rows, err := client.FetchBoxScore(context.Background(), "0022300001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}

	tatum := rows[0]
	if tatum.PlayerName != "Tatum" || tatum.TeamAbbreviation != "BOS" || tatum.Minutes != "36:30" {
		t.Fatalf("unexpected row: %+v", tatum)
	}
	if tatum.Points == nil || *tatum.Points != 32 {
		t.Fatalf("points = %v", tatum.Points)
	}
	if tatum.FGPct == nil || *tatum.FGPct != 0.545 {
		t.Fatalf("fg pct = %v", tatum.FGPct)
	}

	dnp := rows[1]
	if dnp.Minutes != "" {
		t.Fatalf("expected empty minutes for DNP, got %q", dnp.Minutes)
	}
	if dnp.Points != nil {
		t.Fatalf("expected nil points for DNP, got %v", *dnp.Points)
	}
}

func TestFetchBoxScoreEmptyIsNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"resource": "boxscoretraditionalv2",
			"resultSets": [
				{
					"name": "PlayerStats",
					"headers": ["TEAM_ID", "TEAM_ABBREVIATION", "PLAYER_NAME", "START_POSITION", "MIN",
						"FGM", "FGA", "FG_PCT", "FG3M", "FG3A", "FG3_PCT", "FTM", "FTA", "FT_PCT",
						"OREB", "DREB", "REB", "AST", "STL", "BLK", "TO", "PF", "PTS", "PLUS_MINUS"],
					"rowSet": []
				}
			]
		}`))
	})

	_, err := client.FetchBoxScore(context.Background(), "0022309999")
	nf, ok := providers.AsNotFoundError(err)
	if !ok {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if nf.ID != "0022309999" {
		t.Fatalf("not-found id = %q", nf.ID)
	}
}

func TestFetchBoxScoreMissingResultSet(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"resource": "boxscoretraditionalv2", "resultSets": []}`))
	})

	_, err := client.FetchBoxScore(context.Background(), "0022300001")
	if _, ok := providers.AsDataShapeError(err); !ok {
		t.Fatalf("expected DataShapeError, got %v", err)
	}
}

func TestFetchBoxScoreMissingColumn(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"resource": "boxscoretraditionalv2",
			"resultSets": [{"name": "PlayerStats", "headers": ["TEAM_ID"], "rowSet": []}]
		}`))
	})

	_, err := client.FetchBoxScore(context.Background(), "0022300001")
	if _, ok := providers.AsDataShapeError(err); !ok {
		t.Fatalf("expected DataShapeError, got %v", err)
	}
}

func TestFetchPlayByPlayMapsEvents(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("StartPeriod") != "0" || r.URL.Query().Get("EndPeriod") != "10" {
			t.Errorf("unexpected period range: %v", r.URL.Query())
		}
		_, _ = w.Write([]byte(`{
			"resource": "playbyplayv2",
			"resultSets": [
				{
					"name": "PlayByPlay",
					"headers": ["PERIOD", "PCTIMESTRING", "EVENTMSGTYPE", "HOMEDESCRIPTION", "VISITORDESCRIPTION", "SCORE"],
					"rowSet": [
						[1, "10:30", 1, "Tatum 22' Jump Shot", null, "2-0"],
						[1, "9:58", 2, null, "MISS James 3PT", null]
					]
				}
			]
		}`))
	})

	events, err := client.FetchPlayByPlay(context.Background(), "0022300001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].EventType != 1 || events[0].Score != "2-0" || events[0].HomeDescription != "Tatum 22' Jump Shot" {
		t.Fatalf("unexpected event: %+v", events[0])
	}
	// Null cells read as empty strings.
	if events[1].Score != "" || events[1].HomeDescription != "" {
		t.Fatalf("unexpected event: %+v", events[1])
	}
}

func TestFetchBoxScoreSummaryMapsTeamLines(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"resource": "boxscoresummaryv2",
			"resultSets": [
				{
					"name": "LineScore",
					"headers": ["TEAM_ID", "TEAM_NICKNAME", "PTS"],
					"rowSet": [
						[1610612738, "Celtics", 112],
						[1610612747, "Lakers", 105]
					]
				}
			]
		}`))
	})

	lines, err := client.FetchBoxScoreSummary(context.Background(), "0022300001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lines) != 2 || lines[0].TeamName != "Celtics" || lines[0].Points != 112 {
		t.Fatalf("unexpected lines: %+v", lines)
	}
}

func TestFetchTeamDetails(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("TeamID") != "1610612738" {
			t.Errorf("unexpected team id: %v", r.URL.Query())
		}
		_, _ = w.Write([]byte(`{
			"resource": "teamdetails",
			"resultSets": [
				{
					"name": "TeamBackground",
					"headers": ["TEAM_ID", "ABBREVIATION", "NICKNAME"],
					"rowSet": [[1610612738, "BOS", "Celtics"]]
				}
			]
		}`))
	})

	details, err := client.FetchTeamDetails(context.Background(), 1610612738)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if details.Abbreviation != "BOS" || details.Nickname != "Celtics" {
		t.Fatalf("unexpected details: %+v", details)
	}
}

func TestFetchTeamDetailsMissingTeam(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"resource": "teamdetails",
			"resultSets": [
				{
					"name": "TeamBackground",
					"headers": ["TEAM_ID", "ABBREVIATION", "NICKNAME"],
					"rowSet": [[1610612747, "LAL", "Lakers"]]
				}
			]
		}`))
	})

	_, err := client.FetchTeamDetails(context.Background(), 1610612738)
	if _, ok := providers.AsNotFoundError(err); !ok {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestGetMapsHTTPStatuses(t *testing.T) {
	notFound := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	_, err := notFound.FetchPlayByPlay(context.Background(), "0022300001")
	nf, ok := providers.AsNotFoundError(err)
	if !ok {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if nf.ID != "0022300001" {
		t.Fatalf("not-found id = %q", nf.ID)
	}

	busted := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream exploded", http.StatusBadGateway)
	})
	if _, err := busted.FetchPlayByPlay(context.Background(), "0022300001"); err == nil {
		t.Fatal("expected error for 502")
	}

	garbage := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>not json</html>"))
	})
	_, err = garbage.FetchPlayByPlay(context.Background(), "0022300001")
	if _, ok := providers.AsDataShapeError(err); !ok {
		t.Fatalf("expected DataShapeError, got %v", err)
	}
}
