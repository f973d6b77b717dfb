package boxscore

import (
	"strings"
	"testing"

	domainbox "nba-recap-service/internal/domain/boxscore"
	"nba-recap-service/internal/providers"
	"nba-recap-service/internal/testutil"
)

func TestNormalizeMinutes(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty means did not play", in: "", want: "0:00"},
		{name: "whitespace only", in: "  ", want: "0:00"},
		{name: "plain clock", in: "36:30", want: "36:30"},
		{name: "fractional minutes component", in: "36.000000:30", want: "36:30"},
		{name: "single digit minutes", in: "7:05", want: "7:05"},
		{name: "pads seconds", in: "12:5", want: "12:05"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NormalizeMinutes(tc.in)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("NormalizeMinutes(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestNormalizeMinutesRejectsMalformedValues(t *testing.T) {
	for _, in := range []string{"garbage", "12", "1:2:3", "ab:cd"} {
		if _, err := NormalizeMinutes(in); err == nil {
			t.Fatalf("NormalizeMinutes(%q) expected error, got nil", in)
		} else if _, ok := providers.AsFormatError(err); !ok {
			t.Fatalf("NormalizeMinutes(%q) expected FormatError, got %v", in, err)
		}
	}
}

func TestNormalizeSubstitutesAndLogsBadMinutes(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	n := NewNormalizer(logger)

	rows := []domainbox.PlayerStatLine{
		testutil.StatLine(1, "BOS", "Tatum", "garbage", 30),
		testutil.StatLine(2, "LAL", "James", "35:12", 28),
	}

	table, err := n.Normalize(rows)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := table.Rows[0].Min; got != "0:00" {
		t.Fatalf("expected substituted minutes 0:00, got %q", got)
	}
	if !strings.Contains(buf.String(), "unparseable minutes field") {
		t.Fatalf("expected a warning log, got: %s", buf.String())
	}
}

func TestNormalizeScalesPercentages(t *testing.T) {
	n := NewNormalizer(nil)

	row := testutil.StatLine(1, "BOS", "Tatum", "36:00", 30)
	row.FGPct = testutil.FloatPtr(0.4567)
	row.FG3Pct = testutil.FloatPtr(1.0)
	row.FTPct = testutil.FloatPtr(0)

	table, err := n.Normalize([]domainbox.PlayerStatLine{
		row,
		testutil.StatLine(2, "LAL", "James", "35:12", 28),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := table.Rows[0]
	if got.FGPct != 45.67 {
		t.Fatalf("FG%% = %v, want 45.67", got.FGPct)
	}
	if got.ThreePct != 100 {
		t.Fatalf("3P%% = %v, want 100", got.ThreePct)
	}
	if got.FTPct != 0 {
		t.Fatalf("FT%% = %v, want 0", got.FTPct)
	}
}

func TestNormalizeRejectsPrescaledPercentage(t *testing.T) {
	n := NewNormalizer(nil)

	row := testutil.StatLine(1, "BOS", "Tatum", "36:00", 30)
	row.FGPct = testutil.FloatPtr(45.6)

	_, err := n.Normalize([]domainbox.PlayerStatLine{
		row,
		testutil.StatLine(2, "LAL", "James", "35:12", 28),
	})
	if err == nil {
		t.Fatal("expected error for out-of-range percentage, got nil")
	}
	if _, ok := providers.AsDataShapeError(err); !ok {
		t.Fatalf("expected DataShapeError, got %v", err)
	}
}

func TestNormalizeFillsMissingNumerics(t *testing.T) {
	n := NewNormalizer(nil)

	row := testutil.StatLine(1, "BOS", "Tatum", "36:00", 30)
	row.PlusMinus = nil
	row.FGPct = nil
	row.Assists = testutil.FloatPtr(7.9)

	table, err := n.Normalize([]domainbox.PlayerStatLine{
		row,
		testutil.StatLine(2, "LAL", "James", "35:12", 28),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := table.Rows[0]
	if got.PlusMinus != 0 {
		t.Fatalf("+/- = %d, want 0 for missing value", got.PlusMinus)
	}
	if got.FGPct != 0 {
		t.Fatalf("FG%% = %v, want 0 for missing value", got.FGPct)
	}
	if got.Assists != 7 {
		t.Fatalf("AST = %d, want truncation to 7", got.Assists)
	}
}

func TestNormalizeRequiresExactlyTwoTeams(t *testing.T) {
	n := NewNormalizer(nil)

	_, err := n.Normalize([]domainbox.PlayerStatLine{
		testutil.StatLine(1, "BOS", "Tatum", "36:00", 30),
	})
	if _, ok := providers.AsDataShapeError(err); !ok {
		t.Fatalf("expected DataShapeError for single row, got %v", err)
	}

	_, err = n.Normalize([]domainbox.PlayerStatLine{
		testutil.StatLine(1, "BOS", "Tatum", "36:00", 30),
		testutil.StatLine(1, "BOS", "White", "33:00", 20),
	})
	if _, ok := providers.AsDataShapeError(err); !ok {
		t.Fatalf("expected DataShapeError for single team, got %v", err)
	}

	_, err = n.Normalize([]domainbox.PlayerStatLine{
		testutil.StatLine(1, "BOS", "Tatum", "36:00", 30),
		testutil.StatLine(2, "LAL", "James", "35:00", 28),
		testutil.StatLine(3, "NYK", "Brunson", "34:00", 26),
	})
	if _, ok := providers.AsDataShapeError(err); !ok {
		t.Fatalf("expected DataShapeError for three teams, got %v", err)
	}
}

func TestNormalizePreservesRowAndTeamOrder(t *testing.T) {
	n := NewNormalizer(nil)

	table, err := n.Normalize([]domainbox.PlayerStatLine{
		testutil.StatLine(2, "LAL", "James", "35:00", 28),
		testutil.StatLine(1, "BOS", "Tatum", "36:00", 30),
		testutil.StatLine(2, "LAL", "Reaves", "30:00", 18),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if table.Rows[0].Player != "James" || table.Rows[1].Player != "Tatum" || table.Rows[2].Player != "Reaves" {
		t.Fatalf("row order changed: %+v", table.Rows)
	}
	if table.Teams[0].ID != 2 || table.Teams[1].ID != 1 {
		t.Fatalf("team order should follow first appearance, got %+v", table.Teams)
	}
}
