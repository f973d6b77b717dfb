// Package boxscore normalizes raw per-player stat rows into the display
// table served by the box-score endpoint and consumed by recap composition.
package boxscore

import (
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"

	domainbox "nba-recap-service/internal/domain/boxscore"
	"nba-recap-service/internal/logging"
	"nba-recap-service/internal/providers"
)

// Normalizer reshapes raw box-score rows: column pruning and renaming,
// null-filling, numeric coercion, percentage scaling, and clock
// reformatting.
type Normalizer struct {
	logger *slog.Logger
}

// NewNormalizer constructs a Normalizer.
func NewNormalizer(logger *slog.Logger) *Normalizer {
	return &Normalizer{logger: logger}
}

// Normalize converts raw rows for exactly one game into a display Table.
// The input must contain at least two rows from exactly two distinct
// teams. Malformed minutes strings are replaced with "0:00" and the row
// is kept; an out-of-range percentage aborts with a DataShapeError.
func (n *Normalizer) Normalize(rows []domainbox.PlayerStatLine) (domainbox.Table, error) {
	if len(rows) < 2 {
		return domainbox.Table{}, &providers.DataShapeError{Reason: fmt.Sprintf("expected at least 2 player rows, got %d", len(rows))}
	}

	teamOrder := make([]domainbox.TeamEntry, 0, 2)
	seen := make(map[int]bool, 2)
	for _, row := range rows {
		if !seen[row.TeamID] {
			seen[row.TeamID] = true
			teamOrder = append(teamOrder, domainbox.TeamEntry{ID: row.TeamID, Name: row.TeamAbbreviation})
		}
	}
	if len(teamOrder) != 2 {
		return domainbox.Table{}, &providers.DataShapeError{Reason: fmt.Sprintf("expected 2 teams in box score, got %d", len(teamOrder))}
	}

	normalized := make([]domainbox.Row, 0, len(rows))
	for _, raw := range rows {
		minutes, err := NormalizeMinutes(raw.Minutes)
		if err != nil {
			// Default policy: substitute a safe value and keep the row.
			logging.Warn(n.logger, "unparseable minutes field", "player", raw.PlayerName, "value", raw.Minutes)
			minutes = "0:00"
		}

		fgPct, err := scalePercentage("FG%", raw.FGPct)
		if err != nil {
			return domainbox.Table{}, err
		}
		threePct, err := scalePercentage("3P%", raw.FG3Pct)
		if err != nil {
			return domainbox.Table{}, err
		}
		ftPct, err := scalePercentage("FT%", raw.FTPct)
		if err != nil {
			return domainbox.Table{}, err
		}

		normalized = append(normalized, domainbox.Row{
			Team:      raw.TeamAbbreviation,
			Player:    raw.PlayerName,
			Pos:       raw.StartPosition,
			Min:       minutes,
			FGM:       intOrZero(raw.FGM),
			FGA:       intOrZero(raw.FGA),
			FGPct:     fgPct,
			ThreePM:   intOrZero(raw.FG3M),
			ThreePA:   intOrZero(raw.FG3A),
			ThreePct:  threePct,
			FTM:       intOrZero(raw.FTM),
			FTA:       intOrZero(raw.FTA),
			FTPct:     ftPct,
			OffReb:    intOrZero(raw.OffReb),
			DefReb:    intOrZero(raw.DefReb),
			TotReb:    intOrZero(raw.TotReb),
			Assists:   intOrZero(raw.Assists),
			Steals:    intOrZero(raw.Steals),
			Blocks:    intOrZero(raw.Blocks),
			Turnovers: intOrZero(raw.Turnovers),
			Fouls:     intOrZero(raw.Fouls),
			Points:    intOrZero(raw.Points),
			PlusMinus: intOrZero(raw.PlusMinus),
		})
	}

	return domainbox.Table{Rows: normalized, Teams: teamOrder}, nil
}

// NormalizeMinutes converts an upstream minutes value into "M:SS".
// The feed formats it as "MM:SS", occasionally with a fractional minutes
// component ("36.000000:30"); empty means the player did not play.
func NormalizeMinutes(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "0:00", nil
	}

	parts := strings.Split(raw, ":")
	if len(parts) != 2 {
		return "", &providers.FormatError{Field: "minutes", Value: raw}
	}

	mins, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return "", &providers.FormatError{Field: "minutes", Value: raw}
	}
	secs, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return "", &providers.FormatError{Field: "minutes", Value: raw}
	}

	return fmt.Sprintf("%d:%02d", int(mins), int(secs)), nil
}

// scalePercentage converts a fractional percentage in [0,1] to a value in
// [0,100] rounded to two decimals. A value already outside [0,1] means the
// upstream sent pre-scaled data; rescaling would silently double it, so it
// aborts instead.
func scalePercentage(field string, value *float64) (float64, error) {
	if value == nil {
		return 0, nil
	}
	v := *value
	if v < 0 || v > 1 {
		return 0, &providers.DataShapeError{Reason: fmt.Sprintf("%s value %v outside [0,1]", field, v)}
	}
	return math.Round(v*100*100) / 100, nil
}

func intOrZero(value *float64) int {
	if value == nil {
		return 0
	}
	return int(*value)
}
