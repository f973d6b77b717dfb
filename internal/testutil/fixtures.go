// Package testutil provides shared helpers and fixtures for tests.
package testutil

import (
	"nba-recap-service/internal/domain/boxscore"
	"nba-recap-service/internal/domain/playbyplay"
)

// FloatPtr returns a pointer to v; handy for building raw stat lines.
func FloatPtr(v float64) *float64 {
	return &v
}

// StatLine builds a raw box-score row with the given identity, minutes
// and points. Percentages default to in-range values and the remaining
// counting stats to zero.
func StatLine(teamID int, team, player, minutes string, points float64) boxscore.PlayerStatLine {
	return boxscore.PlayerStatLine{
		TeamID:           teamID,
		TeamAbbreviation: team,
		PlayerName:       player,
		StartPosition:    "G",
		Minutes:          minutes,
		FGM:              FloatPtr(0),
		FGA:              FloatPtr(0),
		FGPct:            FloatPtr(0.5),
		FG3M:             FloatPtr(0),
		FG3A:             FloatPtr(0),
		FG3Pct:           FloatPtr(0.25),
		FTM:              FloatPtr(0),
		FTA:              FloatPtr(0),
		FTPct:            FloatPtr(1.0),
		OffReb:           FloatPtr(0),
		DefReb:           FloatPtr(0),
		TotReb:           FloatPtr(0),
		Assists:          FloatPtr(0),
		Steals:           FloatPtr(0),
		Blocks:           FloatPtr(0),
		Turnovers:        FloatPtr(0),
		Fouls:            FloatPtr(0),
		Points:           FloatPtr(points),
		PlusMinus:        FloatPtr(0),
	}
}

// ScoringEvent builds a play-by-play entry that changed the score.
func ScoringEvent(period int, clock string, eventType int, homeDesc, visitorDesc, score string) playbyplay.Event {
	return playbyplay.Event{
		Period:             period,
		Clock:              clock,
		EventType:          eventType,
		HomeDescription:    homeDesc,
		VisitorDescription: visitorDesc,
		Score:              score,
	}
}
