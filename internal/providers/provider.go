package providers

import (
	"context"

	"nba-recap-service/internal/domain/boxscore"
	"nba-recap-service/internal/domain/playbyplay"
	"nba-recap-service/internal/teams"
)

// ScoreboardGame is one raw scoreboard row for a date.
type ScoreboardGame struct {
	GameID        string
	HomeTeamID    int
	VisitorTeamID int
	GameTimeEST   string
	StatusText    string
}

// LineScore carries the running points for one team in one game.
type LineScore struct {
	GameID string
	TeamID int
	Points int
}

// Scoreboard bundles the two result sets returned for a date: the game
// rows and the per-team line scores.
type Scoreboard struct {
	Games      []ScoreboardGame
	LineScores []LineScore
}

// ScoreboardProvider fetches the games scheduled on a date (YYYY-MM-DD).
type ScoreboardProvider interface {
	FetchScoreboard(ctx context.Context, date string) (Scoreboard, error)
}

// GameStatsProvider fetches the per-game statistical record sets.
type GameStatsProvider interface {
	FetchBoxScore(ctx context.Context, gameID string) ([]boxscore.PlayerStatLine, error)
	FetchPlayByPlay(ctx context.Context, gameID string) ([]playbyplay.Event, error)
	FetchBoxScoreSummary(ctx context.Context, gameID string) ([]boxscore.TeamLine, error)
}

// TeamDetailsProvider fetches display details for one team.
type TeamDetailsProvider interface {
	FetchTeamDetails(ctx context.Context, teamID int) (teams.Details, error)
}

// StatSource combines all upstream stat capabilities.
type StatSource interface {
	ScoreboardProvider
	GameStatsProvider
	TeamDetailsProvider
}
