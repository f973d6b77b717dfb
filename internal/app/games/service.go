// Package games builds the date-listing view: scoreboard rows joined with
// line scores and resolved team identities.
package games

import (
	"context"
	"log/slog"
	"time"

	"nba-recap-service/internal/domain"
	"nba-recap-service/internal/logging"
	"nba-recap-service/internal/providers"
	"nba-recap-service/internal/teams"
	"nba-recap-service/internal/timeutil"
)

// estLayout is how the scoreboard formats tip-off timestamps.
const estLayout = "2006-01-02T15:04:05"

// Service lists the games on a date with resolved display identities.
type Service struct {
	source   providers.ScoreboardProvider
	resolver *teams.Resolver
	logger   *slog.Logger
}

// NewService constructs a listing Service.
func NewService(source providers.ScoreboardProvider, resolver *teams.Resolver, logger *slog.Logger) *Service {
	return &Service{source: source, resolver: resolver, logger: logger}
}

// List returns the games on a date in upstream order. Team identities are
// resolved through one request-scoped session so each team is fetched at
// most once per call.
func (s *Service) List(ctx context.Context, date string) (domain.ScoreboardResponse, error) {
	board, err := s.source.FetchScoreboard(ctx, date)
	if err != nil {
		return domain.ScoreboardResponse{}, err
	}

	type scoreKey struct {
		gameID string
		teamID int
	}
	points := make(map[scoreKey]int, len(board.LineScores))
	for _, line := range board.LineScores {
		points[scoreKey{line.GameID, line.TeamID}] = line.Points
	}

	session := s.resolver.NewSession()
	games := make([]domain.Game, 0, len(board.Games))
	for _, g := range board.Games {
		home, err := session.Resolve(ctx, g.HomeTeamID)
		if err != nil {
			return domain.ScoreboardResponse{}, err
		}
		away, err := session.Resolve(ctx, g.VisitorTeamID)
		if err != nil {
			return domain.ScoreboardResponse{}, err
		}

		games = append(games, domain.Game{
			GameID:     g.GameID,
			HomeTeam:   home,
			AwayTeam:   away,
			HomeScore:  points[scoreKey{g.GameID, g.HomeTeamID}],
			AwayScore:  points[scoreKey{g.GameID, g.VisitorTeamID}],
			GameTime:   displayDate(g.GameTimeEST, date),
			StatusText: g.StatusText,
		})
	}

	logging.Info(s.logger, "listed games",
		slog.String(logging.FieldDate, date),
		slog.Int(logging.FieldCount, len(games)),
	)

	return domain.ScoreboardResponse{Date: date, Games: games}, nil
}

// displayDate reformats the upstream EST timestamp as YYYY-MM-DD, falling
// back to the requested date when the timestamp is malformed.
func displayDate(est, fallback string) string {
	parsed, err := time.Parse(estLayout, est)
	if err != nil {
		return fallback
	}
	return timeutil.FormatDate(parsed)
}
