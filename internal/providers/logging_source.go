package providers

import (
	"context"
	"log/slog"
	"time"

	"nba-recap-service/internal/domain/boxscore"
	"nba-recap-service/internal/domain/playbyplay"
	"nba-recap-service/internal/logging"
	"nba-recap-service/internal/metrics"
	"nba-recap-service/internal/teams"
)

// loggingSource wraps a StatSource with per-call logging and metrics.
type loggingSource struct {
	inner    StatSource
	logger   *slog.Logger
	recorder *metrics.Recorder
	name     string
}

// NewLoggingSource decorates a StatSource so every upstream call is logged
// and recorded against the provider name.
func NewLoggingSource(inner StatSource, logger *slog.Logger, recorder *metrics.Recorder, name string) StatSource {
	return &loggingSource{
		inner:    inner,
		logger:   logger,
		recorder: recorder,
		name:     name,
	}
}

func (s *loggingSource) FetchScoreboard(ctx context.Context, date string) (Scoreboard, error) {
	start := time.Now()
	board, err := s.inner.FetchScoreboard(ctx, date)
	s.observe(ctx, "fetch scoreboard", start, err, slog.String(logging.FieldDate, date), slog.Int(logging.FieldCount, len(board.Games)))
	return board, err
}

func (s *loggingSource) FetchBoxScore(ctx context.Context, gameID string) ([]boxscore.PlayerStatLine, error) {
	start := time.Now()
	rows, err := s.inner.FetchBoxScore(ctx, gameID)
	s.observe(ctx, "fetch box score", start, err, slog.String(logging.FieldGameID, gameID), slog.Int(logging.FieldCount, len(rows)))
	return rows, err
}

func (s *loggingSource) FetchPlayByPlay(ctx context.Context, gameID string) ([]playbyplay.Event, error) {
	start := time.Now()
	events, err := s.inner.FetchPlayByPlay(ctx, gameID)
	s.observe(ctx, "fetch play-by-play", start, err, slog.String(logging.FieldGameID, gameID), slog.Int(logging.FieldCount, len(events)))
	return events, err
}

func (s *loggingSource) FetchBoxScoreSummary(ctx context.Context, gameID string) ([]boxscore.TeamLine, error) {
	start := time.Now()
	lines, err := s.inner.FetchBoxScoreSummary(ctx, gameID)
	s.observe(ctx, "fetch box score summary", start, err, slog.String(logging.FieldGameID, gameID))
	return lines, err
}

func (s *loggingSource) FetchTeamDetails(ctx context.Context, teamID int) (teams.Details, error) {
	start := time.Now()
	details, err := s.inner.FetchTeamDetails(ctx, teamID)
	s.observe(ctx, "fetch team details", start, err, slog.Int(logging.FieldTeamID, teamID))
	return details, err
}

func (s *loggingSource) observe(ctx context.Context, op string, start time.Time, err error, args ...any) {
	duration := time.Since(start)
	if s.recorder != nil {
		s.recorder.RecordProviderAttempt(s.name, duration, err)
	}

	logger := logging.FromContext(ctx, s.logger)
	if logger == nil {
		return
	}
	args = append(args,
		slog.String(logging.FieldProvider, s.name),
		slog.Int64(logging.FieldDurationMS, duration.Milliseconds()),
	)
	if err != nil {
		args = append(args, "error", err)
		logger.Warn(op+" failed", args...)
		return
	}
	logger.Debug(op+" complete", args...)
}
