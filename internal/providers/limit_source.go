package providers

import (
	"context"

	"golang.org/x/time/rate"

	"nba-recap-service/internal/domain/boxscore"
	"nba-recap-service/internal/domain/playbyplay"
	"nba-recap-service/internal/teams"
)

// rateLimitedSource wraps a StatSource and throttles upstream calls.
// stats.nba.com drops clients that hit it too quickly, so every fetch
// waits on a shared limiter before going out.
type rateLimitedSource struct {
	inner   StatSource
	limiter *rate.Limiter
}

// NewRateLimitedSource returns a StatSource limited to rps requests per
// second with a burst of one. Calls block until a token is available or
// the context is done.
func NewRateLimitedSource(inner StatSource, rps float64) StatSource {
	if rps <= 0 {
		rps = 1
	}
	return &rateLimitedSource{
		inner:   inner,
		limiter: rate.NewLimiter(rate.Limit(rps), 1),
	}
}

func (s *rateLimitedSource) FetchScoreboard(ctx context.Context, date string) (Scoreboard, error) {
	if err := s.wait(ctx); err != nil {
		return Scoreboard{}, err
	}
	return s.inner.FetchScoreboard(ctx, date)
}

func (s *rateLimitedSource) FetchBoxScore(ctx context.Context, gameID string) ([]boxscore.PlayerStatLine, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	return s.inner.FetchBoxScore(ctx, gameID)
}

func (s *rateLimitedSource) FetchPlayByPlay(ctx context.Context, gameID string) ([]playbyplay.Event, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	return s.inner.FetchPlayByPlay(ctx, gameID)
}

func (s *rateLimitedSource) FetchBoxScoreSummary(ctx context.Context, gameID string) ([]boxscore.TeamLine, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	return s.inner.FetchBoxScoreSummary(ctx, gameID)
}

func (s *rateLimitedSource) FetchTeamDetails(ctx context.Context, teamID int) (teams.Details, error) {
	if err := s.wait(ctx); err != nil {
		return teams.Details{}, err
	}
	return s.inner.FetchTeamDetails(ctx, teamID)
}

func (s *rateLimitedSource) wait(ctx context.Context) error {
	if s == nil || s.inner == nil {
		return ErrProviderUnavailable
	}
	return s.limiter.Wait(ctx)
}
