package recap

import (
	"context"
	"log/slog"

	appbox "nba-recap-service/internal/app/boxscore"
	domainbox "nba-recap-service/internal/domain/boxscore"
	"nba-recap-service/internal/domain/playbyplay"
	domainrecap "nba-recap-service/internal/domain/recap"
	"nba-recap-service/internal/logging"
	"nba-recap-service/internal/providers"
)

// Service runs the recap pipeline for one game: fetch, normalize, extract,
// compose. Every call re-fetches upstream data; nothing is cached.
type Service struct {
	source     providers.GameStatsProvider
	normalizer *appbox.Normalizer
	composer   *Composer
	logger     *slog.Logger
}

// NewService constructs a recap Service.
func NewService(source providers.GameStatsProvider, normalizer *appbox.Normalizer, composer *Composer, logger *slog.Logger) *Service {
	return &Service{
		source:     source,
		normalizer: normalizer,
		composer:   composer,
		logger:     logger,
	}
}

// BoxScore fetches and normalizes the box score for one game.
func (s *Service) BoxScore(ctx context.Context, gameID string) (domainbox.Table, error) {
	rows, err := s.source.FetchBoxScore(ctx, gameID)
	if err != nil {
		return domainbox.Table{}, err
	}
	return s.normalizer.Normalize(rows)
}

// Recap fetches the statistical record sets, normalizes them, and
// generates the narrative summary. The fetches are independent and issued
// concurrently; the generation call waits for all of them. The box-score
// summary only refines the final score, so its failure never fails the
// recap.
func (s *Service) Recap(ctx context.Context, gameID string) (domainbox.Table, domainrecap.Result, error) {
	type boxResult struct {
		rows []domainbox.PlayerStatLine
		err  error
	}
	type pbpResult struct {
		events []playbyplay.Event
		err    error
	}
	type summaryResult struct {
		lines []domainbox.TeamLine
		err   error
	}

	boxCh := make(chan boxResult, 1)
	pbpCh := make(chan pbpResult, 1)
	sumCh := make(chan summaryResult, 1)

	go func() {
		rows, err := s.source.FetchBoxScore(ctx, gameID)
		boxCh <- boxResult{rows: rows, err: err}
	}()
	go func() {
		events, err := s.source.FetchPlayByPlay(ctx, gameID)
		pbpCh <- pbpResult{events: events, err: err}
	}()
	go func() {
		lines, err := s.source.FetchBoxScoreSummary(ctx, gameID)
		sumCh <- summaryResult{lines: lines, err: err}
	}()

	box := <-boxCh
	pbp := <-pbpCh
	sum := <-sumCh
	if box.err != nil {
		return domainbox.Table{}, domainrecap.Result{}, box.err
	}
	if pbp.err != nil {
		return domainbox.Table{}, domainrecap.Result{}, pbp.err
	}
	if sum.err != nil {
		logging.Warn(s.logger, "box score summary unavailable, using computed totals",
			slog.String(logging.FieldGameID, gameID), "error", sum.err)
		sum.lines = nil
	}

	table, err := s.normalizer.Normalize(box.rows)
	if err != nil {
		return domainbox.Table{}, domainrecap.Result{}, err
	}

	moments := KeyMoments(pbp.events)
	result, err := s.composer.Compose(ctx, table, moments, sum.lines)
	if err != nil {
		return domainbox.Table{}, domainrecap.Result{}, err
	}
	return table, result, nil
}
