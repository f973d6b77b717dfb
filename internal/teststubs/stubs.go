// Package teststubs provides shared test doubles for the provider and
// generator interfaces.
package teststubs

import (
	"context"
	"sync/atomic"

	"nba-recap-service/internal/domain/boxscore"
	"nba-recap-service/internal/domain/playbyplay"
	"nba-recap-service/internal/providers"
	"nba-recap-service/internal/teams"
)

// StubStatSource is a configurable test double for providers.StatSource.
type StubStatSource struct {
	Scoreboard    providers.Scoreboard
	ScoreboardErr error

	BoxScore    []boxscore.PlayerStatLine
	BoxScoreErr error

	PlayByPlay    []playbyplay.Event
	PlayByPlayErr error

	Summary    []boxscore.TeamLine
	SummaryErr error

	Details    map[int]teams.Details
	DetailsErr error

	ScoreboardCalls atomic.Int32
	BoxScoreCalls   atomic.Int32
	PlayByPlayCalls atomic.Int32
	SummaryCalls    atomic.Int32
	DetailsCalls    atomic.Int32
}

// FetchScoreboard returns the configured scoreboard while tracking calls.
func (s *StubStatSource) FetchScoreboard(ctx context.Context, date string) (providers.Scoreboard, error) {
	_ = ctx
	_ = date
	s.ScoreboardCalls.Add(1)
	return s.Scoreboard, s.ScoreboardErr
}

// FetchBoxScore returns the configured stat lines while tracking calls.
func (s *StubStatSource) FetchBoxScore(ctx context.Context, gameID string) ([]boxscore.PlayerStatLine, error) {
	_ = ctx
	_ = gameID
	s.BoxScoreCalls.Add(1)
	return s.BoxScore, s.BoxScoreErr
}

// FetchPlayByPlay returns the configured events while tracking calls.
func (s *StubStatSource) FetchPlayByPlay(ctx context.Context, gameID string) ([]playbyplay.Event, error) {
	_ = ctx
	_ = gameID
	s.PlayByPlayCalls.Add(1)
	return s.PlayByPlay, s.PlayByPlayErr
}

// FetchBoxScoreSummary returns the configured team lines while tracking calls.
func (s *StubStatSource) FetchBoxScoreSummary(ctx context.Context, gameID string) ([]boxscore.TeamLine, error) {
	_ = ctx
	_ = gameID
	s.SummaryCalls.Add(1)
	return s.Summary, s.SummaryErr
}

// FetchTeamDetails looks up the configured details map while tracking calls.
func (s *StubStatSource) FetchTeamDetails(ctx context.Context, teamID int) (teams.Details, error) {
	_ = ctx
	s.DetailsCalls.Add(1)
	if s.DetailsErr != nil {
		return teams.Details{}, s.DetailsErr
	}
	if d, ok := s.Details[teamID]; ok {
		return d, nil
	}
	return teams.Details{ID: teamID, Nickname: "Unknown", Abbreviation: "UNK"}, nil
}

// StubTextGenerator is a test double for llm.TextGenerator. It records
// the last prompt and settings it was invoked with.
type StubTextGenerator struct {
	Response string
	Err      error

	Calls           atomic.Int32
	LastSystemRole  string
	LastPrompt      string
	LastMaxTokens   int
	LastTemperature float64
}

// Complete returns the configured response while recording the invocation.
func (g *StubTextGenerator) Complete(ctx context.Context, systemRole, prompt string, maxTokens int, temperature float64) (string, error) {
	_ = ctx
	g.Calls.Add(1)
	g.LastSystemRole = systemRole
	g.LastPrompt = prompt
	g.LastMaxTokens = maxTokens
	g.LastTemperature = temperature
	return g.Response, g.Err
}
