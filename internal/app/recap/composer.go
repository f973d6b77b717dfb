// Package recap selects the key moments of a game and composes the
// bounded text-generation prompt that produces its narrative summary.
package recap

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	domainbox "nba-recap-service/internal/domain/boxscore"
	"nba-recap-service/internal/domain/playbyplay"
	domainrecap "nba-recap-service/internal/domain/recap"
	"nba-recap-service/internal/llm"
	"nba-recap-service/internal/logging"
	"nba-recap-service/internal/metrics"
	"nba-recap-service/internal/providers"
)

// Output formats for the generated summary.
const (
	OutputBullets = "bullets"
	OutputText    = "text"
)

const systemRole = "You are an assistant that summarizes NBA games."

const instructionSuffix = "Based on the above information, generate a detailed and engaging summary of the game as a bullet point list, " +
	"highlighting key plays, turning points, and standout performances. " +
	"If the score was close, describe big plays from the final 5 minutes of the game."

// Options are the enumerated behavior switches of the recap pipeline.
type Options struct {
	IncludeLogos bool
	OutputFormat string // OutputBullets or OutputText
}

// Composer builds exactly one outbound text-generation request per recap
// call and shapes its response into a Result.
type Composer struct {
	generator   llm.TextGenerator
	logger      *slog.Logger
	recorder    *metrics.Recorder
	opts        Options
	maxTokens   int
	temperature float64
}

// NewComposer constructs a Composer. maxTokens and temperature bound every
// generation call; non-positive maxTokens falls back to 300.
func NewComposer(generator llm.TextGenerator, logger *slog.Logger, recorder *metrics.Recorder, opts Options, maxTokens int, temperature float64) *Composer {
	if maxTokens <= 0 {
		maxTokens = 300
	}
	if opts.OutputFormat == "" {
		opts.OutputFormat = OutputBullets
	}
	return &Composer{
		generator:   generator,
		logger:      logger,
		recorder:    recorder,
		opts:        opts,
		maxTokens:   maxTokens,
		temperature: temperature,
	}
}

// Compose aggregates the normalized box score and key moments into one
// prompt, invokes the generator, and shapes the response. It fails before
// any generation call when the box score cannot support a recap.
//
// lines carries the official per-team final score when the upstream
// summary was available; team totals computed from player rows are the
// fallback since bench rows can be truncated.
func (c *Composer) Compose(ctx context.Context, table domainbox.Table, moments []playbyplay.KeyMoment, lines []domainbox.TeamLine) (domainrecap.Result, error) {
	if len(table.Rows) == 0 {
		return domainrecap.Result{}, &providers.InsufficientDataError{Reason: "box score has no player rows"}
	}
	if len(table.Teams) != 2 {
		return domainrecap.Result{}, &providers.InsufficientDataError{Reason: fmt.Sprintf("expected 2 teams, got %d", len(table.Teams))}
	}

	teamA := table.Teams[0].Name
	teamB := table.Teams[1].Name
	totals := map[string]int{}
	top := table.Rows[0]
	for _, row := range table.Rows {
		totals[row.Team] += row.Points
		// Strictly-greater keeps the first occurrence on ties.
		if row.Points > top.Points {
			top = row
		}
	}

	scoreA, scoreB := totals[teamA], totals[teamB]
	if a, b, ok := officialScores(table.Teams, lines); ok {
		scoreA, scoreB = a, b
	}

	prompt := c.buildPrompt(teamA, teamB, scoreA, scoreB, top, moments)

	start := time.Now()
	text, err := c.generator.Complete(ctx, systemRole, prompt, c.maxTokens, c.temperature)
	if c.recorder != nil {
		c.recorder.RecordGenerationAttempt(time.Since(start), err)
	}
	if err != nil {
		return domainrecap.Result{}, &providers.RecapGenerationError{Err: err}
	}

	summary := c.shapeSummary(text)
	logging.Info(c.logger, "recap generated",
		slog.Int("moments", len(moments)),
		slog.Int("bullets", len(summary)),
	)

	return domainrecap.Result{
		Summary: summary,
		Teams:   [2]string{teamA, teamB},
		Scores:  [2]int{scoreA, scoreB},
	}, nil
}

// officialScores matches summary lines to the table's team order by id.
// Both teams must be present for the official score to be used.
func officialScores(teams []domainbox.TeamEntry, lines []domainbox.TeamLine) (int, int, bool) {
	if len(teams) != 2 || len(lines) == 0 {
		return 0, 0, false
	}
	byID := make(map[int]int, len(lines))
	for _, line := range lines {
		byID[line.TeamID] = line.Points
	}
	a, okA := byID[teams[0].ID]
	b, okB := byID[teams[1].ID]
	if !okA || !okB {
		return 0, 0, false
	}
	return a, b, true
}

func (c *Composer) buildPrompt(teamA, teamB string, scoreA, scoreB int, top domainbox.Row, moments []playbyplay.KeyMoment) string {
	var b strings.Builder
	fmt.Fprintf(&b, "The game was between %s and %s. ", teamA, teamB)
	fmt.Fprintf(&b, "The final score was %d to %d. ", scoreA, scoreB)
	fmt.Fprintf(&b, "The top scorer was %s from %s with %d points.", top.Player, top.Team, top.Points)
	b.WriteString("\n\nHere are some key moments from the game:\n")
	for _, m := range moments {
		fmt.Fprintf(&b, "- %dQ, %s: %s\n", m.Period, m.Clock, m.Description)
	}
	b.WriteString("\n")
	b.WriteString(instructionSuffix)
	return b.String()
}

// shapeSummary splits a bullet-formatted response into trimmed, non-empty
// lines. An empty response yields an empty slice, not an error.
func (c *Composer) shapeSummary(text string) []string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}
	if c.opts.OutputFormat == OutputText {
		return []string{trimmed}
	}

	var bullets []string
	for _, line := range strings.Split(trimmed, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimPrefix(line, "- ")
		line = strings.TrimPrefix(line, "• ")
		line = strings.TrimSpace(line)
		if line != "" {
			bullets = append(bullets, line)
		}
	}
	return bullets
}
