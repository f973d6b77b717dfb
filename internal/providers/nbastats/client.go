// Package nbastats fetches game statistics from the stats.nba.com API and
// maps its tabular result sets into typed domain records.
package nbastats

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"nba-recap-service/internal/domain/boxscore"
	"nba-recap-service/internal/domain/playbyplay"
	"nba-recap-service/internal/providers"
	"nba-recap-service/internal/teams"
	"nba-recap-service/internal/timeutil"
)

// Config controls how the client reaches the stats API.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
}

// Client implements providers.StatSource against stats.nba.com.
type Client struct {
	baseURL    string
	httpClient httpDoer
}

// NewClient constructs a stats client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
	}
}

// FetchScoreboard retrieves the game rows and line scores for a date.
func (c *Client) FetchScoreboard(ctx context.Context, date string) (providers.Scoreboard, error) {
	parsed, err := timeutil.ParseDate(date)
	if err != nil {
		return providers.Scoreboard{}, &providers.FormatError{Field: "date", Value: date}
	}

	params := url.Values{}
	params.Set("GameDate", parsed.Format("01/02/2006"))
	params.Set("LeagueID", "00")
	params.Set("DayOffset", "0")

	resp, err := c.get(ctx, "scoreboardv2", params)
	if err != nil {
		return providers.Scoreboard{}, err
	}
	return mapScoreboard(resp)
}

// FetchBoxScore retrieves the per-player rows for a game.
func (c *Client) FetchBoxScore(ctx context.Context, gameID string) ([]boxscore.PlayerStatLine, error) {
	resp, err := c.getGame(ctx, "boxscoretraditionalv2", gameID)
	if err != nil {
		return nil, err
	}
	rows, err := mapPlayerStats(resp)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, &providers.NotFoundError{Resource: "box score", ID: gameID}
	}
	return rows, nil
}

// FetchPlayByPlay retrieves the ordered event log for a game.
func (c *Client) FetchPlayByPlay(ctx context.Context, gameID string) ([]playbyplay.Event, error) {
	params := url.Values{}
	params.Set("GameID", gameID)
	params.Set("StartPeriod", "0")
	params.Set("EndPeriod", "10")

	resp, err := c.get(ctx, "playbyplayv2", params)
	if err != nil {
		return nil, c.mapGameError(err, gameID)
	}
	events, err := mapPlayByPlay(resp)
	if err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return nil, &providers.NotFoundError{Resource: "play-by-play", ID: gameID}
	}
	return events, nil
}

// FetchBoxScoreSummary retrieves the per-team final line for a game.
func (c *Client) FetchBoxScoreSummary(ctx context.Context, gameID string) ([]boxscore.TeamLine, error) {
	resp, err := c.getGame(ctx, "boxscoresummaryv2", gameID)
	if err != nil {
		return nil, err
	}
	lines, err := mapTeamLines(resp)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, &providers.NotFoundError{Resource: "box score summary", ID: gameID}
	}
	return lines, nil
}

// FetchTeamDetails retrieves display details for one team.
func (c *Client) FetchTeamDetails(ctx context.Context, teamID int) (teams.Details, error) {
	params := url.Values{}
	params.Set("TeamID", strconv.Itoa(teamID))

	resp, err := c.get(ctx, "teamdetails", params)
	if err != nil {
		return teams.Details{}, err
	}
	details, err := mapTeamDetails(resp, teamID)
	if err != nil {
		return teams.Details{}, err
	}
	return details, nil
}

func (c *Client) getGame(ctx context.Context, endpoint, gameID string) (statsResponse, error) {
	params := url.Values{}
	params.Set("GameID", gameID)
	if endpoint == "boxscoretraditionalv2" {
		params.Set("StartPeriod", "0")
		params.Set("EndPeriod", "10")
		params.Set("StartRange", "0")
		params.Set("EndRange", "0")
		params.Set("RangeType", "0")
	}
	resp, err := c.get(ctx, endpoint, params)
	if err != nil {
		return statsResponse{}, c.mapGameError(err, gameID)
	}
	return resp, nil
}

func (c *Client) get(ctx context.Context, endpoint string, params url.Values) (statsResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+endpoint, nil)
	if err != nil {
		return statsResponse{}, err
	}
	req.URL.RawQuery = params.Encode()
	setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return statsResponse{}, &providers.TimeoutError{Op: endpoint}
		}
		return statsResponse{}, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return statsResponse{}, &providers.NotFoundError{Resource: endpoint, ID: params.Encode()}
	case resp.StatusCode != http.StatusOK:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return statsResponse{}, fmt.Errorf("nbastats: unexpected status %d from %s: %s", resp.StatusCode, endpoint, strings.TrimSpace(string(body)))
	}

	var payload statsResponse
	if decodeErr := json.NewDecoder(resp.Body).Decode(&payload); decodeErr != nil {
		return statsResponse{}, &providers.DataShapeError{Reason: fmt.Sprintf("decoding %s response: %v", endpoint, decodeErr)}
	}
	return payload, nil
}

// mapGameError rewrites transport errors that identify the game in query
// form into a NotFoundError keyed by the game id.
func (c *Client) mapGameError(err error, gameID string) error {
	if nf, ok := providers.AsNotFoundError(err); ok {
		return &providers.NotFoundError{Resource: nf.Resource, ID: gameID}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return &providers.TimeoutError{Op: "fetch game " + gameID}
	}
	return err
}
