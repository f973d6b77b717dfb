// Package fixture provides a deterministic StatSource for local runs and
// bootstrapping without upstream credentials or quota.
package fixture

import (
	"context"
	"strconv"

	"nba-recap-service/internal/domain/boxscore"
	"nba-recap-service/internal/domain/playbyplay"
	"nba-recap-service/internal/providers"
	"nba-recap-service/internal/teams"
)

const (
	gameID = "0022300001"

	celticsID = 1610612738
	lakersID  = 1610612747
)

// Source returns a static, completed Celtics/Lakers game.
type Source struct{}

// New creates a fixture source.
func New() *Source {
	return &Source{}
}

// FetchScoreboard returns one finished example game for any date.
func (s *Source) FetchScoreboard(ctx context.Context, date string) (providers.Scoreboard, error) {
	_ = ctx
	return providers.Scoreboard{
		Games: []providers.ScoreboardGame{
			{
				GameID:        gameID,
				HomeTeamID:    celticsID,
				VisitorTeamID: lakersID,
				GameTimeEST:   date + "T19:30:00",
				StatusText:    "Final",
			},
		},
		LineScores: []providers.LineScore{
			{GameID: gameID, TeamID: celticsID, Points: 112},
			{GameID: gameID, TeamID: lakersID, Points: 105},
		},
	}, nil
}

// FetchBoxScore returns a deterministic set of player rows.
func (s *Source) FetchBoxScore(ctx context.Context, id string) ([]boxscore.PlayerStatLine, error) {
	_ = ctx
	if id != gameID {
		return nil, &providers.NotFoundError{Resource: "box score", ID: id}
	}
	return []boxscore.PlayerStatLine{
		line(celticsID, "BOS", "Jayson Tatum", "F", "37:12", 11, 22, 0.5, 3, 8, 0.375, 7, 8, 0.875, 32, 6),
		line(celticsID, "BOS", "Derrick White", "G", "33:40", 7, 13, 0.5385, 4, 7, 0.5714, 2, 2, 1, 20, 10),
		line(lakersID, "LAL", "LeBron James", "F", "38:05", 12, 21, 0.5714, 2, 5, 0.4, 4, 6, 0.6667, 30, -4),
		line(lakersID, "LAL", "Austin Reaves", "G", "34:52", 6, 14, 0.4286, 3, 7, 0.4286, 3, 3, 1, 18, -7),
	}, nil
}

// FetchPlayByPlay returns a handful of scoring plays in order.
func (s *Source) FetchPlayByPlay(ctx context.Context, id string) ([]playbyplay.Event, error) {
	_ = ctx
	if id != gameID {
		return nil, &providers.NotFoundError{Resource: "play-by-play", ID: id}
	}
	return []playbyplay.Event{
		{Period: 1, Clock: "11:42", EventType: playbyplay.EventMadeShot, HomeDescription: "Tatum 18' pullup jump shot", Score: "2 - 0"},
		{Period: 1, Clock: "11:20", EventType: 2, VisitorDescription: "James driving layup missed"},
		{Period: 2, Clock: "5:08", EventType: playbyplay.EventMadeThree, VisitorDescription: "Reaves 26' 3pt shot", Score: "34 - 31"},
		{Period: 4, Clock: "1:14", EventType: playbyplay.EventFreeThrow, HomeDescription: "White free throw 2 of 2", Score: "108 - 103"},
		{Period: 4, Clock: "0:42", EventType: playbyplay.EventMadeShot, HomeDescription: "Tatum driving dunk", Score: "110 - 103"},
	}, nil
}

// FetchBoxScoreSummary returns the per-team final line.
func (s *Source) FetchBoxScoreSummary(ctx context.Context, id string) ([]boxscore.TeamLine, error) {
	_ = ctx
	if id != gameID {
		return nil, &providers.NotFoundError{Resource: "box score summary", ID: id}
	}
	return []boxscore.TeamLine{
		{TeamID: celticsID, TeamName: "Celtics", Points: 112},
		{TeamID: lakersID, TeamName: "Lakers", Points: 105},
	}, nil
}

// FetchTeamDetails resolves the two fixture teams.
func (s *Source) FetchTeamDetails(ctx context.Context, teamID int) (teams.Details, error) {
	_ = ctx
	switch teamID {
	case celticsID:
		return teams.Details{ID: celticsID, Abbreviation: "BOS", Nickname: "Celtics"}, nil
	case lakersID:
		return teams.Details{ID: lakersID, Abbreviation: "LAL", Nickname: "Lakers"}, nil
	default:
		return teams.Details{}, &providers.NotFoundError{Resource: "team", ID: strconv.Itoa(teamID)}
	}
}

func line(teamID int, abbr, player, pos, min string, fgm, fga, fgPct, tpm, tpa, tpPct, ftm, fta, ftPct, pts, plusMinus float64) boxscore.PlayerStatLine {
	f := func(v float64) *float64 { return &v }
	return boxscore.PlayerStatLine{
		TeamID:           teamID,
		TeamAbbreviation: abbr,
		PlayerName:       player,
		StartPosition:    pos,
		Minutes:          min,
		FGM:              f(fgm),
		FGA:              f(fga),
		FGPct:            f(fgPct),
		FG3M:             f(tpm),
		FG3A:             f(tpa),
		FG3Pct:           f(tpPct),
		FTM:              f(ftm),
		FTA:              f(fta),
		FTPct:            f(ftPct),
		OffReb:           f(1),
		DefReb:           f(4),
		TotReb:           f(5),
		Assists:          f(4),
		Steals:           f(1),
		Blocks:           f(0),
		Turnovers:        f(2),
		Fouls:            f(2),
		Points:           f(pts),
		PlusMinus:        f(plusMinus),
	}
}
