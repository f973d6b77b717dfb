package nbastats

import (
	"strconv"

	"nba-recap-service/internal/domain/boxscore"
	"nba-recap-service/internal/domain/playbyplay"
	"nba-recap-service/internal/providers"
	"nba-recap-service/internal/teams"
)

func mapScoreboard(resp statsResponse) (providers.Scoreboard, error) {
	header, err := resp.table(setGameHeader)
	if err != nil {
		return providers.Scoreboard{}, err
	}
	lines, err := resp.table(setLineScore)
	if err != nil {
		return providers.Scoreboard{}, err
	}

	gameID, err := header.col("GAME_ID")
	if err != nil {
		return providers.Scoreboard{}, err
	}
	homeID, err := header.col("HOME_TEAM_ID")
	if err != nil {
		return providers.Scoreboard{}, err
	}
	visitorID, err := header.col("VISITOR_TEAM_ID")
	if err != nil {
		return providers.Scoreboard{}, err
	}
	gameDate, err := header.col("GAME_DATE_EST")
	if err != nil {
		return providers.Scoreboard{}, err
	}
	status, err := header.col("GAME_STATUS_TEXT")
	if err != nil {
		return providers.Scoreboard{}, err
	}

	board := providers.Scoreboard{}
	for _, row := range header.rows() {
		board.Games = append(board.Games, providers.ScoreboardGame{
			GameID:        cellString(row, gameID),
			HomeTeamID:    cellInt(row, homeID),
			VisitorTeamID: cellInt(row, visitorID),
			GameTimeEST:   cellString(row, gameDate),
			StatusText:    cellString(row, status),
		})
	}

	lineGameID, err := lines.col("GAME_ID")
	if err != nil {
		return providers.Scoreboard{}, err
	}
	lineTeamID, err := lines.col("TEAM_ID")
	if err != nil {
		return providers.Scoreboard{}, err
	}
	linePts, err := lines.col("PTS")
	if err != nil {
		return providers.Scoreboard{}, err
	}

	for _, row := range lines.rows() {
		board.LineScores = append(board.LineScores, providers.LineScore{
			GameID: cellString(row, lineGameID),
			TeamID: cellInt(row, lineTeamID),
			Points: cellInt(row, linePts),
		})
	}

	return board, nil
}

func mapPlayerStats(resp statsResponse) ([]boxscore.PlayerStatLine, error) {
	stats, err := resp.table(setPlayerStats)
	if err != nil {
		return nil, err
	}

	cols := map[string]int{}
	for _, name := range []string{
		"TEAM_ID", "TEAM_ABBREVIATION", "PLAYER_NAME", "START_POSITION", "MIN",
		"FGM", "FGA", "FG_PCT", "FG3M", "FG3A", "FG3_PCT", "FTM", "FTA", "FT_PCT",
		"OREB", "DREB", "REB", "AST", "STL", "BLK", "TO", "PF", "PTS", "PLUS_MINUS",
	} {
		idx, err := stats.col(name)
		if err != nil {
			return nil, err
		}
		cols[name] = idx
	}

	rows := make([]boxscore.PlayerStatLine, 0, len(stats.rows()))
	for _, row := range stats.rows() {
		rows = append(rows, boxscore.PlayerStatLine{
			TeamID:           cellInt(row, cols["TEAM_ID"]),
			TeamAbbreviation: cellString(row, cols["TEAM_ABBREVIATION"]),
			PlayerName:       cellString(row, cols["PLAYER_NAME"]),
			StartPosition:    cellString(row, cols["START_POSITION"]),
			Minutes:          cellString(row, cols["MIN"]),
			FGM:              cellFloat(row, cols["FGM"]),
			FGA:              cellFloat(row, cols["FGA"]),
			FGPct:            cellFloat(row, cols["FG_PCT"]),
			FG3M:             cellFloat(row, cols["FG3M"]),
			FG3A:             cellFloat(row, cols["FG3A"]),
			FG3Pct:           cellFloat(row, cols["FG3_PCT"]),
			FTM:              cellFloat(row, cols["FTM"]),
			FTA:              cellFloat(row, cols["FTA"]),
			FTPct:            cellFloat(row, cols["FT_PCT"]),
			OffReb:           cellFloat(row, cols["OREB"]),
			DefReb:           cellFloat(row, cols["DREB"]),
			TotReb:           cellFloat(row, cols["REB"]),
			Assists:          cellFloat(row, cols["AST"]),
			Steals:           cellFloat(row, cols["STL"]),
			Blocks:           cellFloat(row, cols["BLK"]),
			Turnovers:        cellFloat(row, cols["TO"]),
			Fouls:            cellFloat(row, cols["PF"]),
			Points:           cellFloat(row, cols["PTS"]),
			PlusMinus:        cellFloat(row, cols["PLUS_MINUS"]),
		})
	}
	return rows, nil
}

func mapPlayByPlay(resp statsResponse) ([]playbyplay.Event, error) {
	plays, err := resp.table(setPlayByPlay)
	if err != nil {
		return nil, err
	}

	period, err := plays.col("PERIOD")
	if err != nil {
		return nil, err
	}
	clock, err := plays.col("PCTIMESTRING")
	if err != nil {
		return nil, err
	}
	eventType, err := plays.col("EVENTMSGTYPE")
	if err != nil {
		return nil, err
	}
	homeDesc, err := plays.col("HOMEDESCRIPTION")
	if err != nil {
		return nil, err
	}
	visitorDesc, err := plays.col("VISITORDESCRIPTION")
	if err != nil {
		return nil, err
	}
	score, err := plays.col("SCORE")
	if err != nil {
		return nil, err
	}

	events := make([]playbyplay.Event, 0, len(plays.rows()))
	for _, row := range plays.rows() {
		events = append(events, playbyplay.Event{
			Period:             cellInt(row, period),
			Clock:              cellString(row, clock),
			EventType:          cellInt(row, eventType),
			HomeDescription:    cellString(row, homeDesc),
			VisitorDescription: cellString(row, visitorDesc),
			Score:              cellString(row, score),
		})
	}
	return events, nil
}

func mapTeamLines(resp statsResponse) ([]boxscore.TeamLine, error) {
	lines, err := resp.table(setLineScore)
	if err != nil {
		return nil, err
	}

	teamID, err := lines.col("TEAM_ID")
	if err != nil {
		return nil, err
	}
	nickname, err := lines.col("TEAM_NICKNAME")
	if err != nil {
		return nil, err
	}
	pts, err := lines.col("PTS")
	if err != nil {
		return nil, err
	}

	result := make([]boxscore.TeamLine, 0, len(lines.rows()))
	for _, row := range lines.rows() {
		result = append(result, boxscore.TeamLine{
			TeamID:   cellInt(row, teamID),
			TeamName: cellString(row, nickname),
			Points:   cellInt(row, pts),
		})
	}
	return result, nil
}

func mapTeamDetails(resp statsResponse, teamID int) (teams.Details, error) {
	background, err := resp.table(setTeamBackground)
	if err != nil {
		return teams.Details{}, err
	}

	idCol, err := background.col("TEAM_ID")
	if err != nil {
		return teams.Details{}, err
	}
	abbrCol, err := background.col("ABBREVIATION")
	if err != nil {
		return teams.Details{}, err
	}
	nicknameCol, err := background.col("NICKNAME")
	if err != nil {
		return teams.Details{}, err
	}

	for _, row := range background.rows() {
		if cellInt(row, idCol) != teamID {
			continue
		}
		return teams.Details{
			ID:           teamID,
			Abbreviation: cellString(row, abbrCol),
			Nickname:     cellString(row, nicknameCol),
		}, nil
	}
	return teams.Details{}, &providers.NotFoundError{Resource: "team", ID: strconv.Itoa(teamID)}
}
