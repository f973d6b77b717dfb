package domain

// GameRef identifies one contest: an opaque upstream game id plus the
// calendar date it was played on.
type GameRef struct {
	GameID string `json:"gameId"`
	Date   string `json:"date"`
}

// TeamRef is a resolved team identity for display.
type TeamRef struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation,omitempty"`
	LogoURL      string `json:"logoUrl,omitempty"`
}

// Game is one scoreboard entry with resolved team identities.
type Game struct {
	GameID     string  `json:"gameId"`
	HomeTeam   TeamRef `json:"homeTeam"`
	AwayTeam   TeamRef `json:"awayTeam"`
	HomeScore  int     `json:"homeScore"`
	AwayScore  int     `json:"awayScore"`
	GameTime   string  `json:"gameTime"`
	StatusText string  `json:"statusText"`
}

// ScoreboardResponse is the payload returned by /games.
type ScoreboardResponse struct {
	Date  string `json:"date"`
	Games []Game `json:"games"`
}
