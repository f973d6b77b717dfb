// Package boxscore holds the per-player statistical shapes for one game,
// both as fetched from the upstream stat feed and as normalized for display.
package boxscore

// PlayerStatLine is one raw box-score row as returned by the upstream
// tabular feed. Numeric cells arrive untyped and may be absent, so they
// are carried as *float64 until the normalizer coerces them.
type PlayerStatLine struct {
	TeamID           int
	TeamAbbreviation string
	PlayerName       string
	StartPosition    string
	Minutes          string // "MM:SS", may be empty for DNPs
	FGM              *float64
	FGA              *float64
	FGPct            *float64
	FG3M             *float64
	FG3A             *float64
	FG3Pct           *float64
	FTM              *float64
	FTA              *float64
	FTPct            *float64
	OffReb           *float64
	DefReb           *float64
	TotReb           *float64
	Assists          *float64
	Steals           *float64
	Blocks           *float64
	Turnovers        *float64
	Fouls            *float64
	Points           *float64
	PlusMinus        *float64
}

// Row is one normalized, display-ready box-score row. Counting stats are
// integers; percentages are scaled to [0,100] and rounded to two decimals.
type Row struct {
	Team      string  `json:"TEAM"`
	Player    string  `json:"PLAYER"`
	Pos       string  `json:"POS"`
	Min       string  `json:"MIN"`
	FGM       int     `json:"FGM"`
	FGA       int     `json:"FGA"`
	FGPct     float64 `json:"FG%"`
	ThreePM   int     `json:"3PM"`
	ThreePA   int     `json:"3PA"`
	ThreePct  float64 `json:"3P%"`
	FTM       int     `json:"FTM"`
	FTA       int     `json:"FTA"`
	FTPct     float64 `json:"FT%"`
	OffReb    int     `json:"OREB"`
	DefReb    int     `json:"DREB"`
	TotReb    int     `json:"REB"`
	Assists   int     `json:"AST"`
	Steals    int     `json:"STL"`
	Blocks    int     `json:"BLK"`
	Turnovers int     `json:"TO"`
	Fouls     int     `json:"PF"`
	Points    int     `json:"PTS"`
	PlusMinus int     `json:"+/-"`
}

// TeamEntry pairs a team id with its display name, derived from the rows
// actually present in the box score.
type TeamEntry struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Table is the normalized box score for one game: ordered display rows
// plus the two teams that produced them.
type Table struct {
	Rows  []Row       `json:"rows"`
	Teams []TeamEntry `json:"teams"`
}

// TeamLine is one row of the box-score summary: final points per team.
type TeamLine struct {
	TeamID   int    `json:"teamId"`
	TeamName string `json:"teamName"`
	Points   int    `json:"points"`
}
