package nbastats

import "time"

const (
	defaultBaseURL = "https://stats.nba.com/stats"
	// The stats API can take a long time to answer cold queries; keep a
	// generous client-side timeout and let the request context cut it short.
	defaultHTTPTimeout = 120 * time.Second

	providerName = "nbastats"

	// Result set names within each endpoint payload.
	setGameHeader     = "GameHeader"
	setLineScore      = "LineScore"
	setPlayerStats    = "PlayerStats"
	setPlayByPlay     = "PlayByPlay"
	setTeamBackground = "TeamBackground"
)
