package config

import "time"

const (
	envStatsBaseURL = "NBA_STATS_BASE_URL"
	envStatsTimeout = "NBA_STATS_TIMEOUT"
	envStatsRPS     = "NBA_STATS_RPS"

	defaultStatsBaseURL = "https://stats.nba.com/stats"
	// The stats API can be very slow on cold queries.
	defaultStatsTimeout = 120 * Duration(time.Second)
	// Conservative default to avoid the API silently dropping the client.
	defaultStatsRPS = 1.0
)

// NBAStatsConfig controls how we talk to the stats API.
type NBAStatsConfig struct {
	BaseURL           string
	Timeout           Duration
	RequestsPerSecond float64
}

func loadNBAStats() NBAStatsConfig {
	return NBAStatsConfig{
		BaseURL:           envOrDefault(envStatsBaseURL, defaultStatsBaseURL),
		Timeout:           durationEnvOrDefault(envStatsTimeout, defaultStatsTimeout),
		RequestsPerSecond: floatEnvOrDefault(envStatsRPS, defaultStatsRPS),
	}
}
