package config

// Config holds runtime configuration for the server.
type Config struct {
	Port           string
	RequestTimeout Duration
	Provider       string
	NBAStats       NBAStatsConfig
	OpenAI         OpenAIConfig
	Recap          RecapConfig
	Metrics        MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:           envOrDefault(envPort, defaultPort),
		RequestTimeout: durationEnvOrDefault(envRequestTimeout, defaultRequestTimeout),
		Provider:       envOrDefault(envProvider, defaultProvider),
		NBAStats:       loadNBAStats(),
		OpenAI:         loadOpenAI(),
		Recap:          loadRecap(),
		Metrics:        loadMetrics(),
	}
}
