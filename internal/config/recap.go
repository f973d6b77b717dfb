package config

const (
	envRecapMaxTokens    = "RECAP_MAX_TOKENS"
	envRecapTemperature  = "RECAP_TEMPERATURE"
	envRecapOutputFormat = "RECAP_OUTPUT_FORMAT"
	envIncludeLogos      = "INCLUDE_LOGOS"

	defaultRecapMaxTokens    = 300
	defaultRecapTemperature  = 0.7
	defaultRecapOutputFormat = "bullets"
)

// RecapConfig controls recap generation behavior.
type RecapConfig struct {
	MaxTokens    int
	Temperature  float64
	OutputFormat string // "bullets" or "text"
	IncludeLogos bool
}

func loadRecap() RecapConfig {
	format := envOrDefault(envRecapOutputFormat, defaultRecapOutputFormat)
	if format != "bullets" && format != "text" {
		format = defaultRecapOutputFormat
	}
	return RecapConfig{
		MaxTokens:    intEnvOrDefault(envRecapMaxTokens, defaultRecapMaxTokens),
		Temperature:  floatEnvOrDefault(envRecapTemperature, defaultRecapTemperature),
		OutputFormat: format,
		IncludeLogos: boolEnvOrDefault(envIncludeLogos, true),
	}
}
