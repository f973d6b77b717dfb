package server

import (
	"log/slog"
	"net/http"

	"nba-recap-service/internal/config"
	"nba-recap-service/internal/metrics"
	"nba-recap-service/internal/providers"
	"nba-recap-service/internal/providers/fixture"
	"nba-recap-service/internal/providers/nbastats"
)

// sourceFactory assembles the stat source with shared wrappers
// (rate limit + logging).
type sourceFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newSourceFactory(logger *slog.Logger, metrics *metrics.Recorder) sourceFactory {
	return sourceFactory{logger: logger, metrics: metrics}
}

func (f sourceFactory) build(cfg config.Config) providers.StatSource {
	base := selectSource(cfg, f.logger)
	limited := providers.NewRateLimitedSource(base, cfg.NBAStats.RequestsPerSecond)
	return providers.NewLoggingSource(limited, f.logger, f.metrics, sourceName(cfg.Provider))
}

func selectSource(cfg config.Config, logger *slog.Logger) providers.StatSource {
	switch cfg.Provider {
	case "fixture", "":
		return fixture.New()
	case "nbastats":
		return nbastats.NewClient(nbastats.Config{
			BaseURL:    cfg.NBAStats.BaseURL,
			HTTPClient: &http.Client{Timeout: cfg.NBAStats.Timeout},
		})
	default:
		if logger != nil {
			logger.Warn("unknown provider, falling back to fixture", slog.String("provider", cfg.Provider))
		}
		return fixture.New()
	}
}

func sourceName(raw string) string {
	if raw == "" {
		return "fixture"
	}
	return raw
}
