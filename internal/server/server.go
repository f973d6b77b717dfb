package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/rs/cors"

	appbox "nba-recap-service/internal/app/boxscore"
	"nba-recap-service/internal/app/games"
	"nba-recap-service/internal/app/recap"
	"nba-recap-service/internal/config"
	httpserver "nba-recap-service/internal/http"
	"nba-recap-service/internal/http/handlers"
	"nba-recap-service/internal/http/middleware"
	"nba-recap-service/internal/llm"
	"nba-recap-service/internal/logging"
	"nba-recap-service/internal/metrics"
	"nba-recap-service/internal/providers"
	"nba-recap-service/internal/teams"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	gamesService  *games.Service
	recapService  *recap.Service
	httpServer    httpServer
	metricsServer httpServer
	metricsStop   func(context.Context) error
}

// New constructs a server with default source and generator wiring.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithDeps(cfg, logger, nil, nil, nil)
}

// newServerWithDeps allows tests to inject a stat source, a text
// generator, and a metrics recorder; nil values get default wiring.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, source providers.StatSource, generator llm.TextGenerator, recorder *metrics.Recorder) *Server {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	if source == nil {
		source = newSourceFactory(logger, recorder).build(cfg)
	}
	if generator == nil {
		generator = llm.NewOpenAIClient(llm.Config{
			BaseURL: cfg.OpenAI.BaseURL,
			APIKey:  cfg.OpenAI.APIKey,
			Model:   cfg.OpenAI.Model,
		})
	}

	resolver := teams.NewResolver(source, cfg.Recap.IncludeLogos)
	normalizer := appbox.NewNormalizer(logger)
	composer := recap.NewComposer(generator, logger, recorder, recap.Options{
		IncludeLogos: cfg.Recap.IncludeLogos,
		OutputFormat: cfg.Recap.OutputFormat,
	}, cfg.Recap.MaxTokens, cfg.Recap.Temperature)

	gamesSvc := games.NewService(source, resolver, logger)
	recapSvc := recap.NewService(source, normalizer, composer, logger)

	httpSrv := buildHTTPServer(cfg, gamesSvc, recapSvc, logger, recorder)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		gamesService:  gamesSvc,
		recapService:  recapSvc,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		metricsStop:   metricsShutdown,
	}
}

func buildHTTPServer(cfg config.Config, gamesSvc *games.Service, recapSvc *recap.Service, logger *slog.Logger, recorder *metrics.Recorder) httpServer {
	handler := handlers.NewHandler(gamesSvc, recapSvc, logger, cfg.RequestTimeout)
	router := httpserver.NewRouter(handler)

	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}

	// The listing and box-score endpoints are consumed by a browser frontend.
	withCORS := cors.Default().Handler(router)
	wrapped := middleware.LoggingMiddleware(logger, recorder, withCORS)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      wrapped,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// Run starts the HTTP server, then waits for context cancellation to shut
// down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)

	<-ctx.Done()
	if s.logger != nil {
		s.logger.Info("shutdown signal received")
	}

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	if s.logger != nil {
		s.logger.Info("http server starting", slog.String("addr", s.httpServer.Addr()))
	}
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	if s.logger != nil {
		s.logger.Info("metrics server starting", slog.String("addr", s.metricsServer.Addr()))
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics server shutdown failed", "error", err)
		}
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("graceful shutdown failed", "error", err)
	}

	if s.logger != nil {
		s.logger.Info("shutdown complete")
	}
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		if logger != nil {
			logger.Warn("metrics setup failed, continuing without telemetry", "err", err)
		}
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:    ":" + recCfg.Port,
				Handler: handler,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if logger != nil {
				logger.Warn(name+" server failed", "error", err)
			}
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
