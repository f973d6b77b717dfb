package handlers

import (
	"context"
	"log/slog"
	nethttp "net/http"
	"net/url"
	"strings"
	"time"

	"nba-recap-service/internal/app/games"
	"nba-recap-service/internal/app/recap"
	domainbox "nba-recap-service/internal/domain/boxscore"
	domainrecap "nba-recap-service/internal/domain/recap"
	"nba-recap-service/internal/logging"
	"nba-recap-service/internal/timeutil"
)

// actionSummarize is the query flag that requests a generated recap
// alongside the box score.
const actionSummarize = "summarize"

// BoxScoreResponse is the payload returned by /boxscore/{id}.
type BoxScoreResponse struct {
	GameID   string                `json:"gameId"`
	BoxScore []domainbox.Row       `json:"boxscore"`
	Teams    []domainbox.TeamEntry `json:"teams"`
	Summary  *domainrecap.Result   `json:"summary,omitempty"`
}

// Handler wires HTTP routes to the listing and recap services.
type Handler struct {
	games   *games.Service
	recaps  *recap.Service
	logger  *slog.Logger
	timeout time.Duration
}

// NewHandler constructs a Handler. timeout bounds each request's upstream
// work; non-positive means no bound beyond the server's own timeouts.
func NewHandler(gamesSvc *games.Service, recapSvc *recap.Service, logger *slog.Logger, timeout time.Duration) *Handler {
	return &Handler{
		games:   gamesSvc,
		recaps:  recapSvc,
		logger:  logger,
		timeout: timeout,
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic (e.g., for Kubernetes probes).
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
}

// Games lists the games on the requested date.
func (h *Handler) Games(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	date := r.URL.Query().Get("date")
	if date == "" {
		writeError(w, r, nethttp.StatusBadRequest, "missing date parameter", h.logger)
		return
	}
	if _, err := timeutil.ParseDate(date); err != nil {
		writeError(w, r, nethttp.StatusBadRequest, "invalid date format (expected YYYY-MM-DD)", h.logger)
		return
	}

	ctx, cancel := h.requestContext(r.Context())
	defer cancel()

	listing, err := h.games.List(ctx, date)
	if err != nil {
		writePipelineError(w, r, err, h.logger)
		return
	}

	logger := loggerFromContext(r, h.logger)
	logging.Info(logger, "served games listing",
		slog.String(logging.FieldDate, date),
		slog.Int(logging.FieldCount, len(listing.Games)),
	)
	writeJSON(w, nethttp.StatusOK, listing, h.logger)
}

// BoxScore serves the normalized box score for one game, optionally with a
// generated recap when action=summarize is set.
func (h *Handler) BoxScore(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	gameID, ok := parseGameID(r.URL.Path)
	if !ok {
		writeError(w, r, nethttp.StatusBadRequest, "invalid game id", h.logger)
		return
	}

	ctx, cancel := h.requestContext(r.Context())
	defer cancel()

	logger := loggerFromContext(r, h.logger)

	if r.URL.Query().Get("action") == actionSummarize {
		table, result, err := h.recaps.Recap(ctx, gameID)
		if err != nil {
			writePipelineError(w, r, err, h.logger)
			return
		}
		logging.Info(logger, "served box score with recap", slog.String(logging.FieldGameID, gameID))
		writeJSON(w, nethttp.StatusOK, BoxScoreResponse{
			GameID:   gameID,
			BoxScore: table.Rows,
			Teams:    table.Teams,
			Summary:  &result,
		}, h.logger)
		return
	}

	table, err := h.recaps.BoxScore(ctx, gameID)
	if err != nil {
		writePipelineError(w, r, err, h.logger)
		return
	}
	logging.Info(logger, "served box score", slog.String(logging.FieldGameID, gameID))
	writeJSON(w, nethttp.StatusOK, BoxScoreResponse{
		GameID:   gameID,
		BoxScore: table.Rows,
		Teams:    table.Teams,
	}, h.logger)
}

func (h *Handler) requestContext(parent context.Context) (context.Context, context.CancelFunc) {
	if h.timeout <= 0 {
		return parent, func() {}
	}
	return context.WithTimeout(parent, h.timeout)
}

// parseGameID extracts the id from /boxscore/{id}.
func parseGameID(path string) (string, bool) {
	raw := strings.TrimPrefix(path, "/boxscore")
	raw = strings.TrimPrefix(raw, "/")
	if raw == "" {
		return "", false
	}
	id, err := url.PathUnescape(raw)
	if err != nil || id == "" || strings.ContainsAny(id, " \t/") {
		return "", false
	}
	return id, true
}
