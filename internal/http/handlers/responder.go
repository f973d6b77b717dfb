package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"nba-recap-service/internal/http/middleware"
	"nba-recap-service/internal/logging"
	"nba-recap-service/internal/providers"
)

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && logger != nil {
		logger.Error("failed to encode response", "err", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string, logger *slog.Logger) {
	reqID := middleware.RequestIDFromContext(r.Context())
	if reqID == "" {
		reqID = r.Header.Get("X-Request-ID")
	}
	body := map[string]string{"error": message}
	if reqID != "" {
		body["requestId"] = reqID
	}
	writeJSON(w, status, body, logger)
}

// writePipelineError maps pipeline error kinds onto HTTP statuses. Errors
// propagate verbatim; the message is the error's own text.
func writePipelineError(w http.ResponseWriter, r *http.Request, err error, logger *slog.Logger) {
	status := http.StatusBadGateway
	switch {
	case isNotFound(err):
		status = http.StatusNotFound
	case isTimeout(err):
		status = http.StatusGatewayTimeout
	}
	writeError(w, r, status, err.Error(), logger)
}

func isNotFound(err error) bool {
	_, ok := providers.AsNotFoundError(err)
	return ok
}

func isTimeout(err error) bool {
	if _, ok := providers.AsTimeoutError(err); ok {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded)
}

func loggerFromContext(r *http.Request, fallback *slog.Logger) *slog.Logger {
	if r == nil {
		return fallback
	}
	return logging.FromContext(r.Context(), fallback)
}
