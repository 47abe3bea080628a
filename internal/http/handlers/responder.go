package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"sportsbase/internal/http/middleware"
	"sportsbase/internal/logging"
	"sportsbase/internal/selection"
	"sportsbase/internal/session"
)

// maxBodyBytes caps command payloads; selections are a few dozen ids at most.
const maxBodyBytes = 64 << 10

func writeJSON(w http.ResponseWriter, status int, payload any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && logger != nil {
		logger.Error("failed to encode response", logging.FieldError, err)
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

// writeCommandError maps a session command failure to a status code.
// Validation problems carry their user-facing message; save failures use the
// feedback the session already set on the view.
func writeCommandError(w http.ResponseWriter, r *http.Request, err error, view session.SetupView, logger *slog.Logger) {
	if verr, ok := selection.AsValidationError(err); ok {
		writeError(w, r, http.StatusUnprocessableEntity, verr.Error(), logger)
		return
	}
	switch {
	case errors.Is(err, session.ErrUnknownLeague), errors.Is(err, session.ErrUnknownTeam):
		writeError(w, r, http.StatusNotFound, err.Error(), logger)
	default:
		msg := view.Message
		if msg == "" {
			msg = "internal error"
		}
		logging.Error(logger, "command failed", err)
		writeError(w, r, http.StatusInternalServerError, msg, logger)
	}
}

// decodeOptionalBody decodes a JSON body into dest. An empty body leaves dest untouched.
func decodeOptionalBody(r *http.Request, dest any) error {
	if r.Body == nil {
		return nil
	}
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dest); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func requireMethod(w http.ResponseWriter, r *http.Request, method string, logger *slog.Logger) bool {
	if r.Method == method {
		return true
	}
	w.Header().Set("Allow", method)
	writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", logger)
	return false
}

func loggerFromContext(r *http.Request, fallback *slog.Logger) *slog.Logger {
	if r == nil {
		return fallback
	}
	return logging.FromContext(r.Context(), fallback)
}

// NotFound writes the JSON 404 used for unknown routes.
func NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusNotFound, "not found", loggerFromContext(r, nil))
}

// MethodNotAllowed writes the JSON 405 used when a route exists for another method.
func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", loggerFromContext(r, nil))
}
