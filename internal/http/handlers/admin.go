package handlers

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"strings"

	"sportsbase/internal/catalog"
	"sportsbase/internal/http/requestutil"
	"sportsbase/internal/logging"
)

// CacheInvalidator drops cached team lists.
type CacheInvalidator interface {
	Invalidate(leagueID string)
	Reset()
}

// AdminHandler exposes admin-only endpoints (e.g., team cache invalidation).
type AdminHandler struct {
	cache   CacheInvalidator
	catalog *catalog.Catalog
	token   string
	logger  *slog.Logger
}

// NewAdminHandler constructs an AdminHandler.
func NewAdminHandler(cache CacheInvalidator, cat *catalog.Catalog, token string, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		cache:   cache,
		catalog: cat,
		token:   token,
		logger:  logger,
	}
}

// InvalidateCache drops the cached teams for ?league=<id>, or every league when omitted.
// Guarded by ADMIN_TOKEN; returns 401 if missing/invalid.
func (h *AdminHandler) InvalidateCache(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost, h.logger) {
		return
	}
	if !h.authorize(r) {
		logging.Warn(h.logger, "admin unauthorized",
			slog.String(logging.FieldPath, r.URL.Path),
			slog.String("client_ip", requestutil.ClientIP(r)),
		)
		writeError(w, r, http.StatusUnauthorized, "unauthorized", h.logger)
		return
	}
	if h.cache == nil {
		writeError(w, r, http.StatusServiceUnavailable, "team cache not configured", h.logger)
		return
	}

	logger := loggerFromContext(r, h.logger)
	league := strings.TrimSpace(r.URL.Query().Get("league"))
	if league == "" {
		h.cache.Reset()
		logging.Info(logger, "admin team cache reset")
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "league": "all"}, logger)
		return
	}
	if !h.catalog.Contains(league) {
		writeError(w, r, http.StatusNotFound, "unknown league", logger)
		return
	}
	h.cache.Invalidate(league)
	logging.Info(logger, "admin team cache invalidated", logging.League(league))
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "league": league}, logger)
}

func (h *AdminHandler) authorize(r *http.Request) bool {
	if h.token == "" {
		return false
	}
	got := r.Header.Get("Authorization")
	want := "Bearer " + h.token
	return subtle.ConstantTimeCompare([]byte(got), []byte(want)) == 1
}
