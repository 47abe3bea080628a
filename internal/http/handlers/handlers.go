package handlers

import (
	"context"
	"log/slog"
	nethttp "net/http"

	"github.com/go-chi/chi/v5"

	"sportsbase/internal/catalog"
	"sportsbase/internal/dashboard"
	"sportsbase/internal/session"
)

// SessionService is the session surface the HTTP adapter drives.
type SessionService interface {
	SetupView() session.SetupView
	ToggleLeague(id string, checked bool) (session.SetupView, error)
	SubmitLeagues(ctx context.Context, ids []string) (session.SetupView, error)
	ToggleTeam(leagueID, teamID string, checked bool) (session.SetupView, error)
	SubmitTeams(ctx context.Context, selections map[string][]string) (session.SetupView, error)
	BackToLeagues() session.SetupView
	Dashboard() dashboard.Dashboard
	Refresh(ctx context.Context) (dashboard.Dashboard, bool)
	EditPreferences(ctx context.Context) session.SetupView
}

// Handler wires HTTP routes to the session.
type Handler struct {
	session  SessionService
	catalog  *catalog.Catalog
	logger   *slog.Logger
	statusFn func() dashboard.Status
}

// NewHandler constructs a Handler with defaults.
func NewHandler(sess SessionService, cat *catalog.Catalog, logger *slog.Logger, statusFn func() dashboard.Status) *Handler {
	return &Handler{
		session:  sess,
		catalog:  cat,
		logger:   logger,
		statusFn: statusFn,
	}
}

type submitLeaguesRequest struct {
	LeagueIDs []string `json:"leagueIds"`
}

type submitTeamsRequest struct {
	Selections map[string][]string `json:"selections"`
}

type toggleRequest struct {
	Checked *bool `json:"checked"`
}

type leaguesResponse struct {
	Leagues []catalog.LeagueDefinition `json:"leagues"`
}

type refreshResponse struct {
	Refreshed bool                `json:"refreshed"`
	Dashboard dashboard.Dashboard `json:"dashboard"`
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
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
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	if h.statusFn == nil {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	status := h.statusFn()
	if status.IsReady() {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := status.LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, nethttp.StatusServiceUnavailable, msg, h.logger)
}

// Leagues lists the catalog in display order.
func (h *Handler) Leagues(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeJSON(w, nethttp.StatusOK, leaguesResponse{Leagues: h.catalog.All()}, h.logger)
}

// Setup returns the current setup screen state.
func (h *Handler) Setup(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeJSON(w, nethttp.StatusOK, h.session.SetupView(), h.logger)
}

// SubmitLeagues confirms the league step. Without leagueIds the checked options are used.
func (h *Handler) SubmitLeagues(w nethttp.ResponseWriter, r *nethttp.Request) {
	logger := loggerFromContext(r, h.logger)
	var req submitLeaguesRequest
	if err := decodeOptionalBody(r, &req); err != nil {
		writeError(w, r, nethttp.StatusBadRequest, "invalid request body", logger)
		return
	}
	view, err := h.session.SubmitLeagues(r.Context(), req.LeagueIDs)
	if err != nil {
		writeCommandError(w, r, err, view, logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, view, logger)
}

// ToggleLeague checks or unchecks one league.
func (h *Handler) ToggleLeague(w nethttp.ResponseWriter, r *nethttp.Request) {
	logger := loggerFromContext(r, h.logger)
	checked, ok := h.decodeToggle(w, r, logger)
	if !ok {
		return
	}
	view, err := h.session.ToggleLeague(chi.URLParam(r, "leagueID"), checked)
	if err != nil {
		writeCommandError(w, r, err, view, logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, view, logger)
}

// SubmitTeams confirms the team step, saves preferences and enters the dashboard.
func (h *Handler) SubmitTeams(w nethttp.ResponseWriter, r *nethttp.Request) {
	logger := loggerFromContext(r, h.logger)
	var req submitTeamsRequest
	if err := decodeOptionalBody(r, &req); err != nil {
		writeError(w, r, nethttp.StatusBadRequest, "invalid request body", logger)
		return
	}
	view, err := h.session.SubmitTeams(r.Context(), req.Selections)
	if err != nil {
		writeCommandError(w, r, err, view, logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, view, logger)
}

// ToggleTeam checks or unchecks one team within a league.
func (h *Handler) ToggleTeam(w nethttp.ResponseWriter, r *nethttp.Request) {
	logger := loggerFromContext(r, h.logger)
	checked, ok := h.decodeToggle(w, r, logger)
	if !ok {
		return
	}
	view, err := h.session.ToggleTeam(chi.URLParam(r, "leagueID"), chi.URLParam(r, "teamID"), checked)
	if err != nil {
		writeCommandError(w, r, err, view, logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, view, logger)
}

// Back returns from the team step to the league step.
func (h *Handler) Back(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeJSON(w, nethttp.StatusOK, h.session.BackToLeagues(), h.logger)
}

// Dashboard returns the latest published dashboard.
func (h *Handler) Dashboard(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeJSON(w, nethttp.StatusOK, h.session.Dashboard(), h.logger)
}

// Refresh triggers a manual refresh. A trigger that overlaps a running cycle
// is dropped and reported with refreshed=false.
func (h *Handler) Refresh(w nethttp.ResponseWriter, r *nethttp.Request) {
	d, ran := h.session.Refresh(r.Context())
	writeJSON(w, nethttp.StatusOK, refreshResponse{Refreshed: ran, Dashboard: d}, loggerFromContext(r, h.logger))
}

// EditPreferences leaves the dashboard for the league step.
func (h *Handler) EditPreferences(w nethttp.ResponseWriter, r *nethttp.Request) {
	writeJSON(w, nethttp.StatusOK, h.session.EditPreferences(r.Context()), loggerFromContext(r, h.logger))
}

func (h *Handler) decodeToggle(w nethttp.ResponseWriter, r *nethttp.Request, logger *slog.Logger) (bool, bool) {
	var req toggleRequest
	if err := decodeOptionalBody(r, &req); err != nil || req.Checked == nil {
		writeError(w, r, nethttp.StatusBadRequest, "checked is required", logger)
		return false, false
	}
	return *req.Checked, true
}
