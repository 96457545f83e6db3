package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	alertModel "talentradar/internal/alert/models"
	"talentradar/internal/platform/metrics"
	"talentradar/internal/platform/middleware"
	dErrors "talentradar/pkg/domain-errors"
	"talentradar/pkg/platform/httputil"
	"talentradar/pkg/requestcontext"
)

// Service defines the interface for alert operations.
type Service interface {
	List(ctx context.Context, userID string) ([]*alertModel.Alert, error)
	Get(ctx context.Context, id int, userID string) (*alertModel.Alert, error)
	Create(ctx context.Context, userID string, req *alertModel.CreateAlertRequest) (*alertModel.Alert, error)
	Update(ctx context.Context, id int, userID string, req *alertModel.UpdateAlertRequest) (*alertModel.Alert, error)
	Delete(ctx context.Context, id int, userID string) error
}

// Handler handles alert endpoints.
type Handler struct {
	logger  *slog.Logger
	alerts  Service
	metrics *metrics.Metrics
}

// New creates a new alert Handler.
func New(alerts Service, logger *slog.Logger, metrics *metrics.Metrics) *Handler {
	return &Handler{
		logger:  logger,
		alerts:  alerts,
		metrics: metrics,
	}
}

// Register registers the alert routes on an already-authenticated router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/api/alerts", h.handleList)
	r.Post("/api/alerts", h.handleCreate)
	r.Get("/api/alerts/{id}", h.handleGet)
	r.Put("/api/alerts/{id}", h.handleUpdate)
	r.Delete("/api/alerts/{id}", h.handleDelete)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := h.currentUser(w, r)
	if !ok {
		return
	}

	alerts, err := h.alerts.List(ctx, userID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list alerts",
			"request_id", requestcontext.RequestID(ctx),
			"error", err.Error(),
		)
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, alerts)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := h.currentUser(w, r)
	if !ok {
		return
	}
	id, ok := h.alertID(w, r)
	if !ok {
		return
	}

	alert, err := h.alerts.Get(ctx, id, userID)
	if err != nil {
		h.writeServiceError(w, r, "failed to get alert", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, alert)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := h.currentUser(w, r)
	if !ok {
		return
	}

	var req alertModel.CreateAlertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "invalid create alert request",
			"request_id", requestcontext.RequestID(ctx),
			"error", err.Error(),
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	if err := req.Validate(); err != nil {
		httputil.WriteError(w, err)
		return
	}

	alert, err := h.alerts.Create(ctx, userID, &req)
	if err != nil {
		h.writeServiceError(w, r, "failed to create alert", err)
		return
	}
	h.metrics.IncrementAlertsCreated()
	httputil.WriteJSON(w, http.StatusCreated, alert)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := h.currentUser(w, r)
	if !ok {
		return
	}
	id, ok := h.alertID(w, r)
	if !ok {
		return
	}

	// Ownership is settled before the body is inspected, so a non-owner
	// gets 403/404 rather than a validation error.
	if _, err := h.alerts.Get(ctx, id, userID); err != nil {
		h.writeServiceError(w, r, "failed to load alert for update", err)
		return
	}

	var req alertModel.UpdateAlertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "invalid update alert request",
			"request_id", requestcontext.RequestID(ctx),
			"error", err.Error(),
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}
	if err := req.Validate(); err != nil {
		httputil.WriteError(w, err)
		return
	}

	alert, err := h.alerts.Update(ctx, id, userID, &req)
	if err != nil {
		h.writeServiceError(w, r, "failed to update alert", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, alert)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.currentUser(w, r)
	if !ok {
		return
	}
	id, ok := h.alertID(w, r)
	if !ok {
		return
	}

	if err := h.alerts.Delete(r.Context(), id, userID); err != nil {
		h.writeServiceError(w, r, "failed to delete alert", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// currentUser extracts the authenticated user set by RequireAuth. A missing
// value means the middleware chain is misconfigured.
func (h *Handler) currentUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		h.logger.ErrorContext(r.Context(), "userID missing from context despite auth middleware",
			"request_id", requestcontext.RequestID(r.Context()),
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeInternal, "authentication context error"))
		return "", false
	}
	return userID, true
}

func (h *Handler) alertID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "Alert not found"))
		return 0, false
	}
	return id, true
}

func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	ctx := r.Context()
	if dErrors.CodeOf(err) == dErrors.CodeInternal {
		h.logger.ErrorContext(ctx, msg,
			"request_id", requestcontext.RequestID(ctx),
			"error", err.Error(),
		)
	} else {
		h.logger.WarnContext(ctx, msg,
			"request_id", requestcontext.RequestID(ctx),
			"error", err.Error(),
		)
	}
	httputil.WriteError(w, err)
}
