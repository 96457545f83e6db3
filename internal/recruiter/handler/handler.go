package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"talentradar/internal/platform/middleware"
	profileModel "talentradar/internal/recruiter/models"
	dErrors "talentradar/pkg/domain-errors"
	"talentradar/pkg/platform/httputil"
	"talentradar/pkg/requestcontext"
)

// Service defines the interface for recruiter profile operations.
type Service interface {
	Get(ctx context.Context, userID string) (*profileModel.RecruiterProfile, error)
	Upsert(ctx context.Context, userID string, req *profileModel.UpdateProfileRequest) (*profileModel.RecruiterProfile, error)
}

// Handler handles recruiter profile endpoints.
type Handler struct {
	logger   *slog.Logger
	profiles Service
}

// New creates a new recruiter profile Handler.
func New(profiles Service, logger *slog.Logger) *Handler {
	return &Handler{logger: logger, profiles: profiles}
}

// Register registers the profile routes on an already-authenticated router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/api/recruiter/profile", h.handleGet)
	r.Put("/api/recruiter/profile", h.handleUpsert)
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		h.logger.ErrorContext(ctx, "userID missing from context despite auth middleware",
			"request_id", requestcontext.RequestID(ctx),
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeInternal, "authentication context error"))
		return
	}

	profile, err := h.profiles.Get(ctx, userID)
	if err != nil {
		if dErrors.CodeOf(err) == dErrors.CodeInternal {
			h.logger.ErrorContext(ctx, "failed to get profile",
				"request_id", requestcontext.RequestID(ctx),
				"error", err.Error(),
			)
		}
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, profile)
}

func (h *Handler) handleUpsert(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		h.logger.ErrorContext(ctx, "userID missing from context despite auth middleware",
			"request_id", requestcontext.RequestID(ctx),
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeInternal, "authentication context error"))
		return
	}

	var req profileModel.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "invalid profile update request",
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

	profile, err := h.profiles.Upsert(ctx, userID, &req)
	if err != nil {
		if dErrors.CodeOf(err) == dErrors.CodeInternal {
			h.logger.ErrorContext(ctx, "failed to upsert profile",
				"request_id", requestcontext.RequestID(ctx),
				"error", err.Error(),
			)
		} else {
			h.logger.WarnContext(ctx, "rejected profile update",
				"request_id", requestcontext.RequestID(ctx),
				"error", err.Error(),
			)
		}
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, profile)
}
