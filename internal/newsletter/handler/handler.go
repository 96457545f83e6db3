package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"talentradar/internal/newsletter/models"
	"talentradar/internal/platform/metrics"
	dErrors "talentradar/pkg/domain-errors"
	"talentradar/pkg/platform/httputil"
	"talentradar/pkg/requestcontext"
)

// Service defines the interface for newsletter operations.
type Service interface {
	Subscribe(ctx context.Context, email string) error
}

// Handler handles the public newsletter endpoint. No authentication: the
// landing page posts here before visitors have an account.
type Handler struct {
	logger     *slog.Logger
	newsletter Service
	metrics    *metrics.Metrics
}

// New creates a new newsletter Handler.
func New(newsletter Service, logger *slog.Logger, metrics *metrics.Metrics) *Handler {
	return &Handler{
		logger:     logger,
		newsletter: newsletter,
		metrics:    metrics,
	}
}

// Register registers the newsletter routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/api/newsletter/subscribe", h.handleSubscribe)
}

func (h *Handler) handleSubscribe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.SubscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "invalid subscribe request",
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

	if err := h.newsletter.Subscribe(ctx, req.Email); err != nil {
		h.logger.ErrorContext(ctx, "failed to subscribe",
			"request_id", requestcontext.RequestID(ctx),
			"error", err.Error(),
		)
		httputil.WriteError(w, err)
		return
	}

	h.metrics.IncrementNewsletterSignups()
	httputil.WriteJSON(w, http.StatusCreated, models.SubscribeResponse{Message: "Successfully subscribed"})
}
