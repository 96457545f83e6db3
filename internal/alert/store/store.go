package store

import (
	"context"

	"talentradar/internal/alert/models"
)

// Store abstracts alert persistence so the service stays testable against the
// in-memory implementation. Stores do not check ownership; that is service
// policy.
type Store interface {
	// List returns the user's alerts ordered by creation time, oldest first.
	List(ctx context.Context, userID string) ([]*models.Alert, error)
	// Get returns sentinel.ErrNotFound (wrapped) when the id does not exist.
	Get(ctx context.Context, id int) (*models.Alert, error)
	// Create persists the alert and fills in the generated ID.
	Create(ctx context.Context, alert *models.Alert) error
	// Update applies only the non-nil fields and returns the updated row.
	// Returns sentinel.ErrNotFound when the id does not exist.
	Update(ctx context.Context, id int, update models.AlertUpdate) (*models.Alert, error)
	// Delete removes the row. Deleting an absent id is not an error.
	Delete(ctx context.Context, id int) error
}
