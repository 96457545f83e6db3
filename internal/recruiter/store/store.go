package store

import (
	"context"

	"talentradar/internal/recruiter/models"
)

// Store abstracts recruiter profile persistence. The user_id unique
// constraint is the authoritative guard against concurrent first-writes;
// Create surfaces it as sentinel.ErrConflict so the service can retry the
// write as an update.
type Store interface {
	// GetByUserID returns sentinel.ErrNotFound (wrapped) when the user has
	// no profile yet.
	GetByUserID(ctx context.Context, userID string) (*models.RecruiterProfile, error)
	// Create persists a new profile and fills in the generated ID. Returns
	// sentinel.ErrConflict when a profile already exists for the user.
	Create(ctx context.Context, profile *models.RecruiterProfile) error
	// Update applies only the non-nil fields and returns the updated row.
	// Returns sentinel.ErrNotFound when the user has no profile.
	Update(ctx context.Context, userID string, update models.ProfileUpdate) (*models.RecruiterProfile, error)
}
