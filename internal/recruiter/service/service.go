package service

import (
	"context"
	"errors"

	"talentradar/internal/recruiter/models"
	"talentradar/internal/recruiter/store"
	dErrors "talentradar/pkg/domain-errors"
	"talentradar/pkg/platform/sentinel"
	"talentradar/pkg/requestcontext"
)

// Service owns the profile upsert policy. The store's unique constraint on
// user_id is the authoritative conflict guard: when two first-writes race,
// the losing insert observes ErrConflict and is retried as an update.
type Service struct {
	store store.Store
}

func New(store store.Store) *Service {
	return &Service{store: store}
}

// Get loads the caller's profile.
func (s *Service) Get(ctx context.Context, userID string) (*models.RecruiterProfile, error) {
	profile, err := s.store.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "Profile not found")
		}
		return nil, dErrors.Wrap(dErrors.CodeInternal, "failed to load profile", err)
	}
	return profile, nil
}

// Upsert creates the caller's profile on first write and updates it
// thereafter. companyName is required only when no profile exists yet.
func (s *Service) Upsert(ctx context.Context, userID string, req *models.UpdateProfileRequest) (*models.RecruiterProfile, error) {
	existing, err := s.store.GetByUserID(ctx, userID)
	if err != nil && !errors.Is(err, sentinel.ErrNotFound) {
		return nil, dErrors.Wrap(dErrors.CodeInternal, "failed to load profile", err)
	}

	if existing == nil {
		if !req.HasCompanyName() {
			return nil, dErrors.New(dErrors.CodeBadRequest, "Company name is required for new profile")
		}
		profile := &models.RecruiterProfile{
			UserID:      userID,
			CompanyName: *req.CompanyName,
			Industry:    req.Industry,
			WebsiteURL:  req.WebsiteURL,
			CreatedAt:   requestcontext.Now(ctx),
		}
		err := s.store.Create(ctx, profile)
		if err == nil {
			return profile, nil
		}
		if !errors.Is(err, sentinel.ErrConflict) {
			return nil, dErrors.Wrap(dErrors.CodeInternal, "failed to create profile", err)
		}
		// Lost a concurrent first-write race; apply as an update instead.
	}

	profile, err := s.store.Update(ctx, userID, req.Update())
	if err != nil {
		return nil, dErrors.Wrap(dErrors.CodeInternal, "failed to update profile", err)
	}
	return profile, nil
}
