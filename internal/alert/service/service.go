package service

import (
	"context"
	"errors"

	"talentradar/internal/alert/models"
	"talentradar/internal/alert/store"
	dErrors "talentradar/pkg/domain-errors"
	"talentradar/pkg/platform/sentinel"
	"talentradar/pkg/requestcontext"
)

// Service enforces ownership policy around the alert store. Stores return
// rows for any id; everything user-facing goes through here.
//
// Check order on single-alert operations: a missing id yields NotFound, an id
// owned by another user yields Forbidden. Existence is confirmed to
// non-owners, nothing more.
type Service struct {
	store store.Store
}

func New(store store.Store) *Service {
	return &Service{store: store}
}

// List returns all alerts owned by userID, creation order ascending.
func (s *Service) List(ctx context.Context, userID string) ([]*models.Alert, error) {
	alerts, err := s.store.List(ctx, userID)
	if err != nil {
		return nil, dErrors.Wrap(dErrors.CodeInternal, "failed to list alerts", err)
	}
	return alerts, nil
}

// Get loads one alert, enforcing ownership.
func (s *Service) Get(ctx context.Context, id int, userID string) (*models.Alert, error) {
	alert, err := s.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "Alert not found")
		}
		return nil, dErrors.Wrap(dErrors.CodeInternal, "failed to load alert", err)
	}
	if alert.UserID != userID {
		return nil, dErrors.New(dErrors.CodeForbidden, "Forbidden")
	}
	return alert, nil
}

// Create persists a new alert for userID from a validated request.
func (s *Service) Create(ctx context.Context, userID string, req *models.CreateAlertRequest) (*models.Alert, error) {
	alert := &models.Alert{
		UserID:    userID,
		Keywords:  req.Keywords,
		Location:  req.Location,
		Frequency: req.ParsedFrequency(),
		IsActive:  req.Active(),
		CreatedAt: requestcontext.Now(ctx),
	}
	if err := s.store.Create(ctx, alert); err != nil {
		return nil, dErrors.Wrap(dErrors.CodeInternal, "failed to create alert", err)
	}
	return alert, nil
}

// Update applies a validated partial update, enforcing ownership first.
func (s *Service) Update(ctx context.Context, id int, userID string, req *models.UpdateAlertRequest) (*models.Alert, error) {
	if _, err := s.Get(ctx, id, userID); err != nil {
		return nil, err
	}
	alert, err := s.store.Update(ctx, id, req.Update())
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			// Deleted between the ownership check and the write.
			return nil, dErrors.New(dErrors.CodeNotFound, "Alert not found")
		}
		return nil, dErrors.Wrap(dErrors.CodeInternal, "failed to update alert", err)
	}
	return alert, nil
}

// Delete removes an alert, enforcing ownership first.
func (s *Service) Delete(ctx context.Context, id int, userID string) error {
	if _, err := s.Get(ctx, id, userID); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return dErrors.Wrap(dErrors.CodeInternal, "failed to delete alert", err)
	}
	return nil
}
