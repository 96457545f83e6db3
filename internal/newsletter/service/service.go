package service

import (
	"context"

	"talentradar/internal/newsletter/store"
	dErrors "talentradar/pkg/domain-errors"
)

// Service wraps the subscription store. Duplicate subscriptions are
// normalized to success by the store, so the only failure mode here is the
// store itself.
type Service struct {
	store store.Store
}

func New(store store.Store) *Service {
	return &Service{store: store}
}

// Subscribe records a newsletter signup for an already-validated email.
func (s *Service) Subscribe(ctx context.Context, email string) error {
	if err := s.store.Subscribe(ctx, email); err != nil {
		return dErrors.Wrap(dErrors.CodeInternal, "failed to subscribe", err)
	}
	return nil
}
