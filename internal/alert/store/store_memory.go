package store

import (
	"context"
	"sort"
	"sync"

	"talentradar/internal/alert/models"
	"talentradar/pkg/platform/sentinel"
)

// InMemory keeps alerts in a mutex-guarded map. It backs unit tests and the
// no-Postgres dev mode; it intentionally favors clarity over performance.
type InMemory struct {
	mu     sync.RWMutex
	nextID int
	alerts map[int]models.Alert
}

func NewInMemory() *InMemory {
	return &InMemory{nextID: 1, alerts: make(map[int]models.Alert)}
}

func (s *InMemory) List(_ context.Context, userID string) ([]*models.Alert, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	// Non-nil even when empty so the response serializes as a JSON array.
	out := make([]*models.Alert, 0)
	for _, a := range s.alerts {
		if a.UserID == userID {
			copied := a
			out = append(out, &copied)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (s *InMemory) Get(_ context.Context, id int) (*models.Alert, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if a, ok := s.alerts[id]; ok {
		copied := a
		return &copied, nil
	}
	return nil, sentinel.ErrNotFound
}

func (s *InMemory) Create(_ context.Context, alert *models.Alert) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	alert.ID = s.nextID
	s.nextID++
	s.alerts[alert.ID] = *alert
	return nil
}

func (s *InMemory) Update(_ context.Context, id int, update models.AlertUpdate) (*models.Alert, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.alerts[id]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	if update.Keywords != nil {
		a.Keywords = *update.Keywords
	}
	if update.Location != nil {
		a.Location = update.Location
	}
	if update.Frequency != nil {
		a.Frequency = *update.Frequency
	}
	if update.IsActive != nil {
		a.IsActive = *update.IsActive
	}
	s.alerts[id] = a
	copied := a
	return &copied, nil
}

func (s *InMemory) Delete(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.alerts, id)
	return nil
}
