package store

import (
	"context"
	"sync"

	"talentradar/internal/recruiter/models"
	"talentradar/pkg/platform/sentinel"
)

// InMemory keeps profiles in a mutex-guarded map keyed by user ID.
type InMemory struct {
	mu       sync.RWMutex
	nextID   int
	profiles map[string]models.RecruiterProfile
}

func NewInMemory() *InMemory {
	return &InMemory{nextID: 1, profiles: make(map[string]models.RecruiterProfile)}
}

func (s *InMemory) GetByUserID(_ context.Context, userID string) (*models.RecruiterProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if p, ok := s.profiles[userID]; ok {
		copied := p
		return &copied, nil
	}
	return nil, sentinel.ErrNotFound
}

func (s *InMemory) Create(_ context.Context, profile *models.RecruiterProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.profiles[profile.UserID]; ok {
		return sentinel.ErrConflict
	}
	profile.ID = s.nextID
	s.nextID++
	s.profiles[profile.UserID] = *profile
	return nil
}

func (s *InMemory) Update(_ context.Context, userID string, update models.ProfileUpdate) (*models.RecruiterProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.profiles[userID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	if update.CompanyName != nil {
		p.CompanyName = *update.CompanyName
	}
	if update.Industry != nil {
		p.Industry = update.Industry
	}
	if update.WebsiteURL != nil {
		p.WebsiteURL = update.WebsiteURL
	}
	s.profiles[userID] = p
	copied := p
	return &copied, nil
}
