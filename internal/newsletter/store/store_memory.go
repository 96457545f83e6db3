package store

import (
	"context"
	"sync"
)

// InMemory keeps subscriptions in a mutex-guarded set.
type InMemory struct {
	mu     sync.Mutex
	emails map[string]struct{}
}

func NewInMemory() *InMemory {
	return &InMemory{emails: make(map[string]struct{})}
}

func (s *InMemory) Subscribe(_ context.Context, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.emails[email] = struct{}{}
	return nil
}

// Count reports the number of stored subscriptions. Test helper.
func (s *InMemory) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.emails)
}
