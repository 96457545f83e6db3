package store

import (
	"context"
	"database/sql"
	"fmt"
)

// PostgresStore persists newsletter subscriptions in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed subscription store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Subscribe(ctx context.Context, email string) error {
	query := `INSERT INTO newsletter_subscriptions (email) VALUES ($1) ON CONFLICT (email) DO NOTHING`
	if _, err := s.db.ExecContext(ctx, query, email); err != nil {
		return fmt.Errorf("subscribe to newsletter: %w", err)
	}
	return nil
}
