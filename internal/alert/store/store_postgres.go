package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"talentradar/internal/alert/models"
	"talentradar/pkg/platform/sentinel"
)

// PostgresStore persists alerts in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed alert store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const alertColumns = "id, user_id, keywords, location, frequency, is_active, last_sent_at, created_at"

func (s *PostgresStore) List(ctx context.Context, userID string) ([]*models.Alert, error) {
	query := `SELECT ` + alertColumns + ` FROM alerts WHERE user_id = $1 ORDER BY created_at ASC, id ASC`
	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list alerts: %w", err)
	}
	defer rows.Close()

	alerts := make([]*models.Alert, 0)
	for rows.Next() {
		a, err := scanAlert(rows)
		if err != nil {
			return nil, fmt.Errorf("scan alert: %w", err)
		}
		alerts = append(alerts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list alerts: %w", err)
	}
	return alerts, nil
}

func (s *PostgresStore) Get(ctx context.Context, id int) (*models.Alert, error) {
	query := `SELECT ` + alertColumns + ` FROM alerts WHERE id = $1`
	a, err := scanAlert(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("get alert: %w", err)
	}
	return a, nil
}

func (s *PostgresStore) Create(ctx context.Context, alert *models.Alert) error {
	query := `
		INSERT INTO alerts (user_id, keywords, location, frequency, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := s.db.QueryRowContext(ctx, query,
		alert.UserID,
		alert.Keywords,
		alert.Location,
		string(alert.Frequency),
		alert.IsActive,
		alert.CreatedAt,
	).Scan(&alert.ID)
	if err != nil {
		return fmt.Errorf("create alert: %w", err)
	}
	return nil
}

func (s *PostgresStore) Update(ctx context.Context, id int, update models.AlertUpdate) (*models.Alert, error) {
	sets := make([]string, 0, 4)
	args := make([]any, 0, 5)
	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, column+" = $"+strconv.Itoa(len(args)))
	}
	if update.Keywords != nil {
		add("keywords", *update.Keywords)
	}
	if update.Location != nil {
		add("location", *update.Location)
	}
	if update.Frequency != nil {
		add("frequency", string(*update.Frequency))
	}
	if update.IsActive != nil {
		add("is_active", *update.IsActive)
	}
	if len(sets) == 0 {
		// Nothing to change; return the current row.
		return s.Get(ctx, id)
	}

	args = append(args, id)
	query := `UPDATE alerts SET ` + strings.Join(sets, ", ") +
		` WHERE id = $` + strconv.Itoa(len(args)) +
		` RETURNING ` + alertColumns
	a, err := scanAlert(s.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("update alert: %w", err)
	}
	return a, nil
}

func (s *PostgresStore) Delete(ctx context.Context, id int) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM alerts WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete alert: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAlert(row rowScanner) (*models.Alert, error) {
	var a models.Alert
	var location sql.NullString
	var lastSentAt sql.NullTime
	err := row.Scan(&a.ID, &a.UserID, &a.Keywords, &location, &a.Frequency, &a.IsActive, &lastSentAt, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	if location.Valid {
		a.Location = &location.String
	}
	if lastSentAt.Valid {
		a.LastSentAt = &lastSentAt.Time
	}
	return &a, nil
}
