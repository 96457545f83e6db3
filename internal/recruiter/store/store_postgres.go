package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"talentradar/internal/recruiter/models"
	"talentradar/pkg/platform/sentinel"
)

// PostgresStore persists recruiter profiles in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgres constructs a PostgreSQL-backed profile store.
func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const profileColumns = "id, user_id, company_name, industry, website_url, created_at"

// uniqueViolation is the PostgreSQL error code for unique constraint failures.
const uniqueViolation = "23505"

func (s *PostgresStore) GetByUserID(ctx context.Context, userID string) (*models.RecruiterProfile, error) {
	query := `SELECT ` + profileColumns + ` FROM recruiter_profiles WHERE user_id = $1`
	p, err := scanProfile(s.db.QueryRowContext(ctx, query, userID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("get recruiter profile: %w", err)
	}
	return p, nil
}

func (s *PostgresStore) Create(ctx context.Context, profile *models.RecruiterProfile) error {
	query := `
		INSERT INTO recruiter_profiles (user_id, company_name, industry, website_url, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := s.db.QueryRowContext(ctx, query,
		profile.UserID,
		profile.CompanyName,
		profile.Industry,
		profile.WebsiteURL,
		profile.CreatedAt,
	).Scan(&profile.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return sentinel.ErrConflict
		}
		return fmt.Errorf("create recruiter profile: %w", err)
	}
	return nil
}

func (s *PostgresStore) Update(ctx context.Context, userID string, update models.ProfileUpdate) (*models.RecruiterProfile, error) {
	sets := make([]string, 0, 3)
	args := make([]any, 0, 4)
	add := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, column+" = $"+strconv.Itoa(len(args)))
	}
	if update.CompanyName != nil {
		add("company_name", *update.CompanyName)
	}
	if update.Industry != nil {
		add("industry", *update.Industry)
	}
	if update.WebsiteURL != nil {
		add("website_url", *update.WebsiteURL)
	}
	if len(sets) == 0 {
		return s.GetByUserID(ctx, userID)
	}

	args = append(args, userID)
	query := `UPDATE recruiter_profiles SET ` + strings.Join(sets, ", ") +
		` WHERE user_id = $` + strconv.Itoa(len(args)) +
		` RETURNING ` + profileColumns
	p, err := scanProfile(s.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("update recruiter profile: %w", err)
	}
	return p, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProfile(row rowScanner) (*models.RecruiterProfile, error) {
	var p models.RecruiterProfile
	var industry, websiteURL sql.NullString
	err := row.Scan(&p.ID, &p.UserID, &p.CompanyName, &industry, &websiteURL, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	if industry.Valid {
		p.Industry = &industry.String
	}
	if websiteURL.Valid {
		p.WebsiteURL = &websiteURL.String
	}
	return &p, nil
}
