package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shaunfitzgarald/job-tracker/pkg/model"
)

type UserRepository struct {
	db *pgxpool.Pool
}

const userColumns = `id, email, password_hash, display_name, photo_url, share_stats, resumes, created_at, updated_at`

func scanUser(row pgx.Row) (model.User, error) {
	var u model.User
	err := row.Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.DisplayName, &u.PhotoURL,
		&u.ShareStats, &u.Resumes, &u.CreatedAt, &u.UpdatedAt,
	)
	return u, err
}

// Create inserts a new user and returns the new user's id.
func (r *UserRepository) Create(ctx context.Context, email, passwordHash, displayName string) (string, error) {
	id := uuid.New().String()
	const q = `
INSERT INTO users (id, email, password_hash, display_name, created_at, updated_at)
VALUES ($1, $2, $3, $4, now(), now())
`
	_, err := r.db.Exec(ctx, q, id, email, passwordHash, displayName)
	if err != nil {
		var pgErr *pgconn.PgError
		// PostgreSQL unique_violation code is "23505"
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return "", ErrDuplicateEmail
		}
		return "", fmt.Errorf("insert user: %w", err)
	}
	return id, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (model.User, error) {
	q := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	u, err := scanUser(r.db.QueryRow(ctx, q, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, ErrNotFound
		}
		return model.User{}, fmt.Errorf("scan user by email: %w", err)
	}
	return u, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (model.User, error) {
	q := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	u, err := scanUser(r.db.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, ErrNotFound
		}
		return model.User{}, fmt.Errorf("scan user by id: %w", err)
	}
	return u, nil
}

// ListSharingStats returns users who opted into the community directory.
func (r *UserRepository) ListSharingStats(ctx context.Context) ([]model.User, error) {
	q := `SELECT ` + userColumns + ` FROM users WHERE share_stats = TRUE ORDER BY display_name`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("query sharing users: %w", err)
	}
	defer rows.Close()

	var out []model.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user row: %w", err)
		}
		out = append(out, u)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("rows error: %w", rows.Err())
	}
	return out, nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, userID string, updates map[string]interface{}) error {
	validCols := map[string]bool{
		"display_name": true, "photo_url": true, "share_stats": true,
	}

	query := "UPDATE users SET updated_at = now()"
	args := []interface{}{}

	for col, val := range updates {
		if !validCols[col] {
			continue
		}
		args = append(args, val)
		query += fmt.Sprintf(", %s = $%d", col, len(args))
	}

	args = append(args, userID)
	query += fmt.Sprintf(" WHERE id = $%d", len(args))

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// AddResume appends resume metadata to the user's resume list.
func (r *UserRepository) AddResume(ctx context.Context, userID string, resume model.Resume) error {
	const q = `
UPDATE users SET resumes = resumes || $2::jsonb, updated_at = now()
WHERE id = $1
`
	tag, err := r.db.Exec(ctx, q, userID, resume)
	if err != nil {
		return fmt.Errorf("add resume: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
