package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shaunfitzgarald/job-tracker/pkg/model"
)

type SettingsRepository struct {
	db *pgxpool.Pool
}

// Get returns the user's settings, or ErrNotFound when none were saved yet;
// callers fall back to the default daily goal.
func (r *SettingsRepository) Get(ctx context.Context, userID string) (model.UserSettings, error) {
	const q = `
SELECT user_id, daily_application_goal, created_at, updated_at
FROM user_settings WHERE user_id = $1
`
	var s model.UserSettings
	row := r.db.QueryRow(ctx, q, userID)
	if err := row.Scan(&s.UserID, &s.DailyApplicationGoal, &s.CreatedAt, &s.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.UserSettings{}, ErrNotFound
		}
		return model.UserSettings{}, fmt.Errorf("scan settings: %w", err)
	}
	return s, nil
}

// Upsert creates or updates the user's settings row.
func (r *SettingsRepository) Upsert(ctx context.Context, userID string, dailyGoal int) error {
	const q = `
INSERT INTO user_settings (user_id, daily_application_goal, created_at, updated_at)
VALUES ($1, $2, now(), now())
ON CONFLICT (user_id) DO UPDATE
SET daily_application_goal = EXCLUDED.daily_application_goal, updated_at = now()
`
	if _, err := r.db.Exec(ctx, q, userID, dailyGoal); err != nil {
		return fmt.Errorf("upsert settings: %w", err)
	}
	return nil
}
