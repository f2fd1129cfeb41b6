package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shaunfitzgarald/job-tracker/pkg/model"
)

type PlannedRepository struct {
	db *pgxpool.Pool
}

const plannedColumns = `
id, user_id, company_name, job_title, job_url, priority, notes, planned_date,
status, applied_date, created_at, updated_at`

func scanPlanned(row pgx.Row) (model.PlannedApplication, error) {
	var p model.PlannedApplication
	err := row.Scan(
		&p.ID, &p.UserID, &p.CompanyName, &p.JobTitle, &p.JobURL, &p.Priority,
		&p.Notes, &p.PlannedDate, &p.Status, &p.AppliedDate, &p.CreatedAt,
		&p.UpdatedAt,
	)
	return p, err
}

func (r *PlannedRepository) collect(rows pgx.Rows) ([]model.PlannedApplication, error) {
	defer rows.Close()
	var out []model.PlannedApplication
	for rows.Next() {
		p, err := scanPlanned(rows)
		if err != nil {
			return nil, fmt.Errorf("scan planned row: %w", err)
		}
		out = append(out, p)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("rows error: %w", rows.Err())
	}
	return out, nil
}

func (r *PlannedRepository) Create(ctx context.Context, p *model.PlannedApplication) (string, error) {
	id := uuid.New().String()
	const q = `
INSERT INTO planned_applications (
	id, user_id, company_name, job_title, job_url, priority, notes,
	planned_date, status, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now(), now())
`
	_, err := r.db.Exec(ctx, q,
		id, p.UserID, p.CompanyName, p.JobTitle, p.JobURL, p.Priority,
		p.Notes, p.PlannedDate, model.PlannedStatusPlanned,
	)
	if err != nil {
		return "", fmt.Errorf("insert planned application: %w", err)
	}
	return id, nil
}

func (r *PlannedRepository) GetByID(ctx context.Context, id string) (model.PlannedApplication, error) {
	q := `SELECT ` + plannedColumns + ` FROM planned_applications WHERE id = $1`
	p, err := scanPlanned(r.db.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.PlannedApplication{}, ErrNotFound
		}
		return model.PlannedApplication{}, fmt.Errorf("scan planned application: %w", err)
	}
	return p, nil
}

func (r *PlannedRepository) ListByUser(ctx context.Context, userID string) ([]model.PlannedApplication, error) {
	q := `SELECT ` + plannedColumns + ` FROM planned_applications
WHERE user_id = $1 ORDER BY planned_date ASC NULLS FIRST, created_at ASC`
	rows, err := r.db.Query(ctx, q, userID)
	if err != nil {
		return nil, fmt.Errorf("query planned applications: %w", err)
	}
	return r.collect(rows)
}

// ListAppliedByUser returns the user's applied history, newest first.
func (r *PlannedRepository) ListAppliedByUser(ctx context.Context, userID string) ([]model.PlannedApplication, error) {
	q := `SELECT ` + plannedColumns + ` FROM planned_applications
WHERE user_id = $1 AND status = 'applied' ORDER BY applied_date DESC NULLS LAST`
	rows, err := r.db.Query(ctx, q, userID)
	if err != nil {
		return nil, fmt.Errorf("query applied history: %w", err)
	}
	return r.collect(rows)
}

func (r *PlannedRepository) Update(ctx context.Context, id string, updates map[string]interface{}) error {
	validCols := map[string]bool{
		"company_name": true, "job_title": true, "job_url": true,
		"priority": true, "notes": true, "planned_date": true,
	}

	query := "UPDATE planned_applications SET updated_at = now()"
	args := []interface{}{}

	for col, val := range updates {
		if !validCols[col] {
			continue
		}
		args = append(args, val)
		query += fmt.Sprintf(", %s = $%d", col, len(args))
	}

	args = append(args, id)
	query += fmt.Sprintf(" WHERE id = $%d", len(args))

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update planned application: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// MarkApplied flips the record to applied and stamps the applied date. The
// transition is one-way; nothing moves a record back to planned.
func (r *PlannedRepository) MarkApplied(ctx context.Context, id string, appliedAt time.Time) error {
	const q = `
UPDATE planned_applications
SET status = 'applied', applied_date = $2, updated_at = now()
WHERE id = $1
`
	tag, err := r.db.Exec(ctx, q, id, appliedAt)
	if err != nil {
		return fmt.Errorf("mark applied: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdatePlannedDate rewrites a single record's planned date; used once per
// record during auto-distribution so one failure never blocks the rest.
func (r *PlannedRepository) UpdatePlannedDate(ctx context.Context, id string, date time.Time) error {
	const q = `
UPDATE planned_applications SET planned_date = $2, updated_at = now()
WHERE id = $1
`
	tag, err := r.db.Exec(ctx, q, id, date)
	if err != nil {
		return fmt.Errorf("update planned date: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PlannedRepository) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM planned_applications WHERE id = $1`
	tag, err := r.db.Exec(ctx, q, id)
	if err != nil {
		return fmt.Errorf("delete planned application: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
