package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/shaunfitzgarald/job-tracker/pkg/model"
)

type ApplicationRepository struct {
	db *pgxpool.Pool
}

const applicationColumns = `
id, user_id, company_name, job_title, job_location, job_type, job_posting_url,
hiring, application_status, application_date, interview_date_time,
interview_type, follow_up_date, date_heard_back, outcome, salary,
salary_range, contact_person, contact_email, notes, is_public, shared_with,
created_at, updated_at`

func scanApplication(row pgx.Row) (model.Application, error) {
	var a model.Application
	err := row.Scan(
		&a.ID, &a.UserID, &a.CompanyName, &a.JobTitle, &a.JobLocation,
		&a.JobType, &a.JobPostingURL, &a.Hiring, &a.ApplicationStatus,
		&a.ApplicationDate, &a.InterviewDateTime, &a.InterviewType,
		&a.FollowUpDate, &a.DateHeardBack, &a.Outcome, &a.Salary,
		&a.SalaryRange, &a.ContactPerson, &a.ContactEmail, &a.Notes,
		&a.IsPublic, &a.SharedWith, &a.CreatedAt, &a.UpdatedAt,
	)
	return a, err
}

func (r *ApplicationRepository) collect(rows pgx.Rows) ([]model.Application, error) {
	defer rows.Close()
	var out []model.Application
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("scan application row: %w", err)
		}
		out = append(out, a)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("rows error: %w", rows.Err())
	}
	return out, nil
}

func (r *ApplicationRepository) Create(ctx context.Context, a *model.Application) (string, error) {
	id := uuid.New().String()
	const q = `
INSERT INTO applications (
	id, user_id, company_name, job_title, job_location, job_type,
	job_posting_url, hiring, application_status, application_date,
	interview_date_time, interview_type, follow_up_date, date_heard_back,
	outcome, salary, salary_range, contact_person, contact_email, notes,
	is_public, shared_with, created_at, updated_at
) VALUES (
	$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16,
	$17, $18, $19, $20, $21, '[]'::jsonb, now(), now()
)
`
	_, err := r.db.Exec(ctx, q,
		id, a.UserID, a.CompanyName, a.JobTitle, a.JobLocation, a.JobType,
		a.JobPostingURL, a.Hiring, a.ApplicationStatus, a.ApplicationDate,
		a.InterviewDateTime, a.InterviewType, a.FollowUpDate, a.DateHeardBack,
		a.Outcome, a.Salary, a.SalaryRange, a.ContactPerson, a.ContactEmail,
		a.Notes, a.IsPublic,
	)
	if err != nil {
		return "", fmt.Errorf("insert application: %w", err)
	}
	return id, nil
}

func (r *ApplicationRepository) GetByID(ctx context.Context, id string) (model.Application, error) {
	q := `SELECT ` + applicationColumns + ` FROM applications WHERE id = $1`
	a, err := scanApplication(r.db.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Application{}, ErrNotFound
		}
		return model.Application{}, fmt.Errorf("scan application: %w", err)
	}
	return a, nil
}

func (r *ApplicationRepository) ListByUser(ctx context.Context, userID string) ([]model.Application, error) {
	q := `SELECT ` + applicationColumns + ` FROM applications WHERE user_id = $1 ORDER BY application_date DESC NULLS LAST`
	rows, err := r.db.Query(ctx, q, userID)
	if err != nil {
		return nil, fmt.Errorf("query applications: %w", err)
	}
	return r.collect(rows)
}

// ListPublic returns every record opted into community visibility, across
// all users.
func (r *ApplicationRepository) ListPublic(ctx context.Context) ([]model.Application, error) {
	q := `SELECT ` + applicationColumns + ` FROM applications WHERE is_public = TRUE`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("query public applications: %w", err)
	}
	return r.collect(rows)
}

// ListSharedWith returns records another user explicitly shared with viewerID.
func (r *ApplicationRepository) ListSharedWith(ctx context.Context, viewerID string) ([]model.Application, error) {
	q := `SELECT ` + applicationColumns + ` FROM applications
WHERE user_id <> $1
  AND EXISTS (
	SELECT 1 FROM jsonb_array_elements(shared_with) AS s
	WHERE s->>'id' = $1
)
ORDER BY application_date DESC NULLS LAST`
	rows, err := r.db.Query(ctx, q, viewerID)
	if err != nil {
		return nil, fmt.Errorf("query shared applications: %w", err)
	}
	return r.collect(rows)
}

func (r *ApplicationRepository) Update(ctx context.Context, id string, updates map[string]interface{}) error {
	validCols := map[string]bool{
		"company_name": true, "job_title": true, "job_location": true,
		"job_type": true, "job_posting_url": true, "hiring": true,
		"application_status": true, "application_date": true,
		"interview_date_time": true, "interview_type": true,
		"follow_up_date": true, "date_heard_back": true, "outcome": true,
		"salary": true, "salary_range": true, "contact_person": true,
		"contact_email": true, "notes": true, "is_public": true,
	}

	query := "UPDATE applications SET updated_at = now()"
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
		return fmt.Errorf("update application: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// SetSharedWith replaces the record's share list.
func (r *ApplicationRepository) SetSharedWith(ctx context.Context, id string, shared []model.SharedUser) error {
	if shared == nil {
		shared = []model.SharedUser{}
	}
	const q = `UPDATE applications SET shared_with = $2, updated_at = now() WHERE id = $1`
	tag, err := r.db.Exec(ctx, q, id, shared)
	if err != nil {
		return fmt.Errorf("update shared_with: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ApplicationRepository) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM applications WHERE id = $1`
	tag, err := r.db.Exec(ctx, q, id)
	if err != nil {
		return fmt.Errorf("delete application: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
