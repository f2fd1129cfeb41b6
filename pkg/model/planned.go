package model

import "time"

type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

type PlannedStatus string

const (
	PlannedStatusPlanned PlannedStatus = "planned"
	PlannedStatusApplied PlannedStatus = "applied"
	PlannedStatusSkipped PlannedStatus = "skipped"
)

type PlannedApplication struct {
	ID          string        `json:"id" db:"id"`
	UserID      string        `json:"user_id" db:"user_id"`
	CompanyName string        `json:"company_name" db:"company_name"`
	JobTitle    string        `json:"job_title" db:"job_title"`
	JobURL      *string       `json:"job_url" db:"job_url"`
	Priority    Priority      `json:"priority" db:"priority"`
	Notes       *string       `json:"notes" db:"notes"`
	PlannedDate *time.Time    `json:"planned_date" db:"planned_date"`
	Status      PlannedStatus `json:"status" db:"status"`
	AppliedDate *time.Time    `json:"applied_date" db:"applied_date"`
	CreatedAt   time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at" db:"updated_at"`
}

type CreatePlannedReq struct {
	CompanyName string     `json:"company_name" binding:"required"`
	JobTitle    string     `json:"job_title" binding:"required"`
	JobURL      *string    `json:"job_url"`
	Priority    Priority   `json:"priority"`
	PlannedDate *time.Time `json:"planned_date"`
	Notes       *string    `json:"notes"`
}

type PatchPlannedReq struct {
	CompanyName *string    `json:"company_name,omitempty"`
	JobTitle    *string    `json:"job_title,omitempty"`
	JobURL      *string    `json:"job_url,omitempty"`
	Priority    *Priority  `json:"priority,omitempty"`
	PlannedDate *time.Time `json:"planned_date,omitempty"`
	Notes       *string    `json:"notes,omitempty"`
}
