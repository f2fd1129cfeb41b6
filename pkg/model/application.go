package model

import (
	"time"
)

// Status values written by the form UI. Legacy records may carry free-form
// text, so aggregation matches on substrings instead of these exact values.
const (
	StatusNotAppliedYet      = "Not Applied Yet"
	StatusApplicationStarted = "Application Started"
	StatusApplied            = "Applied"
	StatusPhoneScreen        = "Phone Screen"
	StatusInterview          = "Interview"
	StatusTechnicalInterview = "Technical Interview"
	StatusOffer              = "Offer"
	StatusRejected           = "Rejected"
	StatusAccepted           = "Accepted"
	StatusDeclined           = "Declined"
)

// SharedUser identifies a user granted view/edit access to an application.
type SharedUser struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
}

type Application struct {
	ID                string       `json:"id" db:"id"`
	UserID            string       `json:"user_id" db:"user_id"`
	CompanyName       string       `json:"company_name" db:"company_name"`
	JobTitle          string       `json:"job_title" db:"job_title"`
	JobLocation       *string      `json:"job_location" db:"job_location"`
	JobType           *string      `json:"job_type" db:"job_type"`
	JobPostingURL     *string      `json:"job_posting_url" db:"job_posting_url"`
	Hiring            *string      `json:"hiring" db:"hiring"`
	ApplicationStatus string       `json:"application_status" db:"application_status"`
	ApplicationDate   *time.Time   `json:"application_date" db:"application_date"`
	InterviewDateTime *time.Time   `json:"interview_date_time" db:"interview_date_time"`
	InterviewType     *string      `json:"interview_type" db:"interview_type"`
	FollowUpDate      *time.Time   `json:"follow_up_date" db:"follow_up_date"`
	DateHeardBack     *time.Time   `json:"date_heard_back" db:"date_heard_back"`
	Outcome           *string      `json:"outcome" db:"outcome"`
	Salary            *string      `json:"salary" db:"salary"`
	SalaryRange       *string      `json:"salary_range" db:"salary_range"`
	ContactPerson     *string      `json:"contact_person" db:"contact_person"`
	ContactEmail      *string      `json:"contact_email" db:"contact_email"`
	Notes             *string      `json:"notes" db:"notes"`
	IsPublic          bool         `json:"is_public" db:"is_public"`
	SharedWith        []SharedUser `json:"shared_with" db:"shared_with"`
	CreatedAt         time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time    `json:"updated_at" db:"updated_at"`
}

type CreateApplicationReq struct {
	CompanyName       string     `json:"company_name" binding:"required"`
	JobTitle          string     `json:"job_title" binding:"required"`
	JobLocation       *string    `json:"job_location"`
	JobType           *string    `json:"job_type"`
	JobPostingURL     *string    `json:"job_posting_url"`
	Hiring            *string    `json:"hiring"`
	ApplicationStatus string     `json:"application_status"`
	ApplicationDate   *time.Time `json:"application_date"`
	InterviewDateTime *time.Time `json:"interview_date_time"`
	InterviewType     *string    `json:"interview_type"`
	FollowUpDate      *time.Time `json:"follow_up_date"`
	DateHeardBack     *time.Time `json:"date_heard_back"`
	Outcome           *string    `json:"outcome"`
	Salary            *string    `json:"salary"`
	SalaryRange       *string    `json:"salary_range"`
	ContactPerson     *string    `json:"contact_person"`
	ContactEmail      *string    `json:"contact_email"`
	Notes             *string    `json:"notes"`
	IsPublic          bool       `json:"is_public"`
}

type PatchApplicationReq struct {
	CompanyName       *string    `json:"company_name,omitempty"`
	JobTitle          *string    `json:"job_title,omitempty"`
	JobLocation       *string    `json:"job_location,omitempty"`
	JobType           *string    `json:"job_type,omitempty"`
	JobPostingURL     *string    `json:"job_posting_url,omitempty"`
	Hiring            *string    `json:"hiring,omitempty"`
	ApplicationStatus *string    `json:"application_status,omitempty"`
	ApplicationDate   *time.Time `json:"application_date,omitempty"`
	InterviewDateTime *time.Time `json:"interview_date_time,omitempty"`
	InterviewType     *string    `json:"interview_type,omitempty"`
	FollowUpDate      *time.Time `json:"follow_up_date,omitempty"`
	DateHeardBack     *time.Time `json:"date_heard_back,omitempty"`
	Outcome           *string    `json:"outcome,omitempty"`
	Salary            *string    `json:"salary,omitempty"`
	SalaryRange       *string    `json:"salary_range,omitempty"`
	ContactPerson     *string    `json:"contact_person,omitempty"`
	ContactEmail      *string    `json:"contact_email,omitempty"`
	Notes             *string    `json:"notes,omitempty"`
	IsPublic          *bool      `json:"is_public,omitempty"`
}

type ShareApplicationReq struct {
	Email string `json:"email" binding:"required,email"`
}
