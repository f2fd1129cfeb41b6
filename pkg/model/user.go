package model

import "time"

// Resume points at an externally hosted file; the service stores metadata
// only, never the bytes.
type Resume struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	FileName       string    `json:"file_name"`
	StoredFileName string    `json:"stored_file_name"`
	URL            string    `json:"url"`
	UploadedAt     time.Time `json:"uploaded_at"`
}

type User struct {
	ID           string    `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	DisplayName  string    `json:"display_name" db:"display_name"`
	PhotoURL     *string   `json:"photo_url" db:"photo_url"`
	ShareStats   bool      `json:"share_stats" db:"share_stats"`
	Resumes      []Resume  `json:"resumes" db:"resumes"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

type SignUpReq struct {
	DisplayName string `json:"display_name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
}

type LoginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type TokenRes struct {
	AccessToken string  `json:"access_token"`
	ExpiresAt   int64   `json:"expires_at"` // unix seconds
	User        UserRes `json:"user"`
}

type UserRes struct {
	ID          string  `json:"id"`
	Email       string  `json:"email"`
	DisplayName string  `json:"display_name"`
	PhotoURL    *string `json:"photo_url"`
	ShareStats  bool    `json:"share_stats"`
}

func (u User) Public() UserRes {
	return UserRes{
		ID:          u.ID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		PhotoURL:    u.PhotoURL,
		ShareStats:  u.ShareStats,
	}
}

type UpdateProfileReq struct {
	DisplayName *string `json:"display_name,omitempty"`
	PhotoURL    *string `json:"photo_url,omitempty"`
	ShareStats  *bool   `json:"share_stats,omitempty"`
}

type AddResumeReq struct {
	Title          string `json:"title" binding:"required"`
	FileName       string `json:"file_name" binding:"required"`
	StoredFileName string `json:"stored_file_name"`
	URL            string `json:"url" binding:"required,url"`
}
