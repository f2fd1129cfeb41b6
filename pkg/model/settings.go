package model

import "time"

type UserSettings struct {
	UserID               string    `json:"user_id" db:"user_id"`
	DailyApplicationGoal int       `json:"daily_application_goal" db:"daily_application_goal"`
	CreatedAt            time.Time `json:"created_at" db:"created_at"`
	UpdatedAt            time.Time `json:"updated_at" db:"updated_at"`
}

type UpdateSettingsReq struct {
	DailyApplicationGoal int `json:"daily_application_goal" binding:"required,min=1"`
}
