package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is returned when a record does not exist. Handlers translate it
// to 404; a record that exists but is not visible to the viewer is a 403 and
// never reported through this error.
var ErrNotFound = errors.New("record not found")

// ErrDuplicateEmail is returned when a signup collides with an existing user.
var ErrDuplicateEmail = errors.New("email already exists")

type Repository struct {
	User        UserRepository
	Application ApplicationRepository
	Planned     PlannedRepository
	Settings    SettingsRepository
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{
		User:        UserRepository{db: db},
		Application: ApplicationRepository{db: db},
		Planned:     PlannedRepository{db: db},
		Settings:    SettingsRepository{db: db},
	}
}
