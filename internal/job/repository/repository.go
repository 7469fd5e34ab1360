package repository

import (
	"time"

	"jobtrackr-backend/internal/job/domain"
)

// JobRepository defines the interface for job application data access
type JobRepository interface {
	// Create creates a new job application
	Create(app *domain.JobApplication) error

	// FindByID finds an application by its ID
	FindByID(id string) (*domain.JobApplication, error)

	// FindByUserID lists a user's applications, most recently applied first
	FindByUserID(userID string) ([]*domain.JobApplication, error)

	// FindWithActiveReminders lists a user's applications that are reminder
	// candidates: reminder_active, deadline set, status non-terminal; ordered
	// ascending by deadline
	FindWithActiveReminders(userID string) ([]*domain.JobApplication, error)

	// Update updates an existing application
	Update(app *domain.JobApplication) error

	// DeactivateReminder clears the reminder_active flag (record retained).
	// Only touches the user's own application.
	DeactivateReminder(userID, id string) error

	// SetDeadline moves the follow-up reminder date. Only touches the
	// user's own application.
	SetDeadline(userID, id string, deadline time.Time) error

	// Delete deletes an application by ID
	Delete(id string) error
}
