package usecase

import (
	"jobtrackr-backend/internal/job/domain"
)

// JobInput carries the fields of the add/edit application form
type JobInput struct {
	Company        string  `json:"company" binding:"required"`
	Position       string  `json:"position" binding:"required"`
	Status         string  `json:"status"`
	AppliedDate    *string `json:"applied_date"`
	Deadline       *string `json:"deadline"`
	ReminderActive bool    `json:"reminder_active"`
	JobURL         string  `json:"job_url"`
	HREmail        string  `json:"hr_email"`
	Notes          string  `json:"notes"`
}

// Stats are the dashboard counters
type Stats struct {
	TotalApplied int `json:"total_applied"`
	Pending      int `json:"pending"`
	Interviews   int `json:"interviews"`
	Rejected     int `json:"rejected"`
}

// JobUsecase defines the interface for job application business logic
type JobUsecase interface {
	CreateJob(userID string, input JobInput) (*domain.JobApplication, error)
	// ListJobs returns the user's applications filtered by status ("" or "all"
	// for no filter) and fuzzy-matched against a company/position query.
	ListJobs(userID, statusFilter, query string) ([]*domain.JobApplication, error)
	UpdateJob(userID, jobID string, input JobInput) (*domain.JobApplication, error)
	DeleteJob(userID, jobID string) error

	// DashboardStats counts applications per dashboard tile, and returns the
	// most recently created ones.
	DashboardStats(userID string, recent int) (Stats, []*domain.JobApplication, error)
}
