package repository

import "jobtrackr-backend/internal/resume/domain"

// ResumeRepository defines the interface for resume metadata access
type ResumeRepository interface {
	// Create creates a new resume record
	Create(res *domain.Resume) error

	// FindByID finds a resume by its ID
	FindByID(id string) (*domain.Resume, error)

	// FindByUserID lists a user's resumes, most recently updated first
	FindByUserID(userID string) ([]*domain.Resume, error)

	// Update updates an existing resume record
	Update(res *domain.Resume) error

	// Delete deletes a resume record by ID
	Delete(id string) error
}
