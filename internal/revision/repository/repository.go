package repository

import "jobtrackr-backend/internal/revision/domain"

// RevisionRepository defines the interface for revision data access
type RevisionRepository interface {
	// Create creates a new revision topic
	Create(rev *domain.Revision) error

	// FindByID finds a revision by its ID
	FindByID(id string) (*domain.Revision, error)

	// FindByUserID lists a user's revisions, soonest next_revision first
	FindByUserID(userID string) ([]*domain.Revision, error)

	// Update updates an existing revision
	Update(rev *domain.Revision) error

	// Delete deletes a revision by ID
	Delete(id string) error
}
