package usecase

import (
	"jobtrackr-backend/internal/revision/domain"
)

// RevisionInput carries the fields of the add/edit revision form
type RevisionInput struct {
	Subject      string  `json:"subject" binding:"required"`
	Topic        string  `json:"topic" binding:"required"`
	Priority     string  `json:"priority"`
	NextRevision *string `json:"next_revision"`
	Notes        string  `json:"notes"`
	Link         string  `json:"link"`
}

// RevisionUsecase defines the interface for spaced-repetition business logic
type RevisionUsecase interface {
	CreateRevision(userID string, input RevisionInput) (*domain.Revision, error)
	ListRevisions(userID string) ([]*domain.Revision, error)
	UpdateRevision(userID, revisionID string, input RevisionInput) (*domain.Revision, error)
	DeleteRevision(userID, revisionID string) error

	// MarkRevised records a completed study pass: times_revised is bumped,
	// last_revised set to today, and next_revision advanced by an interval
	// that grows with the revision count.
	MarkRevised(userID, revisionID string) (*domain.Revision, error)
}
