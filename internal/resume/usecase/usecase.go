package usecase

import (
	"jobtrackr-backend/internal/resume/domain"
)

// ResumeInput carries the fields of the add/edit resume form
type ResumeInput struct {
	Name        string `json:"name" binding:"required"`
	Version     string `json:"version"`
	Status      string `json:"status"`
	TailoredFor string `json:"tailored_for"`
	FileName    string `json:"file_name"`
	FilePath    string `json:"file_path"`
	FileSize    int64  `json:"file_size"`
	Notes       string `json:"notes"`
}

// ResumeUsecase defines the interface for resume catalog business logic
type ResumeUsecase interface {
	CreateResume(userID string, input ResumeInput) (*domain.Resume, error)
	ListResumes(userID string) ([]*domain.Resume, error)
	UpdateResume(userID, resumeID string, input ResumeInput) (*domain.Resume, error)
	DeleteResume(userID, resumeID string) error

	// RecordUsage notes that a resume version was sent with an application
	RecordUsage(userID, resumeID string) (*domain.Resume, error)
}
