package usecase

import (
	"errors"
	"strings"

	"jobtrackr-backend/internal/resume/domain"
	"jobtrackr-backend/internal/resume/repository"
)

var (
	ErrResumeNotFound = errors.New("resume not found")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrInvalidRequest = errors.New("invalid resume request")
)

// resumeUsecase implements ResumeUsecase interface
type resumeUsecase struct {
	resumeRepo repository.ResumeRepository
}

// NewResumeUsecase creates a new instance of resumeUsecase
func NewResumeUsecase(resumeRepo repository.ResumeRepository) ResumeUsecase {
	return &resumeUsecase{resumeRepo: resumeRepo}
}

func (u *resumeUsecase) CreateResume(userID string, input ResumeInput) (*domain.Resume, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrInvalidRequest
	}

	version := input.Version
	if version == "" {
		version = "v1"
	}
	status := input.Status
	if status == "" {
		status = "draft"
	}

	res := &domain.Resume{
		UserID:      userID,
		Name:        strings.TrimSpace(input.Name),
		Version:     version,
		Status:      status,
		TailoredFor: input.TailoredFor,
		FileName:    input.FileName,
		FilePath:    input.FilePath,
		FileSize:    input.FileSize,
		Notes:       input.Notes,
	}

	if err := u.resumeRepo.Create(res); err != nil {
		return nil, err
	}

	return res, nil
}

func (u *resumeUsecase) ListResumes(userID string) ([]*domain.Resume, error) {
	return u.resumeRepo.FindByUserID(userID)
}

func (u *resumeUsecase) UpdateResume(userID, resumeID string, input ResumeInput) (*domain.Resume, error) {
	res, err := u.getOwnedResume(userID, resumeID)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(input.Name) == "" {
		return nil, ErrInvalidRequest
	}

	res.Name = strings.TrimSpace(input.Name)
	if input.Version != "" {
		res.Version = input.Version
	}
	if input.Status != "" {
		res.Status = input.Status
	}
	res.TailoredFor = input.TailoredFor
	res.FileName = input.FileName
	res.FilePath = input.FilePath
	res.FileSize = input.FileSize
	res.Notes = input.Notes

	if err := u.resumeRepo.Update(res); err != nil {
		return nil, err
	}

	return res, nil
}

func (u *resumeUsecase) DeleteResume(userID, resumeID string) error {
	res, err := u.getOwnedResume(userID, resumeID)
	if err != nil {
		return err
	}
	return u.resumeRepo.Delete(res.ID)
}

func (u *resumeUsecase) RecordUsage(userID, resumeID string) (*domain.Resume, error) {
	res, err := u.getOwnedResume(userID, resumeID)
	if err != nil {
		return nil, err
	}

	res.UsageCount++

	if err := u.resumeRepo.Update(res); err != nil {
		return nil, err
	}

	return res, nil
}

func (u *resumeUsecase) getOwnedResume(userID, resumeID string) (*domain.Resume, error) {
	res, err := u.resumeRepo.FindByID(resumeID)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, ErrResumeNotFound
	}
	if res.UserID != userID {
		return nil, ErrUnauthorized
	}
	return res, nil
}
