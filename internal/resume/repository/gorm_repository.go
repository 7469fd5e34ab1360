package repository

import (
	"errors"
	"time"

	"jobtrackr-backend/internal/resume/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormResumeRepository implements ResumeRepository using GORM
type gormResumeRepository struct {
	db *gorm.DB
}

// NewGormResumeRepository creates a new GORM-based ResumeRepository
func NewGormResumeRepository(db *gorm.DB) ResumeRepository {
	return &gormResumeRepository{db: db}
}

func (r *gormResumeRepository) Create(res *domain.Resume) error {
	if res.ID == "" {
		res.ID = uuid.New().String()
	}
	res.CreatedAt = time.Now()
	res.LastUpdated = time.Now()
	return r.db.Create(res).Error
}

func (r *gormResumeRepository) FindByID(id string) (*domain.Resume, error) {
	var res domain.Resume
	err := r.db.Where("id = ?", id).First(&res).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &res, nil
}

func (r *gormResumeRepository) FindByUserID(userID string) ([]*domain.Resume, error) {
	var resumes []*domain.Resume
	err := r.db.Where("user_id = ?", userID).
		Order("last_updated DESC").Find(&resumes).Error
	return resumes, err
}

func (r *gormResumeRepository) Update(res *domain.Resume) error {
	res.LastUpdated = time.Now()
	return r.db.Save(res).Error
}

func (r *gormResumeRepository) Delete(id string) error {
	return r.db.Delete(&domain.Resume{}, "id = ?", id).Error
}
