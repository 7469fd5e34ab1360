package repository

import (
	"errors"
	"time"

	"jobtrackr-backend/internal/revision/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormRevisionRepository implements RevisionRepository using GORM
type gormRevisionRepository struct {
	db *gorm.DB
}

// NewGormRevisionRepository creates a new GORM-based RevisionRepository
func NewGormRevisionRepository(db *gorm.DB) RevisionRepository {
	return &gormRevisionRepository{db: db}
}

func (r *gormRevisionRepository) Create(rev *domain.Revision) error {
	if rev.ID == "" {
		rev.ID = uuid.New().String()
	}
	rev.CreatedAt = time.Now()
	rev.UpdatedAt = time.Now()
	return r.db.Create(rev).Error
}

func (r *gormRevisionRepository) FindByID(id string) (*domain.Revision, error) {
	var rev domain.Revision
	err := r.db.Where("id = ?", id).First(&rev).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rev, nil
}

func (r *gormRevisionRepository) FindByUserID(userID string) ([]*domain.Revision, error) {
	var revs []*domain.Revision
	err := r.db.Where("user_id = ?", userID).
		Order("next_revision ASC").Find(&revs).Error
	return revs, err
}

func (r *gormRevisionRepository) Update(rev *domain.Revision) error {
	rev.UpdatedAt = time.Now()
	return r.db.Save(rev).Error
}

func (r *gormRevisionRepository) Delete(id string) error {
	return r.db.Delete(&domain.Revision{}, "id = ?", id).Error
}
