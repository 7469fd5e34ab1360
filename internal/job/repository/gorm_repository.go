package repository

import (
	"errors"
	"time"

	"jobtrackr-backend/internal/job/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormJobRepository implements JobRepository using GORM
type gormJobRepository struct {
	db *gorm.DB
}

// NewGormJobRepository creates a new GORM-based JobRepository
func NewGormJobRepository(db *gorm.DB) JobRepository {
	return &gormJobRepository{db: db}
}

func (r *gormJobRepository) Create(app *domain.JobApplication) error {
	if app.ID == "" {
		app.ID = uuid.New().String()
	}
	app.CreatedAt = time.Now()
	app.UpdatedAt = time.Now()
	return r.db.Create(app).Error
}

func (r *gormJobRepository) FindByID(id string) (*domain.JobApplication, error) {
	var app domain.JobApplication
	err := r.db.Where("id = ?", id).First(&app).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &app, nil
}

func (r *gormJobRepository) FindByUserID(userID string) ([]*domain.JobApplication, error) {
	var apps []*domain.JobApplication
	err := r.db.Where("user_id = ?", userID).
		Order("CASE WHEN applied_date IS NULL THEN 1 ELSE 0 END, applied_date DESC, created_at DESC").
		Find(&apps).Error
	return apps, err
}

func (r *gormJobRepository) FindWithActiveReminders(userID string) ([]*domain.JobApplication, error) {
	var apps []*domain.JobApplication
	err := r.db.Where(
		"user_id = ? AND reminder_active = ? AND deadline IS NOT NULL AND status NOT IN ?",
		userID, true,
		[]domain.Status{domain.StatusRejected, domain.StatusWithdrawn, domain.StatusOffer},
	).Order("deadline ASC").Find(&apps).Error
	return apps, err
}

func (r *gormJobRepository) Update(app *domain.JobApplication) error {
	app.UpdatedAt = time.Now()
	return r.db.Save(app).Error
}

func (r *gormJobRepository) DeactivateReminder(userID, id string) error {
	result := r.db.Model(&domain.JobApplication{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]interface{}{
			"reminder_active": false,
			"updated_at":      time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *gormJobRepository) SetDeadline(userID, id string, deadline time.Time) error {
	result := r.db.Model(&domain.JobApplication{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]interface{}{
			"deadline":   deadline,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *gormJobRepository) Delete(id string) error {
	return r.db.Delete(&domain.JobApplication{}, "id = ?", id).Error
}
