package repository

import (
	"errors"
	"time"

	"jobtrackr-backend/internal/settings/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// gormSettingsRepository implements SettingsRepository using GORM
type gormSettingsRepository struct {
	db *gorm.DB
}

// NewGormSettingsRepository creates a new GORM-based SettingsRepository
func NewGormSettingsRepository(db *gorm.DB) SettingsRepository {
	return &gormSettingsRepository{db: db}
}

func (r *gormSettingsRepository) FindByUserID(userID string) (*domain.UserSettings, error) {
	var settings domain.UserSettings
	err := r.db.Where("user_id = ?", userID).First(&settings).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &settings, nil
}

// Upsert keeps one row per user: INSERT ... ON CONFLICT (user_id) DO UPDATE
func (r *gormSettingsRepository) Upsert(settings *domain.UserSettings) error {
	if settings.ID == "" {
		settings.ID = uuid.New().String()
	}
	settings.UpdatedAt = time.Now()

	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"email_notifications", "notification_email",
			"daily_reminder_time", "timezone", "theme", "updated_at",
		}),
	}).Create(settings).Error
}

func (r *gormSettingsRepository) FindEmailEnabled() ([]*domain.UserSettings, error) {
	var rows []*domain.UserSettings
	err := r.db.Where("email_notifications = ?", true).Find(&rows).Error
	return rows, err
}
