package repository

import "jobtrackr-backend/internal/settings/domain"

// SettingsRepository defines the interface for user settings access
type SettingsRepository interface {
	// FindByUserID returns the user's settings row, or nil when none exists
	FindByUserID(userID string) (*domain.UserSettings, error)

	// Upsert inserts or replaces the user's settings row
	Upsert(settings *domain.UserSettings) error

	// FindEmailEnabled lists settings rows with email notifications on,
	// used by the daily digest scheduler
	FindEmailEnabled() ([]*domain.UserSettings, error)
}
