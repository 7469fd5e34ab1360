package usecase

import (
	"errors"
	"time"

	"jobtrackr-backend/internal/settings/domain"
	"jobtrackr-backend/internal/settings/repository"
)

var ErrInvalidSettings = errors.New("invalid settings")

// SettingsInput carries the editable preference fields
type SettingsInput struct {
	EmailNotifications bool   `json:"email_notifications"`
	NotificationEmail  string `json:"notification_email"`
	DailyReminderTime  string `json:"daily_reminder_time"`
	Timezone           string `json:"timezone"`
	Theme              string `json:"theme"`
}

// SettingsUsecase defines the interface for preference business logic
type SettingsUsecase interface {
	// GetSettings returns the user's preferences, falling back to defaults
	// when the user never saved any
	GetSettings(userID string) (*domain.UserSettings, error)

	// UpdateSettings validates and persists the user's preferences
	UpdateSettings(userID string, input SettingsInput) (*domain.UserSettings, error)
}

// settingsUsecase implements SettingsUsecase interface
type settingsUsecase struct {
	settingsRepo repository.SettingsRepository
}

// NewSettingsUsecase creates a new instance of settingsUsecase
func NewSettingsUsecase(settingsRepo repository.SettingsRepository) SettingsUsecase {
	return &settingsUsecase{settingsRepo: settingsRepo}
}

// DefaultSettings are the preferences assumed before a user saves any
func DefaultSettings(userID string) *domain.UserSettings {
	return &domain.UserSettings{
		UserID:             userID,
		EmailNotifications: true,
		DailyReminderTime:  "09:00",
		Timezone:           "UTC",
		Theme:              "system",
	}
}

func (u *settingsUsecase) GetSettings(userID string) (*domain.UserSettings, error) {
	settings, err := u.settingsRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		return DefaultSettings(userID), nil
	}
	return settings, nil
}

func (u *settingsUsecase) UpdateSettings(userID string, input SettingsInput) (*domain.UserSettings, error) {
	reminderTime := input.DailyReminderTime
	if reminderTime == "" {
		reminderTime = "09:00"
	}
	if _, err := time.Parse("15:04", reminderTime); err != nil {
		return nil, ErrInvalidSettings
	}

	timezone := input.Timezone
	if timezone == "" {
		timezone = "UTC"
	}
	if _, err := time.LoadLocation(timezone); err != nil {
		return nil, ErrInvalidSettings
	}

	theme := input.Theme
	if theme == "" {
		theme = "system"
	}
	switch theme {
	case "light", "dark", "system":
	default:
		return nil, ErrInvalidSettings
	}

	settings := &domain.UserSettings{
		UserID:             userID,
		EmailNotifications: input.EmailNotifications,
		NotificationEmail:  input.NotificationEmail,
		DailyReminderTime:  reminderTime,
		Timezone:           timezone,
		Theme:              theme,
	}

	if err := u.settingsRepo.Upsert(settings); err != nil {
		return nil, err
	}

	return settings, nil
}
