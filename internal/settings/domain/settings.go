package domain

import "time"

// UserSettings holds a user's notification and display preferences.
// One row per user.
type UserSettings struct {
	ID                 string    `gorm:"type:uuid;primaryKey" json:"id"`
	UserID             string    `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	EmailNotifications bool      `gorm:"default:true" json:"email_notifications"`
	NotificationEmail  string    `json:"notification_email"`
	DailyReminderTime  string    `gorm:"default:09:00" json:"daily_reminder_time"`
	Timezone           string    `gorm:"default:UTC" json:"timezone"`
	Theme              string    `gorm:"default:system" json:"theme"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func (UserSettings) TableName() string {
	return "user_settings"
}
