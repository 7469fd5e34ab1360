package domain

import "time"

// Revision is a study topic tracked on a spaced-repetition schedule
type Revision struct {
	ID           string     `gorm:"type:uuid;primaryKey" json:"id"`
	UserID       string     `gorm:"type:uuid;not null;index" json:"user_id"`
	Subject      string     `gorm:"not null" json:"subject"`
	Topic        string     `gorm:"not null" json:"topic"`
	Priority     string     `gorm:"default:medium" json:"priority"`
	NextRevision time.Time  `gorm:"type:date;not null" json:"next_revision"`
	LastRevised  *time.Time `gorm:"type:date" json:"last_revised"`
	TimesRevised int        `gorm:"default:0" json:"times_revised"`
	Notes        string     `json:"notes"`
	Link         string     `json:"link"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (Revision) TableName() string {
	return "revisions"
}
