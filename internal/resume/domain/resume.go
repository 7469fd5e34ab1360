package domain

import "time"

// Resume is the metadata record for one resume version. File bytes live
// elsewhere; the service only tracks the catalog.
type Resume struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      string    `gorm:"type:uuid;not null;index" json:"user_id"`
	Name        string    `gorm:"not null" json:"name"`
	Version     string    `gorm:"default:v1" json:"version"`
	Status      string    `gorm:"default:draft" json:"status"`
	TailoredFor string    `json:"tailored_for"`
	FileName    string    `json:"file_name"`
	FilePath    string    `json:"file_path"`
	FileSize    int64     `json:"file_size"`
	UsageCount  int       `gorm:"default:0" json:"usage_count"`
	Notes       string    `json:"notes"`
	LastUpdated time.Time `json:"last_updated"`
	CreatedAt   time.Time `json:"created_at"`
}

func (Resume) TableName() string {
	return "resumes"
}
