package domain

import "time"

// Category groups tasks into the to-do list tabs
type Category string

const (
	CategoryDaily     Category = "daily"
	CategoryJobSearch Category = "job_search"
	CategoryLearning  Category = "learning"
	CategoryPersonal  Category = "personal"
	CategoryOther     Category = "other"
)

// ValidCategory reports whether c is one of the known task categories
func ValidCategory(c Category) bool {
	switch c {
	case CategoryDaily, CategoryJobSearch, CategoryLearning, CategoryPersonal, CategoryOther:
		return true
	}
	return false
}

// Priority represents task priority level. Escalation only ever raises it.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Rank orders priorities so escalation can be checked as monotone
func (p Priority) Rank() int {
	switch p {
	case PriorityMedium:
		return 1
	case PriorityHigh:
		return 2
	default:
		return 0
	}
}

// Task represents a to-do item on one of the category lists
type Task struct {
	ID        string     `json:"id" gorm:"primaryKey"`
	UserID    string     `json:"user_id" gorm:"index;not null"`
	Category  Category   `json:"category" gorm:"default:daily"`
	TaskName  string     `json:"task_name" gorm:"not null"`
	Priority  Priority   `json:"priority" gorm:"default:medium"`
	StartDate *time.Time `json:"start_date,omitempty" gorm:"type:date"`
	DueDate   *time.Time `json:"due_date,omitempty" gorm:"type:date"`
	Completed bool       `json:"completed" gorm:"default:false"`
	Link      string     `json:"link,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
