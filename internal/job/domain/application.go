package domain

import "time"

// Status tracks where a job application currently stands
type Status string

const (
	StatusApplied            Status = "applied"
	StatusInterviewScheduled Status = "interview_scheduled"
	StatusInterviewDone      Status = "interview_done"
	StatusOffer              Status = "offer"
	StatusRejected           Status = "rejected"
	StatusWithdrawn          Status = "withdrawn"
)

// ValidStatus reports whether s is one of the known application statuses
func ValidStatus(s Status) bool {
	switch s {
	case StatusApplied, StatusInterviewScheduled, StatusInterviewDone,
		StatusOffer, StatusRejected, StatusWithdrawn:
		return true
	}
	return false
}

// Terminal reports whether follow-up reminders are still meaningful for s.
// Once an application is rejected, withdrawn, or landed an offer there is
// nothing left to follow up on.
func (s Status) Terminal() bool {
	switch s {
	case StatusRejected, StatusWithdrawn, StatusOffer:
		return true
	}
	return false
}

// JobApplication represents one tracked application
type JobApplication struct {
	ID             string     `json:"id" gorm:"primaryKey"`
	UserID         string     `json:"user_id" gorm:"index;not null"`
	Company        string     `json:"company" gorm:"not null"`
	Position       string     `json:"position" gorm:"not null"`
	Status         Status     `json:"status" gorm:"default:applied"`
	AppliedDate    *time.Time `json:"applied_date,omitempty" gorm:"type:date"`
	Deadline       *time.Time `json:"deadline,omitempty" gorm:"type:date"` // follow-up reminder date
	ReminderActive bool       `json:"reminder_active" gorm:"default:false"`
	JobURL         string     `json:"job_url,omitempty"`
	HREmail        string     `json:"hr_email,omitempty"`
	Notes          string     `json:"notes,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}
