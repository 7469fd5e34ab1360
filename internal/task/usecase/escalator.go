package usecase

import (
	"fmt"
	"time"

	"jobtrackr-backend/internal/task/domain"
	"jobtrackr-backend/pkg/dateutil"
)

// PriorityUpdate is one priority write the caller must apply
type PriorityUpdate struct {
	TaskID      string          `json:"task_id"`
	NewPriority domain.Priority `json:"new_priority"`
}

// EscalationResult is the outcome of a single escalation pass
type EscalationResult struct {
	Updates          []PriorityUpdate `json:"updates"`
	OverdueHighCount int              `json:"overdue_high_count"`
}

// Escalate scans incomplete tasks and raises priorities driven by their due
// dates, then counts how many high-priority tasks are currently overdue.
// Calendar dates are compared with time-of-day stripped; a task due today is
// neither late nor overdue. Tasks without a due date are skipped.
//
// The count is recomputed over the updated snapshot, so tasks escalated to
// high in this same pass are included. Running Escalate again on the same day
// is a no-op on priorities already raised.
func Escalate(tasks []*domain.Task, today time.Time) EscalationResult {
	escalated := make(map[string]domain.Priority)

	var updates []PriorityUpdate
	for _, t := range tasks {
		if t.Completed || t.DueDate == nil {
			continue
		}

		switch t.Priority {
		case domain.PriorityLow:
			if dateutil.IsPastDay(*t.DueDate, today) {
				updates = append(updates, PriorityUpdate{TaskID: t.ID, NewPriority: domain.PriorityMedium})
				escalated[t.ID] = domain.PriorityMedium
			}
		case domain.PriorityMedium:
			// today >= dueDate + 1 day
			dayAfterDue := dateutil.AddDays(dateutil.StartOfDay(*t.DueDate), 1)
			if !dateutil.StartOfDay(today).Before(dayAfterDue) {
				updates = append(updates, PriorityUpdate{TaskID: t.ID, NewPriority: domain.PriorityHigh})
				escalated[t.ID] = domain.PriorityHigh
			}
		}
	}

	// Second pass over the escalated snapshot, not the stored priorities
	count := 0
	for _, t := range tasks {
		if t.Completed || t.DueDate == nil {
			continue
		}
		priority := t.Priority
		if p, ok := escalated[t.ID]; ok {
			priority = p
		}
		if priority == domain.PriorityHigh && dateutil.IsPastDay(*t.DueDate, today) {
			count++
		}
	}

	return EscalationResult{Updates: updates, OverdueHighCount: count}
}

// OverdueAlertMessage renders the blocking alert shown when overdue
// high-priority tasks exist. Returns "" when there is nothing to report.
func OverdueAlertMessage(count int) string {
	switch {
	case count <= 0:
		return ""
	case count == 1:
		return "You have 1 high priority task overdue!"
	default:
		return fmt.Sprintf("You have %d high priority tasks overdue!", count)
	}
}
