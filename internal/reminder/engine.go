package reminder

import (
	"sort"
	"time"

	jobdomain "jobtrackr-backend/internal/job/domain"
	"jobtrackr-backend/pkg/dateutil"
)

// Upcoming reminders surface up to a week before their deadline
const dueWindow = 7 * 24 * time.Hour

// DefaultSnoozeDays is how far Snooze pushes a deadline when the caller
// does not say otherwise
const DefaultSnoozeDays = 2

// Reminder is the follow-up view of a job application
type Reminder struct {
	ID       string           `json:"id"`
	Company  string           `json:"company"`
	Position string           `json:"position"`
	Deadline time.Time        `json:"deadline"`
	Status   jobdomain.Status `json:"status"`
}

// Eligible reports whether an application can surface a reminder at all:
// the reminder flag is on, a deadline is set, and the application is not in
// a terminal status.
func Eligible(app *jobdomain.JobApplication) bool {
	return app.ReminderActive && app.Deadline != nil && !app.Status.Terminal()
}

// InDueWindow reports whether a deadline belongs in the reminder feed:
// already past, today, or strictly less than seven days away.
func InDueWindow(deadline, now time.Time) bool {
	if dateutil.IsPastDay(deadline, now) || dateutil.IsToday(deadline, now) {
		return true
	}
	return deadline.Sub(now) < dueWindow
}

// FilterDue reduces an application snapshot to the reminders inside the due
// window, ordered ascending by deadline.
func FilterDue(apps []*jobdomain.JobApplication, now time.Time) []Reminder {
	var due []Reminder
	for _, app := range apps {
		if !Eligible(app) {
			continue
		}
		if !InDueWindow(*app.Deadline, now) {
			continue
		}
		due = append(due, Reminder{
			ID:       app.ID,
			Company:  app.Company,
			Position: app.Position,
			Deadline: *app.Deadline,
			Status:   app.Status,
		})
	}

	sort.SliceStable(due, func(i, j int) bool {
		return due[i].Deadline.Before(due[j].Deadline)
	})

	return due
}

// CountDueNow counts the reminders that need attention now: deadline today
// or already past. Drives the sidebar badge.
func CountDueNow(reminders []Reminder, now time.Time) int {
	count := 0
	for _, r := range reminders {
		if dateutil.IsToday(r.Deadline, now) || dateutil.IsPastDay(r.Deadline, now) {
			count++
		}
	}
	return count
}
