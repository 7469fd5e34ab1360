package reminder

import (
	"fmt"
	"log"
	"sync"

	jobrepo "jobtrackr-backend/internal/job/repository"
	"jobtrackr-backend/pkg/dateutil"
)

// Feed is one user's live reminder list. It mirrors the loaded snapshot in
// memory so mutations can reconcile locally, and remembers which reminders
// already fired a notification this session so re-loading never alerts twice.
type Feed struct {
	userID   string
	jobRepo  jobrepo.JobRepository
	clock    Clock
	notifier Notifier

	mu        sync.Mutex
	reminders []Reminder
	notified  map[string]struct{}
}

// NewFeed creates an empty feed for a user; call Load before reading it.
func NewFeed(userID string, jobRepo jobrepo.JobRepository, clock Clock, notifier Notifier) *Feed {
	return &Feed{
		userID:   userID,
		jobRepo:  jobRepo,
		clock:    clock,
		notifier: notifier,
		notified: make(map[string]struct{}),
	}
}

// Load refreshes the feed from the store and dispatches notifications for
// reminders due today that have not fired yet this session.
func (f *Feed) Load() error {
	apps, err := f.jobRepo.FindWithActiveReminders(f.userID)
	if err != nil {
		return err
	}

	now := f.clock.Now()
	due := FilterDue(apps, now)

	f.mu.Lock()
	f.reminders = due
	f.mu.Unlock()

	f.notifyDueToday(due)
	return nil
}

// Reminders returns the current snapshot, ascending by deadline.
func (f *Feed) Reminders() []Reminder {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Reminder, len(f.reminders))
	copy(out, f.reminders)
	return out
}

// DueCount counts the loaded reminders due today or overdue.
func (f *Feed) DueCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return CountDueNow(f.reminders, f.clock.Now())
}

// MarkComplete deactivates a reminder. On success the item is dropped from
// the in-memory list without a reload; on failure nothing changes locally.
// The write is scoped to the feed's own user.
func (f *Feed) MarkComplete(id string) error {
	if err := f.jobRepo.DeactivateReminder(f.userID, id); err != nil {
		return fmt.Errorf("complete reminder: %w", err)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	kept := f.reminders[:0]
	for _, r := range f.reminders {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	f.reminders = kept
	return nil
}

// Snooze pushes a reminder's deadline days forward from today and reloads
// the feed, since both the item's ordering and its due-window membership
// may have changed.
func (f *Feed) Snooze(id string, days int) error {
	if days <= 0 {
		days = DefaultSnoozeDays
	}

	newDeadline := dateutil.StartOfDay(dateutil.AddDays(f.clock.Now(), days))
	if err := f.jobRepo.SetDeadline(f.userID, id, newDeadline); err != nil {
		return fmt.Errorf("snooze reminder: %w", err)
	}

	return f.Load()
}

// notifyDueToday fires at most one alert per reminder per session for
// deadlines landing today.
func (f *Feed) notifyDueToday(due []Reminder) {
	now := f.clock.Now()

	for _, r := range due {
		if !dateutil.IsToday(r.Deadline, now) {
			continue
		}

		f.mu.Lock()
		_, seen := f.notified[r.ID]
		f.mu.Unlock()
		if seen {
			continue
		}

		if !f.notifier.Granted(f.userID) {
			continue
		}

		f.mu.Lock()
		f.notified[r.ID] = struct{}{}
		f.mu.Unlock()

		err := f.notifier.Notify(f.userID, Notification{
			Title: "JobTrackr Reminder",
			Body:  fmt.Sprintf("Follow up with %s for %s", r.Company, r.Position),
		})
		if err != nil {
			log.Printf("[Reminder] Failed to notify user %s for application %s: %v", f.userID, r.ID, err)
		}
	}
}

// Service hands out per-user feeds. A feed lives for the process lifetime,
// which bounds the notification de-duplication window the same way a
// browser session does.
type Service struct {
	jobRepo  jobrepo.JobRepository
	clock    Clock
	notifier Notifier

	mu    sync.Mutex
	feeds map[string]*Feed
}

func NewService(jobRepo jobrepo.JobRepository, clock Clock, notifier Notifier) *Service {
	return &Service{
		jobRepo:  jobRepo,
		clock:    clock,
		notifier: notifier,
		feeds:    make(map[string]*Feed),
	}
}

// FeedFor returns the user's feed, creating it on first use.
func (s *Service) FeedFor(userID string) *Feed {
	s.mu.Lock()
	defer s.mu.Unlock()
	feed, ok := s.feeds[userID]
	if !ok {
		feed = NewFeed(userID, s.jobRepo, s.clock, s.notifier)
		s.feeds[userID] = feed
	}
	return feed
}
