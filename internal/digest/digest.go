package digest

import (
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	authrepo "jobtrackr-backend/internal/auth/repository"
	jobrepo "jobtrackr-backend/internal/job/repository"
	"jobtrackr-backend/internal/reminder"
	settingsdomain "jobtrackr-backend/internal/settings/domain"
	settingsrepo "jobtrackr-backend/internal/settings/repository"
	taskdomain "jobtrackr-backend/internal/task/domain"
	taskrepo "jobtrackr-backend/internal/task/repository"
	"jobtrackr-backend/pkg/dateutil"

	"github.com/robfig/cron/v3"
)

// Sender delivers one digest mail
type Sender interface {
	Send(to, subject, body string) error
}

// Scheduler sends each user a morning digest of due follow-ups and overdue
// tasks at their configured local time. It ticks every minute and matches
// each user's daily_reminder_time in their own timezone.
type Scheduler struct {
	settingsRepo settingsrepo.SettingsRepository
	userRepo     authrepo.UserRepository
	jobRepo      jobrepo.JobRepository
	taskRepo     taskrepo.TaskRepository
	sender       Sender
	clock        reminder.Clock

	cron *cron.Cron

	mu       sync.Mutex
	lastSent map[string]string // userID -> local date of last digest
}

func NewScheduler(
	settingsRepo settingsrepo.SettingsRepository,
	userRepo authrepo.UserRepository,
	jobRepo jobrepo.JobRepository,
	taskRepo taskrepo.TaskRepository,
	sender Sender,
	clock reminder.Clock,
) *Scheduler {
	return &Scheduler{
		settingsRepo: settingsRepo,
		userRepo:     userRepo,
		jobRepo:      jobRepo,
		taskRepo:     taskRepo,
		sender:       sender,
		clock:        clock,
		lastSent:     make(map[string]string),
	}
}

// Start begins the minute tick. Call Stop on shutdown.
func (s *Scheduler) Start() error {
	s.cron = cron.New()
	if _, err := s.cron.AddFunc("* * * * *", s.Tick); err != nil {
		return fmt.Errorf("schedule digest: %w", err)
	}
	s.cron.Start()
	log.Println("[Digest] Scheduler started")
	return nil
}

// Stop halts the cron loop, waiting for a running tick to finish.
func (s *Scheduler) Stop() {
	if s.cron != nil {
		<-s.cron.Stop().Done()
	}
}

// Tick sends digests to every user whose configured reminder time matches
// the current minute in their timezone. Exported so the wiring and tests
// can fire it directly.
func (s *Scheduler) Tick() {
	rows, err := s.settingsRepo.FindEmailEnabled()
	if err != nil {
		log.Printf("[Digest] Failed to load settings: %v", err)
		return
	}

	now := s.clock.Now()
	for _, row := range rows {
		if err := s.maybeSend(row, now); err != nil {
			log.Printf("[Digest] Failed for user %s: %v", row.UserID, err)
		}
	}
}

func (s *Scheduler) maybeSend(settings *settingsdomain.UserSettings, now time.Time) error {
	loc, err := time.LoadLocation(settings.Timezone)
	if err != nil {
		loc = time.UTC
	}
	local := now.In(loc)

	if local.Format("15:04") != settings.DailyReminderTime {
		return nil
	}

	localDate := dateutil.DateOnly(local)
	s.mu.Lock()
	if s.lastSent[settings.UserID] == localDate {
		s.mu.Unlock()
		return nil
	}
	s.lastSent[settings.UserID] = localDate
	s.mu.Unlock()

	to := settings.NotificationEmail
	if to == "" {
		user, err := s.userRepo.FindByID(settings.UserID)
		if err != nil {
			return err
		}
		if user == nil {
			return nil
		}
		to = user.Email
	}

	body, empty, err := s.buildBody(settings.UserID, local)
	if err != nil {
		return err
	}
	if empty {
		return nil
	}

	return s.sender.Send(to, "Your JobTrackr daily digest", body)
}

// buildBody assembles the digest text. empty is true when the user has
// nothing due, in which case no mail should go out.
func (s *Scheduler) buildBody(userID string, now time.Time) (body string, empty bool, err error) {
	apps, err := s.jobRepo.FindWithActiveReminders(userID)
	if err != nil {
		return "", false, err
	}
	due := reminder.FilterDue(apps, now)

	tasks, err := s.taskRepo.FindIncomplete(userID)
	if err != nil {
		return "", false, err
	}
	var overdue []*taskdomain.Task
	for _, t := range tasks {
		if t.DueDate != nil && dateutil.IsPastDay(*t.DueDate, now) {
			overdue = append(overdue, t)
		}
	}

	if len(due) == 0 && len(overdue) == 0 {
		return "", true, nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Good morning! Here is your plan for %s.\n", now.Format("Monday, 2 January"))

	if len(due) > 0 {
		b.WriteString("\nFollow-ups due:\n")
		for _, r := range due {
			fmt.Fprintf(&b, "  - %s at %s (deadline %s)\n",
				r.Position, r.Company, r.Deadline.Format("2 Jan"))
		}
	}

	if len(overdue) > 0 {
		b.WriteString("\nOverdue tasks:\n")
		for _, t := range overdue {
			fmt.Fprintf(&b, "  - %s (due %s, %s priority)\n",
				t.TaskName, t.DueDate.Format("2 Jan"), t.Priority)
		}
	}

	b.WriteString("\nOpen JobTrackr to review them.\n")
	return b.String(), false, nil
}
