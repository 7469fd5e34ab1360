package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	jobdomain "jobtrackr-backend/internal/job/domain"
	jobUsecase "jobtrackr-backend/internal/job/usecase"
	"jobtrackr-backend/internal/reminder"
	taskUsecase "jobtrackr-backend/internal/task/usecase"

	"github.com/gin-gonic/gin"
)

// fixedClock pins "now" for a test
type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

// recordingTaskUsecase captures the instant the escalation scan was asked to
// run against
type recordingTaskUsecase struct {
	taskUsecase.TaskUsecase

	escalatedAt time.Time
}

func (u *recordingTaskUsecase) EscalateUserTasks(userID string, now time.Time) (taskUsecase.EscalationResult, error) {
	u.escalatedAt = now
	return taskUsecase.EscalationResult{}, nil
}

// stubJobUsecase serves empty dashboard counters
type stubJobUsecase struct {
	jobUsecase.JobUsecase
}

func (u *stubJobUsecase) DashboardStats(userID string, recent int) (jobUsecase.Stats, []*jobdomain.JobApplication, error) {
	return jobUsecase.Stats{}, nil, nil
}

// emptyJobRepo backs a reminder feed with no applications
type emptyJobRepo struct{}

func (emptyJobRepo) Create(*jobdomain.JobApplication) error             { return nil }
func (emptyJobRepo) FindByID(string) (*jobdomain.JobApplication, error) { return nil, nil }
func (emptyJobRepo) FindByUserID(string) ([]*jobdomain.JobApplication, error) {
	return nil, nil
}
func (emptyJobRepo) FindWithActiveReminders(string) ([]*jobdomain.JobApplication, error) {
	return nil, nil
}
func (emptyJobRepo) Update(*jobdomain.JobApplication) error      { return nil }
func (emptyJobRepo) DeactivateReminder(string, string) error     { return nil }
func (emptyJobRepo) SetDeadline(string, string, time.Time) error { return nil }
func (emptyJobRepo) Delete(string) error                         { return nil }

// silentNotifier never has permission to push
type silentNotifier struct{}

func (silentNotifier) Granted(string) bool                        { return false }
func (silentNotifier) Notify(string, reminder.Notification) error { return nil }

func TestGetDashboard_EscalatesAtInjectedClock(t *testing.T) {
	gin.SetMode(gin.TestMode)

	clock := fixedClock{now: time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)}
	taskUc := &recordingTaskUsecase{}
	reminderSv := reminder.NewService(emptyJobRepo{}, clock, silentNotifier{})

	h := NewDashboardHandler(&stubJobUsecase{}, taskUc, reminderSv, clock)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/dashboard", nil)
	c.Set("userID", "u1")

	h.GetDashboard(c)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if !taskUc.escalatedAt.Equal(clock.now) {
		t.Fatalf("escalation scan must run at the injected clock: got %v, want %v", taskUc.escalatedAt, clock.now)
	}
}
