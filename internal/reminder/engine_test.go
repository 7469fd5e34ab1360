package reminder

import (
	"testing"
	"time"

	jobdomain "jobtrackr-backend/internal/job/domain"
)

func datePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func app(id string, status jobdomain.Status, deadline *time.Time, active bool) *jobdomain.JobApplication {
	return &jobdomain.JobApplication{
		ID:             id,
		UserID:         "u1",
		Company:        "Acme",
		Position:       "Engineer",
		Status:         status,
		Deadline:       deadline,
		ReminderActive: active,
	}
}

func TestEligible(t *testing.T) {
	t.Parallel()

	deadline := datePtr(2026, time.March, 12)

	if !Eligible(app("a", jobdomain.StatusApplied, deadline, true)) {
		t.Fatal("active applied application with deadline must be eligible")
	}
	if Eligible(app("b", jobdomain.StatusApplied, deadline, false)) {
		t.Fatal("inactive reminder must not be eligible")
	}
	if Eligible(app("c", jobdomain.StatusApplied, nil, true)) {
		t.Fatal("missing deadline must not be eligible")
	}
	for _, status := range []jobdomain.Status{jobdomain.StatusRejected, jobdomain.StatusWithdrawn, jobdomain.StatusOffer} {
		if Eligible(app("d", status, deadline, true)) {
			t.Fatalf("terminal status %s must not be eligible", status)
		}
	}
	if !Eligible(app("e", jobdomain.StatusInterviewScheduled, deadline, true)) {
		t.Fatal("interview_scheduled is not terminal")
	}
}

func TestInDueWindow(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

	if !InDueWindow(time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC), now) {
		t.Fatal("past deadline must be in the window")
	}
	if !InDueWindow(time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC), now) {
		t.Fatal("deadline today must be in the window")
	}
	if !InDueWindow(time.Date(2026, time.March, 16, 0, 0, 0, 0, time.UTC), now) {
		t.Fatal("deadline six days out must be in the window")
	}
	// 2026-03-17 midnight is 6.5 days from a noon "now", still strictly
	// under seven days
	if !InDueWindow(time.Date(2026, time.March, 17, 0, 0, 0, 0, time.UTC), now) {
		t.Fatal("deadline under seven days out must be in the window")
	}
	if InDueWindow(time.Date(2026, time.March, 18, 0, 0, 0, 0, time.UTC), now) {
		t.Fatal("deadline over seven days out must be outside the window")
	}
}

func TestFilterDue_OrderAndWindow(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)
	apps := []*jobdomain.JobApplication{
		app("far", jobdomain.StatusApplied, datePtr(2026, time.April, 20), true),
		app("soon", jobdomain.StatusApplied, datePtr(2026, time.March, 12), true),
		app("past", jobdomain.StatusApplied, datePtr(2026, time.March, 8), true),
		app("today", jobdomain.StatusApplied, datePtr(2026, time.March, 10), true),
		app("done", jobdomain.StatusOffer, datePtr(2026, time.March, 9), true),
	}

	due := FilterDue(apps, now)

	want := []string{"past", "today", "soon"}
	if len(due) != len(want) {
		t.Fatalf("expected %d reminders, got %d", len(want), len(due))
	}
	for i, id := range want {
		if due[i].ID != id {
			t.Fatalf("position %d: expected %s, got %s", i, id, due[i].ID)
		}
	}
}

func TestCountDueNow(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)
	reminders := []Reminder{
		{ID: "past", Deadline: time.Date(2026, time.March, 8, 0, 0, 0, 0, time.UTC)},
		{ID: "today", Deadline: time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)},
		{ID: "soon", Deadline: time.Date(2026, time.March, 13, 0, 0, 0, 0, time.UTC)},
	}

	if got := CountDueNow(reminders, now); got != 2 {
		t.Fatalf("expected due count 2, got %d", got)
	}
}
