package usecase

import (
	"errors"
	"sync"
	"testing"
	"time"

	"jobtrackr-backend/internal/job/domain"
)

// fakeJobRepo is an in-memory JobRepository for usecase tests
type fakeJobRepo struct {
	mu   sync.Mutex
	apps map[string]*domain.JobApplication
	seq  int
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{apps: make(map[string]*domain.JobApplication)}
}

func (r *fakeJobRepo) Create(app *domain.JobApplication) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if app.ID == "" {
		r.seq++
		app.ID = "job-" + app.Company
	}
	app.CreatedAt = time.Now().Add(time.Duration(r.seq) * time.Second)
	cp := *app
	r.apps[app.ID] = &cp
	return nil
}

func (r *fakeJobRepo) FindByID(id string) (*domain.JobApplication, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.apps[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (r *fakeJobRepo) FindByUserID(userID string) ([]*domain.JobApplication, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.JobApplication
	for _, a := range r.apps {
		if a.UserID == userID {
			cp := *a
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeJobRepo) FindWithActiveReminders(userID string) ([]*domain.JobApplication, error) {
	return nil, nil
}

func (r *fakeJobRepo) Update(app *domain.JobApplication) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *app
	r.apps[app.ID] = &cp
	return nil
}

func (r *fakeJobRepo) DeactivateReminder(userID, id string) error { return nil }

func (r *fakeJobRepo) SetDeadline(userID, id string, deadline time.Time) error { return nil }

func (r *fakeJobRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.apps, id)
	return nil
}

func seedJobs(t *testing.T, uc JobUsecase) {
	t.Helper()
	seeds := []JobInput{
		{Company: "Google", Position: "Backend Engineer", Status: "applied"},
		{Company: "Stripe", Position: "Platform Engineer", Status: "interview_scheduled"},
		{Company: "Shopify", Position: "Data Analyst", Status: "rejected"},
	}
	for _, s := range seeds {
		if _, err := uc.CreateJob("u1", s); err != nil {
			t.Fatalf("seed CreateJob(%s): %v", s.Company, err)
		}
	}
}

func TestListJobs_StatusFilter(t *testing.T) {
	t.Parallel()

	uc := NewJobUsecase(newFakeJobRepo())
	seedJobs(t, uc)

	all, err := uc.ListJobs("u1", "all", "")
	if err != nil {
		t.Fatalf("ListJobs: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 applications, got %d", len(all))
	}

	applied, err := uc.ListJobs("u1", "applied", "")
	if err != nil {
		t.Fatalf("ListJobs: %v", err)
	}
	if len(applied) != 1 || applied[0].Company != "Google" {
		t.Fatalf("unexpected applied filter result %+v", applied)
	}

	if _, err := uc.ListJobs("u1", "ghosted", ""); !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest for unknown status, got %v", err)
	}
}

func TestListJobs_FuzzySearch(t *testing.T) {
	t.Parallel()

	uc := NewJobUsecase(newFakeJobRepo())
	seedJobs(t, uc)

	// one-letter typo in the company name still matches
	got, err := uc.ListJobs("u1", "", "Stipe")
	if err != nil {
		t.Fatalf("ListJobs: %v", err)
	}
	if len(got) != 1 || got[0].Company != "Stripe" {
		t.Fatalf("expected fuzzy match on Stripe, got %+v", got)
	}

	// position words match too
	got, err = uc.ListJobs("u1", "", "analyst")
	if err != nil {
		t.Fatalf("ListJobs: %v", err)
	}
	if len(got) != 1 || got[0].Company != "Shopify" {
		t.Fatalf("expected match on position, got %+v", got)
	}

	got, err = uc.ListJobs("u1", "", "zzzzzz")
	if err != nil {
		t.Fatalf("ListJobs: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no matches, got %+v", got)
	}
}

func TestDashboardStats(t *testing.T) {
	t.Parallel()

	uc := NewJobUsecase(newFakeJobRepo())
	seedJobs(t, uc)

	stats, recent, err := uc.DashboardStats("u1", 2)
	if err != nil {
		t.Fatalf("DashboardStats: %v", err)
	}
	if stats.TotalApplied != 3 || stats.Pending != 1 || stats.Interviews != 1 || stats.Rejected != 1 {
		t.Fatalf("unexpected stats %+v", stats)
	}
	if len(recent) != 2 {
		t.Fatalf("expected 2 recent applications, got %d", len(recent))
	}
	// newest first
	if recent[0].Company != "Shopify" || recent[1].Company != "Stripe" {
		t.Fatalf("unexpected recent order: %s, %s", recent[0].Company, recent[1].Company)
	}
}

func TestUpdateJob_Ownership(t *testing.T) {
	t.Parallel()

	uc := NewJobUsecase(newFakeJobRepo())
	created, err := uc.CreateJob("u1", JobInput{Company: "Acme", Position: "Engineer"})
	if err != nil {
		t.Fatalf("CreateJob: %v", err)
	}

	if _, err := uc.UpdateJob("u2", created.ID, JobInput{Company: "Acme", Position: "Engineer"}); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if _, err := uc.UpdateJob("u1", "missing", JobInput{Company: "X", Position: "Y"}); !errors.Is(err, ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}

func TestCreateJob_Defaults(t *testing.T) {
	t.Parallel()

	uc := NewJobUsecase(newFakeJobRepo())

	created, err := uc.CreateJob("u1", JobInput{Company: "Acme", Position: "Engineer"})
	if err != nil {
		t.Fatalf("CreateJob: %v", err)
	}
	if created.Status != domain.StatusApplied {
		t.Fatalf("expected default status applied, got %s", created.Status)
	}

	if _, err := uc.CreateJob("u1", JobInput{Company: "  ", Position: "Engineer"}); !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest for blank company, got %v", err)
	}
}
