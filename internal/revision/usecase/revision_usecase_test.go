package usecase

import (
	"errors"
	"sync"
	"testing"
	"time"

	"jobtrackr-backend/internal/revision/domain"
	"jobtrackr-backend/pkg/dateutil"
)

// fakeRevisionRepo is an in-memory RevisionRepository for usecase tests
type fakeRevisionRepo struct {
	mu   sync.Mutex
	revs map[string]*domain.Revision
}

func newFakeRevisionRepo() *fakeRevisionRepo {
	return &fakeRevisionRepo{revs: make(map[string]*domain.Revision)}
}

func (r *fakeRevisionRepo) Create(rev *domain.Revision) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if rev.ID == "" {
		rev.ID = "gen-" + rev.Topic
	}
	cp := *rev
	r.revs[rev.ID] = &cp
	return nil
}

func (r *fakeRevisionRepo) FindByID(id string) (*domain.Revision, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rev, ok := r.revs[id]
	if !ok {
		return nil, nil
	}
	cp := *rev
	return &cp, nil
}

func (r *fakeRevisionRepo) FindByUserID(userID string) ([]*domain.Revision, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Revision
	for _, rev := range r.revs {
		if rev.UserID == userID {
			cp := *rev
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeRevisionRepo) Update(rev *domain.Revision) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *rev
	r.revs[rev.ID] = &cp
	return nil
}

func (r *fakeRevisionRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.revs, id)
	return nil
}

func TestNextInterval(t *testing.T) {
	t.Parallel()

	cases := []struct {
		timesRevised int
		want         int
	}{
		{0, 1},
		{1, 3},
		{2, 7},
		{3, 14},
		{4, 30},
		{9, 30},
	}
	for _, c := range cases {
		if got := NextInterval(c.timesRevised); got != c.want {
			t.Fatalf("NextInterval(%d) = %d, want %d", c.timesRevised, got, c.want)
		}
	}
}

func TestMarkRevised_AdvancesSchedule(t *testing.T) {
	t.Parallel()

	repo := newFakeRevisionRepo()
	uc := NewRevisionUsecase(repo)

	created, err := uc.CreateRevision("u1", RevisionInput{Subject: "Go", Topic: "goroutines"})
	if err != nil {
		t.Fatalf("CreateRevision: %v", err)
	}
	if created.TimesRevised != 0 || created.LastRevised != nil {
		t.Fatalf("new revision must start unrevised, got %+v", created)
	}

	rev, err := uc.MarkRevised("u1", created.ID)
	if err != nil {
		t.Fatalf("MarkRevised: %v", err)
	}

	today := dateutil.StartOfDay(time.Now())
	if rev.TimesRevised != 1 {
		t.Fatalf("expected 1 revision, got %d", rev.TimesRevised)
	}
	if rev.LastRevised == nil || !rev.LastRevised.Equal(today) {
		t.Fatalf("expected last_revised today, got %v", rev.LastRevised)
	}
	if want := dateutil.AddDays(today, 1); !rev.NextRevision.Equal(want) {
		t.Fatalf("first pass must reschedule 1 day out: got %v, want %v", rev.NextRevision, want)
	}

	// second pass moves three days out
	rev, err = uc.MarkRevised("u1", created.ID)
	if err != nil {
		t.Fatalf("MarkRevised: %v", err)
	}
	if want := dateutil.AddDays(today, 3); !rev.NextRevision.Equal(want) {
		t.Fatalf("second pass must reschedule 3 days out: got %v, want %v", rev.NextRevision, want)
	}
}

func TestMarkRevised_Ownership(t *testing.T) {
	t.Parallel()

	repo := newFakeRevisionRepo()
	uc := NewRevisionUsecase(repo)

	created, err := uc.CreateRevision("u1", RevisionInput{Subject: "Go", Topic: "channels"})
	if err != nil {
		t.Fatalf("CreateRevision: %v", err)
	}

	if _, err := uc.MarkRevised("u2", created.ID); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if _, err := uc.MarkRevised("u1", "missing"); !errors.Is(err, ErrRevisionNotFound) {
		t.Fatalf("expected ErrRevisionNotFound, got %v", err)
	}
}

func TestCreateRevision_Validation(t *testing.T) {
	t.Parallel()

	repo := newFakeRevisionRepo()
	uc := NewRevisionUsecase(repo)

	if _, err := uc.CreateRevision("u1", RevisionInput{Subject: "", Topic: "x"}); !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest for blank subject, got %v", err)
	}
	if _, err := uc.CreateRevision("u1", RevisionInput{Subject: "Go", Topic: "x", Link: "ftp://nope"}); !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest for non-http link, got %v", err)
	}

	created, err := uc.CreateRevision("u1", RevisionInput{Subject: "Go", Topic: "x", Link: "https://go.dev/blog"})
	if err != nil {
		t.Fatalf("CreateRevision: %v", err)
	}
	if created.Priority != "medium" {
		t.Fatalf("expected default priority medium, got %q", created.Priority)
	}

	// unset date defaults a week out
	want := dateutil.StartOfDay(dateutil.AddDays(time.Now(), 7))
	if !created.NextRevision.Equal(want) {
		t.Fatalf("expected default next_revision %v, got %v", want, created.NextRevision)
	}
}
