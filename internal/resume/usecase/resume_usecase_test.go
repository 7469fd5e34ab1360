package usecase

import (
	"errors"
	"sync"
	"testing"

	"jobtrackr-backend/internal/resume/domain"
)

// fakeResumeRepo is an in-memory ResumeRepository for usecase tests
type fakeResumeRepo struct {
	mu      sync.Mutex
	resumes map[string]*domain.Resume
}

func newFakeResumeRepo() *fakeResumeRepo {
	return &fakeResumeRepo{resumes: make(map[string]*domain.Resume)}
}

func (r *fakeResumeRepo) Create(res *domain.Resume) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if res.ID == "" {
		res.ID = "gen-" + res.Name
	}
	cp := *res
	r.resumes[res.ID] = &cp
	return nil
}

func (r *fakeResumeRepo) FindByID(id string) (*domain.Resume, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	res, ok := r.resumes[id]
	if !ok {
		return nil, nil
	}
	cp := *res
	return &cp, nil
}

func (r *fakeResumeRepo) FindByUserID(userID string) ([]*domain.Resume, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Resume
	for _, res := range r.resumes {
		if res.UserID == userID {
			cp := *res
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeResumeRepo) Update(res *domain.Resume) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *res
	r.resumes[res.ID] = &cp
	return nil
}

func (r *fakeResumeRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.resumes, id)
	return nil
}

func TestCreateResume_Defaults(t *testing.T) {
	t.Parallel()

	repo := newFakeResumeRepo()
	uc := NewResumeUsecase(repo)

	if _, err := uc.CreateResume("u1", ResumeInput{Name: "   "}); !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest for blank name, got %v", err)
	}

	created, err := uc.CreateResume("u1", ResumeInput{Name: "  Backend Resume  "})
	if err != nil {
		t.Fatalf("CreateResume: %v", err)
	}
	if created.Name != "Backend Resume" {
		t.Fatalf("expected trimmed name, got %q", created.Name)
	}
	if created.Version != "v1" || created.Status != "draft" {
		t.Fatalf("expected v1/draft defaults, got %q/%q", created.Version, created.Status)
	}
	if created.UsageCount != 0 {
		t.Fatalf("new resume must start unused, got %d", created.UsageCount)
	}
}

func TestRecordUsage_IncrementsCount(t *testing.T) {
	t.Parallel()

	repo := newFakeResumeRepo()
	uc := NewResumeUsecase(repo)

	created, err := uc.CreateResume("u1", ResumeInput{Name: "Backend Resume"})
	if err != nil {
		t.Fatalf("CreateResume: %v", err)
	}

	res, err := uc.RecordUsage("u1", created.ID)
	if err != nil {
		t.Fatalf("RecordUsage: %v", err)
	}
	if res.UsageCount != 1 {
		t.Fatalf("expected usage count 1, got %d", res.UsageCount)
	}

	res, err = uc.RecordUsage("u1", created.ID)
	if err != nil {
		t.Fatalf("RecordUsage: %v", err)
	}
	if res.UsageCount != 2 {
		t.Fatalf("expected usage count 2, got %d", res.UsageCount)
	}

	stored, _ := repo.FindByID(created.ID)
	if stored.UsageCount != 2 {
		t.Fatalf("expected persisted usage count 2, got %d", stored.UsageCount)
	}
}

func TestRecordUsage_Ownership(t *testing.T) {
	t.Parallel()

	repo := newFakeResumeRepo()
	uc := NewResumeUsecase(repo)

	created, err := uc.CreateResume("u1", ResumeInput{Name: "Backend Resume"})
	if err != nil {
		t.Fatalf("CreateResume: %v", err)
	}

	if _, err := uc.RecordUsage("u2", created.ID); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if _, err := uc.RecordUsage("u1", "missing"); !errors.Is(err, ErrResumeNotFound) {
		t.Fatalf("expected ErrResumeNotFound, got %v", err)
	}

	stored, _ := repo.FindByID(created.ID)
	if stored.UsageCount != 0 {
		t.Fatalf("failed usage records must not touch the count, got %d", stored.UsageCount)
	}
}

func TestUpdateResume_KeepsUnsetFields(t *testing.T) {
	t.Parallel()

	repo := newFakeResumeRepo()
	uc := NewResumeUsecase(repo)

	created, err := uc.CreateResume("u1", ResumeInput{Name: "Backend Resume", Version: "v2", Status: "final"})
	if err != nil {
		t.Fatalf("CreateResume: %v", err)
	}

	if _, err := uc.UpdateResume("u1", created.ID, ResumeInput{Name: ""}); !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest for blank name, got %v", err)
	}

	updated, err := uc.UpdateResume("u1", created.ID, ResumeInput{Name: "Platform Resume", TailoredFor: "Acme"})
	if err != nil {
		t.Fatalf("UpdateResume: %v", err)
	}
	if updated.Name != "Platform Resume" || updated.TailoredFor != "Acme" {
		t.Fatalf("unexpected update result %+v", updated)
	}
	// empty version and status keep their stored values
	if updated.Version != "v2" || updated.Status != "final" {
		t.Fatalf("unset version/status must survive an update, got %q/%q", updated.Version, updated.Status)
	}
}

func TestDeleteResume(t *testing.T) {
	t.Parallel()

	repo := newFakeResumeRepo()
	uc := NewResumeUsecase(repo)

	created, err := uc.CreateResume("u1", ResumeInput{Name: "Backend Resume"})
	if err != nil {
		t.Fatalf("CreateResume: %v", err)
	}

	if err := uc.DeleteResume("u2", created.ID); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if err := uc.DeleteResume("u1", created.ID); err != nil {
		t.Fatalf("DeleteResume: %v", err)
	}

	stored, _ := repo.FindByID(created.ID)
	if stored != nil {
		t.Fatal("deleted resume must be gone from the store")
	}
}
