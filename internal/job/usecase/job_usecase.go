package usecase

import (
	"errors"
	"sort"
	"strings"
	"time"

	"jobtrackr-backend/internal/job/domain"
	"jobtrackr-backend/internal/job/repository"
	"jobtrackr-backend/pkg/fuzzy"
)

var (
	ErrJobNotFound    = errors.New("job application not found")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrInvalidRequest = errors.New("invalid job application request")
)

// Edit distance tolerated by the company/position search box
const searchThreshold = 2

// jobUsecase implements JobUsecase interface
type jobUsecase struct {
	jobRepo repository.JobRepository
}

// NewJobUsecase creates a new instance of jobUsecase
func NewJobUsecase(jobRepo repository.JobRepository) JobUsecase {
	return &jobUsecase{jobRepo: jobRepo}
}

func (u *jobUsecase) CreateJob(userID string, input JobInput) (*domain.JobApplication, error) {
	if strings.TrimSpace(input.Company) == "" || strings.TrimSpace(input.Position) == "" {
		return nil, ErrInvalidRequest
	}

	status := domain.Status(input.Status)
	if input.Status == "" {
		status = domain.StatusApplied
	}
	if !domain.ValidStatus(status) {
		return nil, ErrInvalidRequest
	}

	app := &domain.JobApplication{
		UserID:         userID,
		Company:        strings.TrimSpace(input.Company),
		Position:       strings.TrimSpace(input.Position),
		Status:         status,
		AppliedDate:    parseDate(input.AppliedDate),
		Deadline:       parseDate(input.Deadline),
		ReminderActive: input.ReminderActive,
		JobURL:         input.JobURL,
		HREmail:        input.HREmail,
		Notes:          input.Notes,
	}

	if err := u.jobRepo.Create(app); err != nil {
		return nil, err
	}

	return app, nil
}

func (u *jobUsecase) ListJobs(userID, statusFilter, query string) ([]*domain.JobApplication, error) {
	apps, err := u.jobRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}

	if statusFilter != "" && statusFilter != "all" {
		status := domain.Status(statusFilter)
		if !domain.ValidStatus(status) {
			return nil, ErrInvalidRequest
		}
		filtered := apps[:0]
		for _, a := range apps {
			if a.Status == status {
				filtered = append(filtered, a)
			}
		}
		apps = filtered
	}

	if q := strings.TrimSpace(query); q != "" {
		matched := apps[:0]
		for _, a := range apps {
			if fuzzy.Match(q, a.Company, searchThreshold) || fuzzy.Match(q, a.Position, searchThreshold) {
				matched = append(matched, a)
			}
		}
		apps = matched
	}

	return apps, nil
}

func (u *jobUsecase) UpdateJob(userID, jobID string, input JobInput) (*domain.JobApplication, error) {
	app, err := u.getOwnedJob(userID, jobID)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(input.Company) == "" || strings.TrimSpace(input.Position) == "" {
		return nil, ErrInvalidRequest
	}

	status := domain.Status(input.Status)
	if input.Status == "" {
		status = app.Status
	}
	if !domain.ValidStatus(status) {
		return nil, ErrInvalidRequest
	}

	app.Company = strings.TrimSpace(input.Company)
	app.Position = strings.TrimSpace(input.Position)
	app.Status = status
	app.AppliedDate = parseDate(input.AppliedDate)
	app.Deadline = parseDate(input.Deadline)
	app.ReminderActive = input.ReminderActive
	app.JobURL = input.JobURL
	app.HREmail = input.HREmail
	app.Notes = input.Notes

	if err := u.jobRepo.Update(app); err != nil {
		return nil, err
	}

	return app, nil
}

func (u *jobUsecase) DeleteJob(userID, jobID string) error {
	app, err := u.getOwnedJob(userID, jobID)
	if err != nil {
		return err
	}
	return u.jobRepo.Delete(app.ID)
}

func (u *jobUsecase) DashboardStats(userID string, recent int) (Stats, []*domain.JobApplication, error) {
	apps, err := u.jobRepo.FindByUserID(userID)
	if err != nil {
		return Stats{}, nil, err
	}

	stats := Stats{TotalApplied: len(apps)}
	for _, a := range apps {
		switch a.Status {
		case domain.StatusApplied:
			stats.Pending++
		case domain.StatusInterviewScheduled, domain.StatusInterviewDone:
			stats.Interviews++
		case domain.StatusRejected:
			stats.Rejected++
		}
	}

	sorted := make([]*domain.JobApplication, len(apps))
	copy(sorted, apps)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	if recent > 0 && len(sorted) > recent {
		sorted = sorted[:recent]
	}

	return stats, sorted, nil
}

func (u *jobUsecase) getOwnedJob(userID, jobID string) (*domain.JobApplication, error) {
	app, err := u.jobRepo.FindByID(jobID)
	if err != nil {
		return nil, err
	}
	if app == nil {
		return nil, ErrJobNotFound
	}
	if app.UserID != userID {
		return nil, ErrUnauthorized
	}
	return app, nil
}

func parseDate(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	if t, err := time.Parse("2006-01-02", *s); err == nil {
		return &t
	}
	return nil
}
