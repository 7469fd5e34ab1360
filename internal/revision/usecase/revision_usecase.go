package usecase

import (
	"errors"
	"net/url"
	"strings"
	"time"

	"jobtrackr-backend/internal/revision/domain"
	"jobtrackr-backend/internal/revision/repository"
	"jobtrackr-backend/pkg/dateutil"
)

var (
	ErrRevisionNotFound = errors.New("revision not found")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrInvalidRequest   = errors.New("invalid revision request")
)

// Days until the next pass, indexed by how many passes are already done.
// The last entry repeats once the topic is well rehearsed.
var revisionIntervals = []int{1, 3, 7, 14, 30}

// New topics default to a first revision one week out
const defaultLeadDays = 7

// NextInterval returns the number of days to wait after the given number
// of completed revisions.
func NextInterval(timesRevised int) int {
	if timesRevised < 0 {
		timesRevised = 0
	}
	if timesRevised >= len(revisionIntervals) {
		return revisionIntervals[len(revisionIntervals)-1]
	}
	return revisionIntervals[timesRevised]
}

// revisionUsecase implements RevisionUsecase interface
type revisionUsecase struct {
	revisionRepo repository.RevisionRepository
}

// NewRevisionUsecase creates a new instance of revisionUsecase
func NewRevisionUsecase(revisionRepo repository.RevisionRepository) RevisionUsecase {
	return &revisionUsecase{revisionRepo: revisionRepo}
}

func (u *revisionUsecase) CreateRevision(userID string, input RevisionInput) (*domain.Revision, error) {
	if strings.TrimSpace(input.Subject) == "" || strings.TrimSpace(input.Topic) == "" {
		return nil, ErrInvalidRequest
	}
	if input.Link != "" && !validLink(input.Link) {
		return nil, ErrInvalidRequest
	}

	priority := input.Priority
	if priority == "" {
		priority = "medium"
	}

	next := dateutil.StartOfDay(dateutil.AddDays(time.Now(), defaultLeadDays))
	if t := parseDate(input.NextRevision); t != nil {
		next = *t
	}

	rev := &domain.Revision{
		UserID:       userID,
		Subject:      strings.TrimSpace(input.Subject),
		Topic:        strings.TrimSpace(input.Topic),
		Priority:     priority,
		NextRevision: next,
		Notes:        input.Notes,
		Link:         input.Link,
	}

	if err := u.revisionRepo.Create(rev); err != nil {
		return nil, err
	}

	return rev, nil
}

func (u *revisionUsecase) ListRevisions(userID string) ([]*domain.Revision, error) {
	return u.revisionRepo.FindByUserID(userID)
}

func (u *revisionUsecase) UpdateRevision(userID, revisionID string, input RevisionInput) (*domain.Revision, error) {
	rev, err := u.getOwnedRevision(userID, revisionID)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(input.Subject) == "" || strings.TrimSpace(input.Topic) == "" {
		return nil, ErrInvalidRequest
	}
	if input.Link != "" && !validLink(input.Link) {
		return nil, ErrInvalidRequest
	}

	rev.Subject = strings.TrimSpace(input.Subject)
	rev.Topic = strings.TrimSpace(input.Topic)
	if input.Priority != "" {
		rev.Priority = input.Priority
	}
	if t := parseDate(input.NextRevision); t != nil {
		rev.NextRevision = *t
	}
	rev.Notes = input.Notes
	rev.Link = input.Link

	if err := u.revisionRepo.Update(rev); err != nil {
		return nil, err
	}

	return rev, nil
}

func (u *revisionUsecase) DeleteRevision(userID, revisionID string) error {
	rev, err := u.getOwnedRevision(userID, revisionID)
	if err != nil {
		return err
	}
	return u.revisionRepo.Delete(rev.ID)
}

func (u *revisionUsecase) MarkRevised(userID, revisionID string) (*domain.Revision, error) {
	rev, err := u.getOwnedRevision(userID, revisionID)
	if err != nil {
		return nil, err
	}

	today := dateutil.StartOfDay(time.Now())
	interval := NextInterval(rev.TimesRevised)

	rev.TimesRevised++
	rev.LastRevised = &today
	rev.NextRevision = dateutil.AddDays(today, interval)

	if err := u.revisionRepo.Update(rev); err != nil {
		return nil, err
	}

	return rev, nil
}

func (u *revisionUsecase) getOwnedRevision(userID, revisionID string) (*domain.Revision, error) {
	rev, err := u.revisionRepo.FindByID(revisionID)
	if err != nil {
		return nil, err
	}
	if rev == nil {
		return nil, ErrRevisionNotFound
	}
	if rev.UserID != userID {
		return nil, ErrUnauthorized
	}
	return rev, nil
}

func validLink(s string) bool {
	parsed, err := url.Parse(s)
	if err != nil {
		return false
	}
	return parsed.Scheme == "http" || parsed.Scheme == "https"
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
