package usecase

import (
	"errors"
	"log"
	"strings"
	"time"

	"jobtrackr-backend/internal/task/domain"
	"jobtrackr-backend/internal/task/repository"
)

var (
	ErrTaskNotFound   = errors.New("task not found")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrNotPending     = errors.New("no pending completion for task")
	ErrInvalidRequest = errors.New("invalid task request")
)

// taskUsecase implements TaskUsecase interface
type taskUsecase struct {
	taskRepo    repository.TaskRepository
	completions *completionTracker
}

// NewTaskUsecase creates a new instance of taskUsecase
func NewTaskUsecase(taskRepo repository.TaskRepository) TaskUsecase {
	return &taskUsecase{
		taskRepo:    taskRepo,
		completions: newCompletionTracker(),
	}
}

func (u *taskUsecase) CreateTask(userID, taskName string, category, priority string, startDate, dueDate *string, link string) (*domain.Task, error) {
	if strings.TrimSpace(taskName) == "" {
		return nil, ErrInvalidRequest
	}

	cat := domain.Category(category)
	if category == "" {
		cat = domain.CategoryDaily
	}
	if !domain.ValidCategory(cat) {
		return nil, ErrInvalidRequest
	}

	task := &domain.Task{
		UserID:   userID,
		Category: cat,
		TaskName: strings.TrimSpace(taskName),
		Priority: parsePriority(priority),
		Link:     link,
	}

	task.StartDate = parseDate(startDate)
	task.DueDate = parseDate(dueDate)

	if err := u.taskRepo.Create(task); err != nil {
		return nil, err
	}

	return task, nil
}

func (u *taskUsecase) GetUserTasks(userID string, category *string) ([]*domain.Task, error) {
	var catFilter *domain.Category
	if category != nil && *category != "" {
		c := domain.Category(*category)
		if !domain.ValidCategory(c) {
			return nil, ErrInvalidRequest
		}
		catFilter = &c
	}
	return u.taskRepo.FindByUserID(userID, catFilter)
}

func (u *taskUsecase) UpdateTask(userID, taskID string, updates TaskUpdateRequest) (*domain.Task, error) {
	task, err := u.getOwnedTask(userID, taskID)
	if err != nil {
		return nil, err
	}

	if updates.TaskName != nil {
		name := strings.TrimSpace(*updates.TaskName)
		if name == "" {
			return nil, ErrInvalidRequest
		}
		task.TaskName = name
	}
	if updates.Category != nil {
		cat := domain.Category(*updates.Category)
		if !domain.ValidCategory(cat) {
			return nil, ErrInvalidRequest
		}
		task.Category = cat
	}
	if updates.Priority != nil {
		// Explicit user edit: the only path allowed to lower a priority
		task.Priority = parsePriority(*updates.Priority)
	}
	if updates.StartDate != nil {
		task.StartDate = parseDate(updates.StartDate)
	}
	if updates.DueDate != nil {
		task.DueDate = parseDate(updates.DueDate)
	}
	if updates.Link != nil {
		task.Link = *updates.Link
	}

	if err := u.taskRepo.Update(task); err != nil {
		return nil, err
	}

	return task, nil
}

func (u *taskUsecase) DeleteTask(userID, taskID string) error {
	task, err := u.getOwnedTask(userID, taskID)
	if err != nil {
		return err
	}
	return u.taskRepo.Delete(task.ID)
}

func (u *taskUsecase) ToggleComplete(userID, taskID string) (CompletionState, error) {
	task, err := u.getOwnedTask(userID, taskID)
	if err != nil {
		return CompletionState{Phase: CompletionIdle}, err
	}

	if task.Completed {
		// complete -> incomplete is an immediate, unconfirmed write
		if err := u.taskRepo.SetCompleted(task.ID, false); err != nil {
			return CompletionState{Phase: CompletionIdle}, err
		}
		return CompletionState{Phase: CompletionIdle, TaskID: task.ID}, nil
	}

	// incomplete -> complete waits for the delete-or-keep confirmation
	u.completions.request(task.ID)
	return CompletionState{Phase: CompletionPendingConfirmation, TaskID: task.ID}, nil
}

func (u *taskUsecase) ConfirmCompletion(userID, taskID string, deleteTask bool) (CompletionState, error) {
	task, err := u.getOwnedTask(userID, taskID)
	if err != nil {
		return CompletionState{Phase: CompletionIdle}, err
	}

	if !u.completions.resolve(task.ID) {
		return CompletionState{Phase: CompletionIdle, TaskID: task.ID}, ErrNotPending
	}

	if err := u.taskRepo.SetCompleted(task.ID, true); err != nil {
		// nothing persisted; put the confirmation back
		u.completions.request(task.ID)
		return CompletionState{Phase: CompletionPendingConfirmation, TaskID: task.ID}, err
	}

	if deleteTask {
		if err := u.taskRepo.Delete(task.ID); err != nil {
			return CompletionState{Phase: CompletionResolved, TaskID: task.ID}, err
		}
	}

	return CompletionState{Phase: CompletionResolved, TaskID: task.ID}, nil
}

func (u *taskUsecase) CancelCompletion(userID, taskID string) (CompletionState, error) {
	if _, err := u.getOwnedTask(userID, taskID); err != nil {
		return CompletionState{Phase: CompletionIdle}, err
	}
	u.completions.resolve(taskID)
	return CompletionState{Phase: CompletionIdle, TaskID: taskID}, nil
}

func (u *taskUsecase) EscalateUserTasks(userID string, now time.Time) (EscalationResult, error) {
	tasks, err := u.taskRepo.FindIncomplete(userID)
	if err != nil {
		return EscalationResult{}, err
	}

	result := Escalate(tasks, now)

	// Apply each priority write individually; one failing task must not
	// abort the rest of the scan.
	for _, update := range result.Updates {
		if err := u.taskRepo.UpdatePriority(update.TaskID, update.NewPriority); err != nil {
			log.Printf("[Escalation] Failed to update task %s priority: %v", update.TaskID, err)
		}
	}

	return result, nil
}

func (u *taskUsecase) getOwnedTask(userID, taskID string) (*domain.Task, error) {
	task, err := u.taskRepo.FindByID(taskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}
	if task.UserID != userID {
		return nil, ErrUnauthorized
	}
	return task, nil
}

func parsePriority(p string) domain.Priority {
	switch p {
	case "high":
		return domain.PriorityHigh
	case "low":
		return domain.PriorityLow
	default:
		return domain.PriorityMedium
	}
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
