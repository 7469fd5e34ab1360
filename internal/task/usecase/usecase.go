package usecase

import (
	"time"

	"jobtrackr-backend/internal/task/domain"
)

// TaskUpdateRequest carries partial task edits; nil fields are left unchanged
type TaskUpdateRequest struct {
	TaskName  *string `json:"task_name"`
	Category  *string `json:"category"`
	Priority  *string `json:"priority"`
	StartDate *string `json:"start_date"`
	DueDate   *string `json:"due_date"`
	Link      *string `json:"link"`
}

// TaskUsecase defines the interface for task business logic
type TaskUsecase interface {
	CreateTask(userID, taskName string, category, priority string, startDate, dueDate *string, link string) (*domain.Task, error)
	GetUserTasks(userID string, category *string) ([]*domain.Task, error)
	UpdateTask(userID, taskID string, updates TaskUpdateRequest) (*domain.Task, error)
	DeleteTask(userID, taskID string) error

	// ToggleComplete flips a task's completion. incomplete -> complete does not
	// persist anything and returns a pending-confirmation state; complete ->
	// incomplete is an immediate write.
	ToggleComplete(userID, taskID string) (CompletionState, error)
	// ConfirmCompletion resolves a pending completion: mark completed, then
	// either delete the record or keep it.
	ConfirmCompletion(userID, taskID string, deleteTask bool) (CompletionState, error)
	// CancelCompletion abandons a pending completion without persisting anything
	CancelCompletion(userID, taskID string) (CompletionState, error)

	// EscalateUserTasks runs the due-date priority escalation scan for the user
	// and applies the resulting priority writes one by one.
	EscalateUserTasks(userID string, now time.Time) (EscalationResult, error)
}
