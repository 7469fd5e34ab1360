package repository

import (
	"jobtrackr-backend/internal/task/domain"
)

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task
	Create(task *domain.Task) error

	// FindByID finds a task by its ID
	FindByID(id string) (*domain.Task, error)

	// FindByUserID finds all tasks for a user, optionally limited to a category,
	// newest first
	FindByUserID(userID string, category *domain.Category) ([]*domain.Task, error)

	// FindIncomplete finds all incomplete tasks for a user
	FindIncomplete(userID string) ([]*domain.Task, error)

	// Update updates an existing task
	Update(task *domain.Task) error

	// UpdatePriority writes a single task's priority
	UpdatePriority(id string, priority domain.Priority) error

	// SetCompleted writes a single task's completed flag
	SetCompleted(id string, completed bool) error

	// Delete deletes a task by ID
	Delete(id string) error
}
