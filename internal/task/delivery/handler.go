package delivery

import (
	"errors"
	"net/http"
	"time"

	"jobtrackr-backend/internal/task/usecase"

	"github.com/gin-gonic/gin"
)

// TaskHandler handles task-related HTTP requests
type TaskHandler struct {
	taskUsecase usecase.TaskUsecase
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(taskUsecase usecase.TaskUsecase) *TaskHandler {
	return &TaskHandler{
		taskUsecase: taskUsecase,
	}
}

// CreateTaskRequest represents the request body for creating a task
type CreateTaskRequest struct {
	TaskName  string  `json:"task_name" binding:"required"`
	Category  string  `json:"category"`
	Priority  string  `json:"priority"`
	StartDate *string `json:"start_date"`
	DueDate   *string `json:"due_date"`
	Link      string  `json:"link"`
}

// GetTasks returns the user's tasks, optionally one category tab
// GET /api/tasks?category=daily
func (h *TaskHandler) GetTasks(c *gin.Context) {
	userID := c.GetString("userID")

	category := c.Query("category")
	var categoryPtr *string
	if category != "" {
		categoryPtr = &category
	}

	tasks, err := h.taskUsecase.GetUserTasks(userID, categoryPtr)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	completed := 0
	for _, t := range tasks {
		if t.Completed {
			completed++
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"tasks":           tasks,
		"total":           len(tasks),
		"completed_count": completed,
	})
}

// CreateTask creates a new task
// POST /api/tasks
func (h *TaskHandler) CreateTask(c *gin.Context) {
	userID := c.GetString("userID")

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.taskUsecase.CreateTask(userID, req.TaskName, req.Category, req.Priority, req.StartDate, req.DueDate, req.Link)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusCreated, task)
}

// UpdateTask updates an existing task
// PUT /api/tasks/:id
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	userID := c.GetString("userID")
	taskID := c.Param("id")

	var updates usecase.TaskUpdateRequest
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	task, err := h.taskUsecase.UpdateTask(userID, taskID, updates)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// DeleteTask deletes a task
// DELETE /api/tasks/:id
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	userID := c.GetString("userID")
	taskID := c.Param("id")

	if err := h.taskUsecase.DeleteTask(userID, taskID); err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}

// ToggleComplete flips a task's completion state. Completing a task returns
// a pending confirmation the client must resolve via ConfirmCompletion.
// POST /api/tasks/:id/toggle
func (h *TaskHandler) ToggleComplete(c *gin.Context) {
	userID := c.GetString("userID")
	taskID := c.Param("id")

	state, err := h.taskUsecase.ToggleComplete(userID, taskID)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, state)
}

// ConfirmCompletion resolves a pending completion as delete-or-keep
// POST /api/tasks/:id/confirm
func (h *TaskHandler) ConfirmCompletion(c *gin.Context) {
	userID := c.GetString("userID")
	taskID := c.Param("id")

	var req struct {
		Action string `json:"action" binding:"required,oneof=delete keep"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	state, err := h.taskUsecase.ConfirmCompletion(userID, taskID, req.Action == "delete")
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, state)
}

// CancelCompletion abandons a pending completion
// POST /api/tasks/:id/cancel
func (h *TaskHandler) CancelCompletion(c *gin.Context) {
	userID := c.GetString("userID")
	taskID := c.Param("id")

	state, err := h.taskUsecase.CancelCompletion(userID, taskID)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, state)
}

// Escalate runs the due-date priority escalation scan for the user
// POST /api/tasks/escalate
func (h *TaskHandler) Escalate(c *gin.Context) {
	userID := c.GetString("userID")

	result, err := h.taskUsecase.EscalateUserTasks(userID, time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"updates":            result.Updates,
		"overdue_high_count": result.OverdueHighCount,
		"alert":              usecase.OverdueAlertMessage(result.OverdueHighCount),
	})
}

func respondTaskError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrTaskNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
	case errors.Is(err, usecase.ErrUnauthorized):
		c.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized"})
	case errors.Is(err, usecase.ErrNotPending):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, usecase.ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
