package delivery

import (
	"errors"
	"net/http"

	"jobtrackr-backend/internal/reminder"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ReminderHandler handles follow-up reminder HTTP requests
type ReminderHandler struct {
	service *reminder.Service
}

// NewReminderHandler creates a new ReminderHandler
func NewReminderHandler(service *reminder.Service) *ReminderHandler {
	return &ReminderHandler{
		service: service,
	}
}

// GetReminders loads the user's due follow-up reminders
// GET /api/reminders
func (h *ReminderHandler) GetReminders(c *gin.Context) {
	userID := c.GetString("userID")

	feed := h.service.FeedFor(userID)
	if err := feed.Load(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reminders": feed.Reminders(),
		"due_count": feed.DueCount(),
	})
}

// CompleteReminder marks a follow-up as done and deactivates its reminder
// POST /api/reminders/:id/complete
func (h *ReminderHandler) CompleteReminder(c *gin.Context) {
	userID := c.GetString("userID")
	id := c.Param("id")

	feed := h.service.FeedFor(userID)
	if err := feed.MarkComplete(id); err != nil {
		respondReminderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Reminder completed",
		"due_count": feed.DueCount(),
	})
}

// SnoozeReminder pushes a follow-up deadline forward from today
// POST /api/reminders/:id/snooze
func (h *ReminderHandler) SnoozeReminder(c *gin.Context) {
	userID := c.GetString("userID")
	id := c.Param("id")

	var req struct {
		Days int `json:"days"`
	}
	// body is optional; empty or missing means the default snooze length
	_ = c.ShouldBindJSON(&req)

	feed := h.service.FeedFor(userID)
	if err := feed.Snooze(id, req.Days); err != nil {
		respondReminderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"reminders": feed.Reminders(),
		"due_count": feed.DueCount(),
	})
}

func respondReminderError(c *gin.Context, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Reminder not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
