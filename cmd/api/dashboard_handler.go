package api

import (
	"net/http"

	jobUsecase "jobtrackr-backend/internal/job/usecase"
	"jobtrackr-backend/internal/reminder"
	taskUsecase "jobtrackr-backend/internal/task/usecase"

	"github.com/gin-gonic/gin"
)

// How many recent applications the dashboard shows
const recentApplications = 5

// DashboardHandler aggregates the landing-page view: application counters,
// recent applications, due follow-ups, and the task escalation scan.
type DashboardHandler struct {
	jobUc      jobUsecase.JobUsecase
	taskUc     taskUsecase.TaskUsecase
	reminderSv *reminder.Service
	clock      reminder.Clock
}

func NewDashboardHandler(jobUc jobUsecase.JobUsecase, taskUc taskUsecase.TaskUsecase, reminderSv *reminder.Service, clock reminder.Clock) *DashboardHandler {
	return &DashboardHandler{
		jobUc:      jobUc,
		taskUc:     taskUc,
		reminderSv: reminderSv,
		clock:      clock,
	}
}

// GetDashboard loads the user's dashboard. Opening it also runs the priority
// escalation scan so stale tasks are bumped before the day starts.
// GET /api/dashboard
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	userID := c.GetString("userID")

	escalation, err := h.taskUc.EscalateUserTasks(userID, h.clock.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	stats, recent, err := h.jobUc.DashboardStats(userID, recentApplications)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	feed := h.reminderSv.FeedFor(userID)
	if err := feed.Load(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"stats":               stats,
		"recent_applications": recent,
		"reminders":           feed.Reminders(),
		"due_count":           feed.DueCount(),
		"escalated":           escalation.Updates,
		"overdue_high_count":  escalation.OverdueHighCount,
		"alert":               taskUsecase.OverdueAlertMessage(escalation.OverdueHighCount),
	})
}
