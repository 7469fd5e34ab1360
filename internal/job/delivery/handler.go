package delivery

import (
	"errors"
	"net/http"

	"jobtrackr-backend/internal/job/usecase"

	"github.com/gin-gonic/gin"
)

// JobHandler handles job application HTTP requests
type JobHandler struct {
	jobUsecase usecase.JobUsecase
}

// NewJobHandler creates a new JobHandler
func NewJobHandler(jobUsecase usecase.JobUsecase) *JobHandler {
	return &JobHandler{
		jobUsecase: jobUsecase,
	}
}

// GetJobs lists the user's applications with optional status filter and
// fuzzy company/position search
// GET /api/jobs?status=applied&q=goog
func (h *JobHandler) GetJobs(c *gin.Context) {
	userID := c.GetString("userID")

	jobs, err := h.jobUsecase.ListJobs(userID, c.Query("status"), c.Query("q"))
	if err != nil {
		respondJobError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"jobs":  jobs,
		"total": len(jobs),
	})
}

// CreateJob creates a new application
// POST /api/jobs
func (h *JobHandler) CreateJob(c *gin.Context) {
	userID := c.GetString("userID")

	var input usecase.JobInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	job, err := h.jobUsecase.CreateJob(userID, input)
	if err != nil {
		respondJobError(c, err)
		return
	}

	c.JSON(http.StatusCreated, job)
}

// UpdateJob updates an existing application
// PUT /api/jobs/:id
func (h *JobHandler) UpdateJob(c *gin.Context) {
	userID := c.GetString("userID")
	jobID := c.Param("id")

	var input usecase.JobInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	job, err := h.jobUsecase.UpdateJob(userID, jobID, input)
	if err != nil {
		respondJobError(c, err)
		return
	}

	c.JSON(http.StatusOK, job)
}

// DeleteJob deletes an application
// DELETE /api/jobs/:id
func (h *JobHandler) DeleteJob(c *gin.Context) {
	userID := c.GetString("userID")
	jobID := c.Param("id")

	if err := h.jobUsecase.DeleteJob(userID, jobID); err != nil {
		respondJobError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Application deleted successfully"})
}

func respondJobError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrJobNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
	case errors.Is(err, usecase.ErrUnauthorized):
		c.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized"})
	case errors.Is(err, usecase.ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
