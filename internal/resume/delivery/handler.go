package delivery

import (
	"errors"
	"net/http"

	"jobtrackr-backend/internal/resume/usecase"

	"github.com/gin-gonic/gin"
)

// ResumeHandler handles resume catalog HTTP requests
type ResumeHandler struct {
	resumeUsecase usecase.ResumeUsecase
}

// NewResumeHandler creates a new ResumeHandler
func NewResumeHandler(resumeUsecase usecase.ResumeUsecase) *ResumeHandler {
	return &ResumeHandler{
		resumeUsecase: resumeUsecase,
	}
}

// GetResumes lists the user's resume versions
// GET /api/resumes
func (h *ResumeHandler) GetResumes(c *gin.Context) {
	userID := c.GetString("userID")

	resumes, err := h.resumeUsecase.ListResumes(userID)
	if err != nil {
		respondResumeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"resumes": resumes,
		"total":   len(resumes),
	})
}

// CreateResume adds a resume version to the catalog
// POST /api/resumes
func (h *ResumeHandler) CreateResume(c *gin.Context) {
	userID := c.GetString("userID")

	var input usecase.ResumeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := h.resumeUsecase.CreateResume(userID, input)
	if err != nil {
		respondResumeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, res)
}

// UpdateResume updates a resume record
// PUT /api/resumes/:id
func (h *ResumeHandler) UpdateResume(c *gin.Context) {
	userID := c.GetString("userID")
	resumeID := c.Param("id")

	var input usecase.ResumeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := h.resumeUsecase.UpdateResume(userID, resumeID, input)
	if err != nil {
		respondResumeError(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}

// DeleteResume deletes a resume record
// DELETE /api/resumes/:id
func (h *ResumeHandler) DeleteResume(c *gin.Context) {
	userID := c.GetString("userID")
	resumeID := c.Param("id")

	if err := h.resumeUsecase.DeleteResume(userID, resumeID); err != nil {
		respondResumeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Resume deleted successfully"})
}

// RecordUsage increments a resume's usage counter
// POST /api/resumes/:id/usage
func (h *ResumeHandler) RecordUsage(c *gin.Context) {
	userID := c.GetString("userID")
	resumeID := c.Param("id")

	res, err := h.resumeUsecase.RecordUsage(userID, resumeID)
	if err != nil {
		respondResumeError(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}

func respondResumeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrResumeNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Resume not found"})
	case errors.Is(err, usecase.ErrUnauthorized):
		c.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized"})
	case errors.Is(err, usecase.ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
