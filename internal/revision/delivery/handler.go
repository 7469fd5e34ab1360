package delivery

import (
	"errors"
	"net/http"

	"jobtrackr-backend/internal/revision/usecase"

	"github.com/gin-gonic/gin"
)

// RevisionHandler handles revision-related HTTP requests
type RevisionHandler struct {
	revisionUsecase usecase.RevisionUsecase
}

// NewRevisionHandler creates a new RevisionHandler
func NewRevisionHandler(revisionUsecase usecase.RevisionUsecase) *RevisionHandler {
	return &RevisionHandler{
		revisionUsecase: revisionUsecase,
	}
}

// GetRevisions lists the user's revision topics, soonest first
// GET /api/revisions
func (h *RevisionHandler) GetRevisions(c *gin.Context) {
	userID := c.GetString("userID")

	revs, err := h.revisionUsecase.ListRevisions(userID)
	if err != nil {
		respondRevisionError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"revisions": revs,
		"total":     len(revs),
	})
}

// CreateRevision adds a new topic to the revision schedule
// POST /api/revisions
func (h *RevisionHandler) CreateRevision(c *gin.Context) {
	userID := c.GetString("userID")

	var input usecase.RevisionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rev, err := h.revisionUsecase.CreateRevision(userID, input)
	if err != nil {
		respondRevisionError(c, err)
		return
	}

	c.JSON(http.StatusCreated, rev)
}

// UpdateRevision updates a revision topic
// PUT /api/revisions/:id
func (h *RevisionHandler) UpdateRevision(c *gin.Context) {
	userID := c.GetString("userID")
	revisionID := c.Param("id")

	var input usecase.RevisionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rev, err := h.revisionUsecase.UpdateRevision(userID, revisionID, input)
	if err != nil {
		respondRevisionError(c, err)
		return
	}

	c.JSON(http.StatusOK, rev)
}

// DeleteRevision deletes a revision topic
// DELETE /api/revisions/:id
func (h *RevisionHandler) DeleteRevision(c *gin.Context) {
	userID := c.GetString("userID")
	revisionID := c.Param("id")

	if err := h.revisionUsecase.DeleteRevision(userID, revisionID); err != nil {
		respondRevisionError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Revision deleted successfully"})
}

// MarkRevised records a completed study pass and reschedules the topic
// POST /api/revisions/:id/revised
func (h *RevisionHandler) MarkRevised(c *gin.Context) {
	userID := c.GetString("userID")
	revisionID := c.Param("id")

	rev, err := h.revisionUsecase.MarkRevised(userID, revisionID)
	if err != nil {
		respondRevisionError(c, err)
		return
	}

	c.JSON(http.StatusOK, rev)
}

func respondRevisionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrRevisionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Revision not found"})
	case errors.Is(err, usecase.ErrUnauthorized):
		c.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized"})
	case errors.Is(err, usecase.ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
