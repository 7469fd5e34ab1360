package delivery

import (
	"errors"
	"net/http"

	"jobtrackr-backend/internal/settings/usecase"

	"github.com/gin-gonic/gin"
)

// SettingsHandler handles user preference HTTP requests
type SettingsHandler struct {
	settingsUsecase usecase.SettingsUsecase
}

// NewSettingsHandler creates a new SettingsHandler
func NewSettingsHandler(settingsUsecase usecase.SettingsUsecase) *SettingsHandler {
	return &SettingsHandler{
		settingsUsecase: settingsUsecase,
	}
}

// GetSettings returns the user's preferences
// GET /api/settings
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	userID := c.GetString("userID")

	settings, err := h.settingsUsecase.GetSettings(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, settings)
}

// UpdateSettings saves the user's preferences
// PUT /api/settings
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	userID := c.GetString("userID")

	var input usecase.SettingsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	settings, err := h.settingsUsecase.UpdateSettings(userID, input)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidSettings) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, settings)
}
