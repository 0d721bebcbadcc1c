package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"focalflow/internal/model"
	"focalflow/internal/repository"
)

type SettingsHandler struct {
	settingsRepo *repository.SettingsRepository
}

func NewSettingsHandler(settingsRepo *repository.SettingsRepository) *SettingsHandler {
	return &SettingsHandler{
		settingsRepo: settingsRepo,
	}
}

// GetSettings handles GET /settings
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	s, err := h.settingsRepo.Get(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch settings"})
		return
	}

	c.JSON(http.StatusOK, s)
}

// PutSettings handles PUT /settings
func (h *SettingsHandler) PutSettings(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req struct {
		Theme     string `json:"theme" binding:"required,oneof=dark light"`
		Currency  string `json:"currency" binding:"required,len=3"`
		WeekStart string `json:"week_start" binding:"required,oneof=sunday monday"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	s := &model.Settings{
		UserID:    userID,
		Theme:     req.Theme,
		Currency:  req.Currency,
		WeekStart: req.WeekStart,
	}

	if err := h.settingsRepo.Put(c.Request.Context(), s); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save settings"})
		return
	}

	c.JSON(http.StatusOK, s)
}
