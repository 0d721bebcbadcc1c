package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"focalflow/internal/derive"
	"focalflow/internal/service/dashboard"
)

type DashboardHandler struct {
	dashboardService *dashboard.Service
}

func NewDashboardHandler(dashboardService *dashboard.Service) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// GetStats handles GET /dashboard?window=
func (h *DashboardHandler) GetStats(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	window := derive.ParseWindow(c.Query("window"))
	stats, err := h.dashboardService.Stats(c.Request.Context(), userID, window)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute stats"})
		return
	}

	c.JSON(http.StatusOK, stats)
}
