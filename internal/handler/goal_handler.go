package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"focalflow/internal/event"
	"focalflow/internal/model"
	"focalflow/internal/repository"
)

type GoalHandler struct {
	goalRepo *repository.GoalRepository
	notifier *event.Notifier
}

func NewGoalHandler(goalRepo *repository.GoalRepository, notifier *event.Notifier) *GoalHandler {
	return &GoalHandler{
		goalRepo: goalRepo,
		notifier: notifier,
	}
}

type goalRequest struct {
	Title         string  `json:"title" binding:"required"`
	TargetAmount  float64 `json:"target_amount" binding:"required,gt=0"`
	CurrentAmount float64 `json:"current_amount" binding:"gte=0"`
	Deadline      string  `json:"deadline"`
	Icon          string  `json:"icon"`
}

// ListGoals handles GET /goals
func (h *GoalHandler) ListGoals(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	goals, err := h.goalRepo.ListByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch goals"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"goals": goals})
}

// CreateGoal handles POST /goals
func (h *GoalHandler) CreateGoal(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req goalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	deadline, err := parseDate(req.Deadline)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	g := &model.Goal{
		ID:            uuid.NewString(),
		UserID:        userID,
		Title:         req.Title,
		TargetAmount:  req.TargetAmount,
		CurrentAmount: req.CurrentAmount,
		Deadline:      deadline,
		Icon:          req.Icon,
	}

	if err := h.goalRepo.Insert(c.Request.Context(), g); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create goal"})
		return
	}

	h.notifier.Changed("goal", event.ActionCreated, g.ID, userID)
	c.JSON(http.StatusCreated, g)
}

// UpdateGoal handles PUT /goals/:id
func (h *GoalHandler) UpdateGoal(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req goalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	deadline, err := parseDate(req.Deadline)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	g := &model.Goal{
		ID:            c.Param("id"),
		UserID:        userID,
		Title:         req.Title,
		TargetAmount:  req.TargetAmount,
		CurrentAmount: req.CurrentAmount,
		Deadline:      deadline,
		Icon:          req.Icon,
	}

	if err := h.goalRepo.Update(c.Request.Context(), g); err != nil {
		respondStoreError(c, err, "failed to update goal")
		return
	}

	h.notifier.Changed("goal", event.ActionUpdated, g.ID, userID)
	c.JSON(http.StatusOK, g)
}

// AddGoalProgress handles PATCH /goals/:id/progress
func (h *GoalHandler) AddGoalProgress(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req struct {
		Amount float64 `json:"amount" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	g, err := h.goalRepo.AddProgress(c.Request.Context(), c.Param("id"), userID, req.Amount)
	if err != nil {
		respondStoreError(c, err, "failed to update goal progress")
		return
	}

	h.notifier.Changed("goal", event.ActionUpdated, g.ID, userID)
	c.JSON(http.StatusOK, g)
}

// DeleteGoal handles DELETE /goals/:id
func (h *GoalHandler) DeleteGoal(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if err := h.goalRepo.Delete(c.Request.Context(), id, userID); err != nil {
		respondStoreError(c, err, "failed to delete goal")
		return
	}

	h.notifier.Changed("goal", event.ActionDeleted, id, userID)
	c.Status(http.StatusNoContent)
}
