package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"focalflow/internal/derive"
	"focalflow/internal/model"
	"focalflow/internal/service/projects"
)

type ProjectHandler struct {
	projectService *projects.Service
}

func NewProjectHandler(projectService *projects.Service) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
	}
}

type projectRequest struct {
	Title      string  `json:"title" binding:"required"`
	Type       string  `json:"type" binding:"required"`
	ClientName string  `json:"client_name"`
	Price      float64 `json:"price" binding:"gte=0"`
	Quantity   int     `json:"quantity"`
	Link       string  `json:"link"`
	SourceLink string  `json:"source_link"`
	Notes      string  `json:"notes"`
	Status     string  `json:"status"`
	StartDate  string  `json:"start_date"`
	Deadline   string  `json:"deadline"`
	DelayDays  *int    `json:"delay_days"`
}

func (req *projectRequest) toModel(userID string) (*model.Project, error) {
	start, err := parseDate(req.StartDate)
	if err != nil {
		return nil, err
	}
	deadline, err := parseDate(req.Deadline)
	if err != nil {
		return nil, err
	}

	quantity := req.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	return &model.Project{
		UserID:     userID,
		Title:      req.Title,
		Type:       model.ProjectType(req.Type),
		ClientName: req.ClientName,
		Price:      req.Price,
		Quantity:   quantity,
		Link:       req.Link,
		SourceLink: req.SourceLink,
		Notes:      req.Notes,
		Status:     model.ProjectStatus(req.Status),
		StartDate:  start,
		Deadline:   deadline,
		DelayDays:  req.DelayDays,
	}, nil
}

// ListProjects handles GET /projects?window=
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	window := derive.ParseWindow(c.Query("window"))
	views, err := h.projectService.List(c.Request.Context(), userID, window)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch projects"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"projects": views})
}

// GetProject handles GET /projects/:id
func (h *ProjectHandler) GetProject(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	view, err := h.projectService.Get(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondStoreError(c, err, "failed to fetch project")
		return
	}

	c.JSON(http.StatusOK, view)
}

// CreateProject handles POST /projects
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	p, err := req.toModel(userID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	view, err := h.projectService.Create(c.Request.Context(), p)
	if err != nil {
		if errors.Is(err, projects.ErrInvalidType) || errors.Is(err, projects.ErrInvalidStatus) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create project"})
		return
	}

	c.JSON(http.StatusCreated, view)
}

// UpdateProject handles PUT /projects/:id
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	p, err := req.toModel(userID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p.ID = c.Param("id")
	if p.Status == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status is required"})
		return
	}

	view, err := h.projectService.Update(c.Request.Context(), p)
	if err != nil {
		if errors.Is(err, projects.ErrInvalidType) || errors.Is(err, projects.ErrInvalidStatus) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		respondStoreError(c, err, "failed to update project")
		return
	}

	c.JSON(http.StatusOK, view)
}

// ToggleStep handles PATCH /projects/:id/steps
func (h *ProjectHandler) ToggleStep(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req struct {
		Key  string `json:"key" binding:"required"`
		Done *bool  `json:"done" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	view, err := h.projectService.ToggleStep(c.Request.Context(), userID, c.Param("id"), req.Key, *req.Done)
	if err != nil {
		if errors.Is(err, projects.ErrUnknownStep) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		respondStoreError(c, err, "failed to update step")
		return
	}

	c.JSON(http.StatusOK, view)
}

// SetStatus handles PATCH /projects/:id/status
func (h *ProjectHandler) SetStatus(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	view, err := h.projectService.SetStatus(c.Request.Context(), userID, c.Param("id"), model.ProjectStatus(req.Status))
	if err != nil {
		if errors.Is(err, projects.ErrInvalidStatus) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		respondStoreError(c, err, "failed to update status")
		return
	}

	c.JSON(http.StatusOK, view)
}

// DeleteProject handles DELETE /projects/:id
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.projectService.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondStoreError(c, err, "failed to delete project")
		return
	}

	c.Status(http.StatusNoContent)
}
