package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"focalflow/internal/event"
	"focalflow/internal/model"
	"focalflow/internal/repository"
)

type InspirationHandler struct {
	inspirationRepo *repository.InspirationRepository
	notifier        *event.Notifier
}

func NewInspirationHandler(inspirationRepo *repository.InspirationRepository, notifier *event.Notifier) *InspirationHandler {
	return &InspirationHandler{
		inspirationRepo: inspirationRepo,
		notifier:        notifier,
	}
}

// ListFolders handles GET /inspiration/folders
func (h *InspirationHandler) ListFolders(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	folders, err := h.inspirationRepo.ListFolders(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch folders"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"folders": folders})
}

// CreateFolder handles POST /inspiration/folders
func (h *InspirationHandler) CreateFolder(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req struct {
		Name        string `json:"name" binding:"required"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	f := &model.InspirationFolder{
		ID:          uuid.NewString(),
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
	}

	if err := h.inspirationRepo.InsertFolder(c.Request.Context(), f); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create folder"})
		return
	}

	h.notifier.Changed("inspiration_folder", event.ActionCreated, f.ID, userID)
	c.JSON(http.StatusCreated, f)
}

// UpdateFolder handles PUT /inspiration/folders/:id
func (h *InspirationHandler) UpdateFolder(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req struct {
		Name        string `json:"name" binding:"required"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	f := &model.InspirationFolder{
		ID:          c.Param("id"),
		UserID:      userID,
		Name:        req.Name,
		Description: req.Description,
	}

	if err := h.inspirationRepo.UpdateFolder(c.Request.Context(), f); err != nil {
		respondStoreError(c, err, "failed to update folder")
		return
	}

	h.notifier.Changed("inspiration_folder", event.ActionUpdated, f.ID, userID)
	c.JSON(http.StatusOK, f)
}

// DeleteFolder handles DELETE /inspiration/folders/:id
func (h *InspirationHandler) DeleteFolder(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if err := h.inspirationRepo.DeleteFolder(c.Request.Context(), id, userID); err != nil {
		respondStoreError(c, err, "failed to delete folder")
		return
	}

	h.notifier.Changed("inspiration_folder", event.ActionDeleted, id, userID)
	c.Status(http.StatusNoContent)
}

// ListItems handles GET /inspiration/folders/:id/items
func (h *InspirationHandler) ListItems(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	items, err := h.inspirationRepo.ListItems(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch items"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

// CreateItem handles POST /inspiration/folders/:id/items
func (h *InspirationHandler) CreateItem(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req struct {
		Title    string `json:"title" binding:"required"`
		URL      string `json:"url" binding:"required,url"`
		ImageURL string `json:"image_url"`
		Notes    string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	// folder must exist and belong to the caller
	folderID := c.Param("id")
	if _, err := h.inspirationRepo.FindFolderByID(c.Request.Context(), folderID, userID); err != nil {
		respondStoreError(c, err, "failed to fetch folder")
		return
	}

	it := &model.InspirationItem{
		ID:       uuid.NewString(),
		FolderID: folderID,
		UserID:   userID,
		Title:    req.Title,
		URL:      req.URL,
		ImageURL: req.ImageURL,
		Notes:    req.Notes,
	}

	if err := h.inspirationRepo.InsertItem(c.Request.Context(), it); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create item"})
		return
	}

	h.notifier.Changed("inspiration_item", event.ActionCreated, it.ID, userID)
	c.JSON(http.StatusCreated, it)
}

// UpdateItem handles PUT /inspiration/items/:id
func (h *InspirationHandler) UpdateItem(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req struct {
		Title    string `json:"title" binding:"required"`
		URL      string `json:"url" binding:"required,url"`
		ImageURL string `json:"image_url"`
		Notes    string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	it := &model.InspirationItem{
		ID:       c.Param("id"),
		UserID:   userID,
		Title:    req.Title,
		URL:      req.URL,
		ImageURL: req.ImageURL,
		Notes:    req.Notes,
	}

	if err := h.inspirationRepo.UpdateItem(c.Request.Context(), it); err != nil {
		respondStoreError(c, err, "failed to update item")
		return
	}

	h.notifier.Changed("inspiration_item", event.ActionUpdated, it.ID, userID)
	c.JSON(http.StatusOK, it)
}

// DeleteItem handles DELETE /inspiration/items/:id
func (h *InspirationHandler) DeleteItem(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if err := h.inspirationRepo.DeleteItem(c.Request.Context(), id, userID); err != nil {
		respondStoreError(c, err, "failed to delete item")
		return
	}

	h.notifier.Changed("inspiration_item", event.ActionDeleted, id, userID)
	c.Status(http.StatusNoContent)
}
