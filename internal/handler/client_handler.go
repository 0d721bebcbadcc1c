package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"focalflow/internal/event"
	"focalflow/internal/model"
	"focalflow/internal/repository"
)

type ClientHandler struct {
	clientRepo *repository.ClientRepository
	notifier   *event.Notifier
}

func NewClientHandler(clientRepo *repository.ClientRepository, notifier *event.Notifier) *ClientHandler {
	return &ClientHandler{
		clientRepo: clientRepo,
		notifier:   notifier,
	}
}

type clientRequest struct {
	Name         string `json:"name" binding:"required"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Company      string `json:"company"`
	YoutubeURL   string `json:"youtube_url"`
	InstagramURL string `json:"instagram_url"`
	Notes        string `json:"notes"`
}

// ListClients handles GET /clients
func (h *ClientHandler) ListClients(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	clients, err := h.clientRepo.ListByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch clients"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"clients": clients})
}

// CreateClient handles POST /clients
func (h *ClientHandler) CreateClient(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req clientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	record := &model.Client{
		ID:           uuid.NewString(),
		UserID:       userID,
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Company:      req.Company,
		YoutubeURL:   req.YoutubeURL,
		InstagramURL: req.InstagramURL,
		Notes:        req.Notes,
	}

	if err := h.clientRepo.Insert(c.Request.Context(), record); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create client"})
		return
	}

	h.notifier.Changed("client", event.ActionCreated, record.ID, userID)
	c.JSON(http.StatusCreated, record)
}

// GetClient handles GET /clients/:id
func (h *ClientHandler) GetClient(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	record, err := h.clientRepo.FindByID(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		respondStoreError(c, err, "failed to fetch client")
		return
	}

	c.JSON(http.StatusOK, record)
}

// UpdateClient handles PUT /clients/:id
func (h *ClientHandler) UpdateClient(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req clientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	record := &model.Client{
		ID:           c.Param("id"),
		UserID:       userID,
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Company:      req.Company,
		YoutubeURL:   req.YoutubeURL,
		InstagramURL: req.InstagramURL,
		Notes:        req.Notes,
	}

	if err := h.clientRepo.Update(c.Request.Context(), record); err != nil {
		respondStoreError(c, err, "failed to update client")
		return
	}

	h.notifier.Changed("client", event.ActionUpdated, record.ID, userID)
	c.JSON(http.StatusOK, record)
}

// DeleteClient handles DELETE /clients/:id
func (h *ClientHandler) DeleteClient(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	id := c.Param("id")
	if err := h.clientRepo.Delete(c.Request.Context(), id, userID); err != nil {
		respondStoreError(c, err, "failed to delete client")
		return
	}

	h.notifier.Changed("client", event.ActionDeleted, id, userID)
	c.Status(http.StatusNoContent)
}
