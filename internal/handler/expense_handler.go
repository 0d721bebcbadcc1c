package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"focalflow/internal/derive"
	"focalflow/internal/model"
	"focalflow/internal/service/finance"
)

type ExpenseHandler struct {
	financeService *finance.Service
}

func NewExpenseHandler(financeService *finance.Service) *ExpenseHandler {
	return &ExpenseHandler{
		financeService: financeService,
	}
}

type expenseRequest struct {
	Title    string  `json:"title" binding:"required"`
	Amount   float64 `json:"amount" binding:"required,gt=0"`
	Category string  `json:"category" binding:"required"`
	Date     string  `json:"date" binding:"required"`
	Notes    string  `json:"notes"`
}

func (req *expenseRequest) toModel(userID string) (*model.Expense, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}

	return &model.Expense{
		UserID:   userID,
		Title:    req.Title,
		Amount:   req.Amount,
		Category: model.ExpenseCategory(req.Category),
		Date:     *date,
		Notes:    req.Notes,
	}, nil
}

// ListExpenses handles GET /expenses?window=
func (h *ExpenseHandler) ListExpenses(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	window := derive.ParseWindow(c.Query("window"))
	expenses, err := h.financeService.List(c.Request.Context(), userID, window)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch expenses"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"expenses": expenses})
}

// CreateExpense handles POST /expenses
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req expenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	e, err := req.toModel(userID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.financeService.Create(c.Request.Context(), e)
	if err != nil {
		if errors.Is(err, finance.ErrInvalidCategory) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create expense"})
		return
	}

	c.JSON(http.StatusCreated, created)
}

// UpdateExpense handles PUT /expenses/:id
func (h *ExpenseHandler) UpdateExpense(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req expenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	e, err := req.toModel(userID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	e.ID = c.Param("id")

	updated, err := h.financeService.Update(c.Request.Context(), e)
	if err != nil {
		if errors.Is(err, finance.ErrInvalidCategory) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		respondStoreError(c, err, "failed to update expense")
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteExpense handles DELETE /expenses/:id
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.financeService.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondStoreError(c, err, "failed to delete expense")
		return
	}

	c.Status(http.StatusNoContent)
}
