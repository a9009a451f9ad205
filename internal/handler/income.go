package handler

import (
	"net/http"

	"github.com/BasmaLLaa/HCI-Project/internal/models"
	"github.com/BasmaLLaa/HCI-Project/internal/service"
	"github.com/BasmaLLaa/HCI-Project/internal/util"

	"github.com/gin-gonic/gin"
)

// IncomeHandler serves the income CRUD endpoints.
type IncomeHandler struct {
	Income *service.IncomeService
}

func NewIncomeHandler(income *service.IncomeService) *IncomeHandler {
	return &IncomeHandler{Income: income}
}

type incomeReq struct {
	Source string  `json:"source"`
	Amount float64 `json:"amount"`
	Date   string  `json:"date"`
}

func (r incomeReq) validate(c *gin.Context) bool {
	if r.Source == "" || r.Amount == 0 || r.Date == "" {
		util.Error(c, http.StatusBadRequest, "Source, amount, and date are required")
		return false
	}
	if err := util.ValidateAmount(r.Amount); err != nil {
		util.Error(c, http.StatusBadRequest, "Amount must be a positive number")
		return false
	}
	if err := util.ValidateDate(r.Date); err != nil {
		util.Error(c, http.StatusBadRequest, "Date must be in YYYY-MM-DD format")
		return false
	}
	return true
}

// CreateIncome adds one income entry to the caller's ledger.
func (h *IncomeHandler) CreateIncome(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req incomeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "Source, amount, and date are required")
		return
	}
	if !req.validate(c) {
		return
	}

	income := models.Income{
		Source: req.Source,
		Amount: req.Amount,
		Date:   req.Date,
	}
	if err := h.Income.Create(c.Request.Context(), userID, &income); err != nil {
		fail(c, err, "")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Income added successfully",
		"incomeId": income.ID,
	})
}

// ListIncome returns the caller's income, optionally filtered by
// ?month=&year=.
func (h *IncomeHandler) ListIncome(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	month, year, ok := monthYearFilter(c)
	if !ok {
		return
	}

	income, err := h.Income.List(c.Request.Context(), userID, month, year)
	if err != nil {
		fail(c, err, "")
		return
	}
	c.JSON(http.StatusOK, income)
}

// UpdateIncome replaces an owned income entry's fields.
func (h *IncomeHandler) UpdateIncome(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	id, ok := pathID(c)
	if !ok {
		return
	}

	var req incomeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "Source, amount, and date are required")
		return
	}
	if !req.validate(c) {
		return
	}

	err := h.Income.Update(c.Request.Context(), userID, id, models.Income{
		Source: req.Source,
		Amount: req.Amount,
		Date:   req.Date,
	})
	if err != nil {
		fail(c, err, "Income not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Income updated successfully"})
}

// DeleteIncome removes an owned income entry.
func (h *IncomeHandler) DeleteIncome(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.Income.Delete(c.Request.Context(), userID, id); err != nil {
		fail(c, err, "Income not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Income deleted successfully"})
}
