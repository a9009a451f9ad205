package handler

import (
	"net/http"
	"strconv"

	"github.com/BasmaLLaa/HCI-Project/internal/models"
	"github.com/BasmaLLaa/HCI-Project/internal/service"
	"github.com/BasmaLLaa/HCI-Project/internal/util"

	"github.com/gin-gonic/gin"
)

// ExpenseHandler serves the expense CRUD endpoints.
type ExpenseHandler struct {
	Expenses *service.ExpenseService
}

func NewExpenseHandler(expenses *service.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{Expenses: expenses}
}

type expenseReq struct {
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
	IsRecurring bool    `json:"isRecurring"`
}

func (r expenseReq) validate(c *gin.Context) bool {
	if r.Category == "" || r.Amount == 0 || r.Date == "" {
		util.Error(c, http.StatusBadRequest, "Category, amount, and date are required")
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

// CreateExpense adds one expense to the caller's ledger.
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req expenseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "Category, amount, and date are required")
		return
	}
	if !req.validate(c) {
		return
	}

	expense := models.Expense{
		Category:    req.Category,
		Amount:      req.Amount,
		Description: req.Description,
		Date:        req.Date,
		IsRecurring: req.IsRecurring,
	}
	if err := h.Expenses.Create(c.Request.Context(), userID, &expense); err != nil {
		fail(c, err, "")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Expense added successfully",
		"expenseId": expense.ID,
	})
}

// ListExpenses returns the caller's expenses, optionally filtered by
// ?month=&year=.
func (h *ExpenseHandler) ListExpenses(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	month, year, ok := monthYearFilter(c)
	if !ok {
		return
	}

	expenses, err := h.Expenses.List(c.Request.Context(), userID, month, year)
	if err != nil {
		fail(c, err, "")
		return
	}
	c.JSON(http.StatusOK, expenses)
}

// UpdateExpense replaces an owned expense's fields.
func (h *ExpenseHandler) UpdateExpense(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	id, ok := pathID(c)
	if !ok {
		return
	}

	var req expenseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "Category, amount, and date are required")
		return
	}
	if !req.validate(c) {
		return
	}

	err := h.Expenses.Update(c.Request.Context(), userID, id, models.Expense{
		Category:    req.Category,
		Amount:      req.Amount,
		Description: req.Description,
		Date:        req.Date,
		IsRecurring: req.IsRecurring,
	})
	if err != nil {
		fail(c, err, "Expense not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Expense updated successfully"})
}

// DeleteExpense removes an owned expense.
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.Expenses.Delete(c.Request.Context(), userID, id); err != nil {
		fail(c, err, "Expense not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Expense deleted successfully"})
}

// pathID parses the :id route parameter, answering 400 itself on junk.
func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		util.Error(c, http.StatusBadRequest, "Invalid id")
		return 0, false
	}
	return uint(id), true
}

// monthYearFilter parses the optional ?month=&year= pair. Both must be
// present and numeric for the filter to apply.
func monthYearFilter(c *gin.Context) (month, year int, ok bool) {
	monthStr := c.Query("month")
	yearStr := c.Query("year")
	if monthStr == "" || yearStr == "" {
		return 0, 0, true
	}

	m, errM := strconv.Atoi(monthStr)
	y, errY := strconv.Atoi(yearStr)
	if errM != nil || errY != nil || util.ValidateMonth(m) != nil || y <= 0 {
		util.Error(c, http.StatusBadRequest, "Invalid month or year")
		return 0, 0, false
	}
	return m, y, true
}
