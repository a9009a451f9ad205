package handler

import (
	"net/http"

	"github.com/BasmaLLaa/HCI-Project/internal/service"
	"github.com/BasmaLLaa/HCI-Project/internal/util"

	"github.com/gin-gonic/gin"
)

// BudgetHandler serves budget creation and listing.
type BudgetHandler struct {
	Budgets *service.BudgetService
}

func NewBudgetHandler(budgets *service.BudgetService) *BudgetHandler {
	return &BudgetHandler{Budgets: budgets}
}

type createBudgetReq struct {
	Month       int     `json:"month"`
	Year        int     `json:"year"`
	TotalBudget float64 `json:"totalBudget"`
	Categories  []struct {
		Name  string  `json:"name"`
		Limit float64 `json:"limit"`
	} `json:"categories"`
}

// CreateBudget inserts a budget and its category limits as one unit.
func (h *BudgetHandler) CreateBudget(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req createBudgetReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "Month, year, and total budget are required")
		return
	}
	if req.Month == 0 || req.Year == 0 || req.TotalBudget == 0 {
		util.Error(c, http.StatusBadRequest, "Month, year, and total budget are required")
		return
	}
	if err := util.ValidateMonth(req.Month); err != nil {
		util.Error(c, http.StatusBadRequest, "Month must be between 1 and 12")
		return
	}
	if err := util.ValidateAmount(req.TotalBudget); err != nil {
		util.Error(c, http.StatusBadRequest, "Total budget must be a positive number")
		return
	}

	categories := make([]service.CategoryLimit, 0, len(req.Categories))
	for _, cat := range req.Categories {
		categories = append(categories, service.CategoryLimit{Name: cat.Name, Limit: cat.Limit})
	}

	budgetID, err := h.Budgets.Create(c.Request.Context(), userID, req.Month, req.Year, req.TotalBudget, categories)
	if err != nil {
		fail(c, err, "")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Budget created successfully",
		"budgetId": budgetID,
	})
}

// ListBudgets returns the caller's budgets with nested categories.
func (h *BudgetHandler) ListBudgets(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	budgets, err := h.Budgets.List(c.Request.Context(), userID)
	if err != nil {
		fail(c, err, "")
		return
	}
	c.JSON(http.StatusOK, budgets)
}
