package handler

import (
	"net/http"

	"github.com/BasmaLLaa/HCI-Project/internal/models"
	"github.com/BasmaLLaa/HCI-Project/internal/service"
	"github.com/BasmaLLaa/HCI-Project/internal/util"

	"github.com/gin-gonic/gin"
)

// GoalHandler serves the savings-goal CRUD endpoints.
type GoalHandler struct {
	Goals *service.GoalService
}

func NewGoalHandler(goals *service.GoalService) *GoalHandler {
	return &GoalHandler{Goals: goals}
}

type createGoalReq struct {
	GoalName     string  `json:"goalName"`
	TargetAmount float64 `json:"targetAmount"`
	TargetDate   string  `json:"targetDate"`
}

// updateGoalReq uses pointers so an absent field is distinguishable
// from a zero value.
type updateGoalReq struct {
	CurrentAmount *float64 `json:"currentAmount"`
	GoalName      *string  `json:"goalName"`
	TargetAmount  *float64 `json:"targetAmount"`
	TargetDate    *string  `json:"targetDate"`
}

// CreateGoal adds a savings goal. Zero or negative targets are
// rejected so progress percentages stay well defined.
func (h *GoalHandler) CreateGoal(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req createGoalReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "Goal name and target amount are required")
		return
	}
	if req.GoalName == "" || req.TargetAmount == 0 {
		util.Error(c, http.StatusBadRequest, "Goal name and target amount are required")
		return
	}
	if req.TargetAmount < 0 {
		util.Error(c, http.StatusBadRequest, "Target amount must be greater than zero")
		return
	}
	if req.TargetDate != "" {
		if err := util.ValidateDate(req.TargetDate); err != nil {
			util.Error(c, http.StatusBadRequest, "Target date must be in YYYY-MM-DD format")
			return
		}
	}

	goal := models.Goal{
		GoalName:     req.GoalName,
		TargetAmount: req.TargetAmount,
	}
	if req.TargetDate != "" {
		goal.TargetDate = &req.TargetDate
	}
	if err := h.Goals.Create(c.Request.Context(), userID, &goal); err != nil {
		fail(c, err, "")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Goal created successfully",
		"goalId":  goal.ID,
	})
}

// ListGoals returns the caller's goals.
func (h *GoalHandler) ListGoals(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	goals, err := h.Goals.List(c.Request.Context(), userID)
	if err != nil {
		fail(c, err, "")
		return
	}
	c.JSON(http.StatusOK, goals)
}

// UpdateGoal mutates either the progress amount or the descriptive
// fields, never both in one request: when currentAmount is present,
// any other fields in the body are ignored.
func (h *GoalHandler) UpdateGoal(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	id, ok := pathID(c)
	if !ok {
		return
	}

	var req updateGoalReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, "No fields to update")
		return
	}
	if req.TargetDate != nil && *req.TargetDate != "" {
		if err := util.ValidateDate(*req.TargetDate); err != nil {
			util.Error(c, http.StatusBadRequest, "Target date must be in YYYY-MM-DD format")
			return
		}
	}
	// the same target rule as creation, but only when the field would
	// actually be applied
	if req.CurrentAmount == nil && req.TargetAmount != nil && *req.TargetAmount <= 0 {
		util.Error(c, http.StatusBadRequest, "Target amount must be greater than zero")
		return
	}

	err := h.Goals.Update(c.Request.Context(), userID, id, service.GoalPatch{
		CurrentAmount: req.CurrentAmount,
		GoalName:      req.GoalName,
		TargetAmount:  req.TargetAmount,
		TargetDate:    req.TargetDate,
	})
	if err != nil {
		fail(c, err, "Goal not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Goal updated successfully"})
}

// DeleteGoal removes an owned goal.
func (h *GoalHandler) DeleteGoal(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.Goals.Delete(c.Request.Context(), userID, id); err != nil {
		fail(c, err, "Goal not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Goal deleted successfully"})
}
