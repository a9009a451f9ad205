package handler

import (
	"net/http"
	"time"

	"github.com/BasmaLLaa/HCI-Project/internal/service"
	"github.com/BasmaLLaa/HCI-Project/internal/util"

	"github.com/gin-gonic/gin"
)

// ReportHandler serves the dashboard summary and historical reports.
type ReportHandler struct {
	Reports *service.ReportService
}

func NewReportHandler(reports *service.ReportService) *ReportHandler {
	return &ReportHandler{Reports: reports}
}

// Dashboard summarizes the current calendar month.
func (h *ReportHandler) Dashboard(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	dash, err := h.Reports.Dashboard(c.Request.Context(), userID, time.Now())
	if err != nil {
		fail(c, err, "")
		return
	}
	c.JSON(http.StatusOK, dash)
}

// GetReports returns the three aggregates over ?startDate&endDate.
func (h *ReportHandler) GetReports(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	startDate := c.Query("startDate")
	endDate := c.Query("endDate")
	if startDate == "" || endDate == "" {
		util.Error(c, http.StatusBadRequest, "Start date and end date are required")
		return
	}
	if util.ValidateDate(startDate) != nil || util.ValidateDate(endDate) != nil {
		util.Error(c, http.StatusBadRequest, "Dates must be in YYYY-MM-DD format")
		return
	}

	reports, err := h.Reports.Reports(c.Request.Context(), userID, startDate, endDate)
	if err != nil {
		fail(c, err, "")
		return
	}
	c.JSON(http.StatusOK, reports)
}
