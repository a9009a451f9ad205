package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/BasmaLLaa/HCI-Project/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportHandler downloads the caller's expense ledger as CSV or XLSX.
type ExportHandler struct {
	Expenses *service.ExpenseService
}

func NewExportHandler(expenses *service.ExpenseService) *ExportHandler {
	return &ExportHandler{Expenses: expenses}
}

var exportHeaders = []string{"Category", "Amount", "Description", "Date", "Recurring"}

// ExportCSV streams the full expense ledger as CSV.
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	expenses, err := h.Expenses.List(c.Request.Context(), userID, 0, 0)
	if err != nil {
		fail(c, err, "")
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"expenses_%s.csv\"",
		time.Now().Format("20060102")))

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	writer.Write(exportHeaders)
	for _, e := range expenses {
		recurring := "no"
		if e.IsRecurring {
			recurring = "yes"
		}
		writer.Write([]string{
			e.Category,
			strconv.FormatFloat(e.Amount, 'f', 2, 64),
			e.Description,
			e.Date,
			recurring,
		})
	}
}

// ExportXLSX writes the full expense ledger as an Excel workbook.
func (h *ExportHandler) ExportXLSX(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	expenses, err := h.Expenses.List(c.Request.Context(), userID, 0, 0)
	if err != nil {
		fail(c, err, "")
		return
	}

	f := excelize.NewFile()
	sheetName := "Expenses"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		fail(c, err, "")
		return
	}
	f.SetActiveSheet(index)

	for i, header := range exportHeaders {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
	}

	for idx, e := range expenses {
		row := idx + 2
		recurring := "no"
		if e.IsRecurring {
			recurring = "yes"
		}
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), e.Category)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), e.Amount)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), e.Description)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), e.Date)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), recurring)
	}

	f.SetColWidth(sheetName, "A", "A", 15)
	f.SetColWidth(sheetName, "B", "B", 12)
	f.SetColWidth(sheetName, "C", "C", 30)
	f.SetColWidth(sheetName, "D", "D", 12)
	f.SetColWidth(sheetName, "E", "E", 10)

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"expenses_%s.xlsx\"",
		time.Now().Format("20060102")))

	if err := f.Write(c.Writer); err != nil {
		c.Status(http.StatusInternalServerError)
	}
}
