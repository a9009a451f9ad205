package router

import (
	"time"

	"github.com/BasmaLLaa/HCI-Project/internal/config"
	"github.com/BasmaLLaa/HCI-Project/internal/handler"
	"github.com/BasmaLLaa/HCI-Project/internal/middleware"
	"github.com/BasmaLLaa/HCI-Project/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Setup configures the gin engine and the API route table.
func Setup(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		gin.Logger(),
		gin.Recovery(),
		middleware.Timeout(time.Duration(cfg.Server.RequestTimeoutSeconds)*time.Second),
	)

	// client pages are a separate collaborator; we only serve their assets
	r.Static("/public", "./public")

	authService := service.NewAuthService(db, cfg.Security.BcryptCost)
	expenseService := service.NewExpenseService(db)
	incomeService := service.NewIncomeService(db)
	goalService := service.NewGoalService(db)
	budgetService := service.NewBudgetService(db)
	reportService := service.NewReportService(db)

	authHandler := handler.NewAuthHandler(authService, cfg.JWT.Secret, cfg.JWT.ExpireHours)
	expenseHandler := handler.NewExpenseHandler(expenseService)
	incomeHandler := handler.NewIncomeHandler(incomeService)
	goalHandler := handler.NewGoalHandler(goalService)
	budgetHandler := handler.NewBudgetHandler(budgetService)
	reportHandler := handler.NewReportHandler(reportService)
	exportHandler := handler.NewExportHandler(expenseService)

	api := r.Group("/api")

	// register/login are the only unauthenticated routes
	api.POST("/register", authHandler.Register)
	api.POST("/login", authHandler.Login)

	protected := api.Group("")
	protected.Use(middleware.Auth(cfg.JWT.Secret))

	protected.GET("/me", authHandler.Me)
	protected.GET("/dashboard", reportHandler.Dashboard)
	protected.GET("/reports", reportHandler.GetReports)

	protected.POST("/budgets", budgetHandler.CreateBudget)
	protected.GET("/budgets", budgetHandler.ListBudgets)

	protected.POST("/expenses", expenseHandler.CreateExpense)
	protected.GET("/expenses", expenseHandler.ListExpenses)
	protected.PUT("/expenses/:id", expenseHandler.UpdateExpense)
	protected.DELETE("/expenses/:id", expenseHandler.DeleteExpense)

	protected.POST("/income", incomeHandler.CreateIncome)
	protected.GET("/income", incomeHandler.ListIncome)
	protected.PUT("/income/:id", incomeHandler.UpdateIncome)
	protected.DELETE("/income/:id", incomeHandler.DeleteIncome)

	protected.POST("/goals", goalHandler.CreateGoal)
	protected.GET("/goals", goalHandler.ListGoals)
	protected.PUT("/goals/:id", goalHandler.UpdateGoal)
	protected.DELETE("/goals/:id", goalHandler.DeleteGoal)

	protected.GET("/export/csv", exportHandler.ExportCSV)
	protected.GET("/export/xlsx", exportHandler.ExportXLSX)

	return r
}
