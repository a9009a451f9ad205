package database

import (
	"fmt"

	"github.com/BasmaLLaa/HCI-Project/internal/models"

	"gorm.io/gorm"
)

// AutoMigrate runs database schema migrations for all models.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Budget{},
		&models.BudgetCategory{},
		&models.Expense{},
		&models.Income{},
		&models.Goal{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
