package service

import (
	"context"

	"github.com/BasmaLLaa/HCI-Project/internal/models"

	"gorm.io/gorm"
)

// BudgetService creates and lists monthly budgets with their category
// limits.
type BudgetService struct {
	DB *gorm.DB
}

func NewBudgetService(db *gorm.DB) *BudgetService {
	return &BudgetService{DB: db}
}

// CategoryLimit is one category allocation inside a new budget.
type CategoryLimit struct {
	Name  string
	Limit float64
}

// Create inserts a budget and its category rows in one transaction:
// either everything commits or nothing does. Returns the new budget id.
func (s *BudgetService) Create(ctx context.Context, userID uint, month, year int, totalBudget float64, categories []CategoryLimit) (uint, error) {
	budget := models.Budget{
		UserID:      userID,
		Month:       month,
		Year:        year,
		TotalBudget: totalBudget,
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&budget).Error; err != nil {
			return err
		}
		for _, cat := range categories {
			row := models.BudgetCategory{
				BudgetID:     budget.ID,
				CategoryName: cat.Name,
				LimitAmount:  cat.Limit,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, storage(err)
	}
	return budget.ID, nil
}

// List returns the caller's budgets, newest month first, each with its
// nested categories.
func (s *BudgetService) List(ctx context.Context, userID uint) ([]models.Budget, error) {
	budgets := make([]models.Budget, 0)
	if err := s.DB.WithContext(ctx).
		Preload("Categories").
		Where("user_id = ?", userID).
		Order("year DESC, month DESC").
		Find(&budgets).Error; err != nil {
		return nil, storage(err)
	}
	return budgets, nil
}
