package service

import (
	"context"

	"github.com/BasmaLLaa/HCI-Project/internal/models"

	"gorm.io/gorm"
)

// ExpenseService is the owner-scoped CRUD surface for expenses. Every
// method takes the caller's user id explicitly; there is no way to
// touch a row without one.
type ExpenseService struct {
	DB *gorm.DB
}

func NewExpenseService(db *gorm.DB) *ExpenseService {
	return &ExpenseService{DB: db}
}

// Create inserts an expense owned by userID.
func (s *ExpenseService) Create(ctx context.Context, userID uint, e *models.Expense) error {
	e.ID = 0
	e.UserID = userID
	if err := s.DB.WithContext(ctx).Create(e).Error; err != nil {
		return storage(err)
	}
	return nil
}

// List returns the caller's expenses newest-first. When month and year
// are both set, only that calendar month is returned.
func (s *ExpenseService) List(ctx context.Context, userID uint, month, year int) ([]models.Expense, error) {
	q := s.DB.WithContext(ctx).Where("user_id = ?", userID)
	if month != 0 && year != 0 {
		start, end := monthRange(year, month)
		q = q.Where("date >= ? AND date < ?", start, end)
	}

	expenses := make([]models.Expense, 0)
	if err := q.Order("date DESC, id DESC").Find(&expenses).Error; err != nil {
		return nil, storage(err)
	}
	return expenses, nil
}

// Update replaces all mutable fields of an owned expense. A row owned
// by someone else is indistinguishable from a missing one.
func (s *ExpenseService) Update(ctx context.Context, userID, id uint, e models.Expense) error {
	res := s.DB.WithContext(ctx).Model(&models.Expense{}).
		Where("id = ? AND user_id = ?", id, userID).
		Select("category", "amount", "description", "date", "is_recurring").
		Updates(e)
	if res.Error != nil {
		return storage(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes an owned expense.
func (s *ExpenseService) Delete(ctx context.Context, userID, id uint) error {
	res := s.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Expense{})
	if res.Error != nil {
		return storage(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
