package service

import (
	"context"

	"github.com/BasmaLLaa/HCI-Project/internal/models"

	"gorm.io/gorm"
)

// IncomeService is the owner-scoped CRUD surface for income entries.
type IncomeService struct {
	DB *gorm.DB
}

func NewIncomeService(db *gorm.DB) *IncomeService {
	return &IncomeService{DB: db}
}

// Create inserts an income entry owned by userID.
func (s *IncomeService) Create(ctx context.Context, userID uint, in *models.Income) error {
	in.ID = 0
	in.UserID = userID
	if err := s.DB.WithContext(ctx).Create(in).Error; err != nil {
		return storage(err)
	}
	return nil
}

// List returns the caller's income newest-first, optionally filtered
// to one calendar month.
func (s *IncomeService) List(ctx context.Context, userID uint, month, year int) ([]models.Income, error) {
	q := s.DB.WithContext(ctx).Where("user_id = ?", userID)
	if month != 0 && year != 0 {
		start, end := monthRange(year, month)
		q = q.Where("date >= ? AND date < ?", start, end)
	}

	income := make([]models.Income, 0)
	if err := q.Order("date DESC, id DESC").Find(&income).Error; err != nil {
		return nil, storage(err)
	}
	return income, nil
}

// Update replaces all mutable fields of an owned income entry.
func (s *IncomeService) Update(ctx context.Context, userID, id uint, in models.Income) error {
	res := s.DB.WithContext(ctx).Model(&models.Income{}).
		Where("id = ? AND user_id = ?", id, userID).
		Select("source", "amount", "date").
		Updates(in)
	if res.Error != nil {
		return storage(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes an owned income entry.
func (s *IncomeService) Delete(ctx context.Context, userID, id uint) error {
	res := s.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Income{})
	if res.Error != nil {
		return storage(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
