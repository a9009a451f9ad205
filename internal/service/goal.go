package service

import (
	"context"

	"github.com/BasmaLLaa/HCI-Project/internal/models"

	"gorm.io/gorm"
)

// GoalPatch carries the optional fields of a goal update. Pointers
// distinguish "absent" from zero values.
type GoalPatch struct {
	CurrentAmount *float64
	GoalName      *string
	TargetAmount  *float64
	TargetDate    *string
}

// Empty reports whether the patch carries no fields at all.
func (p GoalPatch) Empty() bool {
	return p.CurrentAmount == nil && p.GoalName == nil &&
		p.TargetAmount == nil && p.TargetDate == nil
}

// GoalService is the owner-scoped CRUD surface for savings goals.
type GoalService struct {
	DB *gorm.DB
}

func NewGoalService(db *gorm.DB) *GoalService {
	return &GoalService{DB: db}
}

// Create inserts a goal owned by userID. CurrentAmount always starts
// at zero regardless of the payload.
func (s *GoalService) Create(ctx context.Context, userID uint, g *models.Goal) error {
	g.ID = 0
	g.UserID = userID
	g.CurrentAmount = 0
	if err := s.DB.WithContext(ctx).Create(g).Error; err != nil {
		return storage(err)
	}
	return nil
}

// List returns the caller's goals newest-first.
func (s *GoalService) List(ctx context.Context, userID uint) ([]models.Goal, error) {
	goals := make([]models.Goal, 0)
	if err := s.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&goals).Error; err != nil {
		return nil, storage(err)
	}
	return goals, nil
}

// Update applies the either/or goal contract: a single call mutates
// either the progress amount or the descriptive fields, never both.
// When CurrentAmount is present, every other field in the patch is
// ignored. An empty patch is ErrValidation.
func (s *GoalService) Update(ctx context.Context, userID, id uint, patch GoalPatch) error {
	if patch.Empty() {
		return ErrValidation
	}

	updates := map[string]interface{}{}
	if patch.CurrentAmount != nil {
		updates["current_amount"] = *patch.CurrentAmount
	} else {
		if patch.GoalName != nil {
			updates["goal_name"] = *patch.GoalName
		}
		if patch.TargetAmount != nil {
			updates["target_amount"] = *patch.TargetAmount
		}
		if patch.TargetDate != nil {
			updates["target_date"] = *patch.TargetDate
		}
	}

	res := s.DB.WithContext(ctx).Model(&models.Goal{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(updates)
	if res.Error != nil {
		return storage(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes an owned goal.
func (s *GoalService) Delete(ctx context.Context, userID, id uint) error {
	res := s.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.Goal{})
	if res.Error != nil {
		return storage(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
