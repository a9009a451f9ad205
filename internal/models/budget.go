package models

import "time"

// Budget is a monthly spending plan. Duplicates per (user, month, year)
// are allowed; the client treats the first match as current.
type Budget struct {
	ID          uint             `gorm:"primaryKey" json:"id"`
	UserID      uint             `gorm:"index;not null" json:"user_id"`
	Month       int              `gorm:"not null" json:"month"` // 1-12
	Year        int              `gorm:"not null" json:"year"`
	TotalBudget float64          `gorm:"not null" json:"total_budget"`
	CreatedAt   time.Time        `json:"created_at"`
	Categories  []BudgetCategory `gorm:"foreignKey:BudgetID;constraint:OnDelete:CASCADE" json:"categories"`
}

// BudgetCategory is a per-category limit inside a budget. Created in
// bulk with its parent budget; no standalone endpoints.
type BudgetCategory struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	BudgetID     uint    `gorm:"index;not null" json:"budget_id"`
	CategoryName string  `gorm:"size:64;not null" json:"category_name"`
	LimitAmount  float64 `gorm:"not null" json:"limit_amount"`
}
