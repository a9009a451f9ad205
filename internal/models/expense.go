package models

import "time"

// Expense is a single ledger entry on the spending side. Date is a
// calendar date stored as YYYY-MM-DD, so month bucketing is a prefix
// comparison and values round-trip unchanged.
type Expense struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"index;not null" json:"user_id"`
	Category    string    `gorm:"size:64;not null" json:"category"`
	Amount      float64   `gorm:"not null" json:"amount"`
	Description string    `gorm:"size:255" json:"description"`
	Date        string    `gorm:"size:10;index;not null" json:"date"`
	IsRecurring bool      `gorm:"default:false" json:"is_recurring"`
	CreatedAt   time.Time `json:"created_at"`
}
