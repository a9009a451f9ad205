package models

import "time"

// Income is a single ledger entry on the earning side.
type Income struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	Source    string    `gorm:"size:64;not null" json:"source"`
	Amount    float64   `gorm:"not null" json:"amount"`
	Date      string    `gorm:"size:10;index;not null" json:"date"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName keeps the singular table name used by the client pages.
func (Income) TableName() string { return "income" }
