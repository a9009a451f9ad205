package models

import "time"

// Goal is a savings target. CurrentAmount only advances through
// explicit client updates, never derived from the ledger.
type Goal struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uint      `gorm:"index;not null" json:"user_id"`
	GoalName      string    `gorm:"size:64;not null" json:"goal_name"`
	TargetAmount  float64   `gorm:"not null" json:"target_amount"`
	CurrentAmount float64   `gorm:"default:0" json:"current_amount"`
	TargetDate    *string   `gorm:"size:10" json:"target_date"`
	CreatedAt     time.Time `json:"created_at"`
}
