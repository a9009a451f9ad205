package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/BasmaLLaa/HCI-Project/internal/config"
	"github.com/BasmaLLaa/HCI-Project/internal/database"
	"github.com/BasmaLLaa/HCI-Project/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// openTestDB creates a throwaway on-disk sqlite database so the pooled
// connections of concurrent gathers all see the same store.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Init(config.DatabaseConfig{
		Path: filepath.Join(t.TempDir(), "test.db"),
	})
	require.NoError(t, err, "open test database")
	require.NoError(t, database.AutoMigrate(db), "migrate test database")
	return db
}

// seedUser registers a user directly and returns its id.
func seedUser(t *testing.T, db *gorm.DB, username string) uint {
	t.Helper()

	auth := NewAuthService(db, 4) // min-ish cost, tests don't need slow hashes
	user, err := auth.Register(context.Background(), username, username+"@example.com", "pass-"+username)
	require.NoError(t, err)
	return user.ID
}

func seedExpense(t *testing.T, db *gorm.DB, userID uint, category string, amount float64, date string) uint {
	t.Helper()

	svc := NewExpenseService(db)
	e := models.Expense{Category: category, Amount: amount, Date: date}
	require.NoError(t, svc.Create(context.Background(), userID, &e))
	return e.ID
}

func seedIncome(t *testing.T, db *gorm.DB, userID uint, source string, amount float64, date string) uint {
	t.Helper()

	svc := NewIncomeService(db)
	in := models.Income{Source: source, Amount: amount, Date: date}
	require.NoError(t, svc.Create(context.Background(), userID, &in))
	return in.ID
}
