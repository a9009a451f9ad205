package service

import (
	"context"
	"testing"

	"github.com/BasmaLLaa/HCI-Project/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpenseRoundTrip_MonthFilter(t *testing.T) {
	db := openTestDB(t)
	svc := NewExpenseService(db)
	ctx := context.Background()
	userID := seedUser(t, db, "alice")

	seedExpense(t, db, userID, "Food", 42.50, "2025-03-15")
	seedExpense(t, db, userID, "Rent", 900, "2025-02-01")
	seedExpense(t, db, userID, "Food", 12, "2025-04-02")

	got, err := svc.List(ctx, userID, 3, 2025)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Food", got[0].Category)
	assert.Equal(t, 42.50, got[0].Amount)
	assert.Equal(t, "2025-03-15", got[0].Date)
}

func TestExpenseList_NewestFirst(t *testing.T) {
	db := openTestDB(t)
	svc := NewExpenseService(db)
	ctx := context.Background()
	userID := seedUser(t, db, "bob")

	seedExpense(t, db, userID, "a", 1, "2025-01-10")
	seedExpense(t, db, userID, "b", 2, "2025-03-01")
	seedExpense(t, db, userID, "c", 3, "2025-02-20")

	got, err := svc.List(ctx, userID, 0, 0)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"2025-03-01", "2025-02-20", "2025-01-10"},
		[]string{got[0].Date, got[1].Date, got[2].Date})
}

func TestExpense_OwnerIsolation(t *testing.T) {
	db := openTestDB(t)
	svc := NewExpenseService(db)
	ctx := context.Background()

	owner := seedUser(t, db, "owner")
	intruder := seedUser(t, db, "intruder")
	id := seedExpense(t, db, owner, "Food", 10, "2025-05-01")

	// the intruder cannot see, update, or delete the owner's row
	got, err := svc.List(ctx, intruder, 0, 0)
	require.NoError(t, err)
	assert.Empty(t, got)

	err = svc.Update(ctx, intruder, id, models.Expense{Category: "x", Amount: 1, Date: "2025-05-02"})
	assert.ErrorIs(t, err, ErrNotFound)

	err = svc.Delete(ctx, intruder, id)
	assert.ErrorIs(t, err, ErrNotFound)

	var count int64
	require.NoError(t, db.Model(&models.Expense{}).Count(&count).Error)
	assert.EqualValues(t, 1, count, "foreign delete must not remove rows")

	// the row is untouched
	mine, err := svc.List(ctx, owner, 0, 0)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "Food", mine[0].Category)
}

func TestExpenseUpdate_ReplacesFields(t *testing.T) {
	db := openTestDB(t)
	svc := NewExpenseService(db)
	ctx := context.Background()
	userID := seedUser(t, db, "carol")

	id := seedExpense(t, db, userID, "Food", 10, "2025-05-01")

	err := svc.Update(ctx, userID, id, models.Expense{
		Category:    "Transport",
		Amount:      25.75,
		Description: "bus pass",
		Date:        "2025-05-03",
		IsRecurring: true,
	})
	require.NoError(t, err)

	got, err := svc.List(ctx, userID, 0, 0)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Transport", got[0].Category)
	assert.Equal(t, 25.75, got[0].Amount)
	assert.Equal(t, "bus pass", got[0].Description)
	assert.True(t, got[0].IsRecurring)
}

func TestExpenseDelete_Missing(t *testing.T) {
	db := openTestDB(t)
	svc := NewExpenseService(db)
	ctx := context.Background()
	userID := seedUser(t, db, "dave")

	err := svc.Delete(ctx, userID, 9999)
	assert.ErrorIs(t, err, ErrNotFound)
}
