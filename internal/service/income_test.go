package service

import (
	"context"
	"testing"

	"github.com/BasmaLLaa/HCI-Project/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIncomeList_MonthFilter(t *testing.T) {
	db := openTestDB(t)
	svc := NewIncomeService(db)
	ctx := context.Background()
	userID := seedUser(t, db, "alice")

	seedIncome(t, db, userID, "Salary", 3000, "2025-03-01")
	seedIncome(t, db, userID, "Salary", 3000, "2025-04-01")

	got, err := svc.List(ctx, userID, 3, 2025)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "2025-03-01", got[0].Date)

	all, err := svc.List(ctx, userID, 0, 0)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestIncomeUpdate_OwnerScoped(t *testing.T) {
	db := openTestDB(t)
	svc := NewIncomeService(db)
	ctx := context.Background()

	owner := seedUser(t, db, "owner")
	intruder := seedUser(t, db, "intruder")
	id := seedIncome(t, db, owner, "Salary", 3000, "2025-03-01")

	err := svc.Update(ctx, intruder, id, models.Income{Source: "x", Amount: 1, Date: "2025-03-02"})
	assert.ErrorIs(t, err, ErrNotFound)

	err = svc.Update(ctx, owner, id, models.Income{Source: "Bonus", Amount: 250, Date: "2025-03-05"})
	require.NoError(t, err)

	got, err := svc.List(ctx, owner, 0, 0)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Bonus", got[0].Source)
	assert.Equal(t, 250.0, got[0].Amount)
}

func TestIncomeDelete(t *testing.T) {
	db := openTestDB(t)
	svc := NewIncomeService(db)
	ctx := context.Background()
	userID := seedUser(t, db, "bob")

	id := seedIncome(t, db, userID, "Salary", 3000, "2025-03-01")

	require.NoError(t, svc.Delete(ctx, userID, id))
	assert.ErrorIs(t, svc.Delete(ctx, userID, id), ErrNotFound)
}
