package service

import (
	"context"
	"testing"

	"github.com/BasmaLLaa/HCI-Project/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestGoalUpdate_EitherOrRule(t *testing.T) {
	db := openTestDB(t)
	svc := NewGoalService(db)
	ctx := context.Background()
	userID := seedUser(t, db, "alice")

	goal := models.Goal{GoalName: "Vacation", TargetAmount: 2000}
	require.NoError(t, svc.Create(ctx, userID, &goal))

	// currentAmount present: descriptive fields in the same patch are ignored
	err := svc.Update(ctx, userID, goal.ID, GoalPatch{
		CurrentAmount: ptr(500.0),
		GoalName:      ptr("Hijacked"),
		TargetAmount:  ptr(1.0),
	})
	require.NoError(t, err)

	got, err := svc.List(ctx, userID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 500.0, got[0].CurrentAmount)
	assert.Equal(t, "Vacation", got[0].GoalName, "descriptive fields must stay untouched")
	assert.Equal(t, 2000.0, got[0].TargetAmount)
}

func TestGoalUpdate_DescriptiveFields(t *testing.T) {
	db := openTestDB(t)
	svc := NewGoalService(db)
	ctx := context.Background()
	userID := seedUser(t, db, "bob")

	goal := models.Goal{GoalName: "Car", TargetAmount: 5000}
	require.NoError(t, svc.Create(ctx, userID, &goal))

	err := svc.Update(ctx, userID, goal.ID, GoalPatch{
		GoalName:     ptr("New car"),
		TargetAmount: ptr(7500.0),
		TargetDate:   ptr("2026-06-01"),
	})
	require.NoError(t, err)

	got, err := svc.List(ctx, userID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "New car", got[0].GoalName)
	assert.Equal(t, 7500.0, got[0].TargetAmount)
	require.NotNil(t, got[0].TargetDate)
	assert.Equal(t, "2026-06-01", *got[0].TargetDate)
	assert.Zero(t, got[0].CurrentAmount, "progress must stay untouched")
}

func TestGoalUpdate_EmptyPatch(t *testing.T) {
	db := openTestDB(t)
	svc := NewGoalService(db)
	ctx := context.Background()
	userID := seedUser(t, db, "carol")

	goal := models.Goal{GoalName: "Fund", TargetAmount: 100}
	require.NoError(t, svc.Create(ctx, userID, &goal))

	err := svc.Update(ctx, userID, goal.ID, GoalPatch{})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestGoal_OwnerIsolation(t *testing.T) {
	db := openTestDB(t)
	svc := NewGoalService(db)
	ctx := context.Background()

	owner := seedUser(t, db, "owner")
	intruder := seedUser(t, db, "intruder")

	goal := models.Goal{GoalName: "Secret", TargetAmount: 100}
	require.NoError(t, svc.Create(ctx, owner, &goal))

	err := svc.Update(ctx, intruder, goal.ID, GoalPatch{CurrentAmount: ptr(99.0)})
	assert.ErrorIs(t, err, ErrNotFound)

	err = svc.Delete(ctx, intruder, goal.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGoalCreate_ZeroesProgress(t *testing.T) {
	db := openTestDB(t)
	svc := NewGoalService(db)
	ctx := context.Background()
	userID := seedUser(t, db, "dave")

	goal := models.Goal{GoalName: "Fund", TargetAmount: 100, CurrentAmount: 55}
	require.NoError(t, svc.Create(ctx, userID, &goal))

	got, err := svc.List(ctx, userID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Zero(t, got[0].CurrentAmount, "progress always starts at zero")
}
