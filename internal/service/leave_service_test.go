package service

import (
	"context"
	"testing"
	"time"

	"github.com/clocked-app/clocked/internal/domain"
	"github.com/clocked-app/clocked/internal/repository"
	"github.com/clocked-app/clocked/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeaveService_Create(t *testing.T) {
	env := newTestEnv(t, london(t, 2022, time.June, 15, 9, 0))
	ctx := context.Background()

	leave := &domain.LeaveEntry{
		UserID:   env.userID,
		Type:     domain.LeaveAnnual,
		Start:    london(t, 2022, time.June, 20, 0, 0).Unix(),
		Duration: 1,
	}
	require.NoError(t, env.leave.Create(ctx, leave))
	assert.NotEmpty(t, leave.ID, "ID is assigned on create")

	fetched, err := env.leave.GetByID(ctx, env.userID, leave.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.LeaveAnnual, fetched.Type)
}

func TestLeaveService_Create_Invalid(t *testing.T) {
	env := newTestEnv(t, london(t, 2022, time.June, 15, 9, 0))
	ctx := context.Background()

	err := env.leave.Create(ctx, &domain.LeaveEntry{
		UserID: env.userID, Type: "sabbatical", Start: 0, Duration: 1,
	})
	assert.Error(t, err)

	err = env.leave.Create(ctx, &domain.LeaveEntry{
		UserID: env.userID, Type: domain.LeaveSick, Start: 0, Duration: 0,
	})
	assert.Error(t, err)
}

func TestLeaveService_GetByID_ScopedToUser(t *testing.T) {
	env := newTestEnv(t, london(t, 2022, time.June, 15, 9, 0))
	ctx := context.Background()

	leave := testutil.NewTestLeave(env.userID, 1000, 1)
	require.NoError(t, env.leave.Create(ctx, leave))

	_, err := env.leave.GetByID(ctx, "someone-else", leave.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestLeaveService_UpdateAndDelete(t *testing.T) {
	env := newTestEnv(t, london(t, 2022, time.June, 15, 9, 0))
	ctx := context.Background()

	leave := testutil.NewTestLeave(env.userID, 1000, 1)
	require.NoError(t, env.leave.Create(ctx, leave))

	leave.Duration = 0.5
	require.NoError(t, env.leave.Update(ctx, leave))

	fetched, err := env.leave.GetByID(ctx, env.userID, leave.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.5, fetched.Duration)

	require.NoError(t, env.leave.Delete(ctx, env.userID, leave.ID))
	_, err = env.leave.GetByID(ctx, env.userID, leave.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
