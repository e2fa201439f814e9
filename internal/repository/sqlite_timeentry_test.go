package repository

import (
	"context"
	"testing"

	"github.com/clocked-app/clocked/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// entryTestSetup creates a user and the repos needed by time entry tests.
func entryTestSetup(t *testing.T) (*SQLiteTimeEntryRepo, string) {
	t.Helper()
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	userRepo := NewSQLiteUserRepo(db)
	entryRepo := NewSQLiteTimeEntryRepo(db)

	user := testutil.NewTestUser()
	require.NoError(t, userRepo.Create(ctx, user))

	return entryRepo, user.ID
}

func TestTimeEntryRepo_CreateAndGetByID(t *testing.T) {
	repo, userID := entryTestSetup(t)
	ctx := context.Background()

	entry := testutil.NewTestEntry(userID, 1000, testutil.WithEnd(8200), testutil.WithBreak(2800, 3400))
	require.NoError(t, repo.Create(ctx, entry))

	fetched, err := repo.GetByID(ctx, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, entry.ID, fetched.ID)
	assert.Equal(t, userID, fetched.UserID)
	assert.Equal(t, int64(1000), fetched.Start)
	require.NotNil(t, fetched.End)
	assert.Equal(t, int64(8200), *fetched.End)
	require.Len(t, fetched.Breaks, 1)
	assert.Equal(t, int64(2800), fetched.Breaks[0].Start)
}

func TestTimeEntryRepo_GetByID_NotFound(t *testing.T) {
	repo, _ := entryTestSetup(t)

	_, err := repo.GetByID(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTimeEntryRepo_ListByUser_OrderedDescending(t *testing.T) {
	repo, userID := entryTestSetup(t)
	ctx := context.Background()

	older := testutil.NewTestEntry(userID, 1000, testutil.WithEnd(2000))
	newer := testutil.NewTestEntry(userID, 5000, testutil.WithEnd(6000))
	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, newer))

	list, err := repo.ListByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, newer.ID, list[0].ID)
	assert.Equal(t, older.ID, list[1].ID)
}

func TestTimeEntryRepo_ListSince(t *testing.T) {
	repo, userID := entryTestSetup(t)
	ctx := context.Background()

	before := testutil.NewTestEntry(userID, 1000, testutil.WithEnd(2000))
	after := testutil.NewTestEntry(userID, 5000, testutil.WithEnd(6000))
	require.NoError(t, repo.Create(ctx, before))
	require.NoError(t, repo.Create(ctx, after))

	list, err := repo.ListSince(ctx, userID, 5000)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, after.ID, list[0].ID)
}

func TestTimeEntryRepo_ListBetween_HalfOpen(t *testing.T) {
	repo, userID := entryTestSetup(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestEntry(userID, 1000, testutil.WithEnd(2000))))
	atBound := testutil.NewTestEntry(userID, 5000, testutil.WithEnd(6000))
	require.NoError(t, repo.Create(ctx, atBound))

	list, err := repo.ListBetween(ctx, userID, 1500, 5000)
	require.NoError(t, err)
	assert.Empty(t, list, "upper bound is exclusive")

	list, err = repo.ListBetween(ctx, userID, 5000, 9000)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, atBound.ID, list[0].ID)
}

func TestTimeEntryRepo_FindOpen(t *testing.T) {
	repo, userID := entryTestSetup(t)
	ctx := context.Background()

	_, err := repo.FindOpen(ctx, userID)
	assert.ErrorIs(t, err, ErrNotFound)

	closed := testutil.NewTestEntry(userID, 1000, testutil.WithEnd(2000))
	open := testutil.NewTestEntry(userID, 5000)
	require.NoError(t, repo.Create(ctx, closed))
	require.NoError(t, repo.Create(ctx, open))

	found, err := repo.FindOpen(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, open.ID, found.ID)
	assert.Nil(t, found.End)
}

func TestTimeEntryRepo_OpenEntryUniquePerUser(t *testing.T) {
	repo, userID := entryTestSetup(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestEntry(userID, 1000)))
	err := repo.Create(ctx, testutil.NewTestEntry(userID, 2000))
	assert.Error(t, err, "store rejects a second open entry")
}

func TestTimeEntryRepo_FirstStart(t *testing.T) {
	repo, userID := entryTestSetup(t)
	ctx := context.Background()

	_, err := repo.FirstStart(ctx, userID)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, repo.Create(ctx, testutil.NewTestEntry(userID, 5000, testutil.WithEnd(6000))))
	require.NoError(t, repo.Create(ctx, testutil.NewTestEntry(userID, 1000, testutil.WithEnd(2000))))

	first, err := repo.FirstStart(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), first)
}

func TestTimeEntryRepo_UpdateAndDelete(t *testing.T) {
	repo, userID := entryTestSetup(t)
	ctx := context.Background()

	entry := testutil.NewTestEntry(userID, 1000)
	require.NoError(t, repo.Create(ctx, entry))

	end := int64(4600)
	entry.End = &end
	entry.Note = "afternoon shift"
	require.NoError(t, repo.Update(ctx, entry))

	fetched, err := repo.GetByID(ctx, entry.ID)
	require.NoError(t, err)
	require.NotNil(t, fetched.End)
	assert.Equal(t, int64(4600), *fetched.End)
	assert.Equal(t, "afternoon shift", fetched.Note)

	require.NoError(t, repo.Delete(ctx, userID, entry.ID))
	_, err = repo.GetByID(ctx, entry.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTimeEntryRepo_Delete_ScopedToUser(t *testing.T) {
	repo, userID := entryTestSetup(t)
	ctx := context.Background()

	entry := testutil.NewTestEntry(userID, 1000, testutil.WithEnd(2000))
	require.NoError(t, repo.Create(ctx, entry))

	require.NoError(t, repo.Delete(ctx, "someone-else", entry.ID))
	_, err := repo.GetByID(ctx, entry.ID)
	assert.NoError(t, err, "delete for the wrong user is a no-op")
}

func TestTimeEntryRepo_BreaksCascadeWithEntry(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	userRepo := NewSQLiteUserRepo(db)
	repo := NewSQLiteTimeEntryRepo(db)

	user := testutil.NewTestUser()
	require.NoError(t, userRepo.Create(ctx, user))

	entry := testutil.NewTestEntry(user.ID, 1000, testutil.WithEnd(9000), testutil.WithBreak(2000, 3000))
	require.NoError(t, repo.Create(ctx, entry))
	require.NoError(t, repo.Delete(ctx, user.ID, entry.ID))

	var count int
	require.NoError(t, db.QueryRowContext(ctx, `SELECT COUNT(*) FROM breaks`).Scan(&count))
	assert.Equal(t, 0, count)
}

func TestTimeEntryRepo_CascadeWithUser(t *testing.T) {
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	userRepo := NewSQLiteUserRepo(db)
	repo := NewSQLiteTimeEntryRepo(db)

	user := testutil.NewTestUser()
	require.NoError(t, userRepo.Create(ctx, user))
	require.NoError(t, repo.Create(ctx, testutil.NewTestEntry(user.ID, 1000, testutil.WithEnd(2000))))

	require.NoError(t, userRepo.Delete(ctx, user.ID))

	list, err := repo.ListByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, list)
}
