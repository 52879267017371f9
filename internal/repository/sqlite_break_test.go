package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/worklog/internal/domain"
	"github.com/alexanderramin/worklog/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// breakTestSetup creates the session row break tests hang off.
func breakTestSetup(t *testing.T) (*SQLiteBreakRepo, string) {
	t.Helper()
	db := testutil.NewTestDB(t)
	ctx := context.Background()

	sessRepo := NewSQLiteSessionRepo(db)
	sess := testutil.NewTestSession("2026-08-29", testutil.WithStatus(domain.StatusRunning))
	require.NoError(t, sessRepo.Create(ctx, sess))

	return NewSQLiteBreakRepo(db), sess.Date
}

func TestBreakRepo_CreateAndGetByID(t *testing.T) {
	repo, date := breakTestSetup(t)
	ctx := context.Background()

	start := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	b := testutil.NewTestBreak(date,
		testutil.WithBreakType(domain.BreakLunch),
		testutil.WithBreakStart(start),
	)
	require.NoError(t, repo.Create(ctx, b))

	fetched, err := repo.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BreakLunch, fetched.Type)
	assert.True(t, start.Equal(fetched.StartTime))
	assert.Nil(t, fetched.EndTime)
	assert.True(t, fetched.Open())
}

func TestBreakRepo_GetOpen(t *testing.T) {
	repo, date := breakTestSetup(t)
	ctx := context.Background()

	_, err := repo.GetOpen(ctx, date)
	assert.ErrorIs(t, err, ErrNotFound)

	b := testutil.NewTestBreak(date)
	require.NoError(t, repo.Create(ctx, b))

	open, err := repo.GetOpen(ctx, date)
	require.NoError(t, err)
	assert.Equal(t, b.ID, open.ID)
}

func TestBreakRepo_SecondOpenBreakRejected(t *testing.T) {
	repo, date := breakTestSetup(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestBreak(date)))

	// The partial unique index caps open breaks at one per session.
	err := repo.Create(ctx, testutil.NewTestBreak(date))
	assert.Error(t, err)
}

func TestBreakRepo_CloseAndReopen(t *testing.T) {
	repo, date := breakTestSetup(t)
	ctx := context.Background()

	start := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	b := testutil.NewTestBreak(date, testutil.WithBreakStart(start))
	require.NoError(t, repo.Create(ctx, b))

	end := start.Add(30 * time.Minute)
	require.NoError(t, repo.Close(ctx, b.ID, end))

	closed, err := repo.GetByID(ctx, b.ID)
	require.NoError(t, err)
	require.NotNil(t, closed.EndTime)
	assert.True(t, end.Equal(*closed.EndTime))
	assert.Equal(t, 1800, closed.DurationSeconds(end.Add(time.Hour)))

	// Closing an already-closed break is a no-op error.
	assert.ErrorIs(t, repo.Close(ctx, b.ID, end), ErrNotFound)

	require.NoError(t, repo.Reopen(ctx, b.ID))
	reopened, err := repo.GetOpen(ctx, date)
	require.NoError(t, err)
	assert.Equal(t, b.ID, reopened.ID)

	// Reopening an open break fails the same way.
	assert.ErrorIs(t, repo.Reopen(ctx, b.ID), ErrNotFound)
}

func TestBreakRepo_Delete(t *testing.T) {
	repo, date := breakTestSetup(t)
	ctx := context.Background()

	b := testutil.NewTestBreak(date)
	require.NoError(t, repo.Create(ctx, b))
	require.NoError(t, repo.Delete(ctx, b.ID))

	_, err := repo.GetByID(ctx, b.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, b.ID), ErrNotFound)
}

func TestBreakRepo_ListBySessionAndDeleteBySession(t *testing.T) {
	repo, date := breakTestSetup(t)
	ctx := context.Background()

	start := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
	first := testutil.NewTestBreak(date, testutil.WithBreakStart(start), testutil.WithBreakEnd(start.Add(10*time.Minute)))
	second := testutil.NewTestBreak(date, testutil.WithBreakStart(start.Add(time.Hour)))
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	list, err := repo.ListBySession(ctx, date)
	require.NoError(t, err)
	require.Len(t, list, 2)
	// Ordered by start_time.
	assert.Equal(t, first.ID, list[0].ID)
	assert.Equal(t, second.ID, list[1].ID)

	require.NoError(t, repo.DeleteBySession(ctx, date))
	list, err = repo.ListBySession(ctx, date)
	require.NoError(t, err)
	assert.Empty(t, list)
}
