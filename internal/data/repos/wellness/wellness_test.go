package wellness

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/data/repos/testutil"
	types "github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/domain"
	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/pkg/dbctx"
)

func TestMoodRepoRangeIsHalfOpen(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	u := testutil.SeedUser(t, ctx, db, "mood@example.com")
	other := testutil.SeedUser(t, ctx, db, "other@example.com")

	from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	testutil.SeedMood(t, ctx, db, u, 3, from)
	testutil.SeedMood(t, ctx, db, u, 4, to.Add(-time.Second))
	testutil.SeedMood(t, ctx, db, u, 5, to)
	testutil.SeedMood(t, ctx, db, other, 2, from.Add(time.Hour))

	repo := NewMoodRepo(db, testutil.Logger(t))
	dbc := dbctx.New(ctx)

	got, err := repo.ListInRange(dbc, u.ID, from, to)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, 3, got[0].MoodLevel)
	require.Equal(t, 4, got[1].MoodLevel)

	// Non-UTC bounds name the same instants.
	dhaka := time.FixedZone("UTC+6", 6*3600)
	got, err = repo.ListInRange(dbc, u.ID, from.In(dhaka), to.In(dhaka))
	require.NoError(t, err)
	require.Len(t, got, 2)

	ok, err := repo.ExistsInRange(dbc, u.ID, to, to.Add(time.Hour))
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = repo.ExistsInRange(dbc, u.ID, to.Add(time.Second), to.Add(time.Hour))
	require.NoError(t, err)
	require.False(t, ok)

	latest, err := repo.ListByUser(dbc, u.ID, 0)
	require.NoError(t, err)
	require.Len(t, latest, 3)
	require.Equal(t, 5, latest[0].MoodLevel)
}

func TestMoodLoggedAtDefaultsToCreation(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	u := testutil.SeedUser(t, ctx, db, "mood2@example.com")
	repo := NewMoodRepo(db, testutil.Logger(t))

	m, err := repo.Create(dbctx.New(ctx), &types.MoodEntry{
		UserID:    u.ID,
		MoodLevel: 2,
		Emoji:     "😐",
	})
	require.NoError(t, err)
	require.False(t, m.LoggedAt.IsZero())
	require.Equal(t, m.CreatedAt, m.LoggedAt)
	require.Equal(t, time.UTC, m.LoggedAt.Location())

	ok, err := repo.Delete(dbctx.New(ctx), m.ID)
	require.NoError(t, err)
	require.True(t, ok)
	gone, err := repo.GetByID(dbctx.New(ctx), m.ID)
	require.NoError(t, err)
	require.Nil(t, gone)
}

func TestMoodExistsUsesCreationNotLoggedAt(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	u := testutil.SeedUser(t, ctx, db, "mood-created@example.com")
	repo := NewMoodRepo(db, testutil.Logger(t))
	dbc := dbctx.New(ctx)

	today := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	_, err := repo.Create(dbc, &types.MoodEntry{
		UserID:    u.ID,
		MoodLevel: 3,
		Emoji:     "🙂",
		LoggedAt:  today.Add(-36 * time.Hour),
		CreatedAt: today.Add(8 * time.Hour),
	})
	require.NoError(t, err)

	ok, err := repo.ExistsInRange(dbc, u.ID, today, today.Add(24*time.Hour))
	require.NoError(t, err)
	require.True(t, ok)

	// Analytics still bucket on logged_at.
	got, err := repo.ListInRange(dbc, u.ID, today, today.Add(24*time.Hour))
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestJournalRepoBucketsOnCreatedAt(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	u := testutil.SeedUser(t, ctx, db, "journal@example.com")
	repo := NewJournalRepo(db, testutil.Logger(t))
	dbc := dbctx.New(ctx)

	written := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	entry, err := repo.Create(dbc, &types.JournalEntry{
		UserID:    u.ID,
		Content:   "back-dated",
		EntryDate: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
		CreatedAt: written,
	})
	require.NoError(t, err)
	require.Equal(t, "Segoe UI", entry.Font)

	got, err := repo.ListInRange(dbc, u.ID, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, got, 1)

	got, err = repo.ListInRange(dbc, u.ID, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, 2, 2, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Empty(t, got)

	require.NoError(t, repo.DeleteByUser(dbc, u.ID))
	all, err := repo.ListAll(dbc, 0)
	require.NoError(t, err)
	require.Empty(t, all)
}

func TestSelfCareMarkCompletedIsOncePerDay(t *testing.T) {
	db := testutil.DB(t)
	ctx := context.Background()
	u := testutil.SeedUser(t, ctx, db, "selfcare@example.com")
	repo := NewSelfCareRepo(db, testutil.Logger(t))
	dbc := dbctx.New(ctx)

	dayFrom := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	dayTo := dayFrom.Add(24 * time.Hour)

	first, err := repo.MarkCompleted(dbc, u.ID, types.TaskHydration, dayFrom.Add(8*time.Hour), dayFrom, dayTo)
	require.NoError(t, err)
	second, err := repo.MarkCompleted(dbc, u.ID, types.TaskHydration, dayFrom.Add(15*time.Hour), dayFrom, dayTo)
	require.NoError(t, err)
	require.Equal(t, first.ID, second.ID)

	_, err = repo.MarkCompleted(dbc, u.ID, types.TaskBreathing, dayFrom.Add(9*time.Hour), dayFrom, dayTo)
	require.NoError(t, err)
	_, err = repo.MarkCompleted(dbc, u.ID, types.TaskHydration, dayTo.Add(time.Hour), dayTo, dayTo.Add(24*time.Hour))
	require.NoError(t, err)

	rows, err := repo.ListInRange(dbc, u.ID, dayFrom, dayTo)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	ok, err := repo.ExistsInRange(dbc, u.ID, dayTo, dayTo.Add(24*time.Hour))
	require.NoError(t, err)
	require.True(t, ok)
}
