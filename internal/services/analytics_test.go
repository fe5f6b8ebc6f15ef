package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/data/repos"
	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/data/repos/testutil"
	types "github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/domain"
	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/pkg/dbctx"
	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/platform/apierr"
)

func TestSummaryHeatmapValueIsSumOfCounts(t *testing.T) {
	f := newFixture(t, "UTC", time.Date(2025, 3, 20, 12, 0, 0, 0, time.UTC))
	u := f.user(t, "heat@example.com")
	p := testutil.SeedSupportPerson(t, f.ctx, f.db, "Dr. Heat")

	d1 := time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC)
	d2 := time.Date(2025, 3, 5, 9, 0, 0, 0, time.UTC)
	testutil.SeedMood(t, f.ctx, f.db, u, 2, d1)
	testutil.SeedMood(t, f.ctx, f.db, u, 5, d1.Add(time.Hour))
	testutil.SeedJournal(t, f.ctx, f.db, u, d1.Add(2*time.Hour))
	testutil.SeedSelfCare(t, f.ctx, f.db, u, types.TaskHydration, d2)
	testutil.SeedSelfCare(t, f.ctx, f.db, u, types.TaskExercise, d2)
	testutil.SeedAppointment(t, f.ctx, f.db, u, p, d2.Add(8*time.Hour), types.AppointmentPending)

	sum, err := f.analytics(0).SummaryForDates(f.ctx, u.ID, "2025-03-01", "2025-04-01")
	require.NoError(t, err)
	require.Len(t, sum.Heatmap, 2)

	require.Equal(t, "2025-03-03", sum.Heatmap[0].Date)
	require.Equal(t, DayCounts{Moods: 2, Journals: 1}, sum.Heatmap[0].Counts)
	require.Equal(t, "2025-03-05", sum.Heatmap[1].Date)
	require.Equal(t, DayCounts{SelfCare: 2, Appointments: 1}, sum.Heatmap[1].Counts)
	for _, d := range sum.Heatmap {
		c := d.Counts
		require.Equal(t, c.Moods+c.Journals+c.SelfCare+c.Appointments, d.Value, d.Date)
	}

	// Trend only covers days that have moods.
	require.Equal(t, []TrendPoint{{Date: "2025-03-03", AvgMood: 3.5}}, sum.Trend)
}

func TestSummaryExcludesToDate(t *testing.T) {
	f := newFixture(t, "Asia/Dhaka", time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC))
	u := f.user(t, "boundary@example.com")

	testutil.SeedMood(t, f.ctx, f.db, u, 3, f.mustLocal(2025, 3, 31, 23, 59))
	testutil.SeedMood(t, f.ctx, f.db, u, 4, f.mustLocal(2025, 4, 1, 0, 0))
	testutil.SeedMood(t, f.ctx, f.db, u, 5, f.mustLocal(2025, 3, 1, 0, 0))

	sum, err := f.analytics(0).SummaryForDates(f.ctx, u.ID, "2025-03-01", "2025-04-01")
	require.NoError(t, err)
	require.Len(t, sum.Heatmap, 2)
	require.Equal(t, "2025-03-01", sum.Heatmap[0].Date)
	require.Equal(t, "2025-03-31", sum.Heatmap[1].Date)
	require.Equal(t, "2025-04-01", sum.To)
}

func TestSummaryBucketsInAppTimezone(t *testing.T) {
	// 20:30 UTC on the 9th is already the 10th in Dhaka (UTC+6).
	at := time.Date(2025, 3, 9, 20, 30, 0, 0, time.UTC)

	dhaka := newFixture(t, "Asia/Dhaka", at.Add(time.Hour))
	u := dhaka.user(t, "tz@example.com")
	testutil.SeedMood(t, dhaka.ctx, dhaka.db, u, 4, at)
	sum, err := dhaka.analytics(0).SummaryForDates(dhaka.ctx, u.ID, "2025-03-01", "2025-04-01")
	require.NoError(t, err)
	require.Len(t, sum.Heatmap, 1)
	require.Equal(t, "2025-03-10", sum.Heatmap[0].Date)

	day, err := dhaka.analytics(0).DayDetails(dhaka.ctx, u.ID, "2025-03-10")
	require.NoError(t, err)
	require.Len(t, day.Moods, 1)

	utc := newFixture(t, "UTC", at.Add(time.Hour))
	u2 := utc.user(t, "tz@example.com")
	testutil.SeedMood(t, utc.ctx, utc.db, u2, 4, at)
	sum, err = utc.analytics(0).SummaryForDates(utc.ctx, u2.ID, "2025-03-01", "2025-04-01")
	require.NoError(t, err)
	require.Equal(t, "2025-03-09", sum.Heatmap[0].Date)
}

func TestSummaryDefaultsIncludeToday(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	f := newFixture(t, "UTC", now)
	u := f.user(t, "defaults@example.com")
	testutil.SeedMood(t, f.ctx, f.db, u, 4, now.Add(-time.Hour))
	testutil.SeedMood(t, f.ctx, f.db, u, 4, time.Date(2024, 12, 31, 23, 0, 0, 0, time.UTC))

	sum, err := f.analytics(0).SummaryForDates(f.ctx, u.ID, "", "")
	require.NoError(t, err)
	require.Equal(t, "2025-01-01", sum.From)
	require.Equal(t, "2025-06-16", sum.To)
	require.Len(t, sum.Heatmap, 1)
	require.Equal(t, "2025-06-15", sum.Heatmap[0].Date)
}

func TestSummaryRejectsMalformedDates(t *testing.T) {
	f := newFixture(t, "UTC", time.Now())
	u := f.user(t, "bad@example.com")
	svc := f.analytics(0)

	_, err := svc.SummaryForDates(f.ctx, u.ID, "03/01/2025", "2025-13-01")
	ae, ok := apierr.As(err)
	require.True(t, ok)
	require.Equal(t, []string{"from", "to"}, ae.Fields)

	_, err = svc.SummaryForDates(f.ctx, u.ID, "2025-04-01", "2025-03-01")
	require.True(t, apierr.HasCode(err, apierr.CodeValidation))

	_, err = svc.DayDetails(f.ctx, u.ID, "")
	require.True(t, apierr.HasCode(err, apierr.CodeValidation))
	_, err = svc.DayDetails(f.ctx, u.ID, "yesterday")
	require.True(t, apierr.HasCode(err, apierr.CodeValidation))
}

func TestDayDetailsAverageMood(t *testing.T) {
	f := newFixture(t, "UTC", time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC))
	u := f.user(t, "avg@example.com")
	base := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	svc := f.analytics(0)

	empty, err := svc.DayDetails(f.ctx, u.ID, "2025-03-10")
	require.NoError(t, err)
	require.Nil(t, empty.Summary.AvgMood)
	require.NotNil(t, empty.Moods)
	require.Empty(t, empty.Moods)

	testutil.SeedMood(t, f.ctx, f.db, u, 4, base.Add(2*time.Hour))
	testutil.SeedMood(t, f.ctx, f.db, u, 2, base)
	got, err := svc.DayDetails(f.ctx, u.ID, "2025-03-10")
	require.NoError(t, err)
	require.NotNil(t, got.Summary.AvgMood)
	require.Equal(t, 3.0, *got.Summary.AvgMood)
	require.Equal(t, 2, got.Moods[0].MoodLevel, "sorted chronologically")

	u2 := f.user(t, "avg2@example.com")
	for i, lvl := range []int{6, 4, 2} {
		testutil.SeedMood(t, f.ctx, f.db, u2, lvl, base.Add(time.Duration(i)*time.Hour))
	}
	got, err = svc.DayDetails(f.ctx, u2.ID, "2025-03-10")
	require.NoError(t, err)
	require.Equal(t, 4.0, *got.Summary.AvgMood)
	require.Equal(t, 3, got.Summary.MoodCount)
}

type failingMoodRepo struct {
	repos.MoodRepo
	err error
}

func (r failingMoodRepo) ListInRange(dbctx.Context, uuid.UUID, time.Time, time.Time) ([]*types.MoodEntry, error) {
	return nil, r.err
}

type stalledJournalRepo struct {
	repos.JournalRepo
}

func (stalledJournalRepo) ListInRange(dbc dbctx.Context, _ uuid.UUID, _, _ time.Time) ([]*types.JournalEntry, error) {
	<-dbc.Ctx.Done()
	return nil, dbc.Ctx.Err()
}

func TestAnyStoreFailureFailsWholeAggregation(t *testing.T) {
	f := newFixture(t, "UTC", time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC))
	u := f.user(t, "fail@example.com")
	testutil.SeedJournal(t, f.ctx, f.db, u, time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC))

	svc := NewAnalyticsService(f.log, failingMoodRepo{f.moods, errors.New("connection reset")}, f.journals, f.selfCare, f.appointments, AnalyticsConfig{Zone: f.zone})
	sum, err := svc.SummaryForDates(f.ctx, u.ID, "2025-03-01", "2025-04-01")
	require.Nil(t, sum)
	ae, ok := apierr.As(err)
	require.True(t, ok)
	require.Equal(t, apierr.CodeAggregationFailed, ae.Code)
	require.False(t, ae.Retryable)

	_, err = svc.DayDetails(f.ctx, u.ID, "2025-03-10")
	require.True(t, apierr.HasCode(err, apierr.CodeAggregationFailed))
}

func TestStoreTimeoutIsRetryable(t *testing.T) {
	f := newFixture(t, "UTC", time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC))
	u := f.user(t, "slow@example.com")

	svc := NewAnalyticsService(f.log, f.moods, stalledJournalRepo{f.journals}, f.selfCare, f.appointments, AnalyticsConfig{
		Zone:         f.zone,
		StoreTimeout: 20 * time.Millisecond,
	})
	ctx, cancel := context.WithTimeout(f.ctx, 5*time.Second)
	defer cancel()
	_, err := svc.DayDetails(ctx, u.ID, "2025-03-10")
	ae, ok := apierr.As(err)
	require.True(t, ok)
	require.Equal(t, apierr.CodeAggregationTimeout, ae.Code)
	require.True(t, ae.Retryable)
}
