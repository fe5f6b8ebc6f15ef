package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/data/repos/testutil"
	types "github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/domain"
	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/domain/wellness"
	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/platform/apierr"
)

func validMood() MoodInput {
	return MoodInput{
		MoodLevel:         4,
		Emoji:             "😊",
		MoodDescription:   "calm",
		MoodDuration:      "all day",
		ThoughtPatterns:   "positive",
		StressLevel:       "low",
		EnergyLevel:       7,
		Activity:          "walk",
		Location:          "park",
		SocialInteraction: "friends",
		TimeOfDay:         "evening",
	}
}

func TestMoodCreateReportsEveryInvalidField(t *testing.T) {
	f := newFixture(t, "UTC", time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))
	u := f.user(t, "mood-invalid@example.com")
	svc := NewMoodService(f.log, f.moods, f.notifier, f.Clock())

	in := validMood()
	in.MoodLevel = 7
	in.Emoji = "  "
	in.Activity = ""
	_, err := svc.Create(f.ctx, u.ID, in)
	ae, ok := apierr.As(err)
	require.True(t, ok)
	require.Equal(t, []string{"activity", "emoji", "moodLevel"}, ae.Fields)

	// Nothing persisted, nothing emitted.
	list, err := svc.List(f.ctx, u.ID, 0)
	require.NoError(t, err)
	require.Empty(t, list)
	require.Empty(t, f.notificationsOf(t, u))
}

func TestMoodCreateClearsReminderThenAcks(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	f := newFixture(t, "UTC", now)
	u := f.user(t, "mood@example.com")
	_, err := f.notifier.EnsureReminder(f.ctx, u.ID, types.NotificationMood, MsgMoodReminder, now.Add(-time.Hour))
	require.NoError(t, err)

	svc := NewMoodService(f.log, f.moods, f.notifier, f.Clock())
	entry, err := svc.Create(f.ctx, u.ID, validMood())
	require.NoError(t, err)
	require.True(t, entry.LoggedAt.Equal(now))

	got := f.notificationsOf(t, u)
	require.Zero(t, countNotifications(got, types.NotificationMood, true))
	require.Equal(t, 1, countNotifications(got, types.NotificationMood, false))

	// A back-dated mood lands on its own day.
	back := validMood()
	back.LoggedAt = testutil.PtrTime(now.Add(-48 * time.Hour))
	entry, err = svc.Create(f.ctx, u.ID, back)
	require.NoError(t, err)
	require.True(t, entry.LoggedAt.Equal(now.Add(-48*time.Hour)))
}

func TestMoodLoggedAtCannotRunAhead(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	f := newFixture(t, "UTC", now)
	u := f.user(t, "mood-future@example.com")
	svc := NewMoodService(f.log, f.moods, f.notifier, f.Clock())

	ahead := validMood()
	ahead.LoggedAt = testutil.PtrTime(now.Add(24 * time.Hour))
	_, err := svc.Create(f.ctx, u.ID, ahead)
	ae, ok := apierr.As(err)
	require.True(t, ok)
	require.Equal(t, []string{"loggedAt"}, ae.Fields)

	skewed := validMood()
	skewed.LoggedAt = testutil.PtrTime(now.Add(time.Minute))
	_, err = svc.Create(f.ctx, u.ID, skewed)
	require.NoError(t, err)
}

func TestBackDatedMoodStillCountsForToday(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	f := newFixture(t, "UTC", now)
	u := f.user(t, "mood-backdated@example.com")
	svc := NewMoodService(f.log, f.moods, f.notifier, f.Clock())

	back := validMood()
	back.LoggedAt = testutil.PtrTime(now.Add(-30 * time.Hour))
	_, err := svc.Create(f.ctx, u.ID, back)
	require.NoError(t, err)

	_, err = f.reminders().RunDaily(f.ctx)
	require.NoError(t, err)
	got := f.notificationsOf(t, u)
	require.Zero(t, countNotifications(got, types.NotificationMood, true))
	require.Equal(t, 1, countNotifications(got, types.NotificationJournal, true))
}

func TestJournalCreateDefaultsAndAck(t *testing.T) {
	f := newFixture(t, "UTC", time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC))
	u := f.user(t, "journal@example.com")
	svc := NewJournalService(f.log, f.journals, f.notifier, f.Clock())

	_, err := svc.Create(f.ctx, u.ID, JournalInput{Content: "   "})
	require.True(t, apierr.HasCode(err, apierr.CodeValidation))

	entry, err := svc.Create(f.ctx, u.ID, JournalInput{Content: "slept well"})
	require.NoError(t, err)
	require.Equal(t, wellness.DefaultJournalFont, entry.Font)
	require.Equal(t, wellness.DefaultJournalTheme, entry.Theme)
	require.Equal(t, wellness.DefaultJournalLanguage, entry.Language)

	got := f.notificationsOf(t, u)
	require.Len(t, got, 1)
	require.Equal(t, MsgJournalSaved, got[0].Message)
}

func TestSelfCareCompleteClearsRemindersWithOneAck(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	f := newFixture(t, "UTC", now)
	u := f.user(t, "selfcare@example.com")
	_, err := f.reminders().RunDaily(f.ctx)
	require.NoError(t, err)
	require.Equal(t, 1, countNotifications(f.notificationsOf(t, u), types.NotificationSelfCare, true))

	svc := NewSelfCareService(f.log, f.selfCare, f.notifier, f.zone, f.Clock())
	row, err := svc.Complete(f.ctx, u.ID, SelfCareInput{TaskType: " Hydration "})
	require.NoError(t, err)
	require.Equal(t, types.TaskHydration, row.TaskType)
	require.True(t, row.Completed)

	got := f.notificationsOf(t, u)
	require.Zero(t, countNotifications(got, types.NotificationSelfCare, true))
	require.Equal(t, 1, countNotifications(got, types.NotificationSelfCare, false))
	// Other reminder types are untouched.
	require.Equal(t, 1, countNotifications(got, types.NotificationMood, true))

	today, err := svc.Today(f.ctx, u.ID)
	require.NoError(t, err)
	require.Len(t, today, 4)
	for _, st := range today {
		require.Equal(t, st.TaskType == types.TaskHydration, st.Completed, st.TaskType)
	}

	_, err = svc.Complete(f.ctx, u.ID, SelfCareInput{TaskType: "yoga"})
	ae, ok := apierr.As(err)
	require.True(t, ok)
	require.Equal(t, []string{"taskType"}, ae.Fields)
}
