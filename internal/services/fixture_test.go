package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/data/repos"
	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/data/repos/testutil"
	types "github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/domain"
	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/pkg/dbctx"
	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/platform/localday"
	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/platform/logger"
)

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t.UTC()
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type fixture struct {
	ctx   context.Context
	db    *gorm.DB
	log   *logger.Logger
	clock *testClock
	zone  localday.Zone

	users         repos.UserRepo
	moods         repos.MoodRepo
	journals      repos.JournalRepo
	selfCare      repos.SelfCareRepo
	appointments  repos.AppointmentRepo
	people        repos.SupportPersonRepo
	sosPlans      repos.SOSPlanRepo
	notifications repos.NotificationRepo

	notifier Notifier
}

func newFixture(t *testing.T, tz string, now time.Time) *fixture {
	t.Helper()
	zone, err := localday.Load(tz)
	require.NoError(t, err)

	db := testutil.DB(t)
	log := testutil.Logger(t)
	clock := &testClock{}
	clock.Set(now)

	f := &fixture{
		ctx:           context.Background(),
		db:            db,
		log:           log,
		clock:         clock,
		zone:          zone,
		users:         repos.NewUserRepo(db, log),
		moods:         repos.NewMoodRepo(db, log),
		journals:      repos.NewJournalRepo(db, log),
		selfCare:      repos.NewSelfCareRepo(db, log),
		appointments:  repos.NewAppointmentRepo(db, log),
		people:        repos.NewSupportPersonRepo(db, log),
		sosPlans:      repos.NewSOSPlanRepo(db, log),
		notifications: repos.NewNotificationRepo(db, log),
	}
	f.notifier = NewNotifier(log, f.notifications, f.Clock())
	return f
}

func (f *fixture) Clock() Clock { return f.clock.Now }

func (f *fixture) analytics(timeout time.Duration) AnalyticsService {
	return NewAnalyticsService(f.log, f.moods, f.journals, f.selfCare, f.appointments, AnalyticsConfig{
		Zone:         f.zone,
		StoreTimeout: timeout,
		Clock:        f.Clock(),
	})
}

func (f *fixture) reminders() ReminderService {
	return NewReminderService(f.log, f.users, f.moods, f.journals, f.selfCare, f.appointments, f.notifier, ReminderConfig{
		Zone:        f.zone,
		Concurrency: 2,
		Clock:       f.Clock(),
	})
}

func (f *fixture) appointmentService() AppointmentService {
	return NewAppointmentService(f.log, f.appointments, f.people, f.notifier, AppointmentConfig{
		Zone:             f.zone,
		BookingStartHour: 16,
		BookingEndHour:   22,
		Clock:            f.Clock(),
	})
}

func (f *fixture) user(t *testing.T, email string) *types.User {
	t.Helper()
	return testutil.SeedUser(t, f.ctx, f.db, email)
}

func (f *fixture) notificationsOf(t *testing.T, u *types.User) []*types.Notification {
	t.Helper()
	out, err := f.notifications.ListByUser(dbctx.New(f.ctx), u.ID, 200)
	require.NoError(t, err)
	return out
}

func countNotifications(list []*types.Notification, kind types.NotificationType, reminder bool) int {
	n := 0
	for _, x := range list {
		if x.Type == kind && x.IsReminder == reminder {
			n++
		}
	}
	return n
}

// mustLocal builds a wall-clock time in the fixture zone.
func (f *fixture) mustLocal(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, f.zone.Location()).UTC()
}
