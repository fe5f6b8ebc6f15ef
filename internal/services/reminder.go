package services

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/data/repos"
	types "github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/domain"
	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/pkg/dbctx"
	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/platform/localday"
	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/platform/logger"
)

const (
	PassDaily  = "daily"
	PassHourly = "hourly"

	UpcomingWindow      = 24 * time.Hour
	UpcomingQuietPeriod = 12 * time.Hour
)

type PassReport struct {
	Pass     string        `json:"pass"`
	Users    int           `json:"users"`
	Emitted  int           `json:"emitted"`
	Failures int           `json:"failures"`
	Duration time.Duration `json:"duration"`
}

// ReminderService scans every user and posts reminder notifications.
// One user's failure is logged and counted; it never stops the pass.
type ReminderService interface {
	// RunDaily posts mood, journal and self-care reminders for activity missing
	// today, plus a notice for appointments scheduled today. At most one reminder
	// per (user, type) is posted per local day; the appointment notice is counted
	// separately from hourly upcoming reminders.
	RunDaily(ctx context.Context) (PassReport, error)
	// RunHourly posts an upcoming-appointment reminder for active appointments in
	// the next 24h, unless an appointment reminder was posted in the last 12h.
	RunHourly(ctx context.Context) (PassReport, error)
}

type ReminderConfig struct {
	Zone        localday.Zone
	Concurrency int
	Clock       Clock
}

type reminderService struct {
	log          *logger.Logger
	users        repos.UserRepo
	moods        repos.MoodRepo
	journals     repos.JournalRepo
	selfCare     repos.SelfCareRepo
	appointments repos.AppointmentRepo
	notifier     Notifier
	zone         localday.Zone
	concurrency  int
	clock        Clock
}

func NewReminderService(
	log *logger.Logger,
	users repos.UserRepo,
	moods repos.MoodRepo,
	journals repos.JournalRepo,
	selfCare repos.SelfCareRepo,
	appointments repos.AppointmentRepo,
	notifier Notifier,
	cfg ReminderConfig,
) ReminderService {
	conc := cfg.Concurrency
	if conc <= 0 {
		conc = 1
	}
	return &reminderService{
		log:          log.With("service", "ReminderService"),
		users:        users,
		moods:        moods,
		journals:     journals,
		selfCare:     selfCare,
		appointments: appointments,
		notifier:     notifier,
		zone:         cfg.Zone,
		concurrency:  conc,
		clock:        cfg.Clock.orNow(),
	}
}

type userPass func(ctx context.Context, userID uuid.UUID) (int, error)

func (s *reminderService) forEachUser(ctx context.Context, pass string, fn userPass) (PassReport, error) {
	started := time.Now()
	report := PassReport{Pass: pass}

	ids, err := s.users.ListIDs(dbctx.New(ctx))
	if err != nil {
		return report, fmt.Errorf("list users: %w", err)
	}
	report.Users = len(ids)

	var emitted, failures atomic.Int64
	var g errgroup.Group
	g.SetLimit(s.concurrency)
	for _, id := range ids {
		if ctx.Err() != nil {
			break
		}
		userID := id
		g.Go(func() error {
			n, err := fn(ctx, userID)
			emitted.Add(int64(n))
			if err != nil {
				failures.Add(1)
				s.log.Warn("Reminder pass failed for user", "pass", pass, "user_id", userID, "error", err)
			}
			return nil
		})
	}
	_ = g.Wait()

	report.Emitted = int(emitted.Load())
	report.Failures = int(failures.Load())
	report.Duration = time.Since(started)
	s.log.Info("Reminder pass finished",
		"pass", pass,
		"users", report.Users,
		"emitted", report.Emitted,
		"failures", report.Failures,
		"duration_ms", report.Duration.Milliseconds(),
	)
	return report, ctx.Err()
}

func (s *reminderService) RunDaily(ctx context.Context) (PassReport, error) {
	today := s.zone.Day(s.clock())
	return s.forEachUser(ctx, PassDaily, func(ctx context.Context, userID uuid.UUID) (int, error) {
		return s.dailyForUser(ctx, userID, today)
	})
}

type activityCheck struct {
	kind    types.NotificationType
	message string
	exists  func(dbctx.Context, uuid.UUID, time.Time, time.Time) (bool, error)
}

func (s *reminderService) dailyForUser(ctx context.Context, userID uuid.UUID, today localday.Range) (int, error) {
	dbc := dbctx.New(ctx)
	checks := []activityCheck{
		{types.NotificationMood, MsgMoodReminder, s.moods.ExistsInRange},
		{types.NotificationJournal, MsgJournalReminder, s.journals.ExistsInRange},
		{types.NotificationSelfCare, MsgSelfCareReminder, s.selfCare.ExistsInRange},
	}

	var (
		emitted int
		errs    []error
	)
	for _, c := range checks {
		done, err := c.exists(dbc, userID, today.From, today.To)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s lookup: %w", c.kind, err))
			continue
		}
		if done {
			continue
		}
		created, err := s.notifier.EnsureReminder(ctx, userID, c.kind, c.message, today.From)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s reminder: %w", c.kind, err))
			continue
		}
		if created {
			emitted++
		}
	}

	hasAppt, err := s.appointments.ExistsActiveInRange(dbc, userID, today.From, today.To)
	switch {
	case err != nil:
		errs = append(errs, fmt.Errorf("appointment lookup: %w", err))
	case hasAppt:
		// Hourly upcoming reminders share the kind; only an earlier notice counts.
		created, err := s.notifier.EnsureNotice(ctx, userID, types.NotificationAppointment, MsgAppointmentToday, today.From)
		if err != nil {
			errs = append(errs, fmt.Errorf("appointment notice: %w", err))
		} else if created {
			emitted++
		}
	}
	return emitted, errors.Join(errs...)
}

func (s *reminderService) RunHourly(ctx context.Context) (PassReport, error) {
	now := s.clock()
	return s.forEachUser(ctx, PassHourly, func(ctx context.Context, userID uuid.UUID) (int, error) {
		upcoming, err := s.appointments.ExistsActiveInRange(dbctx.New(ctx), userID, now, now.Add(UpcomingWindow))
		if err != nil {
			return 0, fmt.Errorf("appointment lookup: %w", err)
		}
		if !upcoming {
			return 0, nil
		}
		created, err := s.notifier.EnsureReminder(ctx, userID, types.NotificationAppointment, MsgAppointmentUpcoming, now.Add(-UpcomingQuietPeriod))
		if err != nil {
			return 0, fmt.Errorf("upcoming reminder: %w", err)
		}
		if created {
			return 1, nil
		}
		return 0, nil
	})
}
