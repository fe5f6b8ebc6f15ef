package app

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/jobs/scheduler"
	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/platform/logger"
	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/services"
)

type Services struct {
	Notifier    services.Notifier
	Auth        services.AuthService
	User        services.UserService
	Analytics   services.AnalyticsService
	Mood        services.MoodService
	Journal     services.JournalService
	SelfCare    services.SelfCareService
	Appointment services.AppointmentService
	SOS         services.SOSService
	Support     services.SupportService
	Admin       services.AdminService
	Reminders   services.ReminderService
	Scheduler   *scheduler.Scheduler
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, clients Clients, repos Repos) (Services, error) {
	log.Info("Wiring services...")

	notifier := services.NewNotifier(log, repos.Notification, nil)

	appointments := services.NewAppointmentService(log, repos.Appointment, repos.SupportPerson, notifier, services.AppointmentConfig{
		Zone:             cfg.Zone,
		BookingStartHour: cfg.BookingStartHour,
		BookingEndHour:   cfg.BookingEndHour,
	})
	reminders := services.NewReminderService(log, repos.User, repos.Mood, repos.Journal, repos.SelfCare, repos.Appointment, notifier, services.ReminderConfig{
		Zone:        cfg.Zone,
		Concurrency: cfg.SchedulerConcurrency,
	})

	// Always built so admins can run a pass by hand even with the timetable off.
	sched, err := scheduler.New(log, reminders, scheduler.Config{
		Zone:        cfg.Zone,
		DailyHour:   cfg.DailyReminderHour,
		PassTimeout: cfg.ReminderPassTimeout,
		Lock:        clients.Lock,
	})
	if err != nil {
		return Services{}, fmt.Errorf("init reminder scheduler: %w", err)
	}

	return Services{
		Notifier: notifier,
		Auth: services.NewAuthService(log, repos.User, services.AuthConfig{
			JWTSecretKey: cfg.JWTSecretKey,
			AccessTTL:    cfg.AccessTokenTTL,
			AdminEmails:  cfg.AdminEmails,
		}),
		User: services.NewUserService(log, repos.User),
		Analytics: services.NewAnalyticsService(log, repos.Mood, repos.Journal, repos.SelfCare, repos.Appointment, services.AnalyticsConfig{
			Zone:         cfg.Zone,
			StoreTimeout: cfg.AnalyticsStoreTimeout,
		}),
		Mood:        services.NewMoodService(log, repos.Mood, notifier, nil),
		Journal:     services.NewJournalService(log, repos.Journal, notifier, nil),
		SelfCare:    services.NewSelfCareService(log, repos.SelfCare, notifier, cfg.Zone, nil),
		Appointment: appointments,
		SOS:         services.NewSOSService(log, repos.SOSPlan),
		Support:     services.NewSupportService(log, repos.SupportPerson, clients.Cache, cfg.SupportCacheTTL),
		Admin: services.NewAdminService(db, log, repos.User, repos.Mood, repos.Journal, repos.SelfCare,
			repos.Appointment, repos.SOSPlan, repos.Notification),
		Reminders: reminders,
		Scheduler: sched,
	}, nil
}
