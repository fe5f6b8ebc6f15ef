// Package scheduler triggers the reminder passes on a cron timetable in the
// application timezone.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/robfig/cron"

	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/observability"
	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/platform/cache"
	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/platform/localday"
	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/platform/logger"
	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/services"
)

const (
	DefaultDailyHour   = 6
	DefaultPassTimeout = 30 * time.Minute

	// Six fields: robfig/cron v1 leads with seconds.
	HourlySpec = "0 0 * * * *"
)

// ErrPassRunning is returned by Trigger when the same pass is already in
// flight, here or on another instance sharing the lock.
var ErrPassRunning = errors.New("reminder pass already running")

// ErrStopped is returned by Trigger once Stop has been called.
var ErrStopped = errors.New("reminder scheduler stopped")

func DailySpec(hour int) string {
	return fmt.Sprintf("0 0 %d * * *", hour)
}

type Config struct {
	Zone        localday.Zone
	DailyHour   int
	PassTimeout time.Duration
	// Lock coordinates passes across instances. Nil means LocalLocker.
	Lock cache.Locker
}

type Scheduler struct {
	log       *logger.Logger
	reminders services.ReminderService
	cron      *cron.Cron
	timeout   time.Duration
	lock      cache.Locker

	ctx    context.Context
	cancel context.CancelFunc

	// mu orders wg.Add in Trigger against the Wait in Stop.
	mu      sync.Mutex
	stopped bool
	wg      sync.WaitGroup

	dailyRunning  atomic.Bool
	hourlyRunning atomic.Bool
}

func New(log *logger.Logger, reminders services.ReminderService, cfg Config) (*Scheduler, error) {
	if cfg.DailyHour < 0 || cfg.DailyHour > 23 {
		return nil, fmt.Errorf("daily reminder hour %d out of range 0-23", cfg.DailyHour)
	}
	timeout := cfg.PassTimeout
	if timeout <= 0 {
		timeout = DefaultPassTimeout
	}
	lock := cfg.Lock
	if lock == nil {
		lock = cache.LocalLocker()
	}
	ctx, cancel := context.WithCancel(context.Background())
	s := &Scheduler{
		log:       log.With("component", "ReminderScheduler"),
		reminders: reminders,
		cron:      cron.NewWithLocation(cfg.Zone.Location()),
		timeout:   timeout,
		lock:      lock,
		ctx:       ctx,
		cancel:    cancel,
	}

	if err := s.cron.AddFunc(DailySpec(cfg.DailyHour), func() { s.fire(services.PassDaily) }); err != nil {
		cancel()
		return nil, fmt.Errorf("schedule daily pass: %w", err)
	}
	if err := s.cron.AddFunc(HourlySpec, func() { s.fire(services.PassHourly) }); err != nil {
		cancel()
		return nil, fmt.Errorf("schedule hourly pass: %w", err)
	}
	s.log.Info("Reminder scheduler configured", "tz", cfg.Zone.Name(), "daily_hour", cfg.DailyHour)
	return s, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	for _, e := range s.cron.Entries() {
		s.log.Debug("Reminder job scheduled", "next", e.Next)
	}
}

// Stop halts the timetable and waits for in-flight passes, giving up when ctx ends.
func (s *Scheduler) Stop(ctx context.Context) error {
	s.mu.Lock()
	s.stopped = true
	s.mu.Unlock()

	s.cron.Stop()
	s.cancel()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		s.log.Info("Reminder scheduler stopped")
		return nil
	case <-ctx.Done():
		return fmt.Errorf("waiting for reminder passes: %w", ctx.Err())
	}
}

func (s *Scheduler) fire(pass string) {
	if _, err := s.Trigger(s.ctx, pass); err != nil && !errors.Is(err, ErrPassRunning) {
		s.log.Warn("Scheduled reminder pass ended with error", "pass", pass, "error", err)
	}
}

// Trigger runs a pass now. A pass never overlaps with itself.
func (s *Scheduler) Trigger(ctx context.Context, pass string) (report services.PassReport, err error) {
	var (
		guard *atomic.Bool
		run   func(context.Context) (services.PassReport, error)
	)
	switch pass {
	case services.PassDaily:
		guard, run = &s.dailyRunning, s.reminders.RunDaily
	case services.PassHourly:
		guard, run = &s.hourlyRunning, s.reminders.RunHourly
	default:
		return services.PassReport{}, fmt.Errorf("unknown reminder pass %q", pass)
	}
	if !s.enter() {
		return services.PassReport{Pass: pass}, ErrStopped
	}
	defer s.wg.Done()

	if !guard.CompareAndSwap(false, true) {
		s.log.Warn("Skipping reminder pass; previous run still active", "pass", pass)
		return services.PassReport{Pass: pass}, ErrPassRunning
	}
	defer guard.Store(false)

	release, ok, lerr := s.lock.TryLock(ctx, "reminders:"+pass, s.timeout)
	switch {
	case lerr != nil:
		// A lock outage should not cost users their reminders.
		s.log.Warn("Reminder lock unavailable; running without it", "pass", pass, "error", lerr)
	case !ok:
		s.log.Info("Skipping reminder pass; another instance holds it", "pass", pass)
		return services.PassReport{Pass: pass}, ErrPassRunning
	default:
		defer func() { _ = release(context.WithoutCancel(ctx)) }()
	}

	defer func() {
		if r := recover(); r != nil {
			s.log.Error("Reminder pass panic", "pass", pass, "panic", r)
			err = fmt.Errorf("reminder pass %s panicked", pass)
		}
	}()

	start := time.Now()
	defer func() {
		observability.Current().ObserveReminderPass(pass, report.Emitted, report.Failures, time.Since(start), err)
	}()

	runCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return run(runCtx)
}

// enter registers an in-flight pass unless the scheduler is stopping.
func (s *Scheduler) enter() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return false
	}
	s.wg.Add(1)
	return true
}
