package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/http"
	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/platform/envutil"
	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/platform/logger"
)

const shutdownTimeout = 30 * time.Second

type App struct {
	Log      *logger.Logger
	DB       *gorm.DB
	Server   *http.Server
	Cfg      Config
	Clients  Clients
	Repos    Repos
	Services Services
	cancel   context.CancelFunc
}

func New() (*App, error) {
	log, err := logger.NewWithOptions(logger.Options{
		Mode:     envutil.String("LOG_MODE", "development", nil),
		Redact:   envutil.Bool("LOG_REDACTION_ENABLED", true, nil),
		HashSalt: envutil.String("LOG_HASH_SALT", "", nil),
	})
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	log.Info("Loading environment variables...")
	cfg, err := LoadConfig(log)
	if err != nil {
		log.Sync()
		return nil, err
	}

	clients, err := wireClients(context.Background(), log, cfg)
	if err != nil {
		log.Sync()
		return nil, err
	}
	theDB := clients.Database.DB()

	reposet := wireRepos(theDB, log)

	serviceset, err := wireServices(theDB, log, cfg, clients, reposet)
	if err != nil {
		clients.Close(context.Background())
		log.Sync()
		return nil, err
	}

	handlerset := wireHandlers(log, clients, serviceset)
	middleware := wireMiddleware(log, serviceset)
	server := wireServer(log, cfg, clients, handlerset, middleware)

	return &App{
		Log:      log,
		DB:       theDB,
		Server:   server,
		Cfg:      cfg,
		Clients:  clients,
		Repos:    reposet,
		Services: serviceset,
	}, nil
}

// Start seeds the support directory and starts the reminder timetable.
func (a *App) Start() error {
	if a == nil || a.cancel != nil {
		return nil
	}
	ctx, cancel := context.WithCancel(context.Background())
	a.cancel = cancel

	if n, err := a.Services.Support.Seed(ctx); err != nil {
		a.Log.Warn("Support directory seed failed", "error", err)
	} else {
		a.Log.Info("Support directory seeded", "people", n)
	}

	if a.Cfg.SchedulerEnabled {
		a.Services.Scheduler.Start()
	} else {
		a.Log.Info("Reminder scheduler disabled; passes run only on admin request")
	}
	return nil
}

func (a *App) Run() error {
	if a == nil || a.Server == nil {
		return errors.New("app not initialized")
	}
	a.Log.Info("Server listening", "port", a.Cfg.Port, "tz", a.Cfg.Zone.Name())
	return a.Server.Run(":" + a.Cfg.Port)
}

// Close drains HTTP, waits for in-flight reminder passes, then releases clients.
func (a *App) Close() {
	if a == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if a.Server != nil {
		if err := a.Server.Shutdown(ctx); err != nil {
			a.Log.Warn("HTTP shutdown incomplete", "error", err)
		}
	}
	if a.Services.Scheduler != nil {
		if err := a.Services.Scheduler.Stop(ctx); err != nil {
			a.Log.Warn("Reminder scheduler did not stop cleanly", "error", err)
		}
	}
	if a.cancel != nil {
		a.cancel()
		a.cancel = nil
	}
	a.Clients.Close(ctx)
	a.Log.Sync()
}
