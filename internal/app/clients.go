package app

import (
	"context"
	"fmt"

	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/data/db"
	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/observability"
	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/platform/cache"
	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/platform/logger"
)

type Clients struct {
	Database *db.Service
	Cache    cache.Cache
	// Lock is process-local when REDIS_ADDR is unset.
	Lock         cache.Locker
	Metrics      *observability.Metrics
	otelShutdown func(context.Context) error
}

func wireClients(ctx context.Context, log *logger.Logger, cfg Config) (Clients, error) {
	log.Info("Wiring clients...")

	shutdown := observability.InitOTel(ctx, log, cfg.Otel)

	database, err := db.Open(cfg.DB, log)
	if err != nil {
		_ = shutdown(ctx)
		return Clients{}, fmt.Errorf("init database: %w", err)
	}
	if err := db.AutoMigrateAll(database.DB()); err != nil {
		_ = database.Close()
		_ = shutdown(ctx)
		return Clients{}, fmt.Errorf("automigrate: %w", err)
	}

	out := Clients{
		Database:     database,
		Cache:        cache.Noop(),
		Lock:         cache.LocalLocker(),
		Metrics:      observability.Init(cfg.MetricsEnabled),
		otelShutdown: shutdown,
	}

	// Redis
	if cfg.RedisAddr != "" {
		c, err := cache.NewRedisCache(log, cfg.RedisAddr, cfg.RedisKeyPrefix)
		if err != nil {
			out.Close(ctx)
			return Clients{}, fmt.Errorf("init redis cache: %w", err)
		}
		out.Cache = c

		l, err := cache.NewRedisLocker(log, cfg.RedisAddr, cfg.RedisKeyPrefix)
		if err != nil {
			out.Close(ctx)
			return Clients{}, fmt.Errorf("init redis lock: %w", err)
		}
		out.Lock = l
	} else {
		log.Info("REDIS_ADDR not set; support cache disabled and reminder passes locked per process")
	}
	return out, nil
}

func (c *Clients) Close(ctx context.Context) {
	if c == nil {
		return
	}
	if c.Lock != nil {
		_ = c.Lock.Close()
	}
	if c.Cache != nil {
		_ = c.Cache.Close()
	}
	if c.Database != nil {
		_ = c.Database.Close()
	}
	if c.otelShutdown != nil {
		_ = c.otelShutdown(ctx)
	}
}
