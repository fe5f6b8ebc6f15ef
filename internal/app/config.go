package app

import (
	"fmt"
	"time"

	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/data/db"
	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/observability"
	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/platform/envutil"
	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/platform/localday"
	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/platform/logger"
)

type Config struct {
	Port string

	JWTSecretKey   string
	AccessTokenTTL time.Duration
	AdminEmails    []string

	Zone localday.Zone
	DB   db.Config

	RedisAddr       string
	RedisKeyPrefix  string
	SupportCacheTTL time.Duration

	SchedulerEnabled     bool
	SchedulerConcurrency int
	DailyReminderHour    int
	ReminderPassTimeout  time.Duration

	AnalyticsStoreTimeout time.Duration
	BookingStartHour      int
	BookingEndHour        int

	CORSAllowedOrigins []string
	MetricsEnabled     bool
	Otel               observability.OtelConfig
}

// LoadConfig reads the environment once. Only an unknown APP_TZ is fatal;
// everything else falls back to its default.
func LoadConfig(log *logger.Logger) (Config, error) {
	zone, err := localday.Load(envutil.String("APP_TZ", "UTC", log))
	if err != nil {
		return Config{}, fmt.Errorf("APP_TZ: %w", err)
	}

	jwtSecret := envutil.String("JWT_SECRET_KEY", "", log)
	if jwtSecret == "" {
		jwtSecret = "defaultsecret"
		log.Warn("JWT_SECRET_KEY not set, using an insecure default")
	}

	return Config{
		Port: envutil.String("PORT", "8080", log),

		JWTSecretKey:   jwtSecret,
		AccessTokenTTL: envutil.Seconds("ACCESS_TOKEN_TTL", 2*time.Hour, log),
		AdminEmails:    envutil.List("ADMIN_EMAILS", log),

		Zone: zone,
		DB: db.Config{
			Driver:           envutil.String("DB_DRIVER", db.DriverPostgres, log),
			PostgresHost:     envutil.String("POSTGRES_HOST", "localhost", log),
			PostgresPort:     envutil.String("POSTGRES_PORT", "5432", log),
			PostgresUser:     envutil.String("POSTGRES_USER", "postgres", log),
			PostgresPassword: envutil.String("POSTGRES_PASSWORD", "", log),
			PostgresName:     envutil.String("POSTGRES_NAME", "mindease", log),
			PostgresSSLMode:  envutil.String("POSTGRES_SSLMODE", "disable", log),
			SQLitePath:       envutil.String("SQLITE_PATH", "mindease.db", log),
		},

		RedisAddr:       envutil.String("REDIS_ADDR", "", log),
		RedisKeyPrefix:  envutil.String("REDIS_KEY_PREFIX", "mindease:", log),
		SupportCacheTTL: envutil.Seconds("SUPPORT_CACHE_TTL", 5*time.Minute, log),

		SchedulerEnabled:     envutil.Bool("SCHEDULER_ENABLED", true, log),
		SchedulerConcurrency: envutil.Int("SCHEDULER_CONCURRENCY", 4, log),
		DailyReminderHour:    envutil.Int("DAILY_REMINDER_HOUR", 6, log),
		ReminderPassTimeout:  envutil.Seconds("REMINDER_PASS_TIMEOUT", 30*time.Minute, log),

		AnalyticsStoreTimeout: envutil.Millis("ANALYTICS_STORE_TIMEOUT_MS", 5*time.Second, log),
		BookingStartHour:      envutil.Int("APPOINTMENT_WINDOW_START_HOUR", 16, log),
		BookingEndHour:        envutil.Int("APPOINTMENT_WINDOW_END_HOUR", 22, log),

		CORSAllowedOrigins: envutil.List("CORS_ALLOWED_ORIGINS", log),
		MetricsEnabled:     envutil.Bool("METRICS_ENABLED", false, log),
		Otel: observability.OtelConfig{
			Enabled:     envutil.Bool("OTEL_ENABLED", false, log),
			ServiceName: envutil.String("OTEL_SERVICE_NAME", "mindease-api", log),
			Environment: envutil.String("OTEL_ENVIRONMENT", "development", log),
			Version:     envutil.String("OTEL_SERVICE_VERSION", "dev", log),
			Endpoint:    envutil.String("OTEL_EXPORTER_OTLP_ENDPOINT", "", log),
			Headers:     observability.ParseHeaders(envutil.String("OTEL_EXPORTER_OTLP_HEADERS", "", log)),
			Insecure:    envutil.Bool("OTEL_EXPORTER_OTLP_INSECURE", false, log),
			SampleRatio: envutil.Float("OTEL_SAMPLE_RATIO", 0.1, log),
		},
	}, nil
}
