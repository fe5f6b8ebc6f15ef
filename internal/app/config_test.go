package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/platform/logger"
)

func TestLoadConfigRejectsUnknownTimezone(t *testing.T) {
	t.Setenv("APP_TZ", "Mars/Olympus")
	_, err := LoadConfig(logger.Nop())
	require.ErrorContains(t, err, "APP_TZ")
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("APP_TZ", "")
	t.Setenv("ACCESS_TOKEN_TTL", "")
	t.Setenv("REDIS_ADDR", "")

	cfg, err := LoadConfig(logger.Nop())
	require.NoError(t, err)
	require.Equal(t, "UTC", cfg.Zone.Name())
	require.Equal(t, 2*time.Hour, cfg.AccessTokenTTL)
	require.Equal(t, 16, cfg.BookingStartHour)
	require.Equal(t, 22, cfg.BookingEndHour)
	require.Equal(t, 5*time.Second, cfg.AnalyticsStoreTimeout)
	require.True(t, cfg.SchedulerEnabled)
	require.Empty(t, cfg.RedisAddr)
}

func TestLoadConfigReadsOverrides(t *testing.T) {
	t.Setenv("APP_TZ", "Asia/Dhaka")
	t.Setenv("ADMIN_EMAILS", "a@x.io, b@x.io")
	t.Setenv("ANALYTICS_STORE_TIMEOUT_MS", "750")
	t.Setenv("SCHEDULER_ENABLED", "false")
	t.Setenv("DB_DRIVER", "sqlite")

	cfg, err := LoadConfig(logger.Nop())
	require.NoError(t, err)
	require.Equal(t, "Asia/Dhaka", cfg.Zone.Name())
	require.Equal(t, []string{"a@x.io", "b@x.io"}, cfg.AdminEmails)
	require.Equal(t, 750*time.Millisecond, cfg.AnalyticsStoreTimeout)
	require.False(t, cfg.SchedulerEnabled)
	require.Equal(t, "sqlite", cfg.DB.Driver)
}
