package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/Jarin-Tasniya-Islam/MindEase-CSE470/internal/platform/logger"
)

func TestRedisLockerIsExclusiveUntilReleased(t *testing.T) {
	mr := miniredis.RunT(t)
	a, err := NewRedisLocker(logger.Nop(), mr.Addr(), "mindease:")
	require.NoError(t, err)
	b, err := NewRedisLocker(logger.Nop(), mr.Addr(), "mindease:")
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = a.Close()
		_ = b.Close()
	})

	ctx := context.Background()
	release, ok, err := a.TryLock(ctx, "reminders:daily", time.Minute)
	require.NoError(t, err)
	require.True(t, ok)
	require.True(t, mr.Exists("mindease:lock:reminders:daily"))

	_, ok, err = b.TryLock(ctx, "reminders:daily", time.Minute)
	require.NoError(t, err)
	require.False(t, ok)

	_, ok, err = b.TryLock(ctx, "reminders:hourly", time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, release(ctx))
	require.False(t, mr.Exists("mindease:lock:reminders:daily"))

	_, ok, err = b.TryLock(ctx, "reminders:daily", time.Minute)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestRedisLockerReleaseKeepsForeignLease(t *testing.T) {
	mr := miniredis.RunT(t)
	l, err := NewRedisLocker(logger.Nop(), mr.Addr(), "")
	require.NoError(t, err)
	t.Cleanup(func() { _ = l.Close() })

	ctx := context.Background()
	release, ok, err := l.TryLock(ctx, "pass", time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	// Lease expired and someone else took it.
	mr.FastForward(2 * time.Minute)
	require.NoError(t, mr.Set("lock:pass", "other-holder"))

	require.NoError(t, release(ctx))
	v, err := mr.Get("lock:pass")
	require.NoError(t, err)
	require.Equal(t, "other-holder", v)
}

func TestRedisLockerRejectsZeroTTL(t *testing.T) {
	mr := miniredis.RunT(t)
	l, err := NewRedisLocker(logger.Nop(), mr.Addr(), "")
	require.NoError(t, err)
	t.Cleanup(func() { _ = l.Close() })

	_, _, err = l.TryLock(context.Background(), "pass", 0)
	require.Error(t, err)
}

func TestLocalLockerAlwaysGrants(t *testing.T) {
	l := LocalLocker()
	release, ok, err := l.TryLock(context.Background(), "pass", time.Minute)
	require.NoError(t, err)
	require.True(t, ok)
	require.NoError(t, release(context.Background()))
}
