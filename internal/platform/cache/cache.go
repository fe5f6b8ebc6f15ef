package cache

import (
	"context"
	"time"
)

// Cache stores JSON-encoded values. A miss is (false, nil).
type Cache interface {
	GetJSON(ctx context.Context, key string, dst any) (bool, error)
	SetJSON(ctx context.Context, key string, v any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	Close() error
}

type noop struct{}

// Noop is used when no cache backend is configured.
func Noop() Cache { return noop{} }

func (noop) GetJSON(context.Context, string, any) (bool, error)        { return false, nil }
func (noop) SetJSON(context.Context, string, any, time.Duration) error { return nil }
func (noop) Delete(context.Context, ...string) error                   { return nil }
func (noop) Close() error                                              { return nil }
