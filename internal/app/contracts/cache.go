package contracts

import (
	"context"
	"time"
)

type CacheRepository interface {
	// Get decodes the cached JSON into dst and reports whether the key existed.
	Get(ctx context.Context, key string, dst interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}, exp time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	// TrySetNX stores value only when key does not exist yet.
	TrySetNX(ctx context.Context, key, value string, exp time.Duration) (bool, error)
	// CompareAndDelete removes key only while it still holds value.
	CompareAndDelete(ctx context.Context, key, value string) (bool, error)
}
