package redis

import (
	"context"
	"dental-hms/internal/app/contracts"
	"time"
)

// noopRepository never stores anything, so every read is a miss.
type noopRepository struct{}

func NewNoopRepository() contracts.CacheRepository {
	return noopRepository{}
}

func (noopRepository) Delete(ctx context.Context, keys ...string) error { return nil }

func (noopRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	return nil
}

func (noopRepository) Get(ctx context.Context, key string, dst interface{}) (bool, error) {
	return false, nil
}

// TrySetNX always succeeds, so locks are not enforced without Redis.
func (noopRepository) TrySetNX(ctx context.Context, key, value string, exp time.Duration) (bool, error) {
	return true, nil
}

func (noopRepository) CompareAndDelete(ctx context.Context, key, value string) (bool, error) {
	return true, nil
}
