package contracts

import (
	"context"
	"time"
)

// LockerService hands out short-lived exclusive locks shared by every gateway
// replica.
type LockerService interface {
	// TryLock reports whether the lock was acquired and returns the owner token
	// Unlock needs.
	TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error)
	Unlock(ctx context.Context, key, lockValue string) error
}
