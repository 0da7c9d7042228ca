package redis

import (
	"context"
	"dental-hms/internal/pkg/constvars"
	"dental-hms/internal/pkg/exceptions"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unreachableClient(t *testing.T) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { client.Close() })
	return client
}

func TestNewRedisRepository_NilClientIsNoop(t *testing.T) {
	repository := NewRedisRepository(nil)
	ctx := context.Background()

	require.NoError(t, repository.Set(ctx, "hms:reference:roles", []string{"Dentist"}, time.Minute))

	var roles []string
	found, err := repository.Get(ctx, "hms:reference:roles", &roles)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, roles)

	assert.NoError(t, repository.Delete(ctx, "hms:reference:roles"))
}

func TestRedisRepository_ErrorsAreWrapped(t *testing.T) {
	repository := NewRedisRepository(unreachableClient(t))
	ctx := context.Background()

	var dst []string
	found, err := repository.Get(ctx, "hms:reference:roles", &dst)
	assert.False(t, found)
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr))
	assert.Equal(t, constvars.StatusInternalServerError, customErr.StatusCode)

	err = repository.Set(ctx, "hms:reference:roles", dst, time.Minute)
	require.True(t, errors.As(err, &customErr))

	err = repository.Delete(ctx, "hms:reference:roles")
	require.True(t, errors.As(err, &customErr))
}

func TestRedisRepository_SetRejectsUnmarshalableValue(t *testing.T) {
	repository := NewRedisRepository(unreachableClient(t))

	err := repository.Set(context.Background(), "key", make(chan int), time.Minute)

	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr))
	assert.Contains(t, customErr.DevMessage, constvars.ErrDevCannotMarshalJSON)
}

func TestRedisRepository_DeleteWithoutKeys(t *testing.T) {
	repository := NewRedisRepository(unreachableClient(t))

	assert.NoError(t, repository.Delete(context.Background()))
}

func TestNoopRepository_LocksAlwaysSucceed(t *testing.T) {
	repository := NewNoopRepository()
	ctx := context.Background()

	acquired, err := repository.TrySetNX(ctx, "hms:lock:salary-approve:1", "owner", time.Second)
	require.NoError(t, err)
	assert.True(t, acquired)

	released, err := repository.CompareAndDelete(ctx, "hms:lock:salary-approve:1", "someone-else")
	require.NoError(t, err)
	assert.True(t, released)
}

func TestRedisRepository_LockErrorsAreWrapped(t *testing.T) {
	repository := NewRedisRepository(unreachableClient(t))
	ctx := context.Background()

	acquired, err := repository.TrySetNX(ctx, "hms:lock:salary-approve:1", "owner", time.Second)
	assert.False(t, acquired)
	var customErr *exceptions.CustomError
	require.True(t, errors.As(err, &customErr))
	assert.Contains(t, customErr.DevMessage, constvars.ErrDevRedisSetData)

	released, err := repository.CompareAndDelete(ctx, "hms:lock:salary-approve:1", "owner")
	assert.False(t, released)
	require.True(t, errors.As(err, &customErr))
	assert.Contains(t, customErr.DevMessage, constvars.ErrDevRedisDeleteData)
}
