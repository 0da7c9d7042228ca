package async

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type clinicInput struct {
	Name string
}

func TestMutation_Success(t *testing.T) {
	m := NewMutation(zap.NewNop(), "createClinic", func(ctx context.Context, input clinicInput) (*int, error) {
		id := 9
		return &id, nil
	})

	result, ok := m.Mutate(context.Background(), clinicInput{Name: "Downtown"})

	require.True(t, ok)
	require.NotNil(t, result)
	assert.Equal(t, 9, *result)
	assert.Equal(t, MutationState{}, m.State())
	assert.NoError(t, m.Err())
}

func TestMutation_FailureIsCapturedNotReturned(t *testing.T) {
	backendErr := errors.New("HTTP 500 Internal Server Error: db error")
	m := NewMutation(zap.NewNop(), "createClinic", func(ctx context.Context, input clinicInput) (*int, error) {
		return nil, backendErr
	})

	result, ok := m.Mutate(context.Background(), clinicInput{Name: "Downtown"})

	assert.False(t, ok)
	assert.Nil(t, result)
	state := m.State()
	assert.False(t, state.Loading)
	assert.NotEmpty(t, state.Error)
	assert.Contains(t, state.Error, "500")
	assert.ErrorIs(t, m.Err(), backendErr)
}

func TestMutation_ClearsErrorOnNextTrigger(t *testing.T) {
	fail := true
	m := NewMutation(zap.NewNop(), "updateStaff", func(ctx context.Context, input int) (int, error) {
		if fail {
			return 0, errors.New("HTTP 409 Conflict: duplicate email")
		}
		return input, nil
	})

	_, ok := m.Mutate(context.Background(), 1)
	require.False(t, ok)
	require.NotEmpty(t, m.State().Error)

	fail = false
	result, ok := m.Mutate(context.Background(), 2)

	assert.True(t, ok)
	assert.Equal(t, 2, result)
	assert.Empty(t, m.State().Error)
}

func TestMutation_LoadingWhileInFlight(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	m := NewMutation(zap.NewNop(), "deleteService", func(ctx context.Context, input int) (struct{}, error) {
		close(entered)
		<-release
		return struct{}{}, nil
	})

	done := make(chan bool)
	go func() {
		_, ok := m.Mutate(context.Background(), 4)
		done <- ok
	}()

	<-entered
	assert.True(t, m.State().Loading)

	close(release)
	assert.True(t, <-done)
	assert.False(t, m.State().Loading)
}

// Overlapping triggers: the latest started call owns the shared state even when an
// older call settles after it.
func TestMutation_LatestStartedTriggerOwnsState(t *testing.T) {
	firstEntered := make(chan struct{})
	releaseFirst := make(chan struct{})
	m := NewMutation(zap.NewNop(), "approveSalary", func(ctx context.Context, input int) (int, error) {
		if input == 1 {
			close(firstEntered)
			<-releaseFirst
			return 0, errors.New("HTTP 500 Internal Server Error: timeout")
		}
		return input, nil
	})

	firstDone := make(chan bool)
	go func() {
		_, ok := m.Mutate(context.Background(), 1)
		firstDone <- ok
	}()
	<-firstEntered

	result, ok := m.Mutate(context.Background(), 2)
	require.True(t, ok)
	require.Equal(t, 2, result)

	close(releaseFirst)
	assert.False(t, <-firstDone, "the first caller still receives its own failure")

	state := m.State()
	assert.False(t, state.Loading)
	assert.Empty(t, state.Error, "a superseded failure must not overwrite the latest outcome")
	assert.NoError(t, m.Err())
}

func TestMutation_PanicIsCaptured(t *testing.T) {
	m := NewMutation(zap.NewNop(), "createVisit", func(ctx context.Context, input int) (int, error) {
		panic("nil visit")
	})

	_, ok := m.Mutate(context.Background(), 1)

	assert.False(t, ok)
	assert.Contains(t, m.State().Error, "nil visit")
}
