package async

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

type MutateFunc[I, R any] func(ctx context.Context, input I) (R, error)

// Mutation wraps a create, update or delete call. Failures are captured in the
// state instead of being returned. Overlapping Mutate calls each get their own
// result, but only the most recently started call writes Loading and Error.
type Mutation[I, R any] struct {
	Log  *zap.Logger
	Name string

	fn MutateFunc[I, R]

	mu    sync.Mutex
	state MutationState
	err   error
	seq   uint64
}

func NewMutation[I, R any](logger *zap.Logger, name string, fn MutateFunc[I, R]) *Mutation[I, R] {
	return &Mutation[I, R]{
		Log:  logger,
		Name: name,
		fn:   fn,
	}
}

// Mutate returns the call result and true on success. On failure it returns the
// zero R and false and the message is available from State().Error.
func (m *Mutation[I, R]) Mutate(ctx context.Context, input I) (R, bool) {
	m.mu.Lock()
	m.seq++
	seq := m.seq
	m.state = MutationState{Loading: true}
	m.err = nil
	m.mu.Unlock()

	result, err := invoke(ctx, m.fn, input)

	m.mu.Lock()
	defer m.mu.Unlock()
	latest := seq == m.seq

	if err != nil {
		m.Log.Warn("async.Mutation failed",
			zap.String("mutation", m.Name),
			zap.Bool("latest", latest),
			zap.Error(err),
		)
		if latest {
			m.state = MutationState{Error: errorMessage(err)}
			m.err = err
		}
		var zero R
		return zero, false
	}

	if latest {
		m.state = MutationState{}
	}
	return result, true
}

func (m *Mutation[I, R]) State() MutationState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Err returns the error behind State().Error, or nil.
func (m *Mutation[I, R]) Err() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.err
}
