package async

import (
	"context"
	"dental-hms/internal/pkg/constvars"
	"sync"

	"go.uber.org/zap"
)

type Producer[T any] func(ctx context.Context) (T, error)

// Query re-runs its producer on creation, on Refresh and whenever SetDeps receives
// a different dependency list. Only the most recently started run may write the
// state; an older run that settles later is discarded, as is any run that settles
// after Close.
type Query[T any] struct {
	Log  *zap.Logger
	Name string

	producer Producer[T]
	parent   context.Context

	mu         sync.Mutex
	state      State[T]
	err        error
	deps       []any
	generation uint64
	runID      uint64
	cancelRun  context.CancelFunc
	settled    chan struct{}
	closed     bool
	done       chan struct{}
	// seq orders snapshots; taken under mu together with the state it labels
	seq uint64

	notifyMu     sync.Mutex
	observers    map[int]func(State[T])
	nextObserver int
	notifiedSeq  uint64
}

// NewQuery mounts the query and starts its first run. Runs derive their context from
// ctx, so cancelling ctx aborts in-flight producers without closing the query;
// later runs then fail immediately with the context error.
func NewQuery[T any](ctx context.Context, logger *zap.Logger, name string, producer Producer[T], initial T, deps ...any) *Query[T] {
	q := &Query[T]{
		Log:       logger,
		Name:      name,
		producer:  producer,
		parent:    ctx,
		state:     State[T]{Data: initial},
		deps:      cloneDeps(deps),
		done:      make(chan struct{}),
		observers: make(map[int]func(State[T])),
	}
	q.start()
	return q
}

func (q *Query[T]) State() State[T] {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.state
}

// Err returns the error behind State().Error, or nil.
func (q *Query[T]) Err() error {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.err
}

// Generation counts Refresh calls.
func (q *Query[T]) Generation() uint64 {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.generation
}

// Refresh starts exactly one new run even when the dependencies are unchanged.
func (q *Query[T]) Refresh() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.generation++
	q.mu.Unlock()
	q.start()
}

// SetDeps starts a new run when deps differ from the current list and reports
// whether it did.
func (q *Query[T]) SetDeps(deps ...any) bool {
	q.mu.Lock()
	if q.closed || depsEqual(q.deps, deps) {
		q.mu.Unlock()
		return false
	}
	q.deps = cloneDeps(deps)
	q.mu.Unlock()
	q.start()
	return true
}

// Subscribe registers fn to receive applied state changes in the order they were
// applied. A snapshot that reaches the observers after a newer one is dropped, so
// observers may skip a state but never go back to an older one. Observers run
// synchronously on the goroutine that changed the state and must not call
// Refresh, SetDeps or Close.
func (q *Query[T]) Subscribe(fn func(State[T])) (unsubscribe func()) {
	q.notifyMu.Lock()
	defer q.notifyMu.Unlock()
	id := q.nextObserver
	q.nextObserver++
	q.observers[id] = fn
	return func() {
		q.notifyMu.Lock()
		defer q.notifyMu.Unlock()
		delete(q.observers, id)
	}
}

// Wait blocks until the current run settles and returns the resulting state.
func (q *Query[T]) Wait(ctx context.Context) (State[T], error) {
	for {
		q.mu.Lock()
		if q.closed {
			state := q.state
			q.mu.Unlock()
			return state, ErrClosed
		}
		if !q.state.Loading {
			state := q.state
			q.mu.Unlock()
			return state, nil
		}
		settled := q.settled
		q.mu.Unlock()

		select {
		case <-settled:
		case <-q.done:
		case <-ctx.Done():
			return q.State(), ctx.Err()
		}
	}
}

// Close unmounts the query. The in-flight run is cancelled and no observer is
// called once Close returns.
func (q *Query[T]) Close() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	q.runID++
	if q.cancelRun != nil {
		q.cancelRun()
		q.cancelRun = nil
	}
	close(q.done)
	q.mu.Unlock()

	// wait for a notification that raced with Close
	q.notifyMu.Lock()
	q.notifyMu.Unlock()

	q.Log.Debug("async.Query closed", zap.String("query", q.Name))
}

func (q *Query[T]) start() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	if q.cancelRun != nil {
		q.cancelRun()
	}
	q.runID++
	runID := q.runID
	generation := q.generation
	ctx, cancel := context.WithCancel(q.parent)
	q.cancelRun = cancel
	settled := make(chan struct{})
	q.settled = settled
	q.state.Loading = true
	q.state.Error = ""
	q.err = nil
	snapshot := q.state
	q.seq++
	seq := q.seq
	q.mu.Unlock()

	q.Log.Debug("async.Query run started",
		zap.String("query", q.Name),
		zap.Uint64(constvars.LoggingRunIDKey, runID),
		zap.Uint64(constvars.LoggingGenerationKey, generation),
	)
	q.notify(snapshot, seq)

	go q.run(ctx, runID, settled)
}

func (q *Query[T]) run(ctx context.Context, runID uint64, settled chan struct{}) {
	defer close(settled)

	data, err := invoke(ctx, func(ctx context.Context, _ struct{}) (T, error) {
		return q.producer(ctx)
	}, struct{}{})

	q.mu.Lock()
	if q.closed || runID != q.runID {
		q.mu.Unlock()
		q.Log.Debug("async.Query discarded stale run",
			zap.String("query", q.Name),
			zap.Uint64(constvars.LoggingRunIDKey, runID),
		)
		return
	}
	if err != nil {
		q.state.Error = errorMessage(err)
		q.err = err
	} else {
		q.state.Data = data
		q.state.Error = ""
		q.err = nil
	}
	q.state.Loading = false
	if q.cancelRun != nil {
		q.cancelRun()
		q.cancelRun = nil
	}
	snapshot := q.state
	q.seq++
	seq := q.seq
	q.mu.Unlock()

	if err != nil {
		q.Log.Warn("async.Query run failed",
			zap.String("query", q.Name),
			zap.Uint64(constvars.LoggingRunIDKey, runID),
			zap.Error(err),
		)
	}
	q.notify(snapshot, seq)
}

func (q *Query[T]) notify(state State[T], seq uint64) {
	q.notifyMu.Lock()
	defer q.notifyMu.Unlock()

	if seq <= q.notifiedSeq {
		return
	}
	q.notifiedSeq = seq

	q.mu.Lock()
	closed := q.closed
	q.mu.Unlock()
	if closed {
		return
	}
	for _, observer := range q.observers {
		observer(state)
	}
}
