// Package async holds the read and write state containers shared by every HMS
// consumer. A Query owns the {data, loading, error} triple of one read, a Mutation
// the {loading, error} pair of one write.
package async

import (
	"context"
	"dental-hms/internal/pkg/constvars"
	"errors"
	"fmt"
	"reflect"
)

// ErrClosed is returned by Query.Wait once the query has been closed.
var ErrClosed = errors.New("async: query closed")

type State[T any] struct {
	Data    T      `json:"data"`
	Loading bool   `json:"loading"`
	Error   string `json:"error"`
}

type MutationState struct {
	Loading bool   `json:"loading"`
	Error   string `json:"error"`
}

// errorMessage never returns an empty string for a non-nil error so that an
// empty Error field always means "no error".
func errorMessage(err error) string {
	message := err.Error()
	if message == "" {
		return fmt.Sprintf("%T", err)
	}
	return message
}

// invoke runs fn and turns a panic into an error.
func invoke[I, R any](ctx context.Context, fn func(context.Context, I) (R, error), input I) (result R, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf(constvars.ErrDevAsyncProducerPanicked, rec)
		}
	}()
	return fn(ctx, input)
}

func depsEqual(a, b []any) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !reflect.DeepEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}

func cloneDeps(deps []any) []any {
	cloned := make([]any, len(deps))
	copy(cloned, deps)
	return cloned
}
