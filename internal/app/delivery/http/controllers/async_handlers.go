package controllers

import (
	"context"
	"dental-hms/internal/app/config"
	"dental-hms/internal/app/contracts"
	"dental-hms/internal/pkg/async"
	"dental-hms/internal/pkg/exceptions"
	"dental-hms/internal/pkg/utils"
	"errors"
	"net/http"
	"reflect"
	"time"

	"go.uber.org/zap"
)

// Every gateway handler drives its own Query or Mutation, so each HTTP request is an
// isolated consumer of the HMS layer.

type readRoute[T any] struct {
	Name     string
	Resource string
	Message  string
	Fetch    async.Producer[T]
}

type writeRoute[I, R any] struct {
	Name       string
	Resource   string
	Action     string
	StatusCode int
	Message    string
	Mutate     async.MutateFunc[I, R]
	// ResourceID picks the id reported in the mutation event, zero when unset
	ResourceID func(input I, result R) int
}

func requestContext(r *http.Request, internalConfig *config.InternalConfig) (context.Context, context.CancelFunc) {
	timeout := time.Duration(internalConfig.App.RequestTimeoutInSeconds) * time.Second
	if timeout <= 0 {
		return context.WithCancel(r.Context())
	}
	return context.WithTimeout(r.Context(), timeout)
}

// mapFailure turns a captured Query or Mutation error into the CustomError the
// response builder understands.
func mapFailure(err error, resource string) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return exceptions.ErrServerDeadlineExceeded(context.DeadlineExceeded)
	}
	if httpErr, ok := exceptions.AsHttpError(err); ok {
		return exceptions.ErrUpstream(httpErr, resource)
	}
	return err
}

func serveRead[T any](log *zap.Logger, internalConfig *config.InternalConfig, w http.ResponseWriter, r *http.Request, route readRoute[T]) {
	ctx, cancel := requestContext(r, internalConfig)
	defer cancel()

	var initial T
	query := async.NewQuery(ctx, log, route.Name, route.Fetch, initial)
	defer query.Close()

	state, err := query.Wait(ctx)
	if err != nil {
		utils.BuildErrorResponse(log, w, mapFailure(err, route.Resource))
		return
	}
	if state.Error != "" {
		utils.BuildErrorResponse(log, w, mapFailure(query.Err(), route.Resource))
		return
	}

	utils.BuildSuccessResponse(w, http.StatusOK, route.Message, payload(state.Data))
}

func serveWrite[I, R any](log *zap.Logger, internalConfig *config.InternalConfig, recorder contracts.MutationRecorder, w http.ResponseWriter, r *http.Request, input I, route writeRoute[I, R]) {
	ctx, cancel := requestContext(r, internalConfig)
	defer cancel()

	mutation := async.NewMutation(log, route.Name, route.Mutate)
	result, ok := mutation.Mutate(ctx, input)
	if !ok {
		utils.BuildErrorResponse(log, w, mapFailure(mutation.Err(), route.Resource))
		return
	}

	id := 0
	if route.ResourceID != nil {
		id = route.ResourceID(input, result)
	}
	recorder.Record(ctx, route.Resource, route.Action, id)

	utils.BuildSuccessResponse(w, route.StatusCode, route.Message, payload(result))
}

// payload turns the absent record of a 204 (a nil pointer) into an untyped nil so
// the envelope omits data instead of writing null.
func payload(data interface{}) interface{} {
	value := reflect.ValueOf(data)
	if value.Kind() == reflect.Pointer && value.IsNil() {
		return nil
	}
	return data
}

// deleteByID adapts a client Delete to a mutation without a result body.
func deleteByID(fn func(ctx context.Context, id int) error) async.MutateFunc[int, interface{}] {
	return func(ctx context.Context, id int) (interface{}, error) {
		return nil, fn(ctx, id)
	}
}

func inputID(id int, _ interface{}) int {
	return id
}

// updateInput carries the path id next to the decoded body of an update.
type updateInput[B any] struct {
	ID   int
	Body *B
}
