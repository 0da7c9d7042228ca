package contracts

import (
	"context"
	"dental-hms/internal/pkg/dto/requests"
)

type EventPublisher interface {
	Publish(ctx context.Context, event *requests.MutationEvent) error
	Close() error
}

// MutationRecorder runs the follow-ups of a successful gateway mutation. It never
// fails the request that triggered it.
type MutationRecorder interface {
	Record(ctx context.Context, resource, action string, id int)
}
