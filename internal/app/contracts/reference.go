package contracts

import (
	"context"
	"dental-hms/internal/pkg/dto/responses"
)

type ReferenceStore interface {
	Snapshot() responses.ReferenceSnapshot
	// Refresh invalidates and reruns the named resources, or every resource when
	// none is given.
	Refresh(ctx context.Context, resources ...string)
	Tracks(resource string) bool
	Close()
}
