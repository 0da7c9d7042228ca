package mutations

import (
	"context"
	"dental-hms/internal/app/contracts"
	"dental-hms/internal/pkg/constvars"
	"dental-hms/internal/pkg/dto/requests"
	"dental-hms/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

type mutationRecorder struct {
	Log       *zap.Logger
	Publisher contracts.EventPublisher
	Reference contracts.ReferenceStore
	now       func() time.Time
}

// NewMutationRecorder wires the follow-ups of a gateway write: a mutation event and,
// for lookup resources, a refresh of the reference store. Mutations never refresh
// queries on their own, so this is the caller-driven refresh.
func NewMutationRecorder(logger *zap.Logger, publisher contracts.EventPublisher, reference contracts.ReferenceStore) contracts.MutationRecorder {
	return &mutationRecorder{
		Log:       logger,
		Publisher: publisher,
		Reference: reference,
		now:       time.Now,
	}
}

func (r *mutationRecorder) Record(ctx context.Context, resource, action string, id int) {
	requestID := utils.RequestIDFromContext(ctx)
	r.Log.Info("mutationRecorder.Record called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceKey, resource),
		zap.String(constvars.LoggingMutationActionKey, action),
		zap.Int(constvars.LoggingResourceIDKey, id),
	)

	event := &requests.MutationEvent{
		Resource:   resource,
		Action:     action,
		ID:         id,
		RequestID:  requestID,
		OccurredAt: r.now().UTC(),
	}
	err := r.Publisher.Publish(ctx, event)
	if err != nil {
		r.Log.Error("mutationRecorder.Record error publishing event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingResourceKey, resource),
			zap.Error(err),
		)
	}

	if r.Reference != nil && r.Reference.Tracks(resource) {
		r.Reference.Refresh(ctx, resource)
	}
}
