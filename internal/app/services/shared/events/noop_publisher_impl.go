package events

import (
	"context"
	"dental-hms/internal/app/contracts"
	"dental-hms/internal/pkg/constvars"
	"dental-hms/internal/pkg/dto/requests"

	"go.uber.org/zap"
)

type noopPublisher struct {
	log *zap.Logger
}

func NewNoopPublisher(log *zap.Logger) contracts.EventPublisher {
	return &noopPublisher{log: log}
}

func (p *noopPublisher) Publish(ctx context.Context, event *requests.MutationEvent) error {
	p.log.Debug("noopPublisher.Publish dropped event",
		zap.String(constvars.LoggingRequestIDKey, event.RequestID),
		zap.String(constvars.LoggingResourceKey, event.Resource),
		zap.String(constvars.LoggingMutationActionKey, event.Action),
	)
	return nil
}

func (p *noopPublisher) Close() error { return nil }
