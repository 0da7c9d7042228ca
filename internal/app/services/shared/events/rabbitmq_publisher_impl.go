package events

import (
	"context"
	"dental-hms/internal/app/contracts"
	"dental-hms/internal/pkg/constvars"
	"dental-hms/internal/pkg/dto/requests"
	"dental-hms/internal/pkg/exceptions"
	"fmt"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// confirmation is the broker answer for one published message.
type confirmation interface {
	WaitContext(ctx context.Context) (bool, error)
}

// confirmChannel publishes in confirm mode and hands back the confirmation bound to
// that message's delivery tag.
type confirmChannel interface {
	PublishDeferred(ctx context.Context, queue string, msg amqp.Publishing) (confirmation, error)
	Close() error
}

type amqpConfirmChannel struct {
	ch *amqp.Channel
}

func (c *amqpConfirmChannel) PublishDeferred(ctx context.Context, queue string, msg amqp.Publishing) (confirmation, error) {
	dc, err := c.ch.PublishWithDeferredConfirmWithContext(ctx, "", queue, false, false, msg)
	if err != nil {
		return nil, err
	}
	if dc == nil {
		return nil, fmt.Errorf("channel is not in confirm mode")
	}
	return dc, nil
}

func (c *amqpConfirmChannel) Close() error {
	return c.ch.Close()
}

// rabbitMQPublisher writes mutation events to one durable queue with publisher
// confirms. Each Publish waits only for its own delivery tag, so a caller that gives
// up on a confirmation never shifts the answers seen by later callers.
type rabbitMQPublisher struct {
	ch    confirmChannel
	queue string
	log   *zap.Logger
}

// NewRabbitMQPublisher returns a no-op publisher when conn is nil, i.e. when
// RABBITMQ_ENABLED is off.
func NewRabbitMQPublisher(conn *amqp.Connection, log *zap.Logger, queue string) (contracts.EventPublisher, error) {
	if conn == nil {
		return NewNoopPublisher(log), nil
	}

	ch, err := conn.Channel()
	if err != nil {
		return nil, exceptions.ErrRabbitMQOpenChannel(err)
	}

	_, err = ch.QueueDeclare(
		queue, // name
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,   // args
	)
	if err != nil {
		ch.Close()
		return nil, exceptions.ErrRabbitMQOpenChannel(err)
	}

	if err := ch.Confirm(false); err != nil {
		ch.Close()
		return nil, exceptions.ErrRabbitMQOpenChannel(err)
	}

	return newRabbitMQPublisher(&amqpConfirmChannel{ch: ch}, log, queue), nil
}

func newRabbitMQPublisher(ch confirmChannel, log *zap.Logger, queue string) *rabbitMQPublisher {
	return &rabbitMQPublisher{
		ch:    ch,
		queue: queue,
		log:   log,
	}
}

func (p *rabbitMQPublisher) Publish(ctx context.Context, event *requests.MutationEvent) error {
	p.log.Info("rabbitMQPublisher.Publish called",
		zap.String(constvars.LoggingRequestIDKey, event.RequestID),
		zap.String(constvars.LoggingResourceKey, event.Resource),
		zap.String(constvars.LoggingMutationActionKey, event.Action),
	)

	msg, err := buildPublishing(event)
	if err != nil {
		return err
	}

	confirm, err := p.ch.PublishDeferred(ctx, p.queue, msg)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, p.queue)
	}

	acked, err := confirm.WaitContext(ctx)
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, p.queue)
	}
	if !acked {
		return exceptions.ErrRabbitMQPublishMessage(fmt.Errorf("message not confirmed"), p.queue)
	}

	p.log.Info("rabbitMQPublisher.Publish succeeded",
		zap.String(constvars.LoggingRequestIDKey, event.RequestID),
		zap.String(constvars.LoggingQueueNameKey, p.queue),
	)
	return nil
}

func (p *rabbitMQPublisher) Close() error {
	return p.ch.Close()
}

func buildPublishing(event *requests.MutationEvent) (amqp.Publishing, error) {
	body, err := json.Marshal(event)
	if err != nil {
		return amqp.Publishing{}, exceptions.ErrCannotMarshalJSON(err)
	}

	return amqp.Publishing{
		ContentType:   constvars.MIMEApplicationJSON,
		Body:          body,
		DeliveryMode:  amqp.Persistent,
		CorrelationId: event.RequestID,
		Type:          fmt.Sprintf("%s.%s", event.Resource, event.Action),
		Timestamp:     event.OccurredAt,
	}, nil
}
