package events

import (
	"context"
	"dental-hms/internal/pkg/constvars"
	"dental-hms/internal/pkg/dto/requests"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestBuildPublishing(t *testing.T) {
	occurredAt := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	event := &requests.MutationEvent{
		Resource:   constvars.ResourceClinic,
		Action:     constvars.MutationActionCreated,
		ID:         12,
		RequestID:  "req-1",
		OccurredAt: occurredAt,
	}

	msg, err := buildPublishing(event)

	require.NoError(t, err)
	assert.Equal(t, constvars.MIMEApplicationJSON, msg.ContentType)
	assert.Equal(t, amqp.Persistent, msg.DeliveryMode)
	assert.Equal(t, "req-1", msg.CorrelationId)
	assert.Equal(t, "Clinic.created", msg.Type)
	assert.Equal(t, occurredAt, msg.Timestamp)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(msg.Body, &decoded))
	assert.Equal(t, "Clinic", decoded["resource"])
	assert.Equal(t, "created", decoded["action"])
	assert.Equal(t, float64(12), decoded["id"])
	assert.Equal(t, "req-1", decoded["request_id"])
	assert.Equal(t, "2024-03-01T09:30:00Z", decoded["occurred_at"])
}

func TestNewRabbitMQPublisher_NilConnectionIsNoop(t *testing.T) {
	publisher, err := NewRabbitMQPublisher(nil, zap.NewNop(), constvars.MutationEventsQueueName)
	require.NoError(t, err)

	err = publisher.Publish(context.Background(), &requests.MutationEvent{
		Resource: constvars.ResourceRole,
		Action:   constvars.MutationActionDeleted,
		ID:       3,
	})
	assert.NoError(t, err)
	assert.NoError(t, publisher.Close())
}

// fakeConfirmation answers only when the test resolves its delivery tag.
type fakeConfirmation struct {
	answer chan bool
}

func (c *fakeConfirmation) WaitContext(ctx context.Context) (bool, error) {
	select {
	case acked := <-c.answer:
		return acked, nil
	case <-ctx.Done():
		return false, ctx.Err()
	}
}

type fakeConfirmChannel struct {
	mu        sync.Mutex
	published []amqp.Publishing
	confirms  []*fakeConfirmation
	closed    bool
}

func (c *fakeConfirmChannel) PublishDeferred(_ context.Context, _ string, msg amqp.Publishing) (confirmation, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	confirm := &fakeConfirmation{answer: make(chan bool, 1)}
	c.published = append(c.published, msg)
	c.confirms = append(c.confirms, confirm)
	return confirm, nil
}

func (c *fakeConfirmChannel) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}

func (c *fakeConfirmChannel) resolve(tag int, acked bool) {
	c.mu.Lock()
	confirm := c.confirms[tag]
	c.mu.Unlock()
	confirm.answer <- acked
}

func TestRabbitMQPublisher_ConfirmationsStayWithTheirMessage(t *testing.T) {
	ch := &fakeConfirmChannel{}
	publisher := newRabbitMQPublisher(ch, zap.NewNop(), constvars.MutationEventsQueueName)

	timedOut, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := publisher.Publish(timedOut, &requests.MutationEvent{Resource: constvars.ResourceClinic, Action: constvars.MutationActionCreated, ID: 1})
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))

	// the late ack of the first message must not be taken by the second
	ch.resolve(0, true)

	done := make(chan error, 1)
	go func() {
		done <- publisher.Publish(context.Background(), &requests.MutationEvent{Resource: constvars.ResourceClinic, Action: constvars.MutationActionUpdated, ID: 1})
	}()

	require.Eventually(t, func() bool {
		ch.mu.Lock()
		defer ch.mu.Unlock()
		return len(ch.confirms) == 2
	}, time.Second, 5*time.Millisecond)

	select {
	case err := <-done:
		t.Fatalf("second publish returned before its own confirmation: %v", err)
	case <-time.After(30 * time.Millisecond):
	}

	ch.resolve(1, false)
	err = <-done
	require.Error(t, err)
	assert.Contains(t, err.Error(), "message not confirmed")

	assert.Len(t, ch.published, 2)
	assert.NoError(t, publisher.Close())
	assert.True(t, ch.closed)
}

func TestRabbitMQPublisher_Ack(t *testing.T) {
	ch := &fakeConfirmChannel{}
	publisher := newRabbitMQPublisher(ch, zap.NewNop(), constvars.MutationEventsQueueName)

	done := make(chan error, 1)
	go func() {
		done <- publisher.Publish(context.Background(), &requests.MutationEvent{Resource: constvars.ResourceRole, Action: constvars.MutationActionDeleted, ID: 3, RequestID: "req-9"})
	}()
	require.Eventually(t, func() bool {
		ch.mu.Lock()
		defer ch.mu.Unlock()
		return len(ch.confirms) == 1
	}, time.Second, 5*time.Millisecond)

	ch.resolve(0, true)

	require.NoError(t, <-done)
	assert.Equal(t, "req-9", ch.published[0].CorrelationId)
}
