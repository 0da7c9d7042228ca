package mutations

import (
	"context"
	"dental-hms/internal/app/contracts/mocks"
	"dental-hms/internal/pkg/constvars"
	"dental-hms/internal/pkg/dto/requests"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func newRecorder(publisher *mocks.MockEventPublisher, reference *mocks.MockReferenceStore) *mutationRecorder {
	recorder := NewMutationRecorder(zap.NewNop(), publisher, reference).(*mutationRecorder)
	recorder.now = func() time.Time {
		return time.Date(2024, 3, 1, 16, 30, 0, 0, time.FixedZone("WIB", 7*3600))
	}
	return recorder
}

func TestMutationRecorder_PublishesEvent(t *testing.T) {
	publisher := new(mocks.MockEventPublisher)
	reference := new(mocks.MockReferenceStore)
	publisher.On("Publish", mock.Anything, mock.Anything).Return(nil)
	reference.On("Tracks", constvars.ResourcePatient).Return(false)

	ctx := context.WithValue(context.Background(), constvars.CONTEXT_REQUEST_ID_KEY, "req-7")
	newRecorder(publisher, reference).Record(ctx, constvars.ResourcePatient, constvars.MutationActionCreated, 21)

	publisher.AssertCalled(t, "Publish", mock.Anything, &requests.MutationEvent{
		Resource:   constvars.ResourcePatient,
		Action:     constvars.MutationActionCreated,
		ID:         21,
		RequestID:  "req-7",
		OccurredAt: time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC),
	})
	reference.AssertNotCalled(t, "Refresh", mock.Anything, mock.Anything)
}

func TestMutationRecorder_RefreshesTrackedResources(t *testing.T) {
	publisher := new(mocks.MockEventPublisher)
	reference := new(mocks.MockReferenceStore)
	publisher.On("Publish", mock.Anything, mock.Anything).Return(nil)
	reference.On("Tracks", constvars.ResourceRole).Return(true)
	reference.On("Refresh", mock.Anything, []string{constvars.ResourceRole}).Return()

	newRecorder(publisher, reference).Record(context.Background(), constvars.ResourceRole, constvars.MutationActionUpdated, 2)

	reference.AssertCalled(t, "Refresh", mock.Anything, []string{constvars.ResourceRole})
}

func TestMutationRecorder_PublishFailureDoesNotStopRefresh(t *testing.T) {
	publisher := new(mocks.MockEventPublisher)
	reference := new(mocks.MockReferenceStore)
	publisher.On("Publish", mock.Anything, mock.Anything).Return(errors.New("channel closed"))
	reference.On("Tracks", constvars.ResourceClinic).Return(true)
	reference.On("Refresh", mock.Anything, []string{constvars.ResourceClinic}).Return()

	assert.NotPanics(t, func() {
		newRecorder(publisher, reference).Record(context.Background(), constvars.ResourceClinic, constvars.MutationActionDeleted, 4)
	})
	reference.AssertNumberOfCalls(t, "Refresh", 1)
}

func TestMutationRecorder_WithoutReferenceStore(t *testing.T) {
	publisher := new(mocks.MockEventPublisher)
	publisher.On("Publish", mock.Anything, mock.Anything).Return(nil)

	recorder := NewMutationRecorder(zap.NewNop(), publisher, nil)

	assert.NotPanics(t, func() {
		recorder.Record(context.Background(), constvars.ResourceRole, constvars.MutationActionCreated, 1)
	})
	publisher.AssertNumberOfCalls(t, "Publish", 1)
}
