package mocks

import (
	"context"
	"dental-hms/internal/pkg/dto/requests"
	"dental-hms/internal/pkg/dto/responses"
	"time"

	"github.com/stretchr/testify/mock"
)

type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string, dst interface{}) (bool, error) {
	args := m.Called(ctx, key, dst)
	return args.Bool(0), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	args := m.Called(ctx, key, value, exp)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, keys ...string) error {
	args := m.Called(ctx, keys)
	return args.Error(0)
}

func (m *MockCacheRepository) TrySetNX(ctx context.Context, key, value string, exp time.Duration) (bool, error) {
	args := m.Called(ctx, key, value, exp)
	return args.Bool(0), args.Error(1)
}

func (m *MockCacheRepository) CompareAndDelete(ctx context.Context, key, value string) (bool, error) {
	args := m.Called(ctx, key, value)
	return args.Bool(0), args.Error(1)
}

type MockLockerService struct {
	mock.Mock
}

func (m *MockLockerService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	args := m.Called(ctx, key, expiration)
	return args.Bool(0), args.String(1), args.Error(2)
}

func (m *MockLockerService) Unlock(ctx context.Context, key, lockValue string) error {
	args := m.Called(ctx, key, lockValue)
	return args.Error(0)
}

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, event *requests.MutationEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventPublisher) Close() error {
	args := m.Called()
	return args.Error(0)
}

type MockMutationRecorder struct {
	mock.Mock
}

func (m *MockMutationRecorder) Record(ctx context.Context, resource, action string, id int) {
	m.Called(ctx, resource, action, id)
}

type MockReferenceStore struct {
	mock.Mock
}

func (m *MockReferenceStore) Snapshot() responses.ReferenceSnapshot {
	args := m.Called()
	return args.Get(0).(responses.ReferenceSnapshot)
}

func (m *MockReferenceStore) Refresh(ctx context.Context, resources ...string) {
	m.Called(ctx, resources)
}

func (m *MockReferenceStore) Tracks(resource string) bool {
	args := m.Called(resource)
	return args.Bool(0)
}

func (m *MockReferenceStore) Close() {
	m.Called()
}
