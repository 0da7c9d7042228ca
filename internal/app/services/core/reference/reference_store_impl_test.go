package reference

import (
	"context"
	"dental-hms/internal/app/contracts/mocks"
	"dental-hms/internal/pkg/constvars"
	"dental-hms/internal/pkg/exceptions"
	"dental-hms/internal/pkg/hms_dto"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type storeFixture struct {
	cache       *mocks.MockCacheRepository
	roles       *mocks.MockRoleClient
	specialties *mocks.MockClinicalSpecialtyClient
	enterprises *mocks.MockEnterpriseClient
	clinics     *mocks.MockClinicClient
}

func newStoreFixture() *storeFixture {
	return &storeFixture{
		cache:       new(mocks.MockCacheRepository),
		roles:       new(mocks.MockRoleClient),
		specialties: new(mocks.MockClinicalSpecialtyClient),
		enterprises: new(mocks.MockEnterpriseClient),
		clinics:     new(mocks.MockClinicClient),
	}
}

func (f *storeFixture) defaultLists() {
	f.roles.On("FindAll", mock.Anything).Return([]hms_dto.Role{{RoleID: 1, RoleName: "Dentist"}}, nil)
	f.specialties.On("FindAll", mock.Anything).Return([]hms_dto.ClinicalSpecialty{{SpecialtyID: 2, SpecialtyName: "Orthodontics"}}, nil)
	f.enterprises.On("FindAll", mock.Anything).Return([]hms_dto.Enterprise{{EnterpriseID: 1, EnterpriseName: "Smile Group"}}, nil)
	f.clinics.On("FindAll", mock.Anything).Return([]hms_dto.Clinic{{ClinicID: 1, EnterpriseID: 1, ClinicName: "Downtown"}}, nil)
}

func (f *storeFixture) start(t *testing.T) *Store {
	store := NewStore(zap.NewNop(), f.cache, time.Minute, f.roles, f.specialties, f.enterprises, f.clinics)
	t.Cleanup(store.Close)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, store.WaitReady(ctx))
	return store
}

func TestStore_LoadsEveryListAndCachesIt(t *testing.T) {
	f := newStoreFixture()
	f.defaultLists()
	f.cache.On("Get", mock.Anything, mock.Anything, mock.Anything).Return(false, nil)
	f.cache.On("Set", mock.Anything, mock.Anything, mock.Anything, time.Minute).Return(nil)

	store := f.start(t)
	snapshot := store.Snapshot()

	assert.Equal(t, []hms_dto.Role{{RoleID: 1, RoleName: "Dentist"}}, snapshot.Roles.Data)
	assert.Nil(t, snapshot.Roles.Error)
	assert.False(t, snapshot.Roles.Loading)
	assert.Equal(t, "Orthodontics", snapshot.ClinicalSpecialties.Data[0].SpecialtyName)
	assert.Equal(t, "Smile Group", snapshot.Enterprises.Data[0].EnterpriseName)
	assert.Equal(t, "Downtown", snapshot.Clinics.Data[0].ClinicName)

	f.cache.AssertCalled(t, "Set", mock.Anything, "hms:reference:Role", []hms_dto.Role{{RoleID: 1, RoleName: "Dentist"}}, time.Minute)
	f.cache.AssertCalled(t, "Set", mock.Anything, "hms:reference:Clinic", mock.Anything, time.Minute)
}

func TestStore_ServesCachedCopyWithoutCallingBackend(t *testing.T) {
	f := newStoreFixture()
	f.defaultLists()
	f.cache.On("Get", mock.Anything, "hms:reference:Role", mock.Anything).
		Run(func(args mock.Arguments) {
			dst := args.Get(2).(*[]hms_dto.Role)
			*dst = []hms_dto.Role{{RoleID: 9, RoleName: "Hygienist"}}
		}).
		Return(true, nil)
	f.cache.On("Get", mock.Anything, mock.Anything, mock.Anything).Return(false, nil)
	f.cache.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	store := f.start(t)

	assert.Equal(t, []hms_dto.Role{{RoleID: 9, RoleName: "Hygienist"}}, store.Snapshot().Roles.Data)
	f.roles.AssertNotCalled(t, "FindAll", mock.Anything)
}

func TestStore_CacheFailureFallsBackToBackend(t *testing.T) {
	f := newStoreFixture()
	f.defaultLists()
	f.cache.On("Get", mock.Anything, mock.Anything, mock.Anything).Return(false, exceptions.ErrRedisGet(errors.New("connection refused")))
	f.cache.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(exceptions.ErrRedisSet(errors.New("connection refused")))

	store := f.start(t)
	snapshot := store.Snapshot()

	assert.Nil(t, snapshot.Roles.Error)
	assert.Equal(t, "Dentist", snapshot.Roles.Data[0].RoleName)
	f.roles.AssertNumberOfCalls(t, "FindAll", 1)
}

func TestStore_FailureIsReportedPerList(t *testing.T) {
	f := newStoreFixture()
	f.roles.On("FindAll", mock.Anything).Return([]hms_dto.Role{{RoleID: 1, RoleName: "Dentist"}}, nil)
	f.specialties.On("FindAll", mock.Anything).Return([]hms_dto.ClinicalSpecialty{}, nil)
	f.enterprises.On("FindAll", mock.Anything).Return([]hms_dto.Enterprise{}, nil)
	f.clinics.On("FindAll", mock.Anything).Return(nil, exceptions.NewHttpError(503, "Service Unavailable", "maintenance"))
	f.cache.On("Get", mock.Anything, mock.Anything, mock.Anything).Return(false, nil)
	f.cache.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	store := f.start(t)
	snapshot := store.Snapshot()

	assert.Nil(t, snapshot.Roles.Error)
	require.NotNil(t, snapshot.Clinics.Error)
	assert.Contains(t, *snapshot.Clinics.Error, "503")
	assert.Contains(t, *snapshot.Clinics.Error, "maintenance")
	assert.Equal(t, []hms_dto.Clinic{}, snapshot.Clinics.Data)
	f.cache.AssertNotCalled(t, "Set", mock.Anything, "hms:reference:Clinic", mock.Anything, mock.Anything)
}

func TestStore_RefreshInvalidatesAndReruns(t *testing.T) {
	f := newStoreFixture()
	f.roles.On("FindAll", mock.Anything).Return([]hms_dto.Role{{RoleID: 1, RoleName: "Dentist"}}, nil).Once()
	f.roles.On("FindAll", mock.Anything).Return([]hms_dto.Role{{RoleID: 1, RoleName: "Dentist"}, {RoleID: 2, RoleName: "Nurse"}}, nil)
	f.specialties.On("FindAll", mock.Anything).Return([]hms_dto.ClinicalSpecialty{}, nil)
	f.enterprises.On("FindAll", mock.Anything).Return([]hms_dto.Enterprise{}, nil)
	f.clinics.On("FindAll", mock.Anything).Return([]hms_dto.Clinic{}, nil)
	f.cache.On("Get", mock.Anything, mock.Anything, mock.Anything).Return(false, nil)
	f.cache.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	f.cache.On("Delete", mock.Anything, []string{"hms:reference:Role"}).Return(nil)

	store := f.start(t)
	store.Refresh(context.Background(), constvars.ResourceRole, constvars.ResourcePatient)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	state, err := store.roles.Wait(ctx)
	require.NoError(t, err)

	assert.Len(t, state.Data, 2)
	assert.Equal(t, uint64(1), store.roles.Generation())
	assert.Equal(t, uint64(0), store.clinics.Generation())
	f.cache.AssertCalled(t, "Delete", mock.Anything, []string{"hms:reference:Role"})
	f.cache.AssertNumberOfCalls(t, "Delete", 1)
	f.roles.AssertNumberOfCalls(t, "FindAll", 2)
}

func TestStore_RefreshWithoutArgumentsCoversEveryList(t *testing.T) {
	f := newStoreFixture()
	f.defaultLists()
	f.cache.On("Get", mock.Anything, mock.Anything, mock.Anything).Return(false, nil)
	f.cache.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	f.cache.On("Delete", mock.Anything, mock.Anything).Return(nil)

	store := f.start(t)
	store.Refresh(context.Background())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, store.WaitReady(ctx))

	f.cache.AssertNumberOfCalls(t, "Delete", 4)
	assert.Equal(t, uint64(1), store.enterprises.Generation())
	assert.Equal(t, uint64(1), store.specialties.Generation())
}

func TestStore_Tracks(t *testing.T) {
	f := newStoreFixture()
	f.defaultLists()
	f.cache.On("Get", mock.Anything, mock.Anything, mock.Anything).Return(false, nil)
	f.cache.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	store := f.start(t)

	assert.True(t, store.Tracks(constvars.ResourceRole))
	assert.True(t, store.Tracks(constvars.ResourceClinic))
	assert.False(t, store.Tracks(constvars.ResourcePatient))
	assert.False(t, store.Tracks(constvars.ResourceSalary))
}

func TestStore_SupersededRunDoesNotRepopulateCache(t *testing.T) {
	f := newStoreFixture()
	stale := []hms_dto.Role{{RoleID: 1, RoleName: "Dentist"}}
	fresh := []hms_dto.Role{{RoleID: 1, RoleName: "Dentist"}, {RoleID: 2, RoleName: "Nurse"}}
	started := make(chan struct{})
	release := make(chan struct{})
	f.roles.On("FindAll", mock.Anything).
		Run(func(args mock.Arguments) {
			close(started)
			<-release
		}).
		Return(stale, nil).Once()
	f.roles.On("FindAll", mock.Anything).Return(fresh, nil)
	f.specialties.On("FindAll", mock.Anything).Return([]hms_dto.ClinicalSpecialty{}, nil)
	f.enterprises.On("FindAll", mock.Anything).Return([]hms_dto.Enterprise{}, nil)
	f.clinics.On("FindAll", mock.Anything).Return([]hms_dto.Clinic{}, nil)
	f.cache.On("Get", mock.Anything, mock.Anything, mock.Anything).Return(false, nil)
	f.cache.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	f.cache.On("Delete", mock.Anything, mock.Anything).Return(nil)

	core, logs := observer.New(zap.DebugLevel)
	store := NewStore(zap.New(core), f.cache, time.Minute, f.roles, f.specialties, f.enterprises, f.clinics)
	t.Cleanup(store.Close)

	<-started
	store.Refresh(context.Background(), constvars.ResourceRole)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	state, err := store.roles.Wait(ctx)
	require.NoError(t, err)
	assert.Equal(t, fresh, state.Data)

	close(release)
	require.Eventually(t, func() bool {
		return logs.FilterMessage("reference.Store skipped cache write for superseded run").Len() == 1
	}, 5*time.Second, 10*time.Millisecond)

	f.cache.AssertCalled(t, "Set", mock.Anything, "hms:reference:Role", fresh, time.Minute)
	f.cache.AssertNotCalled(t, "Set", mock.Anything, "hms:reference:Role", stale, mock.Anything)
	assert.Equal(t, fresh, store.Snapshot().Roles.Data)
}

func TestStore_LogsSettledRunsWithGeneration(t *testing.T) {
	f := newStoreFixture()
	f.defaultLists()
	f.cache.On("Get", mock.Anything, mock.Anything, mock.Anything).Return(false, nil)
	f.cache.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	f.cache.On("Delete", mock.Anything, mock.Anything).Return(nil)

	core, logs := observer.New(zap.DebugLevel)
	store := NewStore(zap.New(core), f.cache, time.Minute, f.roles, f.specialties, f.enterprises, f.clinics)
	t.Cleanup(store.Close)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, store.WaitReady(ctx))

	store.Refresh(context.Background(), constvars.ResourceRole)

	require.Eventually(t, func() bool {
		return logs.FilterMessage("reference.Store list settled").
			FilterField(zap.String(constvars.LoggingResourceKey, constvars.ResourceRole)).
			FilterField(zap.Uint64(constvars.LoggingGenerationKey, 1)).
			Len() == 1
	}, 5*time.Second, 10*time.Millisecond)
}
