package reference

import (
	"context"
	"dental-hms/internal/app/contracts"
	"dental-hms/internal/pkg/async"
	"dental-hms/internal/pkg/constvars"
	"dental-hms/internal/pkg/dto/responses"
	"dental-hms/internal/pkg/hms_dto"
	"dental-hms/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

// Store keeps the lookup lists that every form needs mounted for the lifetime of
// the process. Each list is a Query whose producer reads through the cache.
type Store struct {
	Log   *zap.Logger
	Cache contracts.CacheRepository
	TTL   time.Duration

	roles       *async.Query[[]hms_dto.Role]
	specialties *async.Query[[]hms_dto.ClinicalSpecialty]
	enterprises *async.Query[[]hms_dto.Enterprise]
	clinics     *async.Query[[]hms_dto.Clinic]
	refreshers  map[string]func()
	cancel      context.CancelFunc
}

func NewStore(
	logger *zap.Logger,
	cache contracts.CacheRepository,
	ttl time.Duration,
	roleClient contracts.RoleClient,
	specialtyClient contracts.ClinicalSpecialtyClient,
	enterpriseClient contracts.EnterpriseClient,
	clinicClient contracts.ClinicClient,
) *Store {
	ctx, cancel := context.WithCancel(context.Background())
	s := &Store{
		Log:    logger,
		Cache:  cache,
		TTL:    ttl,
		cancel: cancel,
	}

	s.roles = async.NewQuery(ctx, logger, "reference.roles",
		readThrough(s, constvars.ResourceRole, roleClient.FindAll), []hms_dto.Role{})
	s.specialties = async.NewQuery(ctx, logger, "reference.clinicalSpecialties",
		readThrough(s, constvars.ResourceClinicalSpecialty, specialtyClient.FindAll), []hms_dto.ClinicalSpecialty{})
	s.enterprises = async.NewQuery(ctx, logger, "reference.enterprises",
		readThrough(s, constvars.ResourceEnterprise, enterpriseClient.FindAll), []hms_dto.Enterprise{})
	s.clinics = async.NewQuery(ctx, logger, "reference.clinics",
		readThrough(s, constvars.ResourceClinic, clinicClient.FindAll), []hms_dto.Clinic{})

	watch(s, constvars.ResourceRole, s.roles)
	watch(s, constvars.ResourceClinicalSpecialty, s.specialties)
	watch(s, constvars.ResourceEnterprise, s.enterprises)
	watch(s, constvars.ResourceClinic, s.clinics)

	s.refreshers = map[string]func(){
		constvars.ResourceRole:              s.roles.Refresh,
		constvars.ResourceClinicalSpecialty: s.specialties.Refresh,
		constvars.ResourceEnterprise:        s.enterprises.Refresh,
		constvars.ResourceClinic:            s.clinics.Refresh,
	}
	return s
}

// watch logs every settled run of a reference list with the refresh generation
// that produced it.
func watch[T any](s *Store, resource string, query *async.Query[T]) {
	query.Subscribe(func(state async.State[T]) {
		if state.Loading {
			return
		}
		if state.Error != "" {
			s.Log.Warn("reference.Store list failed",
				zap.String(constvars.LoggingResourceKey, resource),
				zap.Uint64(constvars.LoggingGenerationKey, query.Generation()),
				zap.String(constvars.LoggingErrorMessageKey, state.Error),
			)
			return
		}
		s.Log.Info("reference.Store list settled",
			zap.String(constvars.LoggingResourceKey, resource),
			zap.Uint64(constvars.LoggingGenerationKey, query.Generation()),
		)
	})
}

func cacheKey(resource string) string {
	return constvars.ReferenceCacheKeyPrefix + resource
}

// readThrough serves a cached copy when there is one and caches fresh results.
// Cache failures are logged and never fail the run.
func readThrough[T any](s *Store, resource string, fetch func(ctx context.Context) (T, error)) async.Producer[T] {
	key := cacheKey(resource)
	return func(ctx context.Context) (T, error) {
		ctx = context.WithValue(ctx, constvars.CONTEXT_REQUEST_ID_KEY, utils.GenerateRequestID())
		requestID := utils.RequestIDFromContext(ctx)

		var cached T
		found, err := s.Cache.Get(ctx, key, &cached)
		if err != nil {
			s.Log.Warn("reference.Store cache read failed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingCacheKey, key),
				zap.Error(err),
			)
		} else if found {
			s.Log.Debug("reference.Store cache hit",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingCacheKey, key),
			)
			return cached, nil
		}

		data, err := fetch(ctx)
		if err != nil {
			var zero T
			return zero, err
		}

		// a Refresh cancelled this run after dropping the key; caching now would
		// put the stale list back for every replica
		if ctx.Err() != nil {
			s.Log.Debug("reference.Store skipped cache write for superseded run",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingCacheKey, key),
			)
			return data, nil
		}

		err = s.Cache.Set(ctx, key, data, s.TTL)
		if err != nil {
			s.Log.Warn("reference.Store cache write failed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingCacheKey, key),
				zap.Error(err),
			)
		}
		return data, nil
	}
}

func (s *Store) Snapshot() responses.ReferenceSnapshot {
	return responses.ReferenceSnapshot{
		Roles:               responses.NewReferenceEntry(s.roles.State()),
		ClinicalSpecialties: responses.NewReferenceEntry(s.specialties.State()),
		Enterprises:         responses.NewReferenceEntry(s.enterprises.State()),
		Clinics:             responses.NewReferenceEntry(s.clinics.State()),
	}
}

func (s *Store) Tracks(resource string) bool {
	_, ok := s.refreshers[resource]
	return ok
}

// Refresh drops the cached copy of each resource and reruns its query. Unknown
// resources are ignored. With no arguments every list is refreshed.
func (s *Store) Refresh(ctx context.Context, resources ...string) {
	requestID := utils.RequestIDFromContext(ctx)
	if len(resources) == 0 {
		resources = []string{
			constvars.ResourceRole,
			constvars.ResourceClinicalSpecialty,
			constvars.ResourceEnterprise,
			constvars.ResourceClinic,
		}
	}

	for _, resource := range resources {
		refresh, ok := s.refreshers[resource]
		if !ok {
			continue
		}

		err := s.Cache.Delete(ctx, cacheKey(resource))
		if err != nil {
			s.Log.Warn("reference.Store cache invalidation failed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingResourceKey, resource),
				zap.Error(err),
			)
		}
		refresh()

		s.Log.Info("reference.Store refresh started",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingResourceKey, resource),
		)
	}
}

// WaitReady blocks until every list settled once. A failed list does not make
// it return an error, the failure is visible in Snapshot.
func (s *Store) WaitReady(ctx context.Context) error {
	if _, err := s.roles.Wait(ctx); err != nil {
		return err
	}
	if _, err := s.specialties.Wait(ctx); err != nil {
		return err
	}
	if _, err := s.enterprises.Wait(ctx); err != nil {
		return err
	}
	_, err := s.clinics.Wait(ctx)
	return err
}

// Close unmounts every query. Snapshot keeps returning the last states.
func (s *Store) Close() {
	s.roles.Close()
	s.specialties.Close()
	s.enterprises.Close()
	s.clinics.Close()
	s.cancel()
}
