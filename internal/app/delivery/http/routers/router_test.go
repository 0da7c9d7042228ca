package routers

import (
	"dental-hms/internal/app/config"
	"dental-hms/internal/app/contracts/mocks"
	"dental-hms/internal/app/delivery/http/controllers"
	"dental-hms/internal/app/delivery/http/middlewares"
	"dental-hms/internal/pkg/constvars"
	"dental-hms/internal/pkg/hms_dto"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type testClients struct {
	clinic        *mocks.MockClinicClient
	doctorProfile *mocks.MockDoctorProfileClient
	reference     *mocks.MockReferenceStore
}

func newTestRouter(t *testing.T) (*chi.Mux, testClients) {
	t.Helper()

	logger := zap.NewNop()
	lifecycle := logrus.New()
	lifecycle.SetOutput(io.Discard)

	internalConfig := &config.InternalConfig{
		App: config.App{
			EndpointPrefix:             "api",
			Version:                    "v1",
			Timezone:                   "UTC",
			AllowedOrigins:             []string{"https://clinic.test"},
			MaxRequests:                100,
			RequestTimeoutInSeconds:    5,
			RequestBodyLimitInMegabyte: 1,
		},
	}

	clients := testClients{
		clinic:        new(mocks.MockClinicClient),
		doctorProfile: new(mocks.MockDoctorProfileClient),
		reference:     new(mocks.MockReferenceStore),
	}
	recorder := new(mocks.MockMutationRecorder)

	router := chi.NewRouter()
	SetupRoutes(
		router,
		lifecycle,
		internalConfig,
		middlewares.NewMiddlewares(logger, internalConfig),
		controllers.NewClinicController(logger, internalConfig, recorder, clients.clinic),
		controllers.NewEnterpriseController(logger, internalConfig, new(mocks.MockEnterpriseClient)),
		controllers.NewPatientController(logger, internalConfig, recorder, new(mocks.MockPatientClient)),
		controllers.NewStaffController(logger, internalConfig, recorder, new(mocks.MockStaffClient)),
		controllers.NewDentalServiceController(logger, internalConfig, recorder, new(mocks.MockDentalServiceClient)),
		controllers.NewRoleController(logger, internalConfig, recorder, new(mocks.MockRoleClient)),
		controllers.NewClinicalSpecialtyController(logger, internalConfig, recorder, new(mocks.MockClinicalSpecialtyClient)),
		controllers.NewDoctorProfileController(logger, internalConfig, recorder, clients.doctorProfile),
		controllers.NewVisitController(logger, internalConfig, recorder, new(mocks.MockVisitClient)),
		controllers.NewPrescriptionController(logger, internalConfig, recorder, new(mocks.MockPrescriptionClient)),
		controllers.NewSalaryController(logger, internalConfig, recorder, new(mocks.MockSalaryClient), new(mocks.MockLockerService)),
		controllers.NewReferenceController(logger, clients.reference),
	)
	return router, clients
}

func TestSetupRoutes(t *testing.T) {
	t.Run("Versioned clinic list", func(t *testing.T) {
		router, clients := newTestRouter(t)
		clients.clinic.On("FindAll", mock.Anything).Return([]hms_dto.Clinic{{ClinicID: 1}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/clinics", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.NotEmpty(t, rr.Header().Get(constvars.HeaderXRequestID), "every response carries a request id")
		clients.clinic.AssertExpectations(t)
	})

	t.Run("Doctor profile by staff does not collide with the id route", func(t *testing.T) {
		router, clients := newTestRouter(t)
		clients.doctorProfile.On("FindByStaff", mock.Anything, 3).Return(&hms_dto.DoctorProfile{DoctorProfileID: 8, StaffID: 3}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/doctor-profiles/staff/3", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		clients.doctorProfile.AssertExpectations(t)
		clients.doctorProfile.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("Patients cannot be deleted", func(t *testing.T) {
		router, _ := newTestRouter(t)

		req := httptest.NewRequest(http.MethodDelete, "/api/v1/patients/4", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	})

	t.Run("Unversioned path is not found", func(t *testing.T) {
		router, _ := newTestRouter(t)

		req := httptest.NewRequest(http.MethodGet, "/clinics", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("CORS preflight exposes the request id", func(t *testing.T) {
		router, _ := newTestRouter(t)

		req := httptest.NewRequest(http.MethodOptions, "/api/v1/clinics", nil)
		req.Header.Set("Origin", "https://clinic.test")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, "https://clinic.test", rr.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Reference refresh is throttled", func(t *testing.T) {
		router, clients := newTestRouter(t)
		clients.reference.On("Refresh", mock.Anything, mock.Anything).Return()

		codes := make([]int, 0, constvars.ReferenceRefreshBurst+1)
		for i := 0; i <= constvars.ReferenceRefreshBurst; i++ {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/reference/refresh", nil)
			req.RemoteAddr = "10.1.1.1:4000"
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)
			codes = append(codes, rr.Code)
		}

		for _, code := range codes[:constvars.ReferenceRefreshBurst] {
			assert.Equal(t, http.StatusAccepted, code)
		}
		assert.Equal(t, http.StatusTooManyRequests, codes[constvars.ReferenceRefreshBurst])
	})
}
