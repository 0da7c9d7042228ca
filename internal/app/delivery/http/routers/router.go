package routers

import (
	"dental-hms/internal/app/config"
	"dental-hms/internal/app/delivery/http/controllers"
	"dental-hms/internal/app/delivery/http/middlewares"
	"dental-hms/internal/pkg/constvars"
	"fmt"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"
)

func SetupRoutes(
	router *chi.Mux,
	logger *logrus.Logger,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	clinicController *controllers.ClinicController,
	enterpriseController *controllers.EnterpriseController,
	patientController *controllers.PatientController,
	staffController *controllers.StaffController,
	dentalServiceController *controllers.DentalServiceController,
	roleController *controllers.RoleController,
	clinicalSpecialtyController *controllers.ClinicalSpecialtyController,
	doctorProfileController *controllers.DoctorProfileController,
	visitController *controllers.VisitController,
	prescriptionController *controllers.PrescriptionController,
	salaryController *controllers.SalaryController,
	referenceController *controllers.ReferenceController,
) {
	allowedOrigins := internalConfig.App.AllowedOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}

	corsOptions := cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{constvars.MethodGet, constvars.MethodPost, constvars.MethodPut, constvars.MethodDelete, constvars.MethodOptions},
		AllowedHeaders:   []string{constvars.HeaderAccept, constvars.HeaderAuthorization, constvars.HeaderContentType, constvars.HeaderXCSRFToken, constvars.HeaderXRequestID},
		ExposedHeaders:   []string{constvars.HeaderLink, constvars.HeaderXRequestID},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	router.Use(middlewares.RateLimit())
	router.Use(middlewares.ErrorHandler)
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))
	router.Use(middlewares.RequestLogger(internalConfig.App, logger))

	refreshLimiter := middlewares.ReferenceRefreshLimiter()

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/clinics", func(r chi.Router) {
				attachClinicRoutes(r, middlewares, clinicController)
			})

			r.Route("/enterprises", func(r chi.Router) {
				attachEnterpriseRoutes(r, enterpriseController)
			})

			r.Route("/patients", func(r chi.Router) {
				attachPatientRoutes(r, middlewares, patientController)
			})

			r.Route("/staff", func(r chi.Router) {
				attachStaffRoutes(r, middlewares, staffController)
			})

			r.Route("/services", func(r chi.Router) {
				attachDentalServiceRoutes(r, middlewares, dentalServiceController)
			})

			r.Route("/roles", func(r chi.Router) {
				attachRoleRoutes(r, middlewares, roleController)
			})

			r.Route("/clinical-specialties", func(r chi.Router) {
				attachClinicalSpecialtyRoutes(r, middlewares, clinicalSpecialtyController)
			})

			r.Route("/doctor-profiles", func(r chi.Router) {
				attachDoctorProfileRoutes(r, middlewares, doctorProfileController)
			})

			r.Route("/visits", func(r chi.Router) {
				attachVisitRoutes(r, middlewares, visitController)
			})

			r.Route("/prescriptions", func(r chi.Router) {
				attachPrescriptionRoutes(r, middlewares, prescriptionController)
			})

			r.Route("/salary", func(r chi.Router) {
				attachSalaryRoutes(r, middlewares, salaryController)
			})

			r.Route("/reference", func(r chi.Router) {
				attachReferenceRoutes(r, refreshLimiter, referenceController)
			})
		})
	})
}
