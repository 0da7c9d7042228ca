package main

import (
	"context"
	"dental-hms/internal/app/config"
	"dental-hms/internal/app/delivery/http/controllers"
	"dental-hms/internal/app/delivery/http/middlewares"
	"dental-hms/internal/app/delivery/http/routers"
	"dental-hms/internal/app/drivers/database"
	"dental-hms/internal/app/drivers/logger"
	"dental-hms/internal/app/drivers/messaging"
	"dental-hms/internal/app/services/core/mutations"
	"dental-hms/internal/app/services/core/reference"
	"dental-hms/internal/app/services/hms/clinics"
	"dental-hms/internal/app/services/hms/dentalservices"
	"dental-hms/internal/app/services/hms/doctorprofiles"
	"dental-hms/internal/app/services/hms/enterprises"
	"dental-hms/internal/app/services/hms/httpcall"
	"dental-hms/internal/app/services/hms/patients"
	"dental-hms/internal/app/services/hms/prescriptions"
	"dental-hms/internal/app/services/hms/roles"
	"dental-hms/internal/app/services/hms/salary"
	"dental-hms/internal/app/services/hms/specialties"
	"dental-hms/internal/app/services/hms/staff"
	"dental-hms/internal/app/services/hms/visits"
	"dental-hms/internal/app/services/shared/events"
	"dental-hms/internal/app/services/shared/locker"
	"dental-hms/internal/app/services/shared/redis"
	"dental-hms/internal/pkg/utils"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	lifecycle := logger.NewLogrusLogger(internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		lifecycle.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	log := logger.NewZapLogger(driverConfig, internalConfig)
	redisClient := database.NewRedisClient(driverConfig, lifecycle)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig, lifecycle)
	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		Redis:          redisClient,
		Logger:         log,
		Lifecycle:      lifecycle,
		RabbitMQ:       rabbitMQ,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}

	err = bootstrapingTheApp(bootstrap)
	if err != nil {
		lifecycle.Fatalf("Error bootstraping the app: %v", err)
	}

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		lifecycle.Printf("Server listening on %s", internalConfig.App.Port)
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			lifecycle.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	lifecycle.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		lifecycle.Fatalf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		lifecycle.Fatalf("Error during shutdown: %v", err)
	}

	lifecycle.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	internalConfig := bootstrap.InternalConfig
	log := bootstrap.Logger

	// Shared infrastructure
	cacheRepository := redis.NewRedisRepository(bootstrap.Redis)
	lockService := locker.NewLockService(cacheRepository, log)
	publisher, err := events.NewRabbitMQPublisher(bootstrap.RabbitMQ, log, internalConfig.HMS.MutationEventsQueue)
	if err != nil {
		return err
	}
	bootstrap.PublisherStop = publisher.Close

	// HMS backend
	hmsClient := httpcall.NewClient(
		internalConfig.HMS.BaseUrl,
		time.Duration(internalConfig.HMS.TimeoutInSeconds)*time.Second,
		log,
	)
	clinicClient := clinics.NewClinicClient(hmsClient, log)
	enterpriseClient := enterprises.NewEnterpriseClient(hmsClient, log)
	patientClient := patients.NewPatientClient(hmsClient, log)
	staffClient := staff.NewStaffClient(hmsClient, log)
	dentalServiceClient := dentalservices.NewDentalServiceClient(hmsClient, log)
	roleClient := roles.NewRoleClient(hmsClient, log)
	specialtyClient := specialties.NewClinicalSpecialtyClient(hmsClient, log)
	doctorProfileClient := doctorprofiles.NewDoctorProfileClient(hmsClient, log)
	visitClient := visits.NewVisitClient(hmsClient, log)
	prescriptionClient := prescriptions.NewPrescriptionClient(hmsClient, log)
	salaryClient := salary.NewSalaryClient(hmsClient, log)

	// Reference data
	referenceStore := reference.NewStore(
		log,
		cacheRepository,
		time.Duration(internalConfig.HMS.ReferenceCacheTTLInSeconds)*time.Second,
		roleClient,
		specialtyClient,
		enterpriseClient,
		clinicClient,
	)
	bootstrap.ReferenceStop = referenceStore.Close

	warmupCtx, cancel := context.WithTimeout(context.Background(), time.Duration(internalConfig.HMS.ReferenceWarmupTimeoutInSec)*time.Second)
	defer cancel()
	err = utils.LogOperation(log, "reference.WaitReady", utils.GenerateRequestID(), func() error {
		return referenceStore.WaitReady(warmupCtx)
	})
	if err != nil {
		log.Warn("Reference data is still loading, serving partial snapshots until it settles",
			zap.Error(err),
		)
	}

	recorder := mutations.NewMutationRecorder(log, publisher, referenceStore)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(log, internalConfig)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.Lifecycle,
		internalConfig,
		middlewares,
		controllers.NewClinicController(log, internalConfig, recorder, clinicClient),
		controllers.NewEnterpriseController(log, internalConfig, enterpriseClient),
		controllers.NewPatientController(log, internalConfig, recorder, patientClient),
		controllers.NewStaffController(log, internalConfig, recorder, staffClient),
		controllers.NewDentalServiceController(log, internalConfig, recorder, dentalServiceClient),
		controllers.NewRoleController(log, internalConfig, recorder, roleClient),
		controllers.NewClinicalSpecialtyController(log, internalConfig, recorder, specialtyClient),
		controllers.NewDoctorProfileController(log, internalConfig, recorder, doctorProfileClient),
		controllers.NewVisitController(log, internalConfig, recorder, visitClient),
		controllers.NewPrescriptionController(log, internalConfig, recorder, prescriptionClient),
		controllers.NewSalaryController(log, internalConfig, recorder, salaryClient, lockService),
		controllers.NewReferenceController(log, referenceStore),
	)
	return nil
}
