package routers

import (
	"dental-hms/internal/app/delivery/http/controllers"
	"dental-hms/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, middlewares *middlewares.Middlewares, patientController *controllers.PatientController) {
	router.Get("/", patientController.FindAll)
	router.Get("/{id}", patientController.FindByID)
	router.With(middlewares.BodyLimit).Post("/", patientController.Create)
	router.With(middlewares.BodyLimit).Put("/{id}", patientController.Update)
}
