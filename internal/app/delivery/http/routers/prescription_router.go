package routers

import (
	"dental-hms/internal/app/delivery/http/controllers"
	"dental-hms/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachPrescriptionRoutes(router chi.Router, middlewares *middlewares.Middlewares, prescriptionController *controllers.PrescriptionController) {
	router.Get("/", prescriptionController.FindAll)
	router.Get("/{id}", prescriptionController.FindByID)
	router.With(middlewares.BodyLimit).Post("/", prescriptionController.Create)
	router.With(middlewares.BodyLimit).Put("/{id}", prescriptionController.Update)
	router.Delete("/{id}", prescriptionController.Delete)
}
