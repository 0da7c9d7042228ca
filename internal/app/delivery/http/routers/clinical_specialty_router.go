package routers

import (
	"dental-hms/internal/app/delivery/http/controllers"
	"dental-hms/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachClinicalSpecialtyRoutes(router chi.Router, middlewares *middlewares.Middlewares, clinicalSpecialtyController *controllers.ClinicalSpecialtyController) {
	router.Get("/", clinicalSpecialtyController.FindAll)
	router.Get("/{id}", clinicalSpecialtyController.FindByID)
	router.With(middlewares.BodyLimit).Post("/", clinicalSpecialtyController.Create)
	router.With(middlewares.BodyLimit).Put("/{id}", clinicalSpecialtyController.Update)
	router.Delete("/{id}", clinicalSpecialtyController.Delete)
}
