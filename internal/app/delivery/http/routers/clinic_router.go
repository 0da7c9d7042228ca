package routers

import (
	"dental-hms/internal/app/delivery/http/controllers"
	"dental-hms/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachClinicRoutes(router chi.Router, middlewares *middlewares.Middlewares, clinicController *controllers.ClinicController) {
	router.Get("/", clinicController.FindAll)
	router.Get("/{id}", clinicController.FindByID)
	router.With(middlewares.BodyLimit).Post("/", clinicController.Create)
	router.With(middlewares.BodyLimit).Put("/{id}", clinicController.Update)
	router.Delete("/{id}", clinicController.Delete)
}
