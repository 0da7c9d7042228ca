package routers

import (
	"dental-hms/internal/app/delivery/http/controllers"
	"dental-hms/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachDentalServiceRoutes(router chi.Router, middlewares *middlewares.Middlewares, dentalServiceController *controllers.DentalServiceController) {
	router.Get("/", dentalServiceController.FindAll)
	router.Get("/{id}", dentalServiceController.FindByID)
	router.With(middlewares.BodyLimit).Post("/", dentalServiceController.Create)
	router.With(middlewares.BodyLimit).Put("/{id}", dentalServiceController.Update)
	router.Delete("/{id}", dentalServiceController.Delete)
}
