package routers

import (
	"dental-hms/internal/app/delivery/http/controllers"
	"dental-hms/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachStaffRoutes(router chi.Router, middlewares *middlewares.Middlewares, staffController *controllers.StaffController) {
	router.Get("/", staffController.FindAll)
	router.Get("/{id}", staffController.FindByID)
	router.With(middlewares.BodyLimit).Post("/", staffController.Create)
	router.With(middlewares.BodyLimit).Put("/{id}", staffController.Update)
	router.Delete("/{id}", staffController.Delete)
}
