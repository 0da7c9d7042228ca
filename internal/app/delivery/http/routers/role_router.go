package routers

import (
	"dental-hms/internal/app/delivery/http/controllers"
	"dental-hms/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachRoleRoutes(router chi.Router, middlewares *middlewares.Middlewares, roleController *controllers.RoleController) {
	router.Get("/", roleController.FindAll)
	router.Get("/{id}", roleController.FindByID)
	router.With(middlewares.BodyLimit).Post("/", roleController.Create)
	router.With(middlewares.BodyLimit).Put("/{id}", roleController.Update)
	router.Delete("/{id}", roleController.Delete)
}
