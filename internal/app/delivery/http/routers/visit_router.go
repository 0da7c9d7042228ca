package routers

import (
	"dental-hms/internal/app/delivery/http/controllers"
	"dental-hms/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachVisitRoutes(router chi.Router, middlewares *middlewares.Middlewares, visitController *controllers.VisitController) {
	router.Get("/", visitController.FindAll)
	router.Get("/{id}", visitController.FindByID)
	router.With(middlewares.BodyLimit).Post("/", visitController.Create)
	router.With(middlewares.BodyLimit).Put("/{id}", visitController.Update)
	router.Delete("/{id}", visitController.Delete)
}
