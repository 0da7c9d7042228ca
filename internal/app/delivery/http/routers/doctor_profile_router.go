package routers

import (
	"dental-hms/internal/app/delivery/http/controllers"
	"dental-hms/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachDoctorProfileRoutes(router chi.Router, middlewares *middlewares.Middlewares, doctorProfileController *controllers.DoctorProfileController) {
	router.Get("/", doctorProfileController.FindAll)
	router.Get("/{id}", doctorProfileController.FindByID)
	router.With(middlewares.BodyLimit).Post("/", doctorProfileController.Create)
	router.With(middlewares.BodyLimit).Put("/{id}", doctorProfileController.Update)
	router.Delete("/{id}", doctorProfileController.Delete)
	router.Get("/staff/{staffId}", doctorProfileController.FindByStaff)
}
