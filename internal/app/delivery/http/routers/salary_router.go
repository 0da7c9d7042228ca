package routers

import (
	"dental-hms/internal/app/delivery/http/controllers"
	"dental-hms/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachSalaryRoutes(router chi.Router, middlewares *middlewares.Middlewares, salaryController *controllers.SalaryController) {
	router.Get("/calculate/{staffId}", salaryController.Calculate)
	router.With(middlewares.BodyLimit).Post("/calculate", salaryController.CalculateBatch)
	router.Get("/history/{staffId}", salaryController.History)
	router.Post("/{calculationId}/approve", salaryController.Approve)
}
