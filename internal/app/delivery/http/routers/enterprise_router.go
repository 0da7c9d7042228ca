package routers

import (
	"dental-hms/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachEnterpriseRoutes(router chi.Router, enterpriseController *controllers.EnterpriseController) {
	router.Get("/", enterpriseController.FindAll)
	router.Get("/{id}", enterpriseController.FindByID)
}
