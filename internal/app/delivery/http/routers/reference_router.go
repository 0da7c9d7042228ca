package routers

import (
	"dental-hms/internal/app/delivery/http/controllers"
	"dental-hms/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

// The refresh route fans out to four backend calls, so it sits behind its own
// stricter limiter on top of the global one.
func attachReferenceRoutes(router chi.Router, refreshLimiter *middlewares.RateLimiter, referenceController *controllers.ReferenceController) {
	router.Get("/", referenceController.Snapshot)
	router.With(refreshLimiter.Limit).Post("/refresh", referenceController.Refresh)
}
