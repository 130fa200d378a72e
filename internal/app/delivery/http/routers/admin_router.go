package routers

import (
	"compliance-service/internal/app/delivery/http/controllers"
	"compliance-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAdminRoutes(router chi.Router, middlewares *middlewares.Middlewares, adminController *controllers.AdminController) {
	router.With(middlewares.Authenticate, middlewares.RequireAdmin).Post("/operations", adminController.ExecuteOperation)
}
