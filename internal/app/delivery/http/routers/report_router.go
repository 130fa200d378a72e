package routers

import (
	"compliance-service/internal/app/delivery/http/controllers"
	"compliance-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachReportRoutes(router chi.Router, middlewares *middlewares.Middlewares, reportController *controllers.ReportController) {
	router.With(middlewares.Authenticate).Get("/{assessmentID}", reportController.GenerateReport)
	router.With(middlewares.Authenticate).Post("/preview", reportController.PreviewReport)
}
