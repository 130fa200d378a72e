package routers

import (
	"compliance-service/internal/app/delivery/http/controllers"
	"compliance-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachQuestionnaireRoutes(router chi.Router, middlewares *middlewares.Middlewares, questionnaireController *controllers.QuestionnaireController) {
	router.With(middlewares.Authenticate).Get("/current", questionnaireController.GetCurrent)

	router.With(middlewares.Authenticate, middlewares.RequireAdmin).Get("/versions", questionnaireController.ListVersions)
	router.With(middlewares.Authenticate, middlewares.RequireAdmin).Post("/versions", questionnaireController.CreateVersion)
	router.With(middlewares.Authenticate, middlewares.RequireAdmin).Get("/versions/{version}", questionnaireController.GetVersion)
	router.With(middlewares.Authenticate, middlewares.RequireAdmin).Put("/versions/{version}", questionnaireController.SaveVersion)
	router.With(middlewares.Authenticate, middlewares.RequireAdmin).Delete("/versions/{version}", questionnaireController.DeleteVersion)
	router.With(middlewares.Authenticate, middlewares.RequireAdmin).Put("/versions/{version}/activate", questionnaireController.ActivateVersion)

	router.With(middlewares.Authenticate, middlewares.RequireAdmin).Post("/sections", questionnaireController.AddSection)
	router.With(middlewares.Authenticate, middlewares.RequireAdmin).Delete("/sections/{pageID}", questionnaireController.DeleteSection)

	router.With(middlewares.Authenticate, middlewares.RequireAdmin).Get("/edit-buffer", questionnaireController.GetEditBuffer)
	router.With(middlewares.Authenticate, middlewares.RequireAdmin).Put("/edit-buffer", questionnaireController.SaveEditBuffer)
	router.With(middlewares.Authenticate, middlewares.RequireAdmin).Delete("/edit-buffer", questionnaireController.DiscardEditBuffer)
}
