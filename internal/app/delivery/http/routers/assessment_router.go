package routers

import (
	"compliance-service/internal/app/delivery/http/controllers"
	"compliance-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAssessmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, assessmentController *controllers.AssessmentController) {
	router.With(middlewares.Authenticate).Post("/", assessmentController.CreateAssessment)
	router.With(middlewares.Authenticate).Get("/in-progress", assessmentController.ListInProgress)
	router.With(middlewares.Authenticate).Get("/completed", assessmentController.ListCompleted)
	router.With(middlewares.Authenticate).Put("/{assessmentID}", assessmentController.UpdateAssessment)
	router.With(middlewares.Authenticate).Post("/{assessmentID}/complete", assessmentController.CompleteAssessment)
	router.With(middlewares.Authenticate).Get("/{assessmentID}/answers", assessmentController.GetAnswerData)
	router.With(middlewares.Authenticate).Delete("/{assessmentID}", assessmentController.DeleteAssessment)
}
