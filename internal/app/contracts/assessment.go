package contracts

import (
	"context"

	"compliance-service/internal/app/models"
	"compliance-service/internal/pkg/dto/requests"
	"compliance-service/internal/pkg/dto/responses"
)

type AssessmentUsecase interface {
	CreateAssessment(ctx context.Context, owner string, request *requests.CreateAssessment) (*models.InProgressAssessment, error)
	UpdateAssessment(ctx context.Context, owner, assessmentID string, request *requests.UpdateAssessment) error
	CompleteAssessment(ctx context.Context, owner, assessmentID string) (*responses.CompletedAssessmentResult, error)
	FindAllInProgress(ctx context.Context, owner string) ([]models.InProgressAssessment, error)
	FindAllCompleted(ctx context.Context, owner string) ([]models.CompletedAssessment, error)
	FetchAnswerData(ctx context.Context, owner, assessmentID string) (models.AnswerDictionary, error)
	DeleteInProgressAssessment(ctx context.Context, owner, assessmentID string) error
}

type InProgressAssessmentRepository interface {
	Insert(ctx context.Context, assessment *models.InProgressAssessment) error
	FindByID(ctx context.Context, id string) (*models.InProgressAssessment, error)
	FindByOwner(ctx context.Context, owner string) ([]models.InProgressAssessment, error)
	FindAll(ctx context.Context) ([]models.InProgressAssessment, error)
	Update(ctx context.Context, assessment *models.InProgressAssessment) error
	Delete(ctx context.Context, id string) error
}

type CompletedAssessmentRepository interface {
	Insert(ctx context.Context, assessment *models.CompletedAssessment) error
	FindByID(ctx context.Context, id string) (*models.CompletedAssessment, error)
	FindByOwner(ctx context.Context, owner string) ([]models.CompletedAssessment, error)
	FindAll(ctx context.Context) ([]models.CompletedAssessment, error)
}
