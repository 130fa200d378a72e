package contracts

import (
	"context"

	"compliance-service/internal/app/models"
	"compliance-service/internal/pkg/dto/responses"
)

type ReportUsecase interface {
	GenerateReport(ctx context.Context, owner, assessmentID string) (*responses.ComplianceReport, error)
	GenerateReportFromAnswers(ctx context.Context, answerData models.AnswerDictionary) (*responses.ComplianceReport, error)
}
