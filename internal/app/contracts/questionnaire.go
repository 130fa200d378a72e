package contracts

import (
	"context"

	"compliance-service/internal/app/models"
)

// QuestionnaireUsecase manages named versions of the survey definition in
// object storage. Read/list/activate/delete operations return sentinels
// (nil, empty, false) rather than errors; callers must check return values.
type QuestionnaireUsecase interface {
	InitializeVersioning(ctx context.Context) bool
	ListVersions(ctx context.Context) []models.VersionInfo
	GetCurrentVersionInfo(ctx context.Context) *models.VersionInfo
	GetCurrentQuestionnaire(ctx context.Context) *models.VersionedQuestionnaire
	LoadQuestionnaireVersion(ctx context.Context, version string) []models.QuestionPage
	CreateNewVersion(ctx context.Context, pages []models.QuestionPage, metadata models.VersionMetadata) (string, error)
	SetCurrentVersion(ctx context.Context, version string) bool
	SaveVersion(ctx context.Context, version string, pages []models.QuestionPage) bool
	DeleteVersion(ctx context.Context, version string) bool
	AddNewSection(ctx context.Context, section models.QuestionPage) error
	DeleteSection(ctx context.Context, pageID, actorEmail, reason string) error
}

// QuestionnaireCache is the single-owner edit buffer holding the pages being
// edited in the admin UI. One questionnaire's pages occupy the slot at a time.
type QuestionnaireCache interface {
	LoadPages(ctx context.Context) ([]models.QuestionPage, error)
	SavePages(ctx context.Context, pages []models.QuestionPage) error
	Discard(ctx context.Context) error
}
