package assessments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"compliance-service/internal/app/config"
	"compliance-service/internal/app/contracts"
	"compliance-service/internal/app/models"
	"compliance-service/internal/app/services/reports"
	"compliance-service/internal/pkg/constvars"
	"compliance-service/internal/pkg/dto/requests"
	"compliance-service/internal/pkg/dto/responses"
	"compliance-service/internal/pkg/exceptions"
	"compliance-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type assessmentUsecase struct {
	InProgressRepository contracts.InProgressAssessmentRepository
	CompletedRepository  contracts.CompletedAssessmentRepository
	Storage              contracts.ObjectStorage
	QuestionnaireUsecase contracts.QuestionnaireUsecase
	InternalConfig       *config.InternalConfig
	Logger               *zap.Logger
}

func NewAssessmentUsecase(
	inProgressRepository contracts.InProgressAssessmentRepository,
	completedRepository contracts.CompletedAssessmentRepository,
	storage contracts.ObjectStorage,
	questionnaireUsecase contracts.QuestionnaireUsecase,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AssessmentUsecase {
	return &assessmentUsecase{
		InProgressRepository: inProgressRepository,
		CompletedRepository:  completedRepository,
		Storage:              storage,
		QuestionnaireUsecase: questionnaireUsecase,
		InternalConfig:       internalConfig,
		Logger:               logger,
	}
}

// CreateAssessment uploads the initial answer blob and then inserts the
// record pointing at it. The record pins the questionnaire version active at
// creation time; later section edits do not affect this assessment.
func (uc *assessmentUsecase) CreateAssessment(ctx context.Context, owner string, request *requests.CreateAssessment) (*models.InProgressAssessment, error) {
	assessmentID, err := utils.GenerateURLSafeID(constvars.AssessmentIDLength)
	if err != nil {
		return nil, exceptions.ErrBuildRequest(err)
	}

	answerData := request.AnswerData
	if answerData == nil {
		answerData = models.AnswerDictionary{}
	}

	storagePath := fmt.Sprintf(constvars.AssessmentInProgressPathFormat, owner, assessmentID)
	if err := uc.uploadAnswerData(ctx, storagePath, answerData); err != nil {
		return nil, err
	}

	version := constvars.ResponseUnknown
	if info := uc.QuestionnaireUsecase.GetCurrentVersionInfo(ctx); info != nil {
		version = info.Version
	}

	now := time.Now().UTC()
	assessment := &models.InProgressAssessment{
		ID:               assessmentID,
		Name:             request.Name,
		CurrentPage:      0,
		PercentCompleted: 0,
		StoragePath:      storagePath,
		Version:          version,
		Owner:            owner,
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := uc.InProgressRepository.Insert(ctx, assessment); err != nil {
		return nil, err
	}
	return assessment, nil
}

// UpdateAssessment is the autosave path: the full answer dictionary is
// re-uploaded to the same blob, then progress fields on the record are
// refreshed. Last write wins; there is no version check on the blob.
func (uc *assessmentUsecase) UpdateAssessment(ctx context.Context, owner, assessmentID string, request *requests.UpdateAssessment) error {
	assessment, err := uc.findOwnedInProgress(ctx, owner, assessmentID)
	if err != nil {
		return err
	}

	if err := uc.uploadAnswerData(ctx, assessment.StoragePath, request.AnswerData); err != nil {
		return err
	}

	assessment.CurrentPage = request.CurrentPage
	assessment.PercentCompleted = request.PercentCompleted
	assessment.UpdatedAt = time.Now().UTC()
	return uc.InProgressRepository.Update(ctx, assessment)
}

// CompleteAssessment freezes the answer blob, scores it and swaps the
// in-progress record for a completed one. The swap is not atomic; a failed
// completed-record insert rolls back the frozen blob, while a failed cleanup
// of the in-progress side surfaces as a cleanup-pending error so callers can
// retry or reconcile later.
func (uc *assessmentUsecase) CompleteAssessment(ctx context.Context, owner, assessmentID string) (*responses.CompletedAssessmentResult, error) {
	assessment, err := uc.findOwnedInProgress(ctx, owner, assessmentID)
	if err != nil {
		return nil, err
	}

	rawData, err := uc.Storage.Download(ctx, assessment.StoragePath)
	if err != nil {
		return nil, err
	}

	report, err := reports.NewReportFromJSON(rawData)
	if err != nil {
		return nil, err
	}
	reportData := report.GenerateReportData()
	complianceScore := reportData.ComplianceScore()

	completedPath := fmt.Sprintf(constvars.AssessmentCompletedPathFormat, owner, assessmentID)
	if err := uc.Storage.UploadJSON(ctx, completedPath, rawData); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	completed := &models.CompletedAssessment{
		ID:              assessmentID,
		Name:            assessment.Name,
		CompletedAt:     now.Format(time.RFC3339),
		ComplianceScore: complianceScore,
		IsCompliant:     complianceScore == 100,
		StoragePath:     completedPath,
		Version:         assessment.Version,
		Owner:           owner,
		Duration:        int64(now.Sub(assessment.CreatedAt).Seconds()),
		TimeModel: models.TimeModel{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := uc.CompletedRepository.Insert(ctx, completed); err != nil {
		// Compensate: remove the frozen blob so no half-completed state
		// remains visible.
		if cleanupErr := uc.Storage.Delete(ctx, completedPath); cleanupErr != nil {
			uc.Logger.Error("failed to roll back frozen answer blob",
				zap.String(constvars.LoggingAssessmentIDKey, assessmentID),
				zap.Error(cleanupErr),
			)
		}
		return nil, err
	}

	result := &responses.CompletedAssessmentResult{
		Assessment: completed,
		Report:     reportData,
	}

	if err := uc.cleanupInProgress(ctx, assessment); err != nil {
		result.CleanupPending = true
		return result, exceptions.ErrAssessmentCleanupPending(err)
	}
	return result, nil
}

func (uc *assessmentUsecase) FindAllInProgress(ctx context.Context, owner string) ([]models.InProgressAssessment, error) {
	return uc.InProgressRepository.FindByOwner(ctx, owner)
}

func (uc *assessmentUsecase) FindAllCompleted(ctx context.Context, owner string) ([]models.CompletedAssessment, error) {
	return uc.CompletedRepository.FindByOwner(ctx, owner)
}

// FetchAnswerData loads the raw answer dictionary for an assessment the
// owner holds, in progress or completed.
func (uc *assessmentUsecase) FetchAnswerData(ctx context.Context, owner, assessmentID string) (models.AnswerDictionary, error) {
	storagePath := ""

	if assessment, err := uc.InProgressRepository.FindByID(ctx, assessmentID); err != nil {
		return nil, err
	} else if assessment != nil {
		if assessment.Owner != owner {
			return nil, exceptions.ErrNotAuthorized(nil)
		}
		storagePath = assessment.StoragePath
	}

	if storagePath == "" {
		completed, err := uc.CompletedRepository.FindByID(ctx, assessmentID)
		if err != nil {
			return nil, err
		}
		if completed == nil {
			return nil, exceptions.ErrAssessmentNotFound(nil, assessmentID)
		}
		if completed.Owner != owner {
			return nil, exceptions.ErrNotAuthorized(nil)
		}
		storagePath = completed.StoragePath
	}

	rawData, err := uc.Storage.Download(ctx, storagePath)
	if err != nil {
		return nil, err
	}

	var answerData models.AnswerDictionary
	if err := json.Unmarshal(rawData, &answerData); err != nil {
		return nil, exceptions.ErrInvalidAnswerData(err)
	}
	return answerData, nil
}

func (uc *assessmentUsecase) DeleteInProgressAssessment(ctx context.Context, owner, assessmentID string) error {
	assessment, err := uc.findOwnedInProgress(ctx, owner, assessmentID)
	if err != nil {
		return err
	}
	return uc.cleanupInProgress(ctx, assessment)
}

func (uc *assessmentUsecase) findOwnedInProgress(ctx context.Context, owner, assessmentID string) (*models.InProgressAssessment, error) {
	assessment, err := uc.InProgressRepository.FindByID(ctx, assessmentID)
	if err != nil {
		return nil, err
	}
	if assessment == nil {
		return nil, exceptions.ErrAssessmentNotFound(nil, assessmentID)
	}
	if assessment.Owner != owner {
		return nil, exceptions.ErrNotAuthorized(nil)
	}
	return assessment, nil
}

func (uc *assessmentUsecase) uploadAnswerData(ctx context.Context, storagePath string, answerData models.AnswerDictionary) error {
	data, err := json.Marshal(answerData)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}
	return uc.Storage.UploadJSON(ctx, storagePath, data)
}

// cleanupInProgress removes the in-progress blob and record, retrying each
// side with a short backoff before giving up.
func (uc *assessmentUsecase) cleanupInProgress(ctx context.Context, assessment *models.InProgressAssessment) error {
	maxRetries := uc.InternalConfig.App.CleanupMaxRetries
	if maxRetries < 1 {
		maxRetries = 1
	}

	blobErr := uc.retry(ctx, maxRetries, func() error {
		return uc.Storage.Delete(ctx, assessment.StoragePath)
	})
	recordErr := uc.retry(ctx, maxRetries, func() error {
		return uc.InProgressRepository.Delete(ctx, assessment.ID)
	})

	if blobErr != nil {
		return blobErr
	}
	return recordErr
}

func (uc *assessmentUsecase) retry(ctx context.Context, attempts int, operation func() error) error {
	var err error
	for attempt := 0; attempt < attempts; attempt++ {
		if err = operation(); err == nil {
			return nil
		}
		select {
		case <-ctx.Done():
			return errors.Join(err, ctx.Err())
		case <-time.After(time.Duration(attempt+1) * 100 * time.Millisecond):
		}
	}
	return err
}
