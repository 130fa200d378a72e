package reports

import (
	"context"
	"fmt"
	"time"

	"compliance-service/internal/app/config"
	"compliance-service/internal/app/contracts"
	"compliance-service/internal/app/models"
	"compliance-service/internal/pkg/constvars"
	"compliance-service/internal/pkg/dto/responses"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type reportUsecase struct {
	AssessmentUsecase contracts.AssessmentUsecase
	RedisRepository   contracts.RedisRepository
	InternalConfig    *config.InternalConfig
	Logger            *zap.Logger
}

func NewReportUsecase(
	assessmentUsecase contracts.AssessmentUsecase,
	redisRepository contracts.RedisRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.ReportUsecase {
	return &reportUsecase{
		AssessmentUsecase: assessmentUsecase,
		RedisRepository:   redisRepository,
		InternalConfig:    internalConfig,
		Logger:            logger,
	}
}

// GenerateReport scores a stored assessment. The answer dictionary is cached
// per owner and assessment so repeat report views skip the blob download;
// cache misses fall through to storage. Cache failures are never fatal.
func (uc *reportUsecase) GenerateReport(ctx context.Context, owner, assessmentID string) (*responses.ComplianceReport, error) {
	cacheKey := fmt.Sprintf(constvars.ReportAnswerDataCacheKeyFormat, owner, assessmentID)

	answerData := uc.cachedAnswerData(ctx, cacheKey)
	if answerData == nil {
		fetched, err := uc.AssessmentUsecase.FetchAnswerData(ctx, owner, assessmentID)
		if err != nil {
			return nil, err
		}
		answerData = fetched

		expiry := time.Duration(uc.InternalConfig.App.ReportCacheExpiryTimeInHours) * time.Hour
		if err := uc.RedisRepository.Set(ctx, cacheKey, answerData, expiry); err != nil {
			uc.Logger.Warn("failed to cache assessment answer data",
				zap.String(constvars.LoggingAssessmentIDKey, assessmentID),
				zap.Error(err),
			)
		}
	}

	return uc.GenerateReportFromAnswers(ctx, answerData)
}

func (uc *reportUsecase) GenerateReportFromAnswers(_ context.Context, answerData models.AnswerDictionary) (*responses.ComplianceReport, error) {
	report, err := NewReport(answerData)
	if err != nil {
		return nil, err
	}
	return report.GenerateReportData(), nil
}

func (uc *reportUsecase) cachedAnswerData(ctx context.Context, cacheKey string) models.AnswerDictionary {
	cached, err := uc.RedisRepository.Get(ctx, cacheKey)
	if err != nil || cached == "" {
		return nil
	}

	var answerData models.AnswerDictionary
	if err := json.Unmarshal([]byte(cached), &answerData); err != nil {
		return nil
	}
	return answerData
}
