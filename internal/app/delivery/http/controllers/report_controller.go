package controllers

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"compliance-service/internal/app/contracts"
	"compliance-service/internal/pkg/constvars"
	"compliance-service/internal/pkg/dto/requests"
	"compliance-service/internal/pkg/exceptions"
	"compliance-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type ReportController struct {
	Log           *zap.Logger
	ReportUsecase contracts.ReportUsecase
}

var (
	reportControllerInstance *ReportController
	onceReportController     sync.Once
)

func NewReportController(logger *zap.Logger, reportUsecase contracts.ReportUsecase) *ReportController {
	onceReportController.Do(func() {
		reportControllerInstance = &ReportController{
			Log:           logger,
			ReportUsecase: reportUsecase,
		}
	})
	return reportControllerInstance
}

func (ctrl *ReportController) GenerateReport(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	owner, _ := r.Context().Value(constvars.CONTEXT_USER_EMAIL_KEY).(string)
	assessmentID := chi.URLParam(r, "assessmentID")
	ctrl.Log.Info("ReportController.GenerateReport called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAssessmentIDKey, assessmentID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	report, err := ctrl.ReportUsecase.GenerateReport(ctx, owner, assessmentID)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		ctrl.Log.Error("ReportController.GenerateReport error in ReportUsecase.GenerateReport",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("ReportController.GenerateReport succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAssessmentIDKey, assessmentID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GenerateReportSuccessMessage, report)
}

func (ctrl *ReportController) PreviewReport(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("ReportController.PreviewReport called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	defer r.Body.Close()
	request := &requests.GenerateReport{}
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	report, err := ctrl.ReportUsecase.GenerateReportFromAnswers(ctx, request.AnswerData)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GenerateReportSuccessMessage, report)
}
