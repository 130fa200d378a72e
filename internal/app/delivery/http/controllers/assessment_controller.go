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

type AssessmentController struct {
	Log               *zap.Logger
	AssessmentUsecase contracts.AssessmentUsecase
}

var (
	assessmentControllerInstance *AssessmentController
	onceAssessmentController     sync.Once
)

func NewAssessmentController(logger *zap.Logger, assessmentUsecase contracts.AssessmentUsecase) *AssessmentController {
	onceAssessmentController.Do(func() {
		assessmentControllerInstance = &AssessmentController{
			Log:               logger,
			AssessmentUsecase: assessmentUsecase,
		}
	})
	return assessmentControllerInstance
}

func (ctrl *AssessmentController) CreateAssessment(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	owner, _ := r.Context().Value(constvars.CONTEXT_USER_EMAIL_KEY).(string)
	ctrl.Log.Info("AssessmentController.CreateAssessment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserEmailKey, owner),
	)

	defer r.Body.Close()
	request := &requests.CreateAssessment{}
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

	assessment, err := ctrl.AssessmentUsecase.CreateAssessment(ctx, owner, request)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		ctrl.Log.Error("AssessmentController.CreateAssessment error in AssessmentUsecase.CreateAssessment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("AssessmentController.CreateAssessment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAssessmentIDKey, assessment.ID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateAssessmentSuccessMessage, assessment)
}

func (ctrl *AssessmentController) UpdateAssessment(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	owner, _ := r.Context().Value(constvars.CONTEXT_USER_EMAIL_KEY).(string)
	assessmentID := chi.URLParam(r, "assessmentID")
	ctrl.Log.Info("AssessmentController.UpdateAssessment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAssessmentIDKey, assessmentID),
	)

	defer r.Body.Close()
	request := &requests.UpdateAssessment{}
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

	if err := ctrl.AssessmentUsecase.UpdateAssessment(ctx, owner, assessmentID, request); err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateAssessmentSuccessMessage, nil)
}

func (ctrl *AssessmentController) CompleteAssessment(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	owner, _ := r.Context().Value(constvars.CONTEXT_USER_EMAIL_KEY).(string)
	assessmentID := chi.URLParam(r, "assessmentID")
	ctrl.Log.Info("AssessmentController.CompleteAssessment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAssessmentIDKey, assessmentID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.AssessmentUsecase.CompleteAssessment(ctx, owner, assessmentID)
	if err != nil {
		// The completed record exists even though the in-progress copy
		// could not be removed yet. The caller still gets its result.
		if result != nil && result.CleanupPending {
			ctrl.Log.Warn("AssessmentController.CompleteAssessment cleanup pending",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingAssessmentIDKey, assessmentID),
				zap.Error(err),
			)
			utils.BuildSuccessResponse(w, constvars.StatusAccepted, constvars.CompleteAssessmentSuccessMessage, result)
			return
		}
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		ctrl.Log.Error("AssessmentController.CompleteAssessment error in AssessmentUsecase.CompleteAssessment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("AssessmentController.CompleteAssessment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAssessmentIDKey, assessmentID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CompleteAssessmentSuccessMessage, result)
}

func (ctrl *AssessmentController) ListInProgress(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	owner, _ := r.Context().Value(constvars.CONTEXT_USER_EMAIL_KEY).(string)
	ctrl.Log.Info("AssessmentController.ListInProgress called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserEmailKey, owner),
	)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	assessments, err := ctrl.AssessmentUsecase.FindAllInProgress(ctx, owner)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAssessmentsSuccessMessage, assessments)
}

func (ctrl *AssessmentController) ListCompleted(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	owner, _ := r.Context().Value(constvars.CONTEXT_USER_EMAIL_KEY).(string)
	ctrl.Log.Info("AssessmentController.ListCompleted called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserEmailKey, owner),
	)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	assessments, err := ctrl.AssessmentUsecase.FindAllCompleted(ctx, owner)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAssessmentsSuccessMessage, assessments)
}

func (ctrl *AssessmentController) GetAnswerData(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	owner, _ := r.Context().Value(constvars.CONTEXT_USER_EMAIL_KEY).(string)
	assessmentID := chi.URLParam(r, "assessmentID")
	ctrl.Log.Info("AssessmentController.GetAnswerData called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAssessmentIDKey, assessmentID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	answerData, err := ctrl.AssessmentUsecase.FetchAnswerData(ctx, owner, assessmentID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAssessmentsSuccessMessage, answerData)
}

func (ctrl *AssessmentController) DeleteAssessment(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	owner, _ := r.Context().Value(constvars.CONTEXT_USER_EMAIL_KEY).(string)
	assessmentID := chi.URLParam(r, "assessmentID")
	ctrl.Log.Info("AssessmentController.DeleteAssessment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAssessmentIDKey, assessmentID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.AssessmentUsecase.DeleteInProgressAssessment(ctx, owner, assessmentID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteAssessmentSuccessMessage, nil)
}
