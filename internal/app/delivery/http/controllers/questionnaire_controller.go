package controllers

import (
	"context"
	"net/http"
	"sync"
	"time"

	"compliance-service/internal/app/contracts"
	"compliance-service/internal/app/models"
	"compliance-service/internal/pkg/constvars"
	"compliance-service/internal/pkg/dto/requests"
	"compliance-service/internal/pkg/exceptions"
	"compliance-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type QuestionnaireController struct {
	Log                  *zap.Logger
	QuestionnaireUsecase contracts.QuestionnaireUsecase
	EditSession          contracts.QuestionnaireCache
}

var (
	questionnaireControllerInstance *QuestionnaireController
	onceQuestionnaireController     sync.Once
)

func NewQuestionnaireController(
	logger *zap.Logger,
	questionnaireUsecase contracts.QuestionnaireUsecase,
	editSession contracts.QuestionnaireCache,
) *QuestionnaireController {
	onceQuestionnaireController.Do(func() {
		questionnaireControllerInstance = &QuestionnaireController{
			Log:                  logger,
			QuestionnaireUsecase: questionnaireUsecase,
			EditSession:          editSession,
		}
	})
	return questionnaireControllerInstance
}

func (ctrl *QuestionnaireController) GetCurrent(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("QuestionnaireController.GetCurrent called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	questionnaire := ctrl.QuestionnaireUsecase.GetCurrentQuestionnaire(ctx)
	if questionnaire == nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrVersionNotFound(nil, "current"))
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetCurrentQuestionnaireSuccessMessage, questionnaire)
}

func (ctrl *QuestionnaireController) ListVersions(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("QuestionnaireController.ListVersions called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	versions := ctrl.QuestionnaireUsecase.ListVersions(ctx)

	ctrl.Log.Info("QuestionnaireController.ListVersions succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseCountKey, len(versions)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetVersionsSuccessMessage, versions)
}

func (ctrl *QuestionnaireController) GetVersion(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	version := chi.URLParam(r, "version")
	ctrl.Log.Info("QuestionnaireController.GetVersion called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingVersionKey, version),
	)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	pages := ctrl.QuestionnaireUsecase.LoadQuestionnaireVersion(ctx, version)
	if pages == nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrVersionNotFound(nil, version))
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetVersionsSuccessMessage, pages)
}

func (ctrl *QuestionnaireController) CreateVersion(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("QuestionnaireController.CreateVersion called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	defer r.Body.Close()
	request := &requests.CreateVersion{}
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

	metadata := models.VersionMetadata{
		UpdatedBy:   request.UpdatedBy,
		ChangeNotes: request.ChangeNotes,
	}
	version, err := ctrl.QuestionnaireUsecase.CreateNewVersion(ctx, request.Pages, metadata)
	if err != nil {
		ctrl.Log.Error("QuestionnaireController.CreateVersion error in QuestionnaireUsecase.CreateNewVersion",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateVersionSuccessMessage, map[string]string{
		"version": version,
	})
}

func (ctrl *QuestionnaireController) ActivateVersion(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	version := chi.URLParam(r, "version")
	ctrl.Log.Info("QuestionnaireController.ActivateVersion called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingVersionKey, version),
	)

	request := &requests.SetCurrentVersion{Version: version}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if ok := ctrl.QuestionnaireUsecase.SetCurrentVersion(ctx, version); !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrVersionNotFound(nil, version))
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ActivateVersionSuccessMessage, nil)
}

func (ctrl *QuestionnaireController) SaveVersion(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	version := chi.URLParam(r, "version")
	ctrl.Log.Info("QuestionnaireController.SaveVersion called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingVersionKey, version),
	)

	defer r.Body.Close()
	request := &requests.SaveVersion{}
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

	if ok := ctrl.QuestionnaireUsecase.SaveVersion(ctx, version, request.Pages); !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMinioCreateObject(nil, version))
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SaveVersionSuccessMessage, nil)
}

func (ctrl *QuestionnaireController) DeleteVersion(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	version := chi.URLParam(r, "version")
	ctrl.Log.Info("QuestionnaireController.DeleteVersion called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingVersionKey, version),
	)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if ok := ctrl.QuestionnaireUsecase.DeleteVersion(ctx, version); !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotDeleteLastVersion())
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteVersionSuccessMessage, nil)
}

func (ctrl *QuestionnaireController) AddSection(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("QuestionnaireController.AddSection called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	defer r.Body.Close()
	request := &requests.AddSection{}
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

	section := models.QuestionPage{
		Title:    request.Title,
		Elements: request.Elements,
	}
	if err := ctrl.QuestionnaireUsecase.AddNewSection(ctx, section); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.AddSectionSuccessMessage, nil)
}

func (ctrl *QuestionnaireController) DeleteSection(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	pageID := chi.URLParam(r, "pageID")
	actorEmail, _ := r.Context().Value(constvars.CONTEXT_USER_EMAIL_KEY).(string)
	ctrl.Log.Info("QuestionnaireController.DeleteSection called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserEmailKey, actorEmail),
	)

	request := &requests.DeleteSection{}
	if r.Body != nil {
		defer r.Body.Close()
		// Reason body is optional; decode failures just leave it empty.
		json.NewDecoder(r.Body).Decode(request)
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.QuestionnaireUsecase.DeleteSection(ctx, pageID, actorEmail, request.Reason); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteSectionSuccessMessage, nil)
}

func (ctrl *QuestionnaireController) GetEditBuffer(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("QuestionnaireController.GetEditBuffer called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	pages, err := ctrl.EditSession.LoadPages(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetVersionsSuccessMessage, pages)
}

func (ctrl *QuestionnaireController) SaveEditBuffer(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("QuestionnaireController.SaveEditBuffer called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	defer r.Body.Close()
	request := &requests.SaveEditBuffer{}
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.EditSession.SavePages(ctx, request.Pages); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SaveVersionSuccessMessage, nil)
}

func (ctrl *QuestionnaireController) DiscardEditBuffer(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("QuestionnaireController.DiscardEditBuffer called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.EditSession.Discard(ctx); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteSectionSuccessMessage, nil)
}
