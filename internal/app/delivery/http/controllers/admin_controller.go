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

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type AdminController struct {
	Log          *zap.Logger
	AdminUsecase contracts.AdminUsecase
}

var (
	adminControllerInstance *AdminController
	onceAdminController     sync.Once
)

func NewAdminController(logger *zap.Logger, adminUsecase contracts.AdminUsecase) *AdminController {
	onceAdminController.Do(func() {
		adminControllerInstance = &AdminController{
			Log:          logger,
			AdminUsecase: adminUsecase,
		}
	})
	return adminControllerInstance
}

func (ctrl *AdminController) ExecuteOperation(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	actorEmail, _ := r.Context().Value(constvars.CONTEXT_USER_EMAIL_KEY).(string)

	defer r.Body.Close()
	request := &requests.AdminOperation{}
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctrl.Log.Info("AdminController.ExecuteOperation called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOperationKey, request.Operation),
		zap.String(constvars.LoggingUserEmailKey, actorEmail),
	)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.AdminUsecase.Execute(ctx, actorEmail, request)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		ctrl.Log.Error("AdminController.ExecuteOperation error in AdminUsecase.Execute",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingOperationKey, request.Operation),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("AdminController.ExecuteOperation succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOperationKey, request.Operation),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AdminOperationSuccessMessage, result)
}
