package routers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"compliance-service/internal/app/config"
	"compliance-service/internal/app/delivery/http/controllers"
	"compliance-service/internal/app/delivery/http/middlewares"
	"compliance-service/internal/pkg/constvars"
	"compliance-service/internal/pkg/dto/requests"
	"compliance-service/internal/pkg/dto/responses"
	"compliance-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockAdminUsecase struct {
	mock.Mock
}

func (m *MockAdminUsecase) Execute(ctx context.Context, actorEmail string, request *requests.AdminOperation) (interface{}, error) {
	args := m.Called(ctx, actorEmail, request)
	return args.Get(0), args.Error(1)
}

func TestAdminRouter_OperationEndpoint(t *testing.T) {
	logger := zap.NewNop()

	secret := "test-jwt-secret"
	internalConfig := &config.InternalConfig{
		App: config.App{},
		JWT: config.JWT{Secret: secret, ExpTimeInHour: 1},
	}

	mockAdminUsecase := new(MockAdminUsecase)
	adminController := controllers.NewAdminController(logger, mockAdminUsecase)

	middlewareInstance := &middlewares.Middlewares{
		Log:            logger,
		InternalConfig: internalConfig,
	}

	router := chi.NewRouter()
	router.Use(middlewareInstance.RequestIDMiddleware)
	attachAdminRoutes(router, middlewareInstance, adminController)

	newRequest := func(t *testing.T, token string) *http.Request {
		t.Helper()
		body, err := json.Marshal(requests.AdminOperation{Operation: "listUsers"})
		require.NoError(t, err)

		req := httptest.NewRequest("POST", "/operations", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		if token != "" {
			req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)
		}
		return req
	}

	t.Run("Admin Token Dispatches Operation", func(t *testing.T) {
		mockAdminUsecase.On("Execute", mock.Anything, "admin@example.com", mock.AnythingOfType("*requests.AdminOperation")).
			Return(&responses.UserList{Total: 0}, nil).Once()

		token, err := utils.GenerateSessionJWT("admin@example.com", constvars.RoleAdmin, secret, 1)
		require.NoError(t, err)

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, newRequest(t, token))

		assert.Equal(t, http.StatusOK, recorder.Code)
		mockAdminUsecase.AssertExpectations(t)
	})

	t.Run("Non Admin Token Forbidden", func(t *testing.T) {
		token, err := utils.GenerateSessionJWT("user@example.com", constvars.RoleUser, secret, 1)
		require.NoError(t, err)

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, newRequest(t, token))

		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})

	t.Run("Missing Token Unauthorized", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, newRequest(t, ""))

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("Garbage Token Unauthorized", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, newRequest(t, "not-a-jwt"))

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}
