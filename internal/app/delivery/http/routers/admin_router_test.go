package routers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"intake-service/internal/app/config"
	"intake-service/internal/app/delivery/http/middlewares"
	"intake-service/internal/app/models"
	"intake-service/internal/app/services/admins"
	"intake-service/internal/app/services/shared/jwtmanager"
	"intake-service/internal/pkg/dto/responses"
	"intake-service/internal/pkg/healthie_dto"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type MockAdminUsecase struct {
	mock.Mock
}

func (m *MockAdminUsecase) IssueToken(ctx context.Context) (*responses.AdminToken, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.AdminToken), args.Error(1)
}

func (m *MockAdminUsecase) ListIntakes(ctx context.Context, status string, page, pageSize int) ([]models.IntakeSubmission, error) {
	args := m.Called(ctx, status, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.IntakeSubmission), args.Error(1)
}

func (m *MockAdminUsecase) FindIntakesByEmail(ctx context.Context, email string) ([]models.IntakeSubmission, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.IntakeSubmission), args.Error(1)
}

func (m *MockAdminUsecase) GetIntake(ctx context.Context, intakeID string) (*models.IntakeSubmission, error) {
	args := m.Called(ctx, intakeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.IntakeSubmission), args.Error(1)
}

func (m *MockAdminUsecase) DeleteIntake(ctx context.Context, intakeID string) error {
	args := m.Called(ctx, intakeID)
	return args.Error(0)
}

func (m *MockAdminUsecase) ListPatientForms(ctx context.Context, patientID string) ([]healthie_dto.FormAnswerGroup, error) {
	args := m.Called(ctx, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]healthie_dto.FormAnswerGroup), args.Error(1)
}

func (m *MockAdminUsecase) GetFormDetails(ctx context.Context, groupID string) (*healthie_dto.FormAnswerGroup, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*healthie_dto.FormAnswerGroup), args.Error(1)
}

func (m *MockAdminUsecase) DeleteRemoteForm(ctx context.Context, groupID string) error {
	args := m.Called(ctx, groupID)
	return args.Error(0)
}

func TestAdminRouter_Authorization(t *testing.T) {
	logger := zap.NewNop()

	testAPIKey := "test-admin-api-key-12345"
	hash, err := bcrypt.GenerateFromPassword([]byte(testAPIKey), bcrypt.MinCost)
	assert.NoError(t, err)

	internalConfig := &config.InternalConfig{
		JWT: config.JWT{
			Secret:        "test-jwt-secret",
			ExpTimeInHour: 1,
		},
		Admin: config.Admin{
			APIKeyHash: string(hash),
		},
	}

	jwtManager := jwtmanager.NewJWTManager(internalConfig, logger)

	mockAdminUsecase := new(MockAdminUsecase)
	adminController := admins.NewAdminController(logger, mockAdminUsecase)

	middlewareInstance := middlewares.NewMiddlewares(logger, jwtManager, internalConfig)

	router := chi.NewRouter()
	attachAdminRoutes(router, middlewareInstance, adminController)

	t.Run("Issue Token with Valid API Key", func(t *testing.T) {
		mockAdminUsecase.On("IssueToken", mock.Anything).Return(&responses.AdminToken{
			Token:     "signed-token",
			ExpiresIn: 3600,
		}, nil)

		req := httptest.NewRequest("POST", "/auth/token", nil)
		req.Header.Set("x-api-key", testAPIKey)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code, "should return 201 Created for valid API key")
		mockAdminUsecase.AssertExpectations(t)
	})

	t.Run("Issue Token without API Key", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/auth/token", nil)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code, "should return 401 Unauthorized for missing API key")
	})

	t.Run("Issue Token with Invalid API Key", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/auth/token", nil)
		req.Header.Set("x-api-key", "wrong-key")

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code, "should return 401 Unauthorized for invalid API key")
	})

	t.Run("List Intakes without Bearer Token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/intakes", nil)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code, "should return 401 Unauthorized without bearer token")
		mockAdminUsecase.AssertNotCalled(t, "ListIntakes")
	})

	t.Run("List Intakes with Malformed Bearer Token", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/intakes", nil)
		req.Header.Set("Authorization", "Bearer not-a-jwt")

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code, "should return 401 Unauthorized for malformed token")
		mockAdminUsecase.AssertNotCalled(t, "ListIntakes")
	})

	t.Run("List Intakes with Valid Bearer Token", func(t *testing.T) {
		mockAdminUsecase.On("ListIntakes", mock.Anything, "submitted", 2, 10).Return([]models.IntakeSubmission{
			{ID: "intake-1", PatientHealthieID: "patient-1", Status: "submitted"},
		}, nil)

		token, err := jwtManager.CreateToken("admin-dashboard")
		assert.NoError(t, err)

		req := httptest.NewRequest("GET", "/intakes?status=submitted&page=2&page_size=10", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var body map[string]interface{}
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, true, body["success"])
		mockAdminUsecase.AssertExpectations(t)
	})

	t.Run("Delete Remote Form with Valid Bearer Token", func(t *testing.T) {
		mockAdminUsecase.On("DeleteRemoteForm", mock.Anything, "group-42").Return(nil)

		token, err := jwtManager.CreateToken("admin-dashboard")
		assert.NoError(t, err)

		req := httptest.NewRequest("DELETE", "/forms/group-42", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		mockAdminUsecase.AssertExpectations(t)
	})
}
