package routers

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"caseflow-service/internal/app/config"
	"caseflow-service/internal/app/delivery/http/middlewares"
	"caseflow-service/internal/app/models"
	"caseflow-service/internal/app/services/core/auth"
	"caseflow-service/internal/app/services/core/cases"
	"caseflow-service/internal/app/services/core/checklist"
	"caseflow-service/internal/app/services/core/intake"
	"caseflow-service/internal/app/services/core/reviews"
	"caseflow-service/internal/app/services/core/settlements"
	"caseflow-service/internal/app/services/core/users"
	"caseflow-service/internal/app/services/shared/audit"
	sharedredis "caseflow-service/internal/app/services/shared/redis"
	sharedstorage "caseflow-service/internal/app/services/shared/storage"
	"caseflow-service/internal/pkg/constvars"
	"caseflow-service/internal/pkg/dto/responses"
	"caseflow-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// newTestServer wires the whole service against the local provider, the
// same shape main uses, and seeds one user per role.
func newTestServer(t *testing.T) (*chi.Mux, map[string]string) {
	t.Helper()

	logger := zap.NewNop()
	internalConfig := &config.InternalConfig{}
	internalConfig.App.Env = "development"
	internalConfig.App.Version = "v1"
	internalConfig.App.EndpointPrefix = "api"
	internalConfig.App.Timezone = "UTC"
	internalConfig.App.MaxRequests = 100
	internalConfig.App.DocumentMaxUploadSizeInMB = 5
	internalConfig.App.LoginAttemptsPerMinute = 100
	internalConfig.JWT.Secret = "router-test-secret"
	internalConfig.JWT.ExpTimeInHour = 1

	redisRepo := sharedredis.NewMemoryRepository()
	fileStorage := sharedstorage.NewMemoryStorage()

	userRepo := users.NewUserLocalRepository()
	caseRepo := cases.NewCaseLocalRepository()
	checklistRepo := checklist.NewChecklistLocalRepository()
	intakeRepo := intake.NewIntakeLocalRepository()
	reviewRepo := reviews.NewReviewLocalRepository()
	settlementRepo := settlements.NewSettlementLocalRepository()
	auditRepo := audit.NewAuditLocalRepository()

	auditService, err := audit.NewAuditService(auditRepo, nil, "", logger)
	assert.NoError(t, err)

	checklistUsecase := checklist.NewChecklistUsecase(checklistRepo, caseRepo, fileStorage, auditService)
	intakeUsecase := intake.NewIntakeUsecase(intakeRepo, caseRepo, checklistUsecase, auditService)
	reviewUsecase := reviews.NewReviewUsecase(reviewRepo, userRepo, caseRepo, intakeUsecase, auditService)
	caseUsecase := cases.NewCaseUsecase(caseRepo, intakeUsecase, reviewUsecase, checklistUsecase, auditService)
	settlementUsecase := settlements.NewSettlementUsecase(settlementRepo, caseRepo, auditService)
	auditUsecase := audit.NewAuditUsecase(auditRepo, caseRepo)
	authUsecase := auth.NewAuthUsecase(userRepo, redisRepo, internalConfig)

	controllers := Controllers{
		Auth:       auth.NewAuthController(logger, authUsecase),
		Case:       cases.NewCaseController(logger, caseUsecase),
		Checklist:  checklist.NewChecklistController(logger, checklistUsecase, internalConfig),
		Intake:     intake.NewIntakeController(logger, intakeUsecase),
		Review:     reviews.NewReviewController(logger, reviewUsecase),
		Settlement: settlements.NewSettlementController(logger, settlementUsecase),
		Audit:      audit.NewAuditController(logger, auditUsecase),
	}

	mw := middlewares.NewMiddlewares(logger, redisRepo, internalConfig, nil)
	router := chi.NewRouter()
	requestLog := logrus.New()
	SetupRoutes(router, internalConfig, requestLog, mw, controllers)

	// One token per role, issued straight into the session store.
	tokens := make(map[string]string)
	seed := map[string]string{
		constvars.RoleHospital:   "hospital-1",
		constvars.RoleVerifier:   "",
		constvars.RoleDoctor:     "",
		constvars.RoleCommittee:  "",
		constvars.RoleLeadership: "",
		constvars.RoleAdmin:      "",
	}
	for role, hospitalID := range seed {
		session := &models.Session{
			SessionID:  uuid.New().String(),
			UserID:     uuid.New().String(),
			Username:   role + ".user",
			Role:       role,
			HospitalID: hospitalID,
		}
		err := redisRepo.Set(context.Background(), session.SessionID, session, 0)
		assert.NoError(t, err)
		token, err := utils.GenerateSessionJWT(session.SessionID, internalConfig.JWT.Secret, 1)
		assert.NoError(t, err)
		tokens[role] = token
	}

	return router, tokens
}

func doJSON(t *testing.T, router *chi.Mux, method, path, token string, body interface{}) (*httptest.ResponseRecorder, responses.ResponseDTO) {
	t.Helper()

	var reader *bytes.Buffer
	if body != nil {
		raw, err := json.Marshal(body)
		assert.NoError(t, err)
		reader = bytes.NewBuffer(raw)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var envelope responses.ResponseDTO
	_ = json.Unmarshal(rec.Body.Bytes(), &envelope)
	return rec, envelope
}

func TestCaseRoutes(t *testing.T) {
	createBody := map[string]interface{}{
		"process_type":  "GEN",
		"hospital_id":   "hospital-1",
		"hospital_name": "General Hospital",
		"patient_name":  "A. Patient",
	}

	t.Run("a hospital user can create and fetch a case", func(t *testing.T) {
		router, tokens := newTestServer(t)

		rec, envelope := doJSON(t, router, http.MethodPost, "/api/v1/cases", tokens[constvars.RoleHospital], createBody)
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.True(t, envelope.Success)

		created, ok := envelope.Data.(map[string]interface{})
		assert.True(t, ok)
		caseID, _ := created["id"].(string)
		assert.NotEmpty(t, caseID)

		rec, envelope = doJSON(t, router, http.MethodGet, "/api/v1/cases/"+caseID, tokens[constvars.RoleVerifier], nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, envelope.Success)
	})

	t.Run("creating a case requires the hospital role", func(t *testing.T) {
		router, tokens := newTestServer(t)

		rec, _ := doJSON(t, router, http.MethodPost, "/api/v1/cases", tokens[constvars.RoleDoctor], createBody)
		assert.Equal(t, http.StatusForbidden, rec.Code)

		// Admin bypasses every role guard.
		rec, _ = doJSON(t, router, http.MethodPost, "/api/v1/cases", tokens[constvars.RoleAdmin], createBody)
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("unauthenticated requests are rejected before routing", func(t *testing.T) {
		router, _ := newTestServer(t)

		rec, _ := doJSON(t, router, http.MethodGet, "/api/v1/cases", "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("create seeds the checklist and exposes readiness", func(t *testing.T) {
		router, tokens := newTestServer(t)

		_, envelope := doJSON(t, router, http.MethodPost, "/api/v1/cases", tokens[constvars.RoleHospital], createBody)
		created := envelope.Data.(map[string]interface{})
		caseID := created["id"].(string)

		rec, envelope := doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/v1/cases/%s/documents", caseID), tokens[constvars.RoleHospital], nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		docs, ok := envelope.Data.([]interface{})
		assert.True(t, ok)
		assert.Len(t, docs, constvars.MandatoryDocCatalogSize)

		rec, envelope = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/v1/cases/%s/documents/readiness", caseID), tokens[constvars.RoleVerifier], nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		readiness := envelope.Data.(map[string]interface{})
		assert.Equal(t, false, readiness["is_ready"])
	})

	t.Run("the audit trail records the creation", func(t *testing.T) {
		router, tokens := newTestServer(t)

		_, envelope := doJSON(t, router, http.MethodPost, "/api/v1/cases", tokens[constvars.RoleHospital], createBody)
		created := envelope.Data.(map[string]interface{})
		caseID := created["id"].(string)

		rec, envelope := doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/v1/cases/%s/audit", caseID), tokens[constvars.RoleAdmin], nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		events, ok := envelope.Data.([]interface{})
		assert.True(t, ok)
		assert.NotEmpty(t, events)
	})

	t.Run("settlement closure is guarded for leadership", func(t *testing.T) {
		router, tokens := newTestServer(t)

		_, envelope := doJSON(t, router, http.MethodPost, "/api/v1/cases", tokens[constvars.RoleHospital], createBody)
		created := envelope.Data.(map[string]interface{})
		caseID := created["id"].(string)

		rec, _ := doJSON(t, router, http.MethodPost, fmt.Sprintf("/api/v1/cases/%s/close", caseID), tokens[constvars.RoleHospital], nil)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestAuthRoutes(t *testing.T) {
	t.Run("login with unknown credentials is unauthorized", func(t *testing.T) {
		router, _ := newTestServer(t)

		rec, _ := doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
			"username": "nobody.here", "password": "wrong-password-123",
		})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("an admin registers a user who can then log in", func(t *testing.T) {
		router, tokens := newTestServer(t)

		body := map[string]string{
			"username":  "night.verifier",
			"password":  "a long enough pass",
			"full_name": "Night Verifier",
			"role":      constvars.RoleVerifier,
		}
		rec, resp := doJSON(t, router, http.MethodPost, "/api/v1/auth/register", tokens[constvars.RoleAdmin], body)
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.True(t, resp.Success)

		rec, _ = doJSON(t, router, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
			"username": "night.verifier", "password": "a long enough pass",
		})
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("registration is admin only", func(t *testing.T) {
		router, tokens := newTestServer(t)

		body := map[string]string{
			"username":  "rogue.account",
			"password":  "a long enough pass",
			"full_name": "Rogue Account",
			"role":      constvars.RoleAdmin,
		}
		rec, _ := doJSON(t, router, http.MethodPost, "/api/v1/auth/register", tokens[constvars.RoleVerifier], body)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
