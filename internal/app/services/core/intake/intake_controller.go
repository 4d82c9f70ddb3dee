package intake

import (
	"context"
	"net/http"
	"time"

	"caseflow-service/internal/app/contracts"
	"caseflow-service/internal/pkg/constvars"
	"caseflow-service/internal/pkg/dto/requests"
	"caseflow-service/internal/pkg/exceptions"
	"caseflow-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type IntakeController struct {
	Log           *zap.Logger
	IntakeUsecase contracts.IntakeUsecase
}

func NewIntakeController(logger *zap.Logger, intakeUsecase contracts.IntakeUsecase) *IntakeController {
	return &IntakeController{
		Log:           logger,
		IntakeUsecase: intakeUsecase,
	}
}

func (ctrl *IntakeController) GetIntakeData(w http.ResponseWriter, r *http.Request) {
	caseID := chi.URLParam(r, "caseID")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := ctrl.IntakeUsecase.GetIntakeData(ctx, caseID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetIntakeSuccessMessage, result)
}

func (ctrl *IntakeController) SaveIntakeData(w http.ResponseWriter, r *http.Request) {
	session := utils.SessionFromContext(r.Context())
	caseID := chi.URLParam(r, "caseID")

	request := new(requests.SaveIntake)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, auditFailed, err := ctrl.IntakeUsecase.SaveIntakeData(ctx, caseID, request, session)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	if auditFailed {
		utils.BuildSuccessResponseWithWarning(w, constvars.StatusOK, constvars.SaveIntakeSuccessMessage, constvars.AuditWarningMessage, result)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SaveIntakeSuccessMessage, result)
}

func (ctrl *IntakeController) GetIntakeCompleteness(w http.ResponseWriter, r *http.Request) {
	caseID := chi.URLParam(r, "caseID")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := ctrl.IntakeUsecase.GetIntakeCompleteness(ctx, caseID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.IntakeCompletenessSuccessMessage, result)
}

func (ctrl *IntakeController) GetCaseSubmitReadiness(w http.ResponseWriter, r *http.Request) {
	caseID := chi.URLParam(r, "caseID")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := ctrl.IntakeUsecase.GetCaseSubmitReadiness(ctx, caseID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SubmitReadinessSuccessMessage, result)
}
