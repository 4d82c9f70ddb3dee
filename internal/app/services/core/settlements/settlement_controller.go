package settlements

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

type SettlementController struct {
	Log               *zap.Logger
	SettlementUsecase contracts.SettlementUsecase
}

func NewSettlementController(logger *zap.Logger, settlementUsecase contracts.SettlementUsecase) *SettlementController {
	return &SettlementController{
		Log:               logger,
		SettlementUsecase: settlementUsecase,
	}
}

func (ctrl *SettlementController) GetSettlement(w http.ResponseWriter, r *http.Request) {
	caseID := chi.URLParam(r, "caseID")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := ctrl.SettlementUsecase.GetSettlement(ctx, caseID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetSettlementSuccessMessage, result)
}

func (ctrl *SettlementController) SaveSettlement(w http.ResponseWriter, r *http.Request) {
	session := utils.SessionFromContext(r.Context())
	caseID := chi.URLParam(r, "caseID")

	request := new(requests.SaveSettlement)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, auditFailed, err := ctrl.SettlementUsecase.SaveSettlement(ctx, caseID, request, session)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	if auditFailed {
		utils.BuildSuccessResponseWithWarning(w, constvars.StatusOK, constvars.SaveSettlementSuccessMessage, constvars.AuditWarningMessage, result)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SaveSettlementSuccessMessage, result)
}

func (ctrl *SettlementController) SubmitDirectorReview(w http.ResponseWriter, r *http.Request) {
	session := utils.SessionFromContext(r.Context())
	caseID := chi.URLParam(r, "caseID")

	request := new(requests.SubmitDirectorReview)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, auditFailed, err := ctrl.SettlementUsecase.SubmitDirectorReview(ctx, caseID, request, session)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	if auditFailed {
		utils.BuildSuccessResponseWithWarning(w, constvars.StatusOK, constvars.DirectorReviewSuccessMessage, constvars.AuditWarningMessage, result)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DirectorReviewSuccessMessage, result)
}

func (ctrl *SettlementController) CloseCase(w http.ResponseWriter, r *http.Request) {
	session := utils.SessionFromContext(r.Context())
	caseID := chi.URLParam(r, "caseID")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, auditFailed, err := ctrl.SettlementUsecase.CloseCaseWithSettlement(ctx, caseID, session)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	if auditFailed {
		utils.BuildSuccessResponseWithWarning(w, constvars.StatusOK, constvars.CloseCaseSuccessMessage, constvars.AuditWarningMessage, result)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CloseCaseSuccessMessage, result)
}
