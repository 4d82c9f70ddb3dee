package cases

import (
	"context"
	"net/http"
	"time"

	"caseflow-service/internal/app/contracts"
	"caseflow-service/internal/app/models"
	"caseflow-service/internal/pkg/constvars"
	"caseflow-service/internal/pkg/dto/requests"
	"caseflow-service/internal/pkg/exceptions"
	"caseflow-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type CaseController struct {
	Log         *zap.Logger
	CaseUsecase contracts.CaseUsecase
}

func NewCaseController(logger *zap.Logger, caseUsecase contracts.CaseUsecase) *CaseController {
	return &CaseController{
		Log:         logger,
		CaseUsecase: caseUsecase,
	}
}

func (ctrl *CaseController) CreateCase(w http.ResponseWriter, r *http.Request) {
	session := utils.SessionFromContext(r.Context())

	request := new(requests.CreateCase)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeCreateCaseRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, auditFailed, err := ctrl.CaseUsecase.CreateCase(ctx, request, session)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	if auditFailed {
		utils.BuildSuccessResponseWithWarning(w, constvars.StatusCreated, constvars.CreateCaseSuccessMessage, constvars.AuditWarningMessage, result)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateCaseSuccessMessage, result)
}

func (ctrl *CaseController) GetCaseByID(w http.ResponseWriter, r *http.Request) {
	caseID := chi.URLParam(r, "caseID")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := ctrl.CaseUsecase.FindCaseByID(ctx, caseID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetCaseSuccessMessage, result)
}

func (ctrl *CaseController) ListCases(w http.ResponseWriter, r *http.Request) {
	session := utils.SessionFromContext(r.Context())

	request := &requests.ListCases{
		Status:     r.URL.Query().Get("status"),
		HospitalID: r.URL.Query().Get("hospital_id"),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := ctrl.CaseUsecase.ListCases(ctx, request, session)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ListCasesSuccessMessage, result)
}

func (ctrl *CaseController) SubmitCase(w http.ResponseWriter, r *http.Request) {
	ctrl.transition(w, r, constvars.SubmitCaseSuccessMessage, ctrl.CaseUsecase.SubmitCase)
}

func (ctrl *CaseController) StartVerification(w http.ResponseWriter, r *http.Request) {
	ctrl.transition(w, r, constvars.StartVerificationSuccessMessage, ctrl.CaseUsecase.StartVerification)
}

func (ctrl *CaseController) SendToCommittee(w http.ResponseWriter, r *http.Request) {
	ctrl.transition(w, r, constvars.SendToCommitteeSuccessMessage, ctrl.CaseUsecase.SendToCommittee)
}

func (ctrl *CaseController) ReturnToHospital(w http.ResponseWriter, r *http.Request) {
	session := utils.SessionFromContext(r.Context())
	caseID := chi.URLParam(r, "caseID")

	request := new(requests.ReturnToHospital)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeReturnToHospitalRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, auditFailed, err := ctrl.CaseUsecase.ReturnToHospital(ctx, caseID, request, session)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	if auditFailed {
		utils.BuildSuccessResponseWithWarning(w, constvars.StatusOK, constvars.ReturnToHospitalSuccessMessage, constvars.AuditWarningMessage, result)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ReturnToHospitalSuccessMessage, result)
}

func (ctrl *CaseController) SubmitCommitteeDecision(w http.ResponseWriter, r *http.Request) {
	session := utils.SessionFromContext(r.Context())
	caseID := chi.URLParam(r, "caseID")

	request := new(requests.SubmitCommitteeDecision)
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

	result, auditFailed, err := ctrl.CaseUsecase.SubmitCommitteeDecision(ctx, caseID, request, session)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	if auditFailed {
		utils.BuildSuccessResponseWithWarning(w, constvars.StatusOK, constvars.CommitteeDecisionSuccessMessage, constvars.AuditWarningMessage, result)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CommitteeDecisionSuccessMessage, result)
}

type transitionFunc func(ctx context.Context, caseID string, session *models.Session) (*models.Case, bool, error)

func (ctrl *CaseController) transition(w http.ResponseWriter, r *http.Request, successMessage string, fn transitionFunc) {
	session := utils.SessionFromContext(r.Context())
	caseID := chi.URLParam(r, "caseID")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, auditFailed, err := fn(ctx, caseID, session)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	if auditFailed {
		utils.BuildSuccessResponseWithWarning(w, constvars.StatusOK, successMessage, constvars.AuditWarningMessage, result)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, successMessage, result)
}
