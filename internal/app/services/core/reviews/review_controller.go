package reviews

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

type ReviewController struct {
	Log           *zap.Logger
	ReviewUsecase contracts.ReviewUsecase
}

func NewReviewController(logger *zap.Logger, reviewUsecase contracts.ReviewUsecase) *ReviewController {
	return &ReviewController{
		Log:           logger,
		ReviewUsecase: reviewUsecase,
	}
}

func (ctrl *ReviewController) GetDoctorReview(w http.ResponseWriter, r *http.Request) {
	caseID := chi.URLParam(r, "caseID")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := ctrl.ReviewUsecase.GetDoctorReview(ctx, caseID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetReviewSuccessMessage, result)
}

func (ctrl *ReviewController) AssignDoctorReviewer(w http.ResponseWriter, r *http.Request) {
	session := utils.SessionFromContext(r.Context())
	caseID := chi.URLParam(r, "caseID")

	request := new(requests.AssignDoctorReviewer)
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

	result, auditFailed, err := ctrl.ReviewUsecase.AssignDoctorReviewer(ctx, caseID, request, session)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	if auditFailed {
		utils.BuildSuccessResponseWithWarning(w, constvars.StatusOK, constvars.AssignReviewerSuccessMessage, constvars.AuditWarningMessage, result)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AssignReviewerSuccessMessage, result)
}

func (ctrl *ReviewController) SubmitDoctorReview(w http.ResponseWriter, r *http.Request) {
	session := utils.SessionFromContext(r.Context())
	caseID := chi.URLParam(r, "caseID")

	request := new(requests.SubmitDoctorReview)
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

	result, auditFailed, err := ctrl.ReviewUsecase.SubmitDoctorReview(ctx, caseID, request, session)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	if auditFailed {
		utils.BuildSuccessResponseWithWarning(w, constvars.StatusOK, constvars.SubmitReviewSuccessMessage, constvars.AuditWarningMessage, result)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SubmitReviewSuccessMessage, result)
}

func (ctrl *ReviewController) ListAvailableReviewers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := ctrl.ReviewUsecase.ListAvailableReviewers(ctx)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ListReviewersSuccessMessage, result)
}
