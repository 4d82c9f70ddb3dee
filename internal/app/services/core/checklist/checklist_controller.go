package checklist

import (
	"context"
	"net/http"
	"time"

	"caseflow-service/internal/app/config"
	"caseflow-service/internal/app/contracts"
	"caseflow-service/internal/pkg/constvars"
	"caseflow-service/internal/pkg/dto/requests"
	"caseflow-service/internal/pkg/exceptions"
	"caseflow-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type ChecklistController struct {
	Log              *zap.Logger
	ChecklistUsecase contracts.ChecklistUsecase
	InternalConfig   *config.InternalConfig
}

func NewChecklistController(logger *zap.Logger, checklistUsecase contracts.ChecklistUsecase, internalConfig *config.InternalConfig) *ChecklistController {
	return &ChecklistController{
		Log:              logger,
		ChecklistUsecase: checklistUsecase,
		InternalConfig:   internalConfig,
	}
}

func (ctrl *ChecklistController) GetCaseDocuments(w http.ResponseWriter, r *http.Request) {
	caseID := chi.URLParam(r, "caseID")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := ctrl.ChecklistUsecase.ListCaseDocuments(ctx, caseID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ListDocumentsSuccessMessage, result)
}

func (ctrl *ChecklistController) UploadDocument(w http.ResponseWriter, r *http.Request) {
	session := utils.SessionFromContext(r.Context())

	maxBytes := ctrl.InternalConfig.App.DocumentMaxUploadSizeInMB << 20
	if err := r.ParseMultipartForm(maxBytes); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}
	defer file.Close()

	request := &requests.UploadDocument{
		CaseID:   chi.URLParam(r, "caseID"),
		DocID:    chi.URLParam(r, "docID"),
		FileName: header.Filename,
		MimeType: header.Header.Get(constvars.HeaderContentType),
		FileSize: header.Size,
		Reader:   file,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	result, auditFailed, err := ctrl.ChecklistUsecase.UploadDocument(ctx, request, session)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	if auditFailed {
		utils.BuildSuccessResponseWithWarning(w, constvars.StatusOK, constvars.UploadDocumentSuccessMessage, constvars.AuditWarningMessage, result)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UploadDocumentSuccessMessage, result)
}

func (ctrl *ChecklistController) UpdateDocumentStatus(w http.ResponseWriter, r *http.Request) {
	session := utils.SessionFromContext(r.Context())

	request := new(requests.UpdateDocumentStatus)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.DocID = chi.URLParam(r, "docID")

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, auditFailed, err := ctrl.ChecklistUsecase.UpdateDocumentStatus(ctx, request, session)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	if auditFailed {
		utils.BuildSuccessResponseWithWarning(w, constvars.StatusOK, constvars.UpdateDocStatusSuccessMessage, constvars.AuditWarningMessage, result)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateDocStatusSuccessMessage, result)
}

func (ctrl *ChecklistController) UnverifyDocument(w http.ResponseWriter, r *http.Request) {
	session := utils.SessionFromContext(r.Context())
	docID := chi.URLParam(r, "docID")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, auditFailed, err := ctrl.ChecklistUsecase.UnverifyDocument(ctx, docID, session)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	if auditFailed {
		utils.BuildSuccessResponseWithWarning(w, constvars.StatusOK, constvars.UnverifyDocumentSuccessMessage, constvars.AuditWarningMessage, result)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UnverifyDocumentSuccessMessage, result)
}

func (ctrl *ChecklistController) GetChecklistReadiness(w http.ResponseWriter, r *http.Request) {
	caseID := chi.URLParam(r, "caseID")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := ctrl.ChecklistUsecase.GetChecklistReadiness(ctx, caseID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ChecklistReadinessSuccessMessage, result)
}
