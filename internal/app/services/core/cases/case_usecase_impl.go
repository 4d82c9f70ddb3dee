package cases

import (
	"context"
	"fmt"
	"time"

	"caseflow-service/internal/app/contracts"
	"caseflow-service/internal/app/models"
	"caseflow-service/internal/pkg/constvars"
	"caseflow-service/internal/pkg/dto/requests"
	"caseflow-service/internal/pkg/exceptions"
	"caseflow-service/internal/pkg/utils"

	"github.com/google/uuid"
)

type caseUsecase struct {
	CaseRepository   contracts.CaseRepository
	IntakeUsecase    contracts.IntakeUsecase
	ReviewUsecase    contracts.ReviewUsecase
	ChecklistUsecase contracts.ChecklistUsecase
	AuditService     contracts.AuditService
}

func NewCaseUsecase(
	caseRepository contracts.CaseRepository,
	intakeUsecase contracts.IntakeUsecase,
	reviewUsecase contracts.ReviewUsecase,
	checklistUsecase contracts.ChecklistUsecase,
	auditService contracts.AuditService,
) contracts.CaseUsecase {
	return &caseUsecase{
		CaseRepository:   caseRepository,
		IntakeUsecase:    intakeUsecase,
		ReviewUsecase:    reviewUsecase,
		ChecklistUsecase: checklistUsecase,
		AuditService:     auditService,
	}
}

func (uc *caseUsecase) CreateCase(ctx context.Context, request *requests.CreateCase, session *models.Session) (*models.Case, bool, error) {
	caseRef := utils.GenerateCaseRef(constvars.CaseRefPrefix)
	existing, err := uc.CaseRepository.FindByCaseRef(ctx, caseRef)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return nil, false, exceptions.ErrCaseRefAlreadyExists(nil)
	}

	now := time.Now().UTC()
	caseModel := &models.Case{
		ID:           uuid.New().String(),
		CaseRef:      caseRef,
		ProcessType:  request.ProcessType,
		CaseStatus:   constvars.CaseStatusDraft,
		HospitalID:   request.HospitalID,
		HospitalName: request.HospitalName,
		PatientName:  request.PatientName,
		IntakeDate:   now,
		UpdatedAt:    now,
		LastActionAt: now,
		CreatedBy:    session.UserID,
	}

	if _, err := uc.CaseRepository.CreateCase(ctx, caseModel); err != nil {
		return nil, false, err
	}
	if err := uc.ChecklistUsecase.EnsureChecklist(ctx, caseModel.ID, caseModel.ProcessType); err != nil {
		return nil, false, err
	}

	auditFailed := uc.record(ctx, session, caseModel.ID, constvars.AuditActionCaseCreated, caseRef)
	return caseModel, auditFailed, nil
}

func (uc *caseUsecase) FindCaseByID(ctx context.Context, caseID string) (*models.Case, error) {
	caseModel, err := uc.CaseRepository.FindByID(ctx, caseID)
	if err != nil {
		return nil, err
	}
	if caseModel == nil {
		return nil, exceptions.ErrCaseNotFound(nil)
	}
	return caseModel, nil
}

// ListCases scopes hospital users to their own hospital regardless of the
// filter they ask for.
func (uc *caseUsecase) ListCases(ctx context.Context, request *requests.ListCases, session *models.Session) ([]models.Case, error) {
	hospitalID := request.HospitalID
	if session.Role == constvars.RoleHospital {
		hospitalID = session.HospitalID
	}
	return uc.CaseRepository.FindCases(ctx, request.Status, hospitalID)
}

// SubmitCase moves Draft or Returned to Submitted. Readiness is only
// enforced later at SendToCommittee; documents cannot be verified before
// verification starts.
func (uc *caseUsecase) SubmitCase(ctx context.Context, caseID string, session *models.Session) (*models.Case, bool, error) {
	caseModel, err := uc.findOpenCase(ctx, caseID)
	if err != nil {
		return nil, false, err
	}
	if caseModel.CaseStatus != constvars.CaseStatusDraft && caseModel.CaseStatus != constvars.CaseStatusReturned {
		return nil, false, exceptions.ErrInvalidCaseTransition(caseModel.CaseStatus, constvars.CaseStatusSubmitted)
	}

	caseModel.CaseStatus = constvars.CaseStatusSubmitted
	caseModel.ReturnReason = ""
	caseModel.ReturnComment = ""
	if err := uc.touchAndSave(ctx, caseModel); err != nil {
		return nil, false, err
	}

	auditFailed := uc.record(ctx, session, caseID, constvars.AuditActionCaseSubmitted, "")
	return caseModel, auditFailed, nil
}

func (uc *caseUsecase) StartVerification(ctx context.Context, caseID string, session *models.Session) (*models.Case, bool, error) {
	caseModel, err := uc.findOpenCase(ctx, caseID)
	if err != nil {
		return nil, false, err
	}
	if caseModel.CaseStatus != constvars.CaseStatusSubmitted {
		return nil, false, exceptions.ErrInvalidCaseTransition(caseModel.CaseStatus, constvars.CaseStatusUnderVerification)
	}

	caseModel.CaseStatus = constvars.CaseStatusUnderVerification
	if err := uc.touchAndSave(ctx, caseModel); err != nil {
		return nil, false, err
	}

	auditFailed := uc.record(ctx, session, caseID, constvars.AuditActionVerificationStart, "")
	return caseModel, auditFailed, nil
}

// SendToCommittee is the double gate: the submit-readiness aggregate and
// the clinical review gate must both pass, and a rejection itemizes every
// failing requirement rather than the first one found.
func (uc *caseUsecase) SendToCommittee(ctx context.Context, caseID string, session *models.Session) (*models.Case, bool, error) {
	caseModel, err := uc.findOpenCase(ctx, caseID)
	if err != nil {
		return nil, false, err
	}
	if caseModel.CaseStatus != constvars.CaseStatusUnderVerification {
		return nil, false, exceptions.ErrInvalidCaseTransition(caseModel.CaseStatus, constvars.CaseStatusUnderReview)
	}

	readiness, err := uc.IntakeUsecase.GetCaseSubmitReadiness(ctx, caseID)
	if err != nil {
		return nil, false, err
	}
	reviewGate, err := uc.ReviewUsecase.CanSendToCommittee(ctx, caseID)
	if err != nil {
		return nil, false, err
	}

	var reasons []string
	for _, section := range readiness.MissingSections {
		reasons = append(reasons, fmt.Sprintf("Incomplete section: %s", section))
	}
	for _, docType := range readiness.MissingDocuments {
		reasons = append(reasons, fmt.Sprintf("Document not ready: %s", docType))
	}
	if readiness.Checklist.MandatoryTotal != constvars.MandatoryDocCatalogSize {
		reasons = append(reasons, "Document checklist is missing mandatory entries")
	}
	if !reviewGate.Allowed {
		reasons = append(reasons, reviewGate.Reason)
	}
	if len(reasons) > 0 {
		return nil, false, exceptions.ErrSubmitReadinessBlocked(reasons)
	}

	caseModel.CaseStatus = constvars.CaseStatusUnderReview
	if err := uc.touchAndSave(ctx, caseModel); err != nil {
		return nil, false, err
	}

	auditFailed := uc.record(ctx, session, caseID, constvars.AuditActionSentToCommittee, "")
	return caseModel, auditFailed, nil
}

func (uc *caseUsecase) ReturnToHospital(ctx context.Context, caseID string, request *requests.ReturnToHospital, session *models.Session) (*models.Case, bool, error) {
	caseModel, err := uc.findOpenCase(ctx, caseID)
	if err != nil {
		return nil, false, err
	}
	if caseModel.CaseStatus != constvars.CaseStatusUnderVerification {
		return nil, false, exceptions.ErrInvalidCaseTransition(caseModel.CaseStatus, constvars.CaseStatusReturned)
	}

	caseModel.CaseStatus = constvars.CaseStatusReturned
	caseModel.ReturnReason = request.Reason
	caseModel.ReturnComment = request.Comment
	if err := uc.touchAndSave(ctx, caseModel); err != nil {
		return nil, false, err
	}

	auditFailed := uc.record(ctx, session, caseID, constvars.AuditActionReturnedToHospital, request.Reason)
	return caseModel, auditFailed, nil
}

// SubmitCommitteeDecision records the outcome. Pending and Deferred are
// record-only: the case stays Under_Review until a conclusive outcome.
func (uc *caseUsecase) SubmitCommitteeDecision(ctx context.Context, caseID string, request *requests.SubmitCommitteeDecision, session *models.Session) (*models.Case, bool, error) {
	caseModel, err := uc.findOpenCase(ctx, caseID)
	if err != nil {
		return nil, false, err
	}
	if caseModel.CaseStatus != constvars.CaseStatusUnderReview {
		return nil, false, exceptions.ErrInvalidCaseTransition(caseModel.CaseStatus, request.Outcome)
	}

	now := time.Now().UTC()
	caseModel.CommitteeDecision = &models.CommitteeDecision{
		Outcome:        request.Outcome,
		ApprovedAmount: request.ApprovedAmount,
		Comments:       request.Comments,
		DecidedBy:      session.UserID,
		DecidedAt:      now,
	}

	switch request.Outcome {
	case constvars.CommitteeOutcomeApproved:
		caseModel.CaseStatus = constvars.CaseStatusApproved
	case constvars.CommitteeOutcomeRejected:
		caseModel.CaseStatus = constvars.CaseStatusRejected
	case constvars.CommitteeOutcomeNeedMoreInfo:
		caseModel.CaseStatus = constvars.CaseStatusReturned
		caseModel.ReturnReason = constvars.CommitteeOutcomeNeedMoreInfo
		caseModel.ReturnComment = request.Comments
	}

	if err := uc.touchAndSave(ctx, caseModel); err != nil {
		return nil, false, err
	}

	auditFailed := uc.record(ctx, session, caseID, constvars.AuditActionCommitteeDecision, request.Outcome)
	return caseModel, auditFailed, nil
}

func (uc *caseUsecase) findOpenCase(ctx context.Context, caseID string) (*models.Case, error) {
	caseModel, err := uc.CaseRepository.FindByID(ctx, caseID)
	if err != nil {
		return nil, err
	}
	if caseModel == nil {
		return nil, exceptions.ErrCaseNotFound(nil)
	}
	if caseModel.CaseStatus == constvars.CaseStatusClosed {
		return nil, exceptions.ErrCaseAlreadyClosed(nil)
	}
	return caseModel, nil
}

func (uc *caseUsecase) touchAndSave(ctx context.Context, caseModel *models.Case) error {
	now := time.Now().UTC()
	caseModel.UpdatedAt = now
	caseModel.LastActionAt = now
	return uc.CaseRepository.UpdateCase(ctx, caseModel)
}

func (uc *caseUsecase) record(ctx context.Context, session *models.Session, caseID, action, notes string) bool {
	err := uc.AuditService.Record(ctx, &models.AuditEvent{
		CaseID:    caseID,
		Timestamp: time.Now().UTC(),
		UserID:    session.UserID,
		UserRole:  session.Role,
		Action:    action,
		Notes:     notes,
	})
	return err != nil
}
