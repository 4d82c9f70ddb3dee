package settlements

import (
	"context"
	"time"

	"caseflow-service/internal/app/contracts"
	"caseflow-service/internal/app/models"
	"caseflow-service/internal/pkg/constvars"
	"caseflow-service/internal/pkg/dto/requests"
	"caseflow-service/internal/pkg/exceptions"

	"github.com/google/uuid"
)

type settlementUsecase struct {
	SettlementRepository contracts.SettlementRepository
	CaseRepository       contracts.CaseRepository
	AuditService         contracts.AuditService
}

func NewSettlementUsecase(
	settlementRepository contracts.SettlementRepository,
	caseRepository contracts.CaseRepository,
	auditService contracts.AuditService,
) contracts.SettlementUsecase {
	return &settlementUsecase{
		SettlementRepository: settlementRepository,
		CaseRepository:       caseRepository,
		AuditService:         auditService,
	}
}

func (uc *settlementUsecase) GetSettlement(ctx context.Context, caseID string) (*models.SettlementRecord, error) {
	caseModel, err := uc.CaseRepository.FindByID(ctx, caseID)
	if err != nil {
		return nil, err
	}
	if caseModel == nil {
		return nil, exceptions.ErrCaseNotFound(nil)
	}

	record, err := uc.SettlementRepository.FindByCaseID(ctx, caseID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		record = &models.SettlementRecord{CaseID: caseID}
	}
	return record, nil
}

// SaveSettlement patches the financials and recomputes variance on every
// write. Settlements only exist for approved cases that are not yet closed.
func (uc *settlementUsecase) SaveSettlement(ctx context.Context, caseID string, request *requests.SaveSettlement, session *models.Session) (*models.SettlementRecord, bool, error) {
	caseModel, err := uc.CaseRepository.FindByID(ctx, caseID)
	if err != nil {
		return nil, false, err
	}
	if caseModel == nil {
		return nil, false, exceptions.ErrCaseNotFound(nil)
	}
	if caseModel.CaseStatus == constvars.CaseStatusClosed {
		return nil, false, exceptions.ErrCaseAlreadyClosed(nil)
	}
	if caseModel.CaseStatus != constvars.CaseStatusApproved {
		return nil, false, exceptions.ErrInvalidCaseTransition(caseModel.CaseStatus, constvars.CaseStatusApproved)
	}

	record, err := uc.SettlementRepository.FindByCaseID(ctx, caseID)
	if err != nil {
		return nil, false, err
	}
	if record == nil {
		record = &models.SettlementRecord{ID: uuid.New().String(), CaseID: caseID}
	}

	if request.ReferenceAmount != nil {
		record.ReferenceAmount = request.ReferenceAmount
	}
	if request.FinalBillAmount != nil {
		record.FinalBillAmount = request.FinalBillAmount
	}
	if request.NfiPaidAmount != nil {
		record.NfiPaidAmount = request.NfiPaidAmount
	}
	if request.OtherPaidAmount != nil {
		record.OtherPaidAmount = request.OtherPaidAmount
	}

	record.VariancePct, record.VarianceFlag = ComputeVariance(record.FinalBillAmount, record.ReferenceAmount)
	record.UpdatedAt = time.Now().UTC()

	if err := uc.SettlementRepository.SaveSettlement(ctx, record); err != nil {
		return nil, false, err
	}

	auditFailed := uc.record(ctx, session, caseID, constvars.AuditActionSettlementSaved, "")
	return record, auditFailed, nil
}

func (uc *settlementUsecase) SubmitDirectorReview(ctx context.Context, caseID string, request *requests.SubmitDirectorReview, session *models.Session) (*models.SettlementRecord, bool, error) {
	caseModel, err := uc.CaseRepository.FindByID(ctx, caseID)
	if err != nil {
		return nil, false, err
	}
	if caseModel == nil {
		return nil, false, exceptions.ErrCaseNotFound(nil)
	}
	if caseModel.CaseStatus == constvars.CaseStatusClosed {
		return nil, false, exceptions.ErrCaseAlreadyClosed(nil)
	}
	if request.Decision == constvars.DirectorDecisionReturned && request.Comments == "" {
		return nil, false, exceptions.ErrDirectorCommentsRequired(nil)
	}

	record, err := uc.SettlementRepository.FindByCaseID(ctx, caseID)
	if err != nil {
		return nil, false, err
	}
	if record == nil {
		record = &models.SettlementRecord{ID: uuid.New().String(), CaseID: caseID}
	}

	now := time.Now().UTC()
	record.DirectorReview = &models.DirectorReview{
		Decision:  request.Decision,
		Comments:  request.Comments,
		DecidedBy: session.UserID,
		DecidedAt: now,
	}
	record.UpdatedAt = now

	if err := uc.SettlementRepository.SaveSettlement(ctx, record); err != nil {
		return nil, false, err
	}

	auditFailed := uc.record(ctx, session, caseID, constvars.AuditActionDirectorReview, request.Decision)
	return record, auditFailed, nil
}

// CloseCaseWithSettlement recomputes both closure gates server side and
// refuses with every failing reason itemized. The case update and the
// settlement update are two independent writes.
func (uc *settlementUsecase) CloseCaseWithSettlement(ctx context.Context, caseID string, session *models.Session) (*models.SettlementRecord, bool, error) {
	caseModel, err := uc.CaseRepository.FindByID(ctx, caseID)
	if err != nil {
		return nil, false, err
	}
	if caseModel == nil {
		return nil, false, exceptions.ErrCaseNotFound(nil)
	}
	if caseModel.CaseStatus == constvars.CaseStatusClosed {
		return nil, false, exceptions.ErrCaseAlreadyClosed(nil)
	}
	if caseModel.CaseStatus != constvars.CaseStatusApproved {
		return nil, false, exceptions.ErrInvalidCaseTransition(caseModel.CaseStatus, constvars.CaseStatusClosed)
	}

	record, err := uc.SettlementRepository.FindByCaseID(ctx, caseID)
	if err != nil {
		return nil, false, err
	}
	if record == nil {
		record = &models.SettlementRecord{CaseID: caseID}
	}

	// Variance is never trusted from storage at the closure boundary.
	record.VariancePct, record.VarianceFlag = ComputeVariance(record.FinalBillAmount, record.ReferenceAmount)

	var reasons []string
	if record.FinalBillAmount == nil || record.NfiPaidAmount == nil || record.OtherPaidAmount == nil {
		reasons = append(reasons, "Settlement amounts are not fully entered")
	}
	if record.VarianceFlag && (record.DirectorReview == nil || record.DirectorReview.Decision != constvars.DirectorDecisionApproved) {
		reasons = append(reasons, "Settlement variance exceeds the threshold and lacks director approval")
	}
	if len(reasons) > 0 {
		return nil, false, exceptions.ErrClosureBlocked(reasons)
	}

	now := time.Now().UTC()
	record.ClosedAt = &now
	record.ClosedBy = session.UserID
	record.UpdatedAt = now
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	if err := uc.SettlementRepository.SaveSettlement(ctx, record); err != nil {
		return nil, false, err
	}

	caseModel.CaseStatus = constvars.CaseStatusClosed
	caseModel.ClosureDate = &now
	caseModel.UpdatedAt = now
	caseModel.LastActionAt = now
	if err := uc.CaseRepository.UpdateCase(ctx, caseModel); err != nil {
		return nil, false, err
	}

	auditFailed := uc.record(ctx, session, caseID, constvars.AuditActionCaseClosed, "")
	return record, auditFailed, nil
}

func (uc *settlementUsecase) record(ctx context.Context, session *models.Session, caseID, action, notes string) bool {
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
