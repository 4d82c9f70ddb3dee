package audit

import (
	"context"

	"caseflow-service/internal/app/contracts"
	"caseflow-service/internal/app/models"
	"caseflow-service/internal/pkg/constvars"
	"caseflow-service/internal/pkg/exceptions"
)

type auditUsecase struct {
	AuditRepository contracts.AuditRepository
	CaseRepository  contracts.CaseRepository
}

func NewAuditUsecase(
	auditRepository contracts.AuditRepository,
	caseRepository contracts.CaseRepository,
) contracts.AuditUsecase {
	return &auditUsecase{
		AuditRepository: auditRepository,
		CaseRepository:  caseRepository,
	}
}

// GetCaseAuditTrail returns the chronological event log for one case.
// Hospital users only see cases belonging to their own hospital.
func (uc *auditUsecase) GetCaseAuditTrail(ctx context.Context, caseID string, session *models.Session) ([]models.AuditEvent, error) {
	caseModel, err := uc.CaseRepository.FindByID(ctx, caseID)
	if err != nil {
		return nil, err
	}
	if caseModel == nil {
		return nil, exceptions.ErrCaseNotFound(nil)
	}
	if session.Role == constvars.RoleHospital && session.HospitalID != caseModel.HospitalID {
		return nil, exceptions.ErrCaseNotFound(nil)
	}

	events, err := uc.AuditRepository.FindByCaseID(ctx, caseID)
	if err != nil {
		return nil, err
	}
	return events, nil
}
