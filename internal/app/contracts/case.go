package contracts

import (
	"caseflow-service/internal/app/models"
	"caseflow-service/internal/pkg/dto/requests"
	"context"
)

type CaseRepository interface {
	CreateCase(ctx context.Context, caseModel *models.Case) (string, error)
	FindByID(ctx context.Context, caseID string) (*models.Case, error)
	FindByCaseRef(ctx context.Context, caseRef string) (*models.Case, error)
	FindCases(ctx context.Context, status, hospitalID string) ([]models.Case, error)
	UpdateCase(ctx context.Context, caseModel *models.Case) error
}

// Mutating operations return auditFailed=true when the domain write
// committed but the accompanying audit event could not be recorded; the
// delivery layer turns that into a warning, never a failure.
type CaseUsecase interface {
	CreateCase(ctx context.Context, request *requests.CreateCase, session *models.Session) (result *models.Case, auditFailed bool, err error)
	FindCaseByID(ctx context.Context, caseID string) (*models.Case, error)
	ListCases(ctx context.Context, request *requests.ListCases, session *models.Session) ([]models.Case, error)
	SubmitCase(ctx context.Context, caseID string, session *models.Session) (result *models.Case, auditFailed bool, err error)
	StartVerification(ctx context.Context, caseID string, session *models.Session) (result *models.Case, auditFailed bool, err error)
	SendToCommittee(ctx context.Context, caseID string, session *models.Session) (result *models.Case, auditFailed bool, err error)
	ReturnToHospital(ctx context.Context, caseID string, request *requests.ReturnToHospital, session *models.Session) (result *models.Case, auditFailed bool, err error)
	SubmitCommitteeDecision(ctx context.Context, caseID string, request *requests.SubmitCommitteeDecision, session *models.Session) (result *models.Case, auditFailed bool, err error)
}
