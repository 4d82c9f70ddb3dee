package contracts

import (
	"caseflow-service/internal/app/models"
	"caseflow-service/internal/pkg/dto/requests"
	"context"
)

type SettlementRepository interface {
	FindByCaseID(ctx context.Context, caseID string) (*models.SettlementRecord, error)
	SaveSettlement(ctx context.Context, record *models.SettlementRecord) error
}

type SettlementUsecase interface {
	GetSettlement(ctx context.Context, caseID string) (*models.SettlementRecord, error)
	SaveSettlement(ctx context.Context, caseID string, request *requests.SaveSettlement, session *models.Session) (result *models.SettlementRecord, auditFailed bool, err error)
	SubmitDirectorReview(ctx context.Context, caseID string, request *requests.SubmitDirectorReview, session *models.Session) (result *models.SettlementRecord, auditFailed bool, err error)
	CloseCaseWithSettlement(ctx context.Context, caseID string, session *models.Session) (result *models.SettlementRecord, auditFailed bool, err error)
}
