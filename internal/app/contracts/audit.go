package contracts

import (
	"caseflow-service/internal/app/models"
	"context"
)

type AuditRepository interface {
	InsertEvent(ctx context.Context, event *models.AuditEvent) error
	FindByCaseID(ctx context.Context, caseID string) ([]models.AuditEvent, error)
}

// AuditService is a write-only sink. Record failures must never roll back
// the domain write they accompany; callers surface them as a warning.
type AuditService interface {
	Record(ctx context.Context, event *models.AuditEvent) error
}

type AuditUsecase interface {
	GetCaseAuditTrail(ctx context.Context, caseID string, session *models.Session) ([]models.AuditEvent, error)
}
