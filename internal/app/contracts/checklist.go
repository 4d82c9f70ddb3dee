package contracts

import (
	"caseflow-service/internal/app/models"
	"caseflow-service/internal/pkg/dto/requests"
	"caseflow-service/internal/pkg/dto/responses"
	"context"
)

type ChecklistRepository interface {
	FindEntriesByCaseID(ctx context.Context, caseID string) ([]models.DocumentChecklistEntry, error)
	FindEntryByID(ctx context.Context, docID string) (*models.DocumentChecklistEntry, error)
	InsertEntries(ctx context.Context, entries []models.DocumentChecklistEntry) error
	UpdateEntry(ctx context.Context, entry *models.DocumentChecklistEntry) error
}

type ChecklistUsecase interface {
	EnsureChecklist(ctx context.Context, caseID, processType string) error
	ListCaseDocuments(ctx context.Context, caseID string) ([]models.DocumentChecklistEntry, error)
	UploadDocument(ctx context.Context, request *requests.UploadDocument, session *models.Session) (result *models.DocumentChecklistEntry, auditFailed bool, err error)
	UpdateDocumentStatus(ctx context.Context, request *requests.UpdateDocumentStatus, session *models.Session) (result *models.DocumentChecklistEntry, auditFailed bool, err error)
	UnverifyDocument(ctx context.Context, docID string, session *models.Session) (result *models.DocumentChecklistEntry, auditFailed bool, err error)
	GetChecklistReadiness(ctx context.Context, caseID string) (*responses.ChecklistReadiness, error)
}
