package checklist

import (
	"context"
	"fmt"
	"time"

	"caseflow-service/internal/app/contracts"
	"caseflow-service/internal/app/models"
	"caseflow-service/internal/pkg/constvars"
	"caseflow-service/internal/pkg/dto/requests"
	"caseflow-service/internal/pkg/dto/responses"
	"caseflow-service/internal/pkg/exceptions"
	"caseflow-service/internal/pkg/utils"

	"github.com/google/uuid"
)

type checklistUsecase struct {
	ChecklistRepository contracts.ChecklistRepository
	CaseRepository      contracts.CaseRepository
	FileStorage         contracts.FileStorage
	AuditService        contracts.AuditService
}

func NewChecklistUsecase(
	checklistRepository contracts.ChecklistRepository,
	caseRepository contracts.CaseRepository,
	fileStorage contracts.FileStorage,
	auditService contracts.AuditService,
) contracts.ChecklistUsecase {
	return &checklistUsecase{
		ChecklistRepository: checklistRepository,
		CaseRepository:      caseRepository,
		FileStorage:         fileStorage,
		AuditService:        auditService,
	}
}

// IsSatisfied reports whether an entry no longer needs hospital action.
// Uploaded counts here: a document awaiting verification is not missing.
// The submit-readiness gate is stricter and accepts Verified or
// Not_Applicable only.
func IsSatisfied(entry *models.DocumentChecklistEntry) bool {
	switch entry.Status {
	case constvars.DocStatusVerified, constvars.DocStatusNotApplicable, constvars.DocStatusUploaded:
		return true
	default:
		return false
	}
}

func isMandatoryComplete(entry *models.DocumentChecklistEntry) bool {
	return entry.Status == constvars.DocStatusVerified || entry.Status == constvars.DocStatusNotApplicable
}

// EnsureChecklist materializes the template for a case that has no entries
// yet. Safe to call repeatedly; an existing checklist is left untouched.
func (uc *checklistUsecase) EnsureChecklist(ctx context.Context, caseID, processType string) error {
	existing, err := uc.ChecklistRepository.FindEntriesByCaseID(ctx, caseID)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	now := time.Now().UTC()
	rows := TemplateForProcessType(processType)
	entries := make([]models.DocumentChecklistEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, models.DocumentChecklistEntry{
			ID:            uuid.New().String(),
			CaseID:        caseID,
			Category:      row.Category,
			DocType:       row.DocType,
			Status:        constvars.DocStatusMissing,
			MandatoryFlag: row.Mandatory,
			CreatedAt:     now,
			UpdatedAt:     now,
		})
	}
	return uc.ChecklistRepository.InsertEntries(ctx, entries)
}

func (uc *checklistUsecase) ListCaseDocuments(ctx context.Context, caseID string) ([]models.DocumentChecklistEntry, error) {
	caseModel, err := uc.CaseRepository.FindByID(ctx, caseID)
	if err != nil {
		return nil, err
	}
	if caseModel == nil {
		return nil, exceptions.ErrCaseNotFound(nil)
	}

	if err := uc.EnsureChecklist(ctx, caseID, caseModel.ProcessType); err != nil {
		return nil, err
	}

	entries, err := uc.ChecklistRepository.FindEntriesByCaseID(ctx, caseID)
	if err != nil {
		return nil, err
	}
	for i := range entries {
		ResolveEntryAliases(&entries[i])
	}
	return entries, nil
}

func (uc *checklistUsecase) UploadDocument(ctx context.Context, request *requests.UploadDocument, session *models.Session) (*models.DocumentChecklistEntry, bool, error) {
	caseModel, err := uc.CaseRepository.FindByID(ctx, request.CaseID)
	if err != nil {
		return nil, false, err
	}
	if caseModel == nil {
		return nil, false, exceptions.ErrCaseNotFound(nil)
	}

	entries, err := uc.ChecklistRepository.FindEntriesByCaseID(ctx, request.CaseID)
	if err != nil {
		return nil, false, err
	}
	// A case with no checklist at all accepts the upload as a no-op so
	// legacy cases created before templates existed do not hard-fail.
	if len(entries) == 0 {
		return nil, false, nil
	}

	entry, err := uc.ChecklistRepository.FindEntryByID(ctx, request.DocID)
	if err != nil {
		return nil, false, err
	}
	if entry == nil || entry.CaseID != request.CaseID {
		return nil, false, exceptions.ErrDocumentNotFound(nil)
	}
	ResolveEntryAliases(entry)

	if entry.Status == constvars.DocStatusVerified && !session.IsAdmin() {
		return nil, false, exceptions.ErrVerifiedImmutable(nil)
	}

	uc.retroInsertLegacyVersion(entry)

	now := time.Now().UTC()
	versionNo := 1
	if latest := entry.LatestVersion(); latest != nil {
		versionNo = latest.VersionNo + 1
	}

	objectKey := ""
	if uc.FileStorage != nil && request.Reader != nil {
		key := utils.GenerateDocumentObjectKey(entry.CaseID, entry.ID, versionNo, request.FileName)
		objectKey, err = uc.FileStorage.UploadFile(ctx, request.Reader, key, request.MimeType, request.FileSize)
		if err != nil {
			return nil, false, err
		}
	}

	entry.Versions = append(entry.Versions, models.DocumentVersion{
		VersionNo:  versionNo,
		FileName:   request.FileName,
		MimeType:   request.MimeType,
		FileSize:   request.FileSize,
		ObjectKey:  objectKey,
		UploadedAt: now,
		UploadedBy: session.UserID,
		Status:     constvars.DocStatusUploaded,
	})

	entry.Status = constvars.DocStatusUploaded
	entry.FileName = request.FileName
	entry.MimeType = request.MimeType
	entry.FileSize = request.FileSize
	entry.UploadedAt = &now
	entry.UploadedBy = session.UserID
	entry.UpdatedAt = now

	if err := uc.ChecklistRepository.UpdateEntry(ctx, entry); err != nil {
		return nil, false, err
	}

	auditFailed := uc.record(ctx, session, entry.CaseID, constvars.AuditActionDocumentUploaded,
		fmt.Sprintf("%s v%d (%s)", entry.DocType, versionNo, request.FileName))
	return entry, auditFailed, nil
}

func (uc *checklistUsecase) UpdateDocumentStatus(ctx context.Context, request *requests.UpdateDocumentStatus, session *models.Session) (*models.DocumentChecklistEntry, bool, error) {
	entry, err := uc.ChecklistRepository.FindEntryByID(ctx, request.DocID)
	if err != nil {
		return nil, false, err
	}
	if entry == nil {
		return nil, false, exceptions.ErrDocumentNotFound(nil)
	}
	ResolveEntryAliases(entry)

	if entry.Status == constvars.DocStatusVerified && request.Status != constvars.DocStatusVerified && !session.IsAdmin() {
		return nil, false, exceptions.ErrVerifiedImmutable(nil)
	}
	if request.Status == constvars.DocStatusNotApplicable && entry.MandatoryFlag && !session.IsAdmin() {
		return nil, false, exceptions.ErrMandatoryNotApplicable(nil)
	}

	now := time.Now().UTC()
	entry.Status = request.Status
	entry.Notes = request.Notes
	entry.UpdatedAt = now

	// Review outcomes stamp the latest version so the file history shows
	// which upload was accepted or sent back.
	if latest := entry.LatestVersion(); latest != nil {
		switch request.Status {
		case constvars.DocStatusVerified:
			latest.Status = constvars.DocStatusVerified
			latest.ReviewedAt = &now
			latest.ReviewedBy = session.UserID
			latest.RejectionReason = ""
		case constvars.DocStatusRejected:
			latest.Status = constvars.DocStatusRejected
			latest.ReviewedAt = &now
			latest.ReviewedBy = session.UserID
			latest.RejectionReason = request.Notes
		}
	}

	if err := uc.ChecklistRepository.UpdateEntry(ctx, entry); err != nil {
		return nil, false, err
	}

	auditFailed := uc.record(ctx, session, entry.CaseID, constvars.AuditActionDocumentStatusSet,
		fmt.Sprintf("%s -> %s", entry.DocType, request.Status))
	return entry, auditFailed, nil
}

func (uc *checklistUsecase) UnverifyDocument(ctx context.Context, docID string, session *models.Session) (*models.DocumentChecklistEntry, bool, error) {
	if !session.IsAdmin() {
		return nil, false, exceptions.ErrNotMatchRoleType(nil)
	}

	entry, err := uc.ChecklistRepository.FindEntryByID(ctx, docID)
	if err != nil {
		return nil, false, err
	}
	if entry == nil {
		return nil, false, exceptions.ErrDocumentNotFound(nil)
	}
	ResolveEntryAliases(entry)

	now := time.Now().UTC()
	entry.Status = constvars.DocStatusUploaded
	entry.UpdatedAt = now
	if latest := entry.LatestVersion(); latest != nil {
		latest.Status = constvars.DocStatusUploaded
		latest.ReviewedAt = nil
		latest.ReviewedBy = ""
	}

	if err := uc.ChecklistRepository.UpdateEntry(ctx, entry); err != nil {
		return nil, false, err
	}

	auditFailed := uc.record(ctx, session, entry.CaseID, constvars.AuditActionDocumentUnverified, entry.DocType)
	return entry, auditFailed, nil
}

// GetChecklistReadiness evaluates the strict committee gate: every entry in
// the canonical mandatory catalog must exist and be Verified or
// Not_Applicable. A short checklist can never be ready.
func (uc *checklistUsecase) GetChecklistReadiness(ctx context.Context, caseID string) (*responses.ChecklistReadiness, error) {
	caseModel, err := uc.CaseRepository.FindByID(ctx, caseID)
	if err != nil {
		return nil, err
	}
	if caseModel == nil {
		return nil, exceptions.ErrCaseNotFound(nil)
	}

	entries, err := uc.ChecklistRepository.FindEntriesByCaseID(ctx, caseID)
	if err != nil {
		return nil, err
	}

	readiness := &responses.ChecklistReadiness{BlockingDocs: []string{}}
	seen := make(map[string]bool)
	for i := range entries {
		ResolveEntryAliases(&entries[i])
		entry := &entries[i]
		if !entry.MandatoryFlag || seen[entry.DocType] {
			continue
		}
		seen[entry.DocType] = true
		readiness.MandatoryTotal++
		if isMandatoryComplete(entry) {
			readiness.MandatoryComplete++
		} else {
			readiness.BlockingDocs = append(readiness.BlockingDocs, entry.DocType)
		}
	}
	readiness.IsReady = len(readiness.BlockingDocs) == 0 &&
		readiness.MandatoryTotal == constvars.MandatoryDocCatalogSize
	return readiness, nil
}

// retroInsertLegacyVersion folds a pre-versioning entry's single file into
// the history as version 1 so the next upload becomes version 2.
func (uc *checklistUsecase) retroInsertLegacyVersion(entry *models.DocumentChecklistEntry) {
	if len(entry.Versions) > 0 || entry.FileName == "" || entry.UploadedAt == nil {
		return
	}
	entry.Versions = append(entry.Versions, models.DocumentVersion{
		VersionNo:  1,
		FileName:   entry.FileName,
		MimeType:   entry.MimeType,
		FileSize:   entry.FileSize,
		UploadedAt: *entry.UploadedAt,
		UploadedBy: entry.UploadedBy,
		Status:     entry.Status,
	})
}

func (uc *checklistUsecase) record(ctx context.Context, session *models.Session, caseID, action, notes string) bool {
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
