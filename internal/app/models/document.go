package models

import "time"

// DocumentChecklistEntry is one required/optional document slot for a case.
// The denormalized current fields always mirror the latest version; the
// Versions slice is append-only.
type DocumentChecklistEntry struct {
	ID            string `bson:"_id,omitempty" json:"id"`
	CaseID        string `bson:"caseId" json:"case_id"`
	Category      string `bson:"category" json:"category"`
	DocType       string `bson:"docType" json:"doc_type"`
	Status        string `bson:"status" json:"status"`
	MandatoryFlag bool   `bson:"mandatoryFlag" json:"mandatory_flag"`
	Notes         string `bson:"notes,omitempty" json:"notes,omitempty"`

	// Legacy single-version fields, kept so pre-versioning entries can be
	// retro-inserted as version 1 on the next upload.
	FileName   string     `bson:"fileName,omitempty" json:"file_name,omitempty"`
	MimeType   string     `bson:"mimeType,omitempty" json:"mime_type,omitempty"`
	FileSize   int64      `bson:"fileSize,omitempty" json:"file_size,omitempty"`
	UploadedAt *time.Time `bson:"uploadedAt,omitempty" json:"uploaded_at,omitempty"`
	UploadedBy string     `bson:"uploadedBy,omitempty" json:"uploaded_by,omitempty"`

	Versions []DocumentVersion `bson:"versions" json:"versions"`

	CreatedAt time.Time `bson:"createdAt" json:"created_at"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updated_at"`
}

type DocumentVersion struct {
	VersionNo       int        `bson:"versionNo" json:"version_no"`
	FileName        string     `bson:"fileName" json:"file_name"`
	MimeType        string     `bson:"mimeType" json:"mime_type"`
	FileSize        int64      `bson:"fileSize" json:"file_size"`
	ObjectKey       string     `bson:"objectKey,omitempty" json:"object_key,omitempty"`
	UploadedAt      time.Time  `bson:"uploadedAt" json:"uploaded_at"`
	UploadedBy      string     `bson:"uploadedBy" json:"uploaded_by"`
	Status          string     `bson:"status" json:"status"`
	RejectionReason string     `bson:"rejectionReason,omitempty" json:"rejection_reason,omitempty"`
	ReviewedAt      *time.Time `bson:"reviewedAt,omitempty" json:"reviewed_at,omitempty"`
	ReviewedBy      string     `bson:"reviewedBy,omitempty" json:"reviewed_by,omitempty"`
}

// LatestVersion returns the highest-numbered version, or nil when the entry
// has no version history yet.
func (e *DocumentChecklistEntry) LatestVersion() *DocumentVersion {
	if len(e.Versions) == 0 {
		return nil
	}
	return &e.Versions[len(e.Versions)-1]
}
