package requests

import "io"

// UploadDocument carries one file upload for a checklist entry. Reader is
// the multipart file stream; the controller owns closing it.
type UploadDocument struct {
	CaseID   string
	DocID    string
	FileName string
	MimeType string
	FileSize int64
	Reader   io.Reader
}

type UpdateDocumentStatus struct {
	DocID  string `json:"-"`
	Status string `json:"status" validate:"required,oneof=Missing Uploaded Verified Rejected Not_Applicable"`
	Notes  string `json:"notes,omitempty"`
}
