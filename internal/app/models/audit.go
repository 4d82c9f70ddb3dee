package models

import "time"

// AuditEvent is an append-only log entry written alongside every
// state-changing operation. It is never a decision input.
type AuditEvent struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	CaseID    string    `bson:"caseId" json:"case_id"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
	UserID    string    `bson:"userId" json:"user_id"`
	UserRole  string    `bson:"userRole" json:"user_role"`
	Action    string    `bson:"action" json:"action"`
	Notes     string    `bson:"notes,omitempty" json:"notes,omitempty"`
}
