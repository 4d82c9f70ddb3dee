package models

import "time"

// DoctorReview is the single clinical sign-off gating committee submission.
type DoctorReview struct {
	ID               string     `bson:"_id,omitempty" json:"id"`
	CaseID           string     `bson:"caseId" json:"case_id"`
	AssignedToUserID string     `bson:"assignedToUserId,omitempty" json:"assigned_to_user_id,omitempty"`
	AssignedToName   string     `bson:"assignedToName,omitempty" json:"assigned_to_name,omitempty"`
	AssignedAt       *time.Time `bson:"assignedAt,omitempty" json:"assigned_at,omitempty"`
	SubmittedAt      *time.Time `bson:"submittedAt,omitempty" json:"submitted_at,omitempty"`
	Outcome          string     `bson:"outcome,omitempty" json:"outcome,omitempty"`
	Comments         string     `bson:"comments,omitempty" json:"comments,omitempty"`

	// Snapshot of the submit-readiness result captured when the review was
	// submitted, for the committee's context.
	GatingSnapshot *ReviewGatingSnapshot `bson:"gatingSnapshot,omitempty" json:"gating_snapshot,omitempty"`
}

type ReviewGatingSnapshot struct {
	CanSubmit        bool      `bson:"canSubmit" json:"can_submit"`
	MissingSections  []string  `bson:"missingSections" json:"missing_sections"`
	MissingDocuments []string  `bson:"missingDocuments" json:"missing_documents"`
	CapturedAt       time.Time `bson:"capturedAt" json:"captured_at"`
}

func (r *DoctorReview) IsAssigned() bool {
	return r != nil && r.AssignedToUserID != ""
}

func (r *DoctorReview) IsSubmitted() bool {
	return r != nil && r.SubmittedAt != nil
}
