package models

import (
	"caseflow-service/internal/pkg/constvars"
	"time"
)

type Case struct {
	ID           string     `bson:"_id,omitempty" json:"id"`
	CaseRef      string     `bson:"caseRef" json:"case_ref"`
	ProcessType  string     `bson:"processType" json:"process_type"`
	CaseStatus   string     `bson:"caseStatus" json:"case_status"`
	HospitalID   string     `bson:"hospitalId" json:"hospital_id"`
	HospitalName string     `bson:"hospitalName" json:"hospital_name"`
	PatientName  string     `bson:"patientName" json:"patient_name"`
	IntakeDate   time.Time  `bson:"intakeDate" json:"intake_date"`
	UpdatedAt    time.Time  `bson:"updatedAt" json:"updated_at"`
	LastActionAt time.Time  `bson:"lastActionAt" json:"last_action_at"`
	ClosureDate  *time.Time `bson:"closureDate,omitempty" json:"closure_date,omitempty"`
	CreatedBy    string     `bson:"createdBy" json:"created_by"`

	ReturnReason  string `bson:"returnReason,omitempty" json:"return_reason,omitempty"`
	ReturnComment string `bson:"returnComment,omitempty" json:"return_comment,omitempty"`

	CommitteeDecision *CommitteeDecision `bson:"committeeDecision,omitempty" json:"committee_decision,omitempty"`
}

type CommitteeDecision struct {
	Outcome        string    `bson:"outcome" json:"outcome"`
	ApprovedAmount *float64  `bson:"approvedAmount,omitempty" json:"approved_amount,omitempty"`
	Comments       string    `bson:"comments" json:"comments"`
	DecidedBy      string    `bson:"decidedBy" json:"decided_by"`
	DecidedAt      time.Time `bson:"decidedAt" json:"decided_at"`
}

func (c *Case) IsTerminal() bool {
	return c.CaseStatus == constvars.CaseStatusRejected || c.CaseStatus == constvars.CaseStatusClosed
}
