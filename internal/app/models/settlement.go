package models

import "time"

// SettlementRecord holds the post-approval financials for a case. Amounts
// are pointers because "not yet entered" and zero mean different things to
// the closure gate.
type SettlementRecord struct {
	ID              string   `bson:"_id,omitempty" json:"id"`
	CaseID          string   `bson:"caseId" json:"case_id"`
	ReferenceAmount *float64 `bson:"referenceAmount,omitempty" json:"reference_amount,omitempty"`
	FinalBillAmount *float64 `bson:"finalBillAmount,omitempty" json:"final_bill_amount,omitempty"`
	NfiPaidAmount   *float64 `bson:"nfiPaidAmount,omitempty" json:"nfi_paid_amount,omitempty"`
	OtherPaidAmount *float64 `bson:"otherPaidAmount,omitempty" json:"other_paid_amount,omitempty"`

	VariancePct  *float64 `bson:"variancePct,omitempty" json:"variance_pct,omitempty"`
	VarianceFlag bool     `bson:"varianceFlag" json:"variance_flag"`

	DirectorReview *DirectorReview `bson:"directorReview,omitempty" json:"director_review,omitempty"`

	ClosedAt  *time.Time `bson:"closedAt,omitempty" json:"closed_at,omitempty"`
	ClosedBy  string     `bson:"closedBy,omitempty" json:"closed_by,omitempty"`
	UpdatedAt time.Time  `bson:"updatedAt" json:"updated_at"`
}

type DirectorReview struct {
	Decision  string    `bson:"decision" json:"decision"`
	Comments  string    `bson:"comments" json:"comments"`
	DecidedBy string    `bson:"decidedBy" json:"decided_by"`
	DecidedAt time.Time `bson:"decidedAt" json:"decided_at"`
}
