package requests

// SaveSettlement is a partial patch; only non-nil amounts are applied.
type SaveSettlement struct {
	ReferenceAmount *float64 `json:"reference_amount,omitempty" validate:"omitempty,gte=0"`
	FinalBillAmount *float64 `json:"final_bill_amount,omitempty" validate:"omitempty,gte=0"`
	NfiPaidAmount   *float64 `json:"nfi_paid_amount,omitempty" validate:"omitempty,gte=0"`
	OtherPaidAmount *float64 `json:"other_paid_amount,omitempty" validate:"omitempty,gte=0"`
}

type SubmitDirectorReview struct {
	Decision string `json:"decision" validate:"required,oneof=Approved Returned"`
	Comments string `json:"comments,omitempty"`
}
