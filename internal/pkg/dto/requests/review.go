package requests

type AssignDoctorReviewer struct {
	ReviewerID string `json:"reviewer_id" validate:"required"`
}

type SubmitDoctorReview struct {
	Outcome  string `json:"outcome" validate:"required,oneof=Approved Approved_With_Comments Returned"`
	Comments string `json:"comments,omitempty"`
}
