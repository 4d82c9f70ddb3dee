package requests

type CreateCase struct {
	ProcessType  string `json:"process_type" validate:"required,oneof=BRC CIP ONC GEN"`
	HospitalID   string `json:"hospital_id" validate:"required"`
	HospitalName string `json:"hospital_name" validate:"required"`
	PatientName  string `json:"patient_name" validate:"required"`
}

type ListCases struct {
	Status     string `json:"status"`
	HospitalID string `json:"hospital_id"`
}

type ReturnToHospital struct {
	Reason  string `json:"reason" validate:"required"`
	Comment string `json:"comment" validate:"required"`
}

type SubmitCommitteeDecision struct {
	Outcome        string   `json:"outcome" validate:"required,oneof=Approved Rejected Need_More_Info Pending Deferred"`
	ApprovedAmount *float64 `json:"approved_amount,omitempty" validate:"omitempty,gt=0"`
	Comments       string   `json:"comments" validate:"required"`
}
