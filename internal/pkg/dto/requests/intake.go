package requests

// SaveIntake merges the supplied sections into the stored intake documents.
// Either document may be omitted; within a document, only the supplied
// sections are touched and within a section, only the supplied fields.
type SaveIntake struct {
	FundApplication *FundApplicationPatch `json:"fund_application,omitempty"`
	InterimSummary  *InterimSummaryPatch  `json:"interim_summary,omitempty"`
}

type FundApplicationPatch struct {
	PatientDetails   map[string]string `json:"patient_details,omitempty"`
	FamilyIncome     map[string]string `json:"family_income,omitempty"`
	HospitalDetails  map[string]string `json:"hospital_details,omitempty"`
	TreatmentDetails map[string]string `json:"treatment_details,omitempty"`
	CostBreakdown    map[string]string `json:"cost_breakdown,omitempty"`
	FundingSources   map[string]string `json:"funding_sources,omitempty"`
	Declarations     map[string]string `json:"declarations,omitempty"`
}

type InterimSummaryPatch struct {
	AdmissionDetails map[string]string `json:"admission_details,omitempty"`
	Diagnosis        map[string]string `json:"diagnosis,omitempty"`
	ClinicalFindings map[string]string `json:"clinical_findings,omitempty"`
	Investigations   map[string]string `json:"investigations,omitempty"`
	TreatmentGiven   map[string]string `json:"treatment_given,omitempty"`
	CurrentStatus    map[string]string `json:"current_status,omitempty"`
	Prognosis        map[string]string `json:"prognosis,omitempty"`
	EstimatedStay    map[string]string `json:"estimated_stay,omitempty"`
	DoctorRemarks    map[string]string `json:"doctor_remarks,omitempty"`
}
