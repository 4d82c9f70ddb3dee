package models

import "time"

// IntakeSection is an open-ended bag of named domain fields. A section is
// complete when at least one field holds a non-empty value; field-level
// validation is deliberately not applied here.
type IntakeSection map[string]string

type NamedSection struct {
	Name    string
	Section IntakeSection
}

// IntakeFundApplication has the fixed seven fund-application sections.
type IntakeFundApplication struct {
	ID               string        `bson:"_id,omitempty" json:"id"`
	CaseID           string        `bson:"caseId" json:"case_id"`
	PatientDetails   IntakeSection `bson:"patientDetails" json:"patient_details"`
	FamilyIncome     IntakeSection `bson:"familyIncome" json:"family_income"`
	HospitalDetails  IntakeSection `bson:"hospitalDetails" json:"hospital_details"`
	TreatmentDetails IntakeSection `bson:"treatmentDetails" json:"treatment_details"`
	CostBreakdown    IntakeSection `bson:"costBreakdown" json:"cost_breakdown"`
	FundingSources   IntakeSection `bson:"fundingSources" json:"funding_sources"`
	Declarations     IntakeSection `bson:"declarations" json:"declarations"`
	UpdatedAt        time.Time     `bson:"updatedAt" json:"updated_at"`
}

func (f *IntakeFundApplication) Sections() []NamedSection {
	return []NamedSection{
		{"Patient Details", f.PatientDetails},
		{"Family Income", f.FamilyIncome},
		{"Hospital Details", f.HospitalDetails},
		{"Treatment Details", f.TreatmentDetails},
		{"Cost Breakdown", f.CostBreakdown},
		{"Funding Sources", f.FundingSources},
		{"Declarations", f.Declarations},
	}
}

// IntakeInterimSummary has the fixed nine interim medical summary sections.
type IntakeInterimSummary struct {
	ID               string        `bson:"_id,omitempty" json:"id"`
	CaseID           string        `bson:"caseId" json:"case_id"`
	AdmissionDetails IntakeSection `bson:"admissionDetails" json:"admission_details"`
	Diagnosis        IntakeSection `bson:"diagnosis" json:"diagnosis"`
	ClinicalFindings IntakeSection `bson:"clinicalFindings" json:"clinical_findings"`
	Investigations   IntakeSection `bson:"investigations" json:"investigations"`
	TreatmentGiven   IntakeSection `bson:"treatmentGiven" json:"treatment_given"`
	CurrentStatus    IntakeSection `bson:"currentStatus" json:"current_status"`
	Prognosis        IntakeSection `bson:"prognosis" json:"prognosis"`
	EstimatedStay    IntakeSection `bson:"estimatedStay" json:"estimated_stay"`
	DoctorRemarks    IntakeSection `bson:"doctorRemarks" json:"doctor_remarks"`
	UpdatedAt        time.Time     `bson:"updatedAt" json:"updated_at"`
}

func (s *IntakeInterimSummary) Sections() []NamedSection {
	return []NamedSection{
		{"Admission Details", s.AdmissionDetails},
		{"Diagnosis", s.Diagnosis},
		{"Clinical Findings", s.ClinicalFindings},
		{"Investigations", s.Investigations},
		{"Treatment Given", s.TreatmentGiven},
		{"Current Status", s.CurrentStatus},
		{"Prognosis", s.Prognosis},
		{"Estimated Stay", s.EstimatedStay},
		{"Doctor Remarks", s.DoctorRemarks},
	}
}
