package intake

import (
	"caseflow-service/internal/app/models"
	"caseflow-service/internal/pkg/dto/requests"
)

// MergeSection overlays patch fields onto the stored section key by key.
// An empty string in the patch clears the field rather than deleting it,
// which can flip a section back to incomplete.
func MergeSection(section models.IntakeSection, patch map[string]string) models.IntakeSection {
	if patch == nil {
		return section
	}
	if section == nil {
		section = make(models.IntakeSection, len(patch))
	}
	for key, value := range patch {
		section[key] = value
	}
	return section
}

func ApplyFundApplicationPatch(fundApp *models.IntakeFundApplication, patch *requests.FundApplicationPatch) {
	if patch == nil {
		return
	}
	fundApp.PatientDetails = MergeSection(fundApp.PatientDetails, patch.PatientDetails)
	fundApp.FamilyIncome = MergeSection(fundApp.FamilyIncome, patch.FamilyIncome)
	fundApp.HospitalDetails = MergeSection(fundApp.HospitalDetails, patch.HospitalDetails)
	fundApp.TreatmentDetails = MergeSection(fundApp.TreatmentDetails, patch.TreatmentDetails)
	fundApp.CostBreakdown = MergeSection(fundApp.CostBreakdown, patch.CostBreakdown)
	fundApp.FundingSources = MergeSection(fundApp.FundingSources, patch.FundingSources)
	fundApp.Declarations = MergeSection(fundApp.Declarations, patch.Declarations)
}

func ApplyInterimSummaryPatch(summary *models.IntakeInterimSummary, patch *requests.InterimSummaryPatch) {
	if patch == nil {
		return
	}
	summary.AdmissionDetails = MergeSection(summary.AdmissionDetails, patch.AdmissionDetails)
	summary.Diagnosis = MergeSection(summary.Diagnosis, patch.Diagnosis)
	summary.ClinicalFindings = MergeSection(summary.ClinicalFindings, patch.ClinicalFindings)
	summary.Investigations = MergeSection(summary.Investigations, patch.Investigations)
	summary.TreatmentGiven = MergeSection(summary.TreatmentGiven, patch.TreatmentGiven)
	summary.CurrentStatus = MergeSection(summary.CurrentStatus, patch.CurrentStatus)
	summary.Prognosis = MergeSection(summary.Prognosis, patch.Prognosis)
	summary.EstimatedStay = MergeSection(summary.EstimatedStay, patch.EstimatedStay)
	summary.DoctorRemarks = MergeSection(summary.DoctorRemarks, patch.DoctorRemarks)
}
