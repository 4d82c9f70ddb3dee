package intake

import (
	"context"
	"sync"

	"caseflow-service/internal/app/contracts"
	"caseflow-service/internal/app/models"
)

type IntakeLocalRepository struct {
	mu       sync.RWMutex
	fundApps map[string]models.IntakeFundApplication
	interims map[string]models.IntakeInterimSummary
}

func NewIntakeLocalRepository() contracts.IntakeRepository {
	return &IntakeLocalRepository{
		fundApps: make(map[string]models.IntakeFundApplication),
		interims: make(map[string]models.IntakeInterimSummary),
	}
}

func (r *IntakeLocalRepository) FindFundApplication(ctx context.Context, caseID string) (*models.IntakeFundApplication, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	fundApp, ok := r.fundApps[caseID]
	if !ok {
		return nil, nil
	}
	clone := cloneFundApplication(fundApp)
	return &clone, nil
}

func (r *IntakeLocalRepository) FindInterimSummary(ctx context.Context, caseID string) (*models.IntakeInterimSummary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	summary, ok := r.interims[caseID]
	if !ok {
		return nil, nil
	}
	clone := cloneInterimSummary(summary)
	return &clone, nil
}

func (r *IntakeLocalRepository) SaveFundApplication(ctx context.Context, fundApp *models.IntakeFundApplication) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.fundApps[fundApp.CaseID] = cloneFundApplication(*fundApp)
	return nil
}

func (r *IntakeLocalRepository) SaveInterimSummary(ctx context.Context, summary *models.IntakeInterimSummary) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.interims[summary.CaseID] = cloneInterimSummary(*summary)
	return nil
}

func cloneSection(section models.IntakeSection) models.IntakeSection {
	if section == nil {
		return nil
	}
	clone := make(models.IntakeSection, len(section))
	for key, value := range section {
		clone[key] = value
	}
	return clone
}

func cloneFundApplication(fundApp models.IntakeFundApplication) models.IntakeFundApplication {
	clone := fundApp
	clone.PatientDetails = cloneSection(fundApp.PatientDetails)
	clone.FamilyIncome = cloneSection(fundApp.FamilyIncome)
	clone.HospitalDetails = cloneSection(fundApp.HospitalDetails)
	clone.TreatmentDetails = cloneSection(fundApp.TreatmentDetails)
	clone.CostBreakdown = cloneSection(fundApp.CostBreakdown)
	clone.FundingSources = cloneSection(fundApp.FundingSources)
	clone.Declarations = cloneSection(fundApp.Declarations)
	return clone
}

func cloneInterimSummary(summary models.IntakeInterimSummary) models.IntakeInterimSummary {
	clone := summary
	clone.AdmissionDetails = cloneSection(summary.AdmissionDetails)
	clone.Diagnosis = cloneSection(summary.Diagnosis)
	clone.ClinicalFindings = cloneSection(summary.ClinicalFindings)
	clone.Investigations = cloneSection(summary.Investigations)
	clone.TreatmentGiven = cloneSection(summary.TreatmentGiven)
	clone.CurrentStatus = cloneSection(summary.CurrentStatus)
	clone.Prognosis = cloneSection(summary.Prognosis)
	clone.EstimatedStay = cloneSection(summary.EstimatedStay)
	clone.DoctorRemarks = cloneSection(summary.DoctorRemarks)
	return clone
}
