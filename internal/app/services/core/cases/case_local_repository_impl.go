package cases

import (
	"context"
	"sort"
	"sync"

	"caseflow-service/internal/app/contracts"
	"caseflow-service/internal/app/models"
)

type CaseLocalRepository struct {
	mu    sync.RWMutex
	cases map[string]models.Case
}

func NewCaseLocalRepository() contracts.CaseRepository {
	return &CaseLocalRepository{
		cases: make(map[string]models.Case),
	}
}

func (r *CaseLocalRepository) CreateCase(ctx context.Context, caseModel *models.Case) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.cases[caseModel.ID] = cloneCase(*caseModel)
	return caseModel.ID, nil
}

func (r *CaseLocalRepository) FindByID(ctx context.Context, caseID string) (*models.Case, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	caseModel, ok := r.cases[caseID]
	if !ok {
		return nil, nil
	}
	clone := cloneCase(caseModel)
	return &clone, nil
}

func (r *CaseLocalRepository) FindByCaseRef(ctx context.Context, caseRef string) (*models.Case, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, caseModel := range r.cases {
		if caseModel.CaseRef == caseRef {
			clone := cloneCase(caseModel)
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *CaseLocalRepository) FindCases(ctx context.Context, status, hospitalID string) ([]models.Case, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []models.Case
	for _, caseModel := range r.cases {
		if status != "" && caseModel.CaseStatus != status {
			continue
		}
		if hospitalID != "" && caseModel.HospitalID != hospitalID {
			continue
		}
		result = append(result, cloneCase(caseModel))
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].LastActionAt.After(result[j].LastActionAt)
	})
	return result, nil
}

func (r *CaseLocalRepository) UpdateCase(ctx context.Context, caseModel *models.Case) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.cases[caseModel.ID] = cloneCase(*caseModel)
	return nil
}

func cloneCase(caseModel models.Case) models.Case {
	clone := caseModel
	if caseModel.ClosureDate != nil {
		at := *caseModel.ClosureDate
		clone.ClosureDate = &at
	}
	if caseModel.CommitteeDecision != nil {
		decision := *caseModel.CommitteeDecision
		if caseModel.CommitteeDecision.ApprovedAmount != nil {
			amount := *caseModel.CommitteeDecision.ApprovedAmount
			decision.ApprovedAmount = &amount
		}
		clone.CommitteeDecision = &decision
	}
	return clone
}
