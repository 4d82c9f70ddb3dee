package settlements

import (
	"context"
	"sync"

	"caseflow-service/internal/app/contracts"
	"caseflow-service/internal/app/models"
)

type SettlementLocalRepository struct {
	mu      sync.RWMutex
	records map[string]models.SettlementRecord
}

func NewSettlementLocalRepository() contracts.SettlementRepository {
	return &SettlementLocalRepository{
		records: make(map[string]models.SettlementRecord),
	}
}

func (r *SettlementLocalRepository) FindByCaseID(ctx context.Context, caseID string) (*models.SettlementRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.records[caseID]
	if !ok {
		return nil, nil
	}
	clone := cloneRecord(record)
	return &clone, nil
}

func (r *SettlementLocalRepository) SaveSettlement(ctx context.Context, record *models.SettlementRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records[record.CaseID] = cloneRecord(*record)
	return nil
}

func cloneFloat(value *float64) *float64 {
	if value == nil {
		return nil
	}
	v := *value
	return &v
}

func cloneRecord(record models.SettlementRecord) models.SettlementRecord {
	clone := record
	clone.ReferenceAmount = cloneFloat(record.ReferenceAmount)
	clone.FinalBillAmount = cloneFloat(record.FinalBillAmount)
	clone.NfiPaidAmount = cloneFloat(record.NfiPaidAmount)
	clone.OtherPaidAmount = cloneFloat(record.OtherPaidAmount)
	clone.VariancePct = cloneFloat(record.VariancePct)
	if record.DirectorReview != nil {
		review := *record.DirectorReview
		clone.DirectorReview = &review
	}
	if record.ClosedAt != nil {
		at := *record.ClosedAt
		clone.ClosedAt = &at
	}
	return clone
}
