package audit

import (
	"context"
	"sort"
	"sync"

	"caseflow-service/internal/app/contracts"
	"caseflow-service/internal/app/models"
)

// AuditLocalRepository is the in-memory provider used when the service runs
// without MongoDB. Events are kept append-only for the process lifetime.
type AuditLocalRepository struct {
	mu     sync.RWMutex
	events []models.AuditEvent
}

func NewAuditLocalRepository() contracts.AuditRepository {
	return &AuditLocalRepository{}
}

func (r *AuditLocalRepository) InsertEvent(ctx context.Context, event *models.AuditEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, *event)
	return nil
}

func (r *AuditLocalRepository) FindByCaseID(ctx context.Context, caseID string) ([]models.AuditEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var events []models.AuditEvent
	for _, event := range r.events {
		if event.CaseID == caseID {
			events = append(events, event)
		}
	}
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Timestamp.Before(events[j].Timestamp)
	})
	return events, nil
}
