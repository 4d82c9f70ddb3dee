package checklist

import (
	"context"
	"sort"
	"sync"

	"caseflow-service/internal/app/contracts"
	"caseflow-service/internal/app/models"
)

// ChecklistLocalRepository is the in-memory provider used for local demo
// mode and tests. Copies go in and out so callers never share state with
// the store.
type ChecklistLocalRepository struct {
	mu      sync.RWMutex
	entries map[string]models.DocumentChecklistEntry
}

func NewChecklistLocalRepository() contracts.ChecklistRepository {
	return &ChecklistLocalRepository{
		entries: make(map[string]models.DocumentChecklistEntry),
	}
}

func (r *ChecklistLocalRepository) FindEntriesByCaseID(ctx context.Context, caseID string) ([]models.DocumentChecklistEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []models.DocumentChecklistEntry
	for _, entry := range r.entries {
		if entry.CaseID == caseID {
			result = append(result, cloneEntry(entry))
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].DocType < result[j].DocType
		}
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}

func (r *ChecklistLocalRepository) FindEntryByID(ctx context.Context, docID string) (*models.DocumentChecklistEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[docID]
	if !ok {
		return nil, nil
	}
	clone := cloneEntry(entry)
	return &clone, nil
}

func (r *ChecklistLocalRepository) InsertEntries(ctx context.Context, entries []models.DocumentChecklistEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, entry := range entries {
		r.entries[entry.ID] = cloneEntry(entry)
	}
	return nil
}

func (r *ChecklistLocalRepository) UpdateEntry(ctx context.Context, entry *models.DocumentChecklistEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[entry.ID] = cloneEntry(*entry)
	return nil
}

func cloneEntry(entry models.DocumentChecklistEntry) models.DocumentChecklistEntry {
	clone := entry
	clone.Versions = append([]models.DocumentVersion(nil), entry.Versions...)
	if entry.UploadedAt != nil {
		at := *entry.UploadedAt
		clone.UploadedAt = &at
	}
	return clone
}
