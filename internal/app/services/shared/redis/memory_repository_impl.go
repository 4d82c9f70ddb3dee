package redis

import (
	"context"
	"sync"
	"time"

	"caseflow-service/internal/app/contracts"
	"caseflow-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

// memoryRepository backs sessions in local demo mode so a redis server is
// not required to run the service.
type memoryRepository struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

func NewMemoryRepository() contracts.RedisRepository {
	return &memoryRepository{
		entries: make(map[string]memoryEntry),
	}
}

func (r *memoryRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	entry := memoryEntry{value: string(jsonValue)}
	if exp > 0 {
		entry.expiresAt = time.Now().Add(exp)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[key] = entry
	return nil
}

func (r *memoryRepository) Get(ctx context.Context, key string) (string, error) {
	r.mu.RLock()
	entry, ok := r.entries[key]
	r.mu.RUnlock()

	if !ok {
		return "", nil
	}
	if !entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt) {
		r.mu.Lock()
		delete(r.entries, key)
		r.mu.Unlock()
		return "", nil
	}
	return entry.value, nil
}

func (r *memoryRepository) Delete(ctx context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.entries, key)
	return nil
}
