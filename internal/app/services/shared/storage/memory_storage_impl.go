package storage

import (
	"bytes"
	"context"
	"io"
	"sync"

	"caseflow-service/internal/app/contracts"
)

// memoryStorage keeps uploaded payloads in-process. It backs the local
// provider so the service runs end to end without an object store.
type memoryStorage struct {
	mu      sync.RWMutex
	objects map[string][]byte
}

func NewMemoryStorage() contracts.FileStorage {
	return &memoryStorage{
		objects: make(map[string][]byte),
	}
}

func (m *memoryStorage) UploadFile(ctx context.Context, reader io.Reader, objectKey, contentType string, size int64) (string, error) {
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, reader); err != nil {
		return "", err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[objectKey] = buf.Bytes()
	return objectKey, nil
}

// ObjectSize reports the stored payload length, -1 when the key is absent.
func (m *memoryStorage) ObjectSize(objectKey string) int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.objects[objectKey]
	if !ok {
		return -1
	}
	return int64(len(data))
}
