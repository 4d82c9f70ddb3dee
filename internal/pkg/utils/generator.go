package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return uuid.NewString()
}

func GenerateSessionID() string {
	return uuid.NewString()
}

// GenerateCaseRef builds a reference like NFI-2026-5F3A2B1C. Uniqueness is
// re-checked against storage by the caller.
func GenerateCaseRef(prefix string) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("%s-%d-%s", prefix, time.Now().Year(), suffix)
}

// GenerateDocumentObjectKey builds the storage key for one uploaded version.
func GenerateDocumentObjectKey(caseID, docID string, versionNo int, fileName string) string {
	return fmt.Sprintf("cases/%s/%s/v%d/%s", caseID, docID, versionNo, fileName)
}
