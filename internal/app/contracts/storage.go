package contracts

import (
	"context"
	"io"
)

// FileStorage stores uploaded document payloads. The checklist engine only
// records the returned object key; it never reads files back.
type FileStorage interface {
	UploadFile(ctx context.Context, reader io.Reader, objectKey, contentType string, size int64) (string, error)
}
