package storage

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemoryStorage(t *testing.T) {
	ctx := context.Background()

	t.Run("upload stores the payload under the object key", func(t *testing.T) {
		store := NewMemoryStorage().(*memoryStorage)

		key, err := store.UploadFile(ctx, strings.NewReader("referral letter body"), "cases/c1/d1/v1/referral.pdf", "application/pdf", 20)
		assert.NoError(t, err)
		assert.Equal(t, "cases/c1/d1/v1/referral.pdf", key)
		assert.Equal(t, int64(20), store.ObjectSize(key))
	})

	t.Run("a later version does not overwrite the earlier key", func(t *testing.T) {
		store := NewMemoryStorage().(*memoryStorage)

		_, err := store.UploadFile(ctx, strings.NewReader("v1"), "cases/c1/d1/v1/scan.pdf", "application/pdf", 2)
		assert.NoError(t, err)
		_, err = store.UploadFile(ctx, strings.NewReader("v2-longer"), "cases/c1/d1/v2/scan.pdf", "application/pdf", 9)
		assert.NoError(t, err)

		assert.Equal(t, int64(2), store.ObjectSize("cases/c1/d1/v1/scan.pdf"))
		assert.Equal(t, int64(9), store.ObjectSize("cases/c1/d1/v2/scan.pdf"))
		assert.Equal(t, int64(-1), store.ObjectSize("cases/c1/d1/v3/scan.pdf"))
	})
}
