package document_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/TrueLearn-Academy/Emp-agent/internal/document"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestLocalStorage_Save(t *testing.T) {
	ctx := context.Background()
	baseDir := t.TempDir()
	storage := document.NewLocalStorage(baseDir)
	recordID := uuid.New().String()

	t.Run("writes file under record directory", func(t *testing.T) {
		path, err := storage.Save(ctx, recordID, document.SlotAadhaar, ".pdf",
			strings.NewReader("%PDF-1.7 scan"))

		assert.NoError(t, err)
		assert.True(t, strings.HasPrefix(path, recordID+"/"+document.SlotAadhaar+"_"))
		assert.True(t, strings.HasSuffix(path, ".pdf"))

		content, err := os.ReadFile(filepath.Join(baseDir, filepath.FromSlash(path)))
		assert.NoError(t, err)
		assert.Equal(t, "%PDF-1.7 scan", string(content))
	})

	t.Run("re-upload keeps both files on disk", func(t *testing.T) {
		first, err := storage.Save(ctx, recordID, document.SlotPAN, ".jpg",
			strings.NewReader("first"))
		assert.NoError(t, err)

		second, err := storage.Save(ctx, recordID, document.SlotPAN, ".jpg",
			strings.NewReader("second"))
		assert.NoError(t, err)

		assert.NotEqual(t, first, second)
		_, err = os.Stat(filepath.Join(baseDir, filepath.FromSlash(first)))
		assert.NoError(t, err)
	})
}
