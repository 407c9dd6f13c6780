package document

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

//go:generate mockgen -source=document_storage.go -destination=mock/document_storage_mock.go -package=mock

// Storage menyimpan isi file dan mengembalikan path opaque yang dicatat di DB.
// Path hasil Save tidak boleh diparse oleh layer lain.
type Storage interface {
	Save(ctx context.Context, recordID, slot, ext string, content io.Reader) (string, error)
}

type localStorage struct {
	baseDir string
}

func NewLocalStorage(baseDir string) Storage {
	return &localStorage{baseDir: baseDir}
}

// Save menulis ke <base>/<recordId>/<slot>_<unixnano>.<ext>. Timestamp di nama
// file membuat re-upload tidak menimpa file lama sebelum path baru tercatat.
func (s *localStorage) Save(ctx context.Context, recordID, slot, ext string, content io.Reader) (string, error) {
	dir := filepath.Join(s.baseDir, recordID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create storage dir: %w", err)
	}

	name := fmt.Sprintf("%s_%d%s", slot, time.Now().UnixNano(), ext)
	fullPath := filepath.Join(dir, name)

	f, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("create storage file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, content); err != nil {
		os.Remove(fullPath)
		return "", fmt.Errorf("write storage file: %w", err)
	}

	return filepath.ToSlash(filepath.Join(recordID, name)), nil
}
