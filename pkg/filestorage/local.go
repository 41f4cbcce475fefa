package filestorage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

type FileStorage interface {
	Save(file *multipart.FileHeader, subdir string) (string, error)
	Remove(relativePath string) error
}

type localStorage struct {
	baseDir string
}

func NewLocalStorage(baseDir string) (FileStorage, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("kon uploadmap niet aanmaken: %w", err)
	}
	return &localStorage{baseDir: baseDir}, nil
}

func (s *localStorage) Save(file *multipart.FileHeader, subdir string) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("kon upload niet openen: %w", err)
	}
	defer src.Close()

	dir := filepath.Join(s.baseDir, subdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("kon submap niet aanmaken: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	name := uuid.New().String() + ext
	dstPath := filepath.Join(dir, name)

	dst, err := os.Create(dstPath)
	if err != nil {
		return "", fmt.Errorf("kon bestand niet aanmaken: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("kon bestand niet wegschrijven: %w", err)
	}

	return filepath.Join(subdir, name), nil
}

func (s *localStorage) Remove(relativePath string) error {
	full := filepath.Join(s.baseDir, filepath.Clean(relativePath))
	if !strings.HasPrefix(full, s.baseDir) {
		return fmt.Errorf("pad buiten de opslagmap: %s", relativePath)
	}
	return os.Remove(full)
}
