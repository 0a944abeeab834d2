package upload

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// allowedExtensions whitelists resume file types: documents plus image
// scans. Lookup key is the lowercase extension including the dot.
var allowedExtensions = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// Storage validates and persists uploaded files on local disk. When
// the directory cannot be created (read-only or serverless runtime)
// files are accepted but recorded with a memory:// placeholder path,
// matching the previous backend's behavior.
type Storage struct {
	Dir         string
	MaxFileSize int64 // bytes
	diskReady   bool
}

func NewStorage(dir string, maxFileSizeMB int) *Storage {
	s := &Storage{
		Dir:         dir,
		MaxFileSize: int64(maxFileSizeMB) * 1024 * 1024,
	}
	if err := os.MkdirAll(dir, 0o755); err == nil {
		s.diskReady = true
	}
	return s
}

// Validate rejects files with a disallowed extension or over the size
// limit before any bytes are read.
func (s *Storage) Validate(file *multipart.FileHeader) error {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExtensions[ext] {
		return fmt.Errorf("only PDF, DOC, DOCX, JPEG, JPG, PNG files are allowed")
	}
	if file.Size > s.MaxFileSize {
		return fmt.Errorf("file exceeds the %dMB size limit", s.MaxFileSize/(1024*1024))
	}
	return nil
}

// Save writes the file under a collision-free name and returns the
// stored path.
func (s *Storage) Save(file *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	name := strings.TrimSuffix(filepath.Base(file.Filename), filepath.Ext(file.Filename))
	stored := fmt.Sprintf("%s-%s%s", name, uuid.NewString(), ext)

	if !s.diskReady {
		return "memory://" + stored, nil
	}

	dst := filepath.Join(s.Dir, stored)
	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return "", err
	}
	defer out.Close()

	if _, err := out.ReadFrom(src); err != nil {
		os.Remove(dst)
		return "", err
	}
	return dst, nil
}
