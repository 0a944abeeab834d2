package upload

import (
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate_AllowedExtensions(t *testing.T) {
	s := NewStorage(t.TempDir(), 10)

	for _, name := range []string{"cv.pdf", "cv.DOC", "cv.docx", "scan.jpg", "scan.JPEG", "scan.png"} {
		err := s.Validate(&multipart.FileHeader{Filename: name, Size: 1024})
		assert.NoError(t, err, name)
	}
}

func TestValidate_RejectsExtension(t *testing.T) {
	s := NewStorage(t.TempDir(), 10)

	err := s.Validate(&multipart.FileHeader{Filename: "malware.exe", Size: 1024})

	assert.EqualError(t, err, "only PDF, DOC, DOCX, JPEG, JPG, PNG files are allowed")
}

func TestValidate_RejectsOversize(t *testing.T) {
	s := NewStorage(t.TempDir(), 10)

	err := s.Validate(&multipart.FileHeader{Filename: "cv.pdf", Size: 11 * 1024 * 1024})

	assert.EqualError(t, err, "file exceeds the 10MB size limit")
}

func TestSave_MemoryFallback(t *testing.T) {
	// An uncreatable directory flips storage into placeholder mode.
	s := NewStorage("/proc/nonexistent/uploads", 10)

	path, err := s.Save(&multipart.FileHeader{Filename: "cv.pdf"})

	assert.NoError(t, err)
	assert.Contains(t, path, "memory://cv-")
	assert.Contains(t, path, ".pdf")
}
