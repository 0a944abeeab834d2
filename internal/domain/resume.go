package domain

import (
	"context"
	"mime/multipart"
	"time"
)

const ResumeStatusUploaded = "uploaded"

type Resume struct {
	ID         int64     `json:"id"`
	HRID       int64     `json:"hr_id"`
	Filename   string    `json:"filename"`
	FilePath   string    `json:"file_path"`
	Status     string    `json:"status"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// UploadReport accounts per-file outcomes of a batch upload.
type UploadReport struct {
	Uploaded []Resume       `json:"uploaded"`
	Failed   []FailedUpload `json:"failed"`
}

type FailedUpload struct {
	Filename string `json:"filename"`
	Error    string `json:"error"`
}

type ResumeRepository interface {
	Create(ctx context.Context, resume *Resume) error
	FetchByHR(ctx context.Context, hrID int64) ([]Resume, error)
}

type ResumeUsecase interface {
	StoreResumes(ctx context.Context, hrID int64, files []*multipart.FileHeader) (*UploadReport, error)
	ListResumes(ctx context.Context, hrID int64) ([]Resume, error)
}
