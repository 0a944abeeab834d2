package usecase

import (
	"context"
	"mime/multipart"

	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"
	"go-jobportal-backend/pkg/upload"
)

type resumeUsecase struct {
	resumeRepo domain.ResumeRepository
	storage    *upload.Storage
}

func NewResumeUsecase(resumeRepo domain.ResumeRepository, storage *upload.Storage) domain.ResumeUsecase {
	return &resumeUsecase{
		resumeRepo: resumeRepo,
		storage:    storage,
	}
}

// StoreResumes processes each file independently: a bad or unstorable
// file lands in the failed list without aborting the batch.
func (u *resumeUsecase) StoreResumes(ctx context.Context, hrID int64, files []*multipart.FileHeader) (*domain.UploadReport, error) {
	if len(files) == 0 {
		return nil, apperror.InvalidArgument("No files uploaded")
	}

	report := &domain.UploadReport{
		Uploaded: []domain.Resume{},
		Failed:   []domain.FailedUpload{},
	}

	for _, file := range files {
		if err := u.storage.Validate(file); err != nil {
			report.Failed = append(report.Failed, domain.FailedUpload{
				Filename: file.Filename,
				Error:    err.Error(),
			})
			continue
		}

		path, err := u.storage.Save(file)
		if err != nil {
			report.Failed = append(report.Failed, domain.FailedUpload{
				Filename: file.Filename,
				Error:    err.Error(),
			})
			continue
		}

		resume := &domain.Resume{
			HRID:     hrID,
			Filename: file.Filename,
			FilePath: path,
			Status:   domain.ResumeStatusUploaded,
		}
		if err := u.resumeRepo.Create(ctx, resume); err != nil {
			report.Failed = append(report.Failed, domain.FailedUpload{
				Filename: file.Filename,
				Error:    err.Error(),
			})
			continue
		}
		report.Uploaded = append(report.Uploaded, *resume)
	}

	return report, nil
}

func (u *resumeUsecase) ListResumes(ctx context.Context, hrID int64) ([]domain.Resume, error) {
	return u.resumeRepo.FetchByHR(ctx, hrID)
}
