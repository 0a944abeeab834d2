package postgres

import (
	"context"

	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"

	"github.com/jackc/pgx/v5/pgxpool"
)

type resumeRepo struct {
	db *pgxpool.Pool
}

func NewResumeRepository(db *pgxpool.Pool) domain.ResumeRepository {
	return &resumeRepo{db: db}
}

func (r *resumeRepo) Create(ctx context.Context, resume *domain.Resume) error {
	query := `
		INSERT INTO resumes (hr_id, filename, file_path, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, uploaded_at`

	if resume.Status == "" {
		resume.Status = domain.ResumeStatusUploaded
	}

	err := r.db.QueryRow(ctx, query,
		resume.HRID,
		resume.Filename,
		resume.FilePath,
		resume.Status,
	).Scan(&resume.ID, &resume.UploadedAt)
	if err != nil {
		return apperror.Unavailable(err)
	}
	return nil
}

func (r *resumeRepo) FetchByHR(ctx context.Context, hrID int64) ([]domain.Resume, error) {
	query := `
		SELECT id, hr_id, filename, file_path, status, uploaded_at
		FROM resumes
		WHERE hr_id = $1
		ORDER BY uploaded_at DESC`

	rows, err := r.db.Query(ctx, query, hrID)
	if err != nil {
		return nil, apperror.Unavailable(err)
	}
	defer rows.Close()

	resumes := []domain.Resume{}
	for rows.Next() {
		var resume domain.Resume
		if err := rows.Scan(
			&resume.ID, &resume.HRID, &resume.Filename,
			&resume.FilePath, &resume.Status, &resume.UploadedAt,
		); err != nil {
			return nil, apperror.Unavailable(err)
		}
		resumes = append(resumes, resume)
	}
	return resumes, rows.Err()
}
