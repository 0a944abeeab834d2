package usecase_test

import (
	"context"
	"mime/multipart"
	"testing"

	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/internal/usecase"
	"go-jobportal-backend/pkg/apperror"
	"go-jobportal-backend/pkg/upload"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockResumeRepo struct {
	mock.Mock
}

func (m *MockResumeRepo) Create(ctx context.Context, resume *domain.Resume) error {
	return m.Called(ctx, resume).Error(0)
}

func (m *MockResumeRepo) FetchByHR(ctx context.Context, hrID int64) ([]domain.Resume, error) {
	args := m.Called(ctx, hrID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Resume), args.Error(1)
}

// Storage in placeholder mode avoids touching the disk in tests.
func newResumeFixture(t *testing.T) (*MockResumeRepo, domain.ResumeUsecase) {
	t.Helper()
	resumeRepo := new(MockResumeRepo)
	storage := upload.NewStorage("/proc/nonexistent/uploads", 10)
	return resumeRepo, usecase.NewResumeUsecase(resumeRepo, storage)
}

func TestStoreResumes_Empty(t *testing.T) {
	_, uc := newResumeFixture(t)

	_, err := uc.StoreResumes(context.Background(), 1, nil)

	assert.True(t, apperror.IsKind(err, apperror.KindInvalidArgument))
	assert.EqualError(t, err, "No files uploaded")
}

func TestStoreResumes_PartialFailure(t *testing.T) {
	resumeRepo, uc := newResumeFixture(t)
	ctx := context.Background()

	resumeRepo.On("Create", ctx, mock.AnythingOfType("*domain.Resume")).Return(nil)

	files := []*multipart.FileHeader{
		{Filename: "cv.pdf", Size: 1024},
		{Filename: "malware.exe", Size: 1024},
		{Filename: "huge.pdf", Size: 50 * 1024 * 1024},
	}

	report, err := uc.StoreResumes(ctx, 7, files)

	assert.NoError(t, err)
	assert.Len(t, report.Uploaded, 1)
	assert.Len(t, report.Failed, 2)
	assert.Equal(t, "cv.pdf", report.Uploaded[0].Filename)
	assert.Equal(t, int64(7), report.Uploaded[0].HRID)
	assert.Equal(t, "malware.exe", report.Failed[0].Filename)
}

func TestStoreResumes_RepoFailureDoesNotAbortBatch(t *testing.T) {
	resumeRepo, uc := newResumeFixture(t)
	ctx := context.Background()

	resumeRepo.On("Create", ctx, mock.MatchedBy(func(r *domain.Resume) bool {
		return r.Filename == "first.pdf"
	})).Return(apperror.Unavailable(assert.AnError))
	resumeRepo.On("Create", ctx, mock.MatchedBy(func(r *domain.Resume) bool {
		return r.Filename == "second.pdf"
	})).Return(nil)

	files := []*multipart.FileHeader{
		{Filename: "first.pdf", Size: 1024},
		{Filename: "second.pdf", Size: 1024},
	}

	report, err := uc.StoreResumes(ctx, 7, files)

	assert.NoError(t, err)
	assert.Len(t, report.Uploaded, 1)
	assert.Len(t, report.Failed, 1)
	assert.Equal(t, "second.pdf", report.Uploaded[0].Filename)
}
