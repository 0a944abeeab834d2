package usecase_test

import (
	"context"
	"testing"
	"time"

	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/internal/usecase"
	"go-jobportal-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
)

func newEnrollmentFixture() (*MockEnrollmentRepo, *MockCourseRepo, *MockUserRepo, domain.EnrollmentUsecase) {
	enrollmentRepo := new(MockEnrollmentRepo)
	courseRepo := new(MockCourseRepo)
	userRepo := new(MockUserRepo)
	uc := usecase.NewEnrollmentUsecase(enrollmentRepo, courseRepo, usecase.NewUserResolver(userRepo))
	return enrollmentRepo, courseRepo, userRepo, uc
}

func TestEnroll_Success(t *testing.T) {
	enrollmentRepo, courseRepo, userRepo, uc := newEnrollmentFixture()
	ctx := context.Background()

	courseRepo.On("GetByID", ctx, int64(10)).Return(&domain.Course{ID: 10, Name: "Go Basics"}, nil)
	userRepo.On("GetByEmail", ctx, "ana@example.com").Return(&domain.User{ID: 3}, nil)
	enrollmentRepo.On("Exists", ctx, int64(3), int64(10)).Return(false, nil)
	enrollmentRepo.On("Create", ctx, int64(3), int64(10)).Return(&domain.Enrollment{
		UserID:     3,
		CourseID:   10,
		EnrolledAt: time.Now(),
		CourseName: "Go Basics",
	}, nil)

	enrollment, err := uc.Enroll(ctx, 10, "ana@example.com", domain.HintAuto)

	assert.NoError(t, err)
	assert.Equal(t, int64(3), enrollment.UserID)
	assert.Equal(t, int64(10), enrollment.CourseID)
	enrollmentRepo.AssertExpectations(t)
}

func TestEnroll_CourseNotFound(t *testing.T) {
	enrollmentRepo, courseRepo, _, uc := newEnrollmentFixture()
	ctx := context.Background()

	courseRepo.On("GetByID", ctx, int64(404)).Return(nil, nil)

	_, err := uc.Enroll(ctx, 404, "3", domain.HintAuto)

	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
	assert.EqualError(t, err, "Course not found")
	enrollmentRepo.AssertNotCalled(t, "Create")
}

func TestEnroll_UnknownUser(t *testing.T) {
	enrollmentRepo, courseRepo, userRepo, uc := newEnrollmentFixture()
	ctx := context.Background()

	courseRepo.On("GetByID", ctx, int64(10)).Return(&domain.Course{ID: 10}, nil)
	userRepo.On("GetByEmail", ctx, "ghost@example.com").Return(nil, nil)

	_, err := uc.Enroll(ctx, 10, "ghost@example.com", domain.HintAuto)

	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
	enrollmentRepo.AssertNotCalled(t, "Create")
}

func TestEnroll_Duplicate(t *testing.T) {
	enrollmentRepo, courseRepo, userRepo, uc := newEnrollmentFixture()
	ctx := context.Background()

	courseRepo.On("GetByID", ctx, int64(10)).Return(&domain.Course{ID: 10}, nil)
	userRepo.On("GetByID", ctx, int64(3)).Return(&domain.User{ID: 3}, nil)
	enrollmentRepo.On("Exists", ctx, int64(3), int64(10)).Return(true, nil)

	_, err := uc.Enroll(ctx, 10, "3", domain.HintAuto)

	assert.True(t, apperror.IsKind(err, apperror.KindConflict))
	assert.EqualError(t, err, "User is already enrolled in this course")
	enrollmentRepo.AssertNotCalled(t, "Create")
}

// A concurrent enroll can slip past the existence check; the unique
// pair constraint at insert time still rejects it with a conflict.
func TestEnroll_RaceLosesAtInsert(t *testing.T) {
	enrollmentRepo, courseRepo, userRepo, uc := newEnrollmentFixture()
	ctx := context.Background()

	courseRepo.On("GetByID", ctx, int64(10)).Return(&domain.Course{ID: 10}, nil)
	userRepo.On("GetByID", ctx, int64(3)).Return(&domain.User{ID: 3}, nil)
	enrollmentRepo.On("Exists", ctx, int64(3), int64(10)).Return(false, nil)
	enrollmentRepo.On("Create", ctx, int64(3), int64(10)).
		Return(nil, apperror.Conflict("User is already enrolled in this course"))

	_, err := uc.Enroll(ctx, 10, "3", domain.HintAuto)

	assert.True(t, apperror.IsKind(err, apperror.KindConflict))
}

func TestUnenroll_Success(t *testing.T) {
	enrollmentRepo, courseRepo, userRepo, uc := newEnrollmentFixture()
	ctx := context.Background()

	courseRepo.On("GetByID", ctx, int64(10)).Return(&domain.Course{ID: 10}, nil)
	userRepo.On("GetByID", ctx, int64(3)).Return(&domain.User{ID: 3}, nil)
	enrollmentRepo.On("Exists", ctx, int64(3), int64(10)).Return(true, nil)
	enrollmentRepo.On("Delete", ctx, int64(3), int64(10)).Return(nil)

	err := uc.Unenroll(ctx, 10, "3", domain.HintAuto)

	assert.NoError(t, err)
	enrollmentRepo.AssertExpectations(t)
}

func TestUnenroll_NotEnrolled(t *testing.T) {
	enrollmentRepo, courseRepo, userRepo, uc := newEnrollmentFixture()
	ctx := context.Background()

	courseRepo.On("GetByID", ctx, int64(10)).Return(&domain.Course{ID: 10}, nil)
	userRepo.On("GetByID", ctx, int64(3)).Return(&domain.User{ID: 3}, nil)
	enrollmentRepo.On("Exists", ctx, int64(3), int64(10)).Return(false, nil)

	err := uc.Unenroll(ctx, 10, "3", domain.HintAuto)

	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
	assert.EqualError(t, err, "User is not enrolled in this course")
	enrollmentRepo.AssertNotCalled(t, "Delete")
}

// Enroll, unenroll, enroll again: the second enroll must succeed
// because the pair no longer exists after the unenroll.
func TestEnroll_AfterUnenroll(t *testing.T) {
	enrollmentRepo, courseRepo, userRepo, uc := newEnrollmentFixture()
	ctx := context.Background()

	courseRepo.On("GetByID", ctx, int64(10)).Return(&domain.Course{ID: 10}, nil)
	userRepo.On("GetByID", ctx, int64(3)).Return(&domain.User{ID: 3}, nil)

	enrollmentRepo.On("Exists", ctx, int64(3), int64(10)).Return(false, nil).Once()
	enrollmentRepo.On("Create", ctx, int64(3), int64(10)).Return(&domain.Enrollment{UserID: 3, CourseID: 10}, nil).Once()

	enrollmentRepo.On("Exists", ctx, int64(3), int64(10)).Return(true, nil).Once()
	enrollmentRepo.On("Delete", ctx, int64(3), int64(10)).Return(nil).Once()

	enrollmentRepo.On("Exists", ctx, int64(3), int64(10)).Return(false, nil).Once()
	enrollmentRepo.On("Create", ctx, int64(3), int64(10)).Return(&domain.Enrollment{UserID: 3, CourseID: 10}, nil).Once()

	_, err := uc.Enroll(ctx, 10, "3", domain.HintAuto)
	assert.NoError(t, err)

	err = uc.Unenroll(ctx, 10, "3", domain.HintAuto)
	assert.NoError(t, err)

	_, err = uc.Enroll(ctx, 10, "3", domain.HintAuto)
	assert.NoError(t, err)
	enrollmentRepo.AssertExpectations(t)
}

// The listing must not depend on which identifier form the caller used.
func TestListForUser_IdentifierForms(t *testing.T) {
	enrollmentRepo, _, userRepo, uc := newEnrollmentFixture()
	ctx := context.Background()

	user := &domain.User{ID: 3, Email: "ana@example.com"}
	userRepo.On("GetByID", ctx, int64(3)).Return(user, nil)
	userRepo.On("GetByEmail", ctx, "ana@example.com").Return(user, nil)

	enrollments := []domain.Enrollment{
		{UserID: 3, CourseID: 20, CourseName: "Advanced Go"},
		{UserID: 3, CourseID: 10, CourseName: "Go Basics"},
	}
	enrollmentRepo.On("FetchByUser", ctx, int64(3)).Return(enrollments, nil)

	byID, err := uc.ListForUser(ctx, "3", domain.HintAuto)
	assert.NoError(t, err)

	byEmail, err := uc.ListForUser(ctx, "ana@example.com", domain.HintAuto)
	assert.NoError(t, err)

	assert.Equal(t, byID, byEmail)
	assert.Len(t, byID, 2)
}

func TestListForUser_Empty(t *testing.T) {
	enrollmentRepo, _, userRepo, uc := newEnrollmentFixture()
	ctx := context.Background()

	userRepo.On("GetByID", ctx, int64(3)).Return(&domain.User{ID: 3}, nil)
	enrollmentRepo.On("FetchByUser", ctx, int64(3)).Return([]domain.Enrollment{}, nil)

	enrollments, err := uc.ListForUser(ctx, "3", domain.HintAuto)

	assert.NoError(t, err)
	assert.Empty(t, enrollments)
}

func TestListForUser_UnknownUser(t *testing.T) {
	enrollmentRepo, _, userRepo, uc := newEnrollmentFixture()
	ctx := context.Background()

	userRepo.On("GetByEmail", ctx, "ghost@example.com").Return(nil, nil)

	_, err := uc.ListForUser(ctx, "ghost@example.com", domain.HintAuto)

	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
	enrollmentRepo.AssertNotCalled(t, "FetchByUser")
}
