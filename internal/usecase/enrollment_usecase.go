package usecase

import (
	"context"

	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"
)

// enrollmentUsecase is the only component allowed to mutate the
// enrollment relation. It orchestrates resolve -> precondition checks
// -> ledger write; the ledger's storage constraints remain the
// authoritative guard against races (no in-process locking, so a
// mutex here would not help a multi-instance deployment anyway).
type enrollmentUsecase struct {
	enrollmentRepo domain.EnrollmentRepository
	courseRepo     domain.CourseRepository
	resolver       domain.UserResolver
}

func NewEnrollmentUsecase(
	enrollmentRepo domain.EnrollmentRepository,
	courseRepo domain.CourseRepository,
	resolver domain.UserResolver,
) domain.EnrollmentUsecase {
	return &enrollmentUsecase{
		enrollmentRepo: enrollmentRepo,
		courseRepo:     courseRepo,
		resolver:       resolver,
	}
}

// Enroll creates the (user, course) enrollment. A duplicate request is
// a Conflict, not a no-op. The upfront existence check is a fast path;
// a concurrent enroll that slips past it is still rejected by the
// ledger's unique constraint at insert time.
func (u *enrollmentUsecase) Enroll(ctx context.Context, courseID int64, identifier string, hint domain.IdentifierHint) (*domain.Enrollment, error) {
	course, err := u.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, apperror.NotFound("Course not found")
	}

	userID, err := u.resolver.Resolve(ctx, identifier, hint)
	if err != nil {
		return nil, err
	}

	enrolled, err := u.enrollmentRepo.Exists(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}
	if enrolled {
		return nil, apperror.Conflict("User is already enrolled in this course")
	}

	return u.enrollmentRepo.Create(ctx, userID, courseID)
}

// Unenroll removes the (user, course) enrollment. Deleting a
// nonexistent row is rejected so a double unenroll gets accurate
// feedback; the delete itself decides, the existence check only
// short-circuits the common case.
func (u *enrollmentUsecase) Unenroll(ctx context.Context, courseID int64, identifier string, hint domain.IdentifierHint) error {
	course, err := u.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return err
	}
	if course == nil {
		return apperror.NotFound("Course not found")
	}

	userID, err := u.resolver.Resolve(ctx, identifier, hint)
	if err != nil {
		return err
	}

	enrolled, err := u.enrollmentRepo.Exists(ctx, userID, courseID)
	if err != nil {
		return err
	}
	if !enrolled {
		return apperror.NotFound("User is not enrolled in this course")
	}

	return u.enrollmentRepo.Delete(ctx, userID, courseID)
}

// ListForUser returns the resolved user's enrollments joined with
// course and instructor data, most recent first. Zero enrollments is
// an empty list, not an error; only an unresolvable identifier fails.
func (u *enrollmentUsecase) ListForUser(ctx context.Context, identifier string, hint domain.IdentifierHint) ([]domain.Enrollment, error) {
	userID, err := u.resolver.Resolve(ctx, identifier, hint)
	if err != nil {
		return nil, err
	}
	return u.enrollmentRepo.FetchByUser(ctx, userID)
}
