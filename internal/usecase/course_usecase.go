package usecase

import (
	"context"

	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"
)

type courseUsecase struct {
	courseRepo domain.CourseRepository
	resolver   domain.UserResolver
}

func NewCourseUsecase(courseRepo domain.CourseRepository, resolver domain.UserResolver) domain.CourseUsecase {
	return &courseUsecase{
		courseRepo: courseRepo,
		resolver:   resolver,
	}
}

func (u *courseUsecase) ListCourses(ctx context.Context) ([]domain.Course, error) {
	return u.courseRepo.Fetch(ctx)
}

func (u *courseUsecase) GetCourse(ctx context.Context, id int64) (*domain.Course, error) {
	course, err := u.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, apperror.NotFound("Course not found")
	}
	return course, nil
}

func (u *courseUsecase) ListCoursesByUser(ctx context.Context, identifier string, hint domain.IdentifierHint) ([]domain.Course, error) {
	userID, err := u.resolver.Resolve(ctx, identifier, hint)
	if err != nil {
		return nil, err
	}
	return u.courseRepo.FetchByOwner(ctx, userID)
}

// CreateCourse resolves the owner from user_email when no user_id was
// given; a course may also have no owner at all.
func (u *courseUsecase) CreateCourse(ctx context.Context, input domain.CreateCourseInput) (*domain.Course, error) {
	if input.Name == "" || input.Description == "" {
		return nil, apperror.InvalidArgument("Name and description are required")
	}

	ownerID := input.UserID
	if ownerID == nil && input.UserEmail != "" {
		resolved, err := u.resolver.Resolve(ctx, input.UserEmail, domain.HintEmail)
		if err != nil {
			return nil, err
		}
		ownerID = &resolved
	}

	course := &domain.Course{
		Name:        input.Name,
		Description: input.Description,
		UserID:      ownerID,
	}
	if err := u.courseRepo.Create(ctx, course); err != nil {
		return nil, err
	}
	return u.courseRepo.GetByID(ctx, course.ID)
}

func (u *courseUsecase) UpdateCourse(ctx context.Context, id int64, update domain.CourseUpdate) (*domain.Course, error) {
	existing, err := u.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperror.NotFound("Course not found")
	}

	if update.Name != nil {
		existing.Name = *update.Name
	}
	if update.Description != nil {
		existing.Description = *update.Description
	}
	if update.UserID != nil {
		existing.UserID = update.UserID
	}

	if err := u.courseRepo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return u.courseRepo.GetByID(ctx, id)
}

func (u *courseUsecase) DeleteCourse(ctx context.Context, id int64) error {
	existing, err := u.courseRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperror.NotFound("Course not found")
	}
	return u.courseRepo.Delete(ctx, id)
}
