package usecase

import (
	"context"

	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"
	"go-jobportal-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type userUsecase struct {
	userRepo domain.UserRepository
	validate *validator.Validate
}

func NewUserUsecase(userRepo domain.UserRepository, validate *validator.Validate) domain.UserUsecase {
	return &userUsecase{
		userRepo: userRepo,
		validate: validate,
	}
}

func (u *userUsecase) ListUsers(ctx context.Context) ([]domain.User, error) {
	return u.userRepo.Fetch(ctx)
}

func (u *userUsecase) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound("User not found")
	}
	return user, nil
}

func (u *userUsecase) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NotFound("User not found")
	}
	return user, nil
}

// CreateUser validates the payload and rejects duplicate emails. The
// duplicate check here is a fast path; the unique index on users.email
// still catches a concurrent create with the same address.
func (u *userUsecase) CreateUser(ctx context.Context, user *domain.User) error {
	if err := u.validate.Struct(user); err != nil {
		return apperror.InvalidArgument(validation.FormatValidationErrors(err))
	}

	existing, err := u.userRepo.GetByEmail(ctx, user.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		return apperror.Conflict("User with this email already exists")
	}

	return u.userRepo.Create(ctx, user)
}

// UpdateUser merges the partial update over the stored record. An
// email change re-checks uniqueness against the directory.
func (u *userUsecase) UpdateUser(ctx context.Context, id int64, update domain.UserUpdate) (*domain.User, error) {
	existing, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperror.NotFound("User not found")
	}

	if update.Name != nil {
		existing.Name = *update.Name
	}
	if update.Email != nil && *update.Email != existing.Email {
		taken, err := u.userRepo.GetByEmail(ctx, *update.Email)
		if err != nil {
			return nil, err
		}
		if taken != nil {
			return nil, apperror.Conflict("User with this email already exists")
		}
		existing.Email = *update.Email
	}
	if update.Age != nil {
		existing.Age = update.Age
	}

	if err := u.validate.Struct(existing); err != nil {
		return nil, apperror.InvalidArgument(validation.FormatValidationErrors(err))
	}

	if err := u.userRepo.Update(ctx, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// DeleteUser removes the user; the storage layer cascades the delete
// to the user's enrollment rows.
func (u *userUsecase) DeleteUser(ctx context.Context, id int64) error {
	existing, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperror.NotFound("User not found")
	}
	return u.userRepo.Delete(ctx, id)
}
