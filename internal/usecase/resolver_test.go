package usecase_test

import (
	"context"
	"testing"

	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/internal/usecase"
	"go-jobportal-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
)

func TestResolve_NumericID(t *testing.T) {
	userRepo := new(MockUserRepo)
	resolver := usecase.NewUserResolver(userRepo)

	userRepo.On("GetByID", context.Background(), int64(42)).Return(&domain.User{ID: 42, Email: "ana@example.com"}, nil)

	id, err := resolver.Resolve(context.Background(), "42", domain.HintAuto)

	assert.NoError(t, err)
	assert.Equal(t, int64(42), id)
	userRepo.AssertExpectations(t)
}

func TestResolve_Email(t *testing.T) {
	userRepo := new(MockUserRepo)
	resolver := usecase.NewUserResolver(userRepo)

	userRepo.On("GetByEmail", context.Background(), "ana@example.com").Return(&domain.User{ID: 42, Email: "ana@example.com"}, nil)

	id, err := resolver.Resolve(context.Background(), "ana@example.com", domain.HintAuto)

	assert.NoError(t, err)
	assert.Equal(t, int64(42), id)
	userRepo.AssertExpectations(t)
}

// Both identifier forms of the same user must resolve to the same id.
func TestResolve_EmailAndIDAgree(t *testing.T) {
	userRepo := new(MockUserRepo)
	resolver := usecase.NewUserResolver(userRepo)

	user := &domain.User{ID: 7, Email: "bob@example.com"}
	userRepo.On("GetByID", context.Background(), int64(7)).Return(user, nil)
	userRepo.On("GetByEmail", context.Background(), "bob@example.com").Return(user, nil)

	byID, err := resolver.Resolve(context.Background(), "7", domain.HintAuto)
	assert.NoError(t, err)

	byEmail, err := resolver.Resolve(context.Background(), "bob@example.com", domain.HintAuto)
	assert.NoError(t, err)

	assert.Equal(t, byID, byEmail)
}

func TestResolve_EmailHintSkipsDetection(t *testing.T) {
	userRepo := new(MockUserRepo)
	resolver := usecase.NewUserResolver(userRepo)

	// With an explicit email hint the identifier goes to the email
	// lookup even though it contains no "@".
	userRepo.On("GetByEmail", context.Background(), "not-an-email").Return(nil, nil)

	_, err := resolver.Resolve(context.Background(), "not-an-email", domain.HintEmail)

	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
	assert.EqualError(t, err, "User with email not-an-email not found")
}

func TestResolve_UnknownEmail(t *testing.T) {
	userRepo := new(MockUserRepo)
	resolver := usecase.NewUserResolver(userRepo)

	userRepo.On("GetByEmail", context.Background(), "ghost@example.com").Return(nil, nil)

	_, err := resolver.Resolve(context.Background(), "ghost@example.com", domain.HintAuto)

	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
	assert.EqualError(t, err, "User with email ghost@example.com not found")
}

func TestResolve_UnknownID(t *testing.T) {
	userRepo := new(MockUserRepo)
	resolver := usecase.NewUserResolver(userRepo)

	userRepo.On("GetByID", context.Background(), int64(99)).Return(nil, nil)

	_, err := resolver.Resolve(context.Background(), "99", domain.HintAuto)

	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
	assert.EqualError(t, err, "User with ID 99 not found")
}

func TestResolve_MalformedIdentifier(t *testing.T) {
	userRepo := new(MockUserRepo)
	resolver := usecase.NewUserResolver(userRepo)

	_, err := resolver.Resolve(context.Background(), "abc", domain.HintAuto)

	assert.True(t, apperror.IsKind(err, apperror.KindInvalidArgument))
	assert.EqualError(t, err, "Invalid user identifier: abc")
	userRepo.AssertNotCalled(t, "GetByID")
	userRepo.AssertNotCalled(t, "GetByEmail")
}

func TestResolve_IDHintRejectsEmail(t *testing.T) {
	userRepo := new(MockUserRepo)
	resolver := usecase.NewUserResolver(userRepo)

	// An explicit id hint forbids the "@" auto-detection, so an email
	// shaped identifier fails integer parsing.
	_, err := resolver.Resolve(context.Background(), "ana@example.com", domain.HintID)

	assert.True(t, apperror.IsKind(err, apperror.KindInvalidArgument))
	userRepo.AssertNotCalled(t, "GetByEmail")
}
