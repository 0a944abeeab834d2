package usecase_test

import (
	"context"

	"go-jobportal-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// Mock Repositories

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Fetch(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockCourseRepo struct {
	mock.Mock
}

func (m *MockCourseRepo) Fetch(ctx context.Context) ([]domain.Course, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Course), args.Error(1)
}

func (m *MockCourseRepo) GetByID(ctx context.Context, id int64) (*domain.Course, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Course), args.Error(1)
}

func (m *MockCourseRepo) FetchByOwner(ctx context.Context, userID int64) ([]domain.Course, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Course), args.Error(1)
}

func (m *MockCourseRepo) Create(ctx context.Context, course *domain.Course) error {
	return m.Called(ctx, course).Error(0)
}

func (m *MockCourseRepo) Update(ctx context.Context, course *domain.Course) error {
	return m.Called(ctx, course).Error(0)
}

func (m *MockCourseRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockEnrollmentRepo struct {
	mock.Mock
}

func (m *MockEnrollmentRepo) GetByUserAndCourse(ctx context.Context, userID, courseID int64) (*domain.Enrollment, error) {
	args := m.Called(ctx, userID, courseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Enrollment), args.Error(1)
}

func (m *MockEnrollmentRepo) FetchByUser(ctx context.Context, userID int64) ([]domain.Enrollment, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Enrollment), args.Error(1)
}

func (m *MockEnrollmentRepo) Exists(ctx context.Context, userID, courseID int64) (bool, error) {
	args := m.Called(ctx, userID, courseID)
	return args.Bool(0), args.Error(1)
}

func (m *MockEnrollmentRepo) Create(ctx context.Context, userID, courseID int64) (*domain.Enrollment, error) {
	args := m.Called(ctx, userID, courseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Enrollment), args.Error(1)
}

func (m *MockEnrollmentRepo) Delete(ctx context.Context, userID, courseID int64) error {
	return m.Called(ctx, userID, courseID).Error(0)
}
