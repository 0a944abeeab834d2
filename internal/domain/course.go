package domain

import "context"

// Course is an owned resource; UserID is the optional owner and the
// Owner* fields are populated by read queries joining the users table.
type Course struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	UserID      *int64  `json:"user_id"`
	OwnerName   *string `json:"user_name,omitempty"`
	OwnerEmail  *string `json:"user_email,omitempty"`
}

// CourseUpdate carries a partial update; nil fields keep the stored value.
type CourseUpdate struct {
	Name        *string
	Description *string
	UserID      *int64
}

type CourseRepository interface {
	Fetch(ctx context.Context) ([]Course, error)
	GetByID(ctx context.Context, id int64) (*Course, error)
	FetchByOwner(ctx context.Context, userID int64) ([]Course, error)
	Create(ctx context.Context, course *Course) error
	Update(ctx context.Context, course *Course) error
	Delete(ctx context.Context, id int64) error
}

type CourseUsecase interface {
	ListCourses(ctx context.Context) ([]Course, error)
	GetCourse(ctx context.Context, id int64) (*Course, error)
	ListCoursesByUser(ctx context.Context, identifier string, hint IdentifierHint) ([]Course, error)
	CreateCourse(ctx context.Context, input CreateCourseInput) (*Course, error)
	UpdateCourse(ctx context.Context, id int64, update CourseUpdate) (*Course, error)
	DeleteCourse(ctx context.Context, id int64) error
}

// CreateCourseInput accepts the owner either as a numeric id or as an
// email to be resolved; both may be absent for an ownerless course.
type CreateCourseInput struct {
	Name        string
	Description string
	UserID      *int64
	UserEmail   string
}
