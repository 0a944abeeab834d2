package domain

import (
	"context"
	"time"
)

// Enrollment links one user to one course. The relation is a set: at
// most one row exists per (user_id, course_id) pair, enforced by a
// unique constraint in the enrollments table. The Course*/Instructor*
// fields are populated by read queries joining courses and users.
type Enrollment struct {
	UserID            int64     `json:"user_id"`
	CourseID          int64     `json:"course_id"`
	EnrolledAt        time.Time `json:"enrolled_at"`
	CourseName        string    `json:"course_name,omitempty"`
	CourseDescription string    `json:"course_description,omitempty"`
	InstructorID      *int64    `json:"instructor_id,omitempty"`
	InstructorName    *string   `json:"instructor_name,omitempty"`
	InstructorEmail   *string   `json:"instructor_email,omitempty"`
}

// EnrollmentRepository owns the enrollments table. Create and Delete
// are the authoritative guards: Create surfaces a duplicate pair as a
// Conflict even when a prior existence check passed, and Delete
// surfaces a missing pair as NotFound. No other component writes to
// this table.
type EnrollmentRepository interface {
	GetByUserAndCourse(ctx context.Context, userID, courseID int64) (*Enrollment, error)
	FetchByUser(ctx context.Context, userID int64) ([]Enrollment, error)
	Exists(ctx context.Context, userID, courseID int64) (bool, error)
	Create(ctx context.Context, userID, courseID int64) (*Enrollment, error)
	Delete(ctx context.Context, userID, courseID int64) error
}

// EnrollmentUsecase coordinates resolve -> precondition checks ->
// ledger mutation. Enroll and Unenroll are deliberately not
// idempotent: a duplicate enroll is a Conflict and a double unenroll
// is NotFound.
type EnrollmentUsecase interface {
	Enroll(ctx context.Context, courseID int64, identifier string, hint IdentifierHint) (*Enrollment, error)
	Unenroll(ctx context.Context, courseID int64, identifier string, hint IdentifierHint) error
	ListForUser(ctx context.Context, identifier string, hint IdentifierHint) ([]Enrollment, error)
}
