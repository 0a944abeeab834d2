package postgres

import (
	"context"
	"errors"

	"go-jobportal-backend/internal/domain"
	"go-jobportal-backend/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type enrollmentRepo struct {
	db *pgxpool.Pool
}

func NewEnrollmentRepository(db *pgxpool.Pool) domain.EnrollmentRepository {
	return &enrollmentRepo{db: db}
}

const enrollmentSelect = `
	SELECT
		e.user_id, e.course_id, e.enrolled_at,
		c.name AS course_name,
		c.description AS course_description,
		u.id AS instructor_id,
		u.name AS instructor_name,
		u.email AS instructor_email
	FROM enrollments e
	JOIN courses c ON e.course_id = c.id
	LEFT JOIN users u ON c.user_id = u.id`

func scanEnrollment(row pgx.Row) (*domain.Enrollment, error) {
	var e domain.Enrollment
	err := row.Scan(
		&e.UserID, &e.CourseID, &e.EnrolledAt,
		&e.CourseName, &e.CourseDescription,
		&e.InstructorID, &e.InstructorName, &e.InstructorEmail,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *enrollmentRepo) GetByUserAndCourse(ctx context.Context, userID, courseID int64) (*domain.Enrollment, error) {
	query := enrollmentSelect + ` WHERE e.user_id = $1 AND e.course_id = $2`
	enrollment, err := scanEnrollment(r.db.QueryRow(ctx, query, userID, courseID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, apperror.Unavailable(err)
	}
	return enrollment, nil
}

func (r *enrollmentRepo) FetchByUser(ctx context.Context, userID int64) ([]domain.Enrollment, error) {
	query := enrollmentSelect + ` WHERE e.user_id = $1 ORDER BY e.enrolled_at DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, apperror.Unavailable(err)
	}
	defer rows.Close()

	enrollments := []domain.Enrollment{}
	for rows.Next() {
		enrollment, err := scanEnrollment(rows)
		if err != nil {
			return nil, apperror.Unavailable(err)
		}
		enrollments = append(enrollments, *enrollment)
	}
	return enrollments, rows.Err()
}

func (r *enrollmentRepo) Exists(ctx context.Context, userID, courseID int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM enrollments WHERE user_id = $1 AND course_id = $2)`
	var exists bool
	if err := r.db.QueryRow(ctx, query, userID, courseID).Scan(&exists); err != nil {
		return false, apperror.Unavailable(err)
	}
	return exists, nil
}

// Create inserts the enrollment row with a server-assigned timestamp
// and returns it joined with course and instructor data. Two callers
// may both pass the coordinator's existence check before either
// writes; the unique (user_id, course_id) constraint makes the insert
// itself the authoritative guard, so a duplicate surfaces here as a
// Conflict rather than a second row.
func (r *enrollmentRepo) Create(ctx context.Context, userID, courseID int64) (*domain.Enrollment, error) {
	query := `INSERT INTO enrollments (user_id, course_id) VALUES ($1, $2)`
	_, err := r.db.Exec(ctx, query, userID, courseID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgUniqueViolation:
				return nil, apperror.Conflict("User is already enrolled in this course")
			case pgForeignKeyViolation:
				return nil, apperror.NotFound("Course not found")
			}
		}
		return nil, apperror.Unavailable(err)
	}
	return r.GetByUserAndCourse(ctx, userID, courseID)
}

// Delete removes the pair's row. Zero affected rows means the user was
// not enrolled; that is reported rather than silently succeeding so a
// double unenroll gets accurate feedback.
func (r *enrollmentRepo) Delete(ctx context.Context, userID, courseID int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM enrollments WHERE user_id = $1 AND course_id = $2`, userID, courseID)
	if err != nil {
		return apperror.Unavailable(err)
	}
	if result.RowsAffected() == 0 {
		return apperror.NotFound("User is not enrolled in this course")
	}
	return nil
}
