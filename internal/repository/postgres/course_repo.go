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

type courseRepo struct {
	db *pgxpool.Pool
}

func NewCourseRepository(db *pgxpool.Pool) domain.CourseRepository {
	return &courseRepo{db: db}
}

const courseSelect = `
	SELECT
		c.id, c.name, c.description, c.user_id,
		u.name AS user_name,
		u.email AS user_email
	FROM courses c
	LEFT JOIN users u ON c.user_id = u.id`

func scanCourse(row pgx.Row) (*domain.Course, error) {
	var course domain.Course
	err := row.Scan(
		&course.ID, &course.Name, &course.Description, &course.UserID,
		&course.OwnerName, &course.OwnerEmail,
	)
	if err != nil {
		return nil, err
	}
	return &course, nil
}

func (r *courseRepo) Fetch(ctx context.Context) ([]domain.Course, error) {
	rows, err := r.db.Query(ctx, courseSelect+` ORDER BY c.id DESC`)
	if err != nil {
		return nil, apperror.Unavailable(err)
	}
	defer rows.Close()

	courses := []domain.Course{}
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, apperror.Unavailable(err)
		}
		courses = append(courses, *course)
	}
	return courses, rows.Err()
}

func (r *courseRepo) GetByID(ctx context.Context, id int64) (*domain.Course, error) {
	course, err := scanCourse(r.db.QueryRow(ctx, courseSelect+` WHERE c.id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, apperror.Unavailable(err)
	}
	return course, nil
}

func (r *courseRepo) FetchByOwner(ctx context.Context, userID int64) ([]domain.Course, error) {
	rows, err := r.db.Query(ctx, courseSelect+` WHERE c.user_id = $1 ORDER BY c.id DESC`, userID)
	if err != nil {
		return nil, apperror.Unavailable(err)
	}
	defer rows.Close()

	courses := []domain.Course{}
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, apperror.Unavailable(err)
		}
		courses = append(courses, *course)
	}
	return courses, rows.Err()
}

func (r *courseRepo) Create(ctx context.Context, course *domain.Course) error {
	query := `INSERT INTO courses (name, description, user_id) VALUES ($1, $2, $3) RETURNING id`
	err := r.db.QueryRow(ctx, query, course.Name, course.Description, course.UserID).Scan(&course.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return apperror.InvalidArgument("Referenced user does not exist")
		}
		return apperror.Unavailable(err)
	}
	return nil
}

func (r *courseRepo) Update(ctx context.Context, course *domain.Course) error {
	query := `UPDATE courses SET name = $2, description = $3, user_id = $4 WHERE id = $1`
	result, err := r.db.Exec(ctx, query, course.ID, course.Name, course.Description, course.UserID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return apperror.InvalidArgument("Referenced user does not exist")
		}
		return apperror.Unavailable(err)
	}
	if result.RowsAffected() == 0 {
		return apperror.NotFound("Course not found")
	}
	return nil
}

// Delete removes the course row; enrollment rows referencing it are
// removed by the ON DELETE CASCADE constraint.
func (r *courseRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return apperror.Unavailable(err)
	}
	if result.RowsAffected() == 0 {
		return apperror.NotFound("Course not found")
	}
	return nil
}
