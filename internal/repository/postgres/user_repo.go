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

// PostgreSQL error codes
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

type userRepo struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) domain.UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) Fetch(ctx context.Context) ([]domain.User, error) {
	query := `SELECT id, name, email, age FROM users ORDER BY id DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, apperror.Unavailable(err)
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(&user.ID, &user.Name, &user.Email, &user.Age); err != nil {
			return nil, apperror.Unavailable(err)
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (r *userRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	query := `SELECT id, name, email, age FROM users WHERE id = $1`
	var user domain.User
	err := r.db.QueryRow(ctx, query, id).Scan(&user.ID, &user.Name, &user.Email, &user.Age)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, apperror.Unavailable(err)
	}
	return &user, nil
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT id, name, email, age FROM users WHERE email = $1`
	var user domain.User
	err := r.db.QueryRow(ctx, query, email).Scan(&user.ID, &user.Name, &user.Email, &user.Age)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, apperror.Unavailable(err)
	}
	return &user, nil
}

func (r *userRepo) Create(ctx context.Context, user *domain.User) error {
	query := `INSERT INTO users (name, email, age) VALUES ($1, $2, $3) RETURNING id`
	err := r.db.QueryRow(ctx, query, user.Name, user.Email, user.Age).Scan(&user.ID)
	if err != nil {
		// The unique index on email is the authoritative guard; the
		// usecase-level duplicate check is only a fast path.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperror.Conflict("User with this email already exists")
		}
		return apperror.Unavailable(err)
	}
	return nil
}

func (r *userRepo) Update(ctx context.Context, user *domain.User) error {
	query := `UPDATE users SET name = $2, email = $3, age = $4 WHERE id = $1`
	result, err := r.db.Exec(ctx, query, user.ID, user.Name, user.Email, user.Age)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return apperror.Conflict("User with this email already exists")
		}
		return apperror.Unavailable(err)
	}
	if result.RowsAffected() == 0 {
		return apperror.NotFound("User not found")
	}
	return nil
}

// Delete removes the user row; enrollment rows referencing it are
// removed by the ON DELETE CASCADE constraint and owned courses keep
// a NULL owner via ON DELETE SET NULL.
func (r *userRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return apperror.Unavailable(err)
	}
	if result.RowsAffected() == 0 {
		return apperror.NotFound("User not found")
	}
	return nil
}
