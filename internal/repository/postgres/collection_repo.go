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

type collectionRepo struct {
	db *pgxpool.Pool
}

func NewCollectionRepository(db *pgxpool.Pool) domain.CollectionRepository {
	return &collectionRepo{db: db}
}

const collectionSelect = `
	SELECT
		c.id, c.name, c.description, c.user_id,
		u.name AS user_name,
		u.email AS user_email
	FROM collections c
	LEFT JOIN users u ON c.user_id = u.id`

func scanCollection(row pgx.Row) (*domain.Collection, error) {
	var collection domain.Collection
	err := row.Scan(
		&collection.ID, &collection.Name, &collection.Description, &collection.UserID,
		&collection.OwnerName, &collection.OwnerEmail,
	)
	if err != nil {
		return nil, err
	}
	return &collection, nil
}

func (r *collectionRepo) Fetch(ctx context.Context) ([]domain.Collection, error) {
	rows, err := r.db.Query(ctx, collectionSelect+` ORDER BY c.id DESC`)
	if err != nil {
		return nil, apperror.Unavailable(err)
	}
	defer rows.Close()

	collections := []domain.Collection{}
	for rows.Next() {
		collection, err := scanCollection(rows)
		if err != nil {
			return nil, apperror.Unavailable(err)
		}
		collections = append(collections, *collection)
	}
	return collections, rows.Err()
}

func (r *collectionRepo) GetByID(ctx context.Context, id int64) (*domain.Collection, error) {
	collection, err := scanCollection(r.db.QueryRow(ctx, collectionSelect+` WHERE c.id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, apperror.Unavailable(err)
	}
	return collection, nil
}

func (r *collectionRepo) FetchByOwner(ctx context.Context, userID int64) ([]domain.Collection, error) {
	rows, err := r.db.Query(ctx, collectionSelect+` WHERE c.user_id = $1 ORDER BY c.id DESC`, userID)
	if err != nil {
		return nil, apperror.Unavailable(err)
	}
	defer rows.Close()

	collections := []domain.Collection{}
	for rows.Next() {
		collection, err := scanCollection(rows)
		if err != nil {
			return nil, apperror.Unavailable(err)
		}
		collections = append(collections, *collection)
	}
	return collections, rows.Err()
}

func (r *collectionRepo) Create(ctx context.Context, collection *domain.Collection) error {
	query := `INSERT INTO collections (name, description, user_id) VALUES ($1, $2, $3) RETURNING id`
	err := r.db.QueryRow(ctx, query, collection.Name, collection.Description, collection.UserID).Scan(&collection.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return apperror.InvalidArgument("Referenced user does not exist")
		}
		return apperror.Unavailable(err)
	}
	return nil
}

func (r *collectionRepo) Update(ctx context.Context, collection *domain.Collection) error {
	query := `UPDATE collections SET name = $2, description = $3, user_id = $4 WHERE id = $1`
	result, err := r.db.Exec(ctx, query, collection.ID, collection.Name, collection.Description, collection.UserID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return apperror.InvalidArgument("Referenced user does not exist")
		}
		return apperror.Unavailable(err)
	}
	if result.RowsAffected() == 0 {
		return apperror.NotFound("Collection not found")
	}
	return nil
}

func (r *collectionRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM collections WHERE id = $1`, id)
	if err != nil {
		return apperror.Unavailable(err)
	}
	if result.RowsAffected() == 0 {
		return apperror.NotFound("Collection not found")
	}
	return nil
}
