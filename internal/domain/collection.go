package domain

import "context"

// Collection is a job collection used by HR for organization. It is
// structurally identical to Course but lives in its own table and has
// no enrollment relation.
type Collection struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	UserID      *int64  `json:"user_id"`
	OwnerName   *string `json:"user_name,omitempty"`
	OwnerEmail  *string `json:"user_email,omitempty"`
}

type CollectionUpdate struct {
	Name        *string
	Description *string
	UserID      *int64
}

type CollectionRepository interface {
	Fetch(ctx context.Context) ([]Collection, error)
	GetByID(ctx context.Context, id int64) (*Collection, error)
	FetchByOwner(ctx context.Context, userID int64) ([]Collection, error)
	Create(ctx context.Context, collection *Collection) error
	Update(ctx context.Context, collection *Collection) error
	Delete(ctx context.Context, id int64) error
}

type CollectionUsecase interface {
	ListCollections(ctx context.Context) ([]Collection, error)
	GetCollection(ctx context.Context, id int64) (*Collection, error)
	ListCollectionsByUser(ctx context.Context, identifier string, hint IdentifierHint) ([]Collection, error)
	CreateCollection(ctx context.Context, input CreateCollectionInput) (*Collection, error)
	UpdateCollection(ctx context.Context, id int64, update CollectionUpdate) (*Collection, error)
	DeleteCollection(ctx context.Context, id int64) error
}

type CreateCollectionInput struct {
	Name        string
	Description string
	UserID      *int64
	UserEmail   string
}
