package domain

import "context"

type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Age   *int   `json:"age,omitempty" validate:"omitempty,gte=0,lte=150"`
}

// UserUpdate carries a partial update; nil fields keep the stored value.
type UserUpdate struct {
	Name  *string
	Email *string
	Age   *int
}

// UserRepository is the canonical user directory. Lookups return
// (nil, nil) when no row matches; errors are reserved for storage
// failures and constraint violations.
type UserRepository interface {
	Fetch(ctx context.Context) ([]User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, user *User) error
	Update(ctx context.Context, user *User) error
	Delete(ctx context.Context, id int64) error
}

type UserUsecase interface {
	ListUsers(ctx context.Context) ([]User, error)
	GetUser(ctx context.Context, id int64) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	CreateUser(ctx context.Context, user *User) error
	UpdateUser(ctx context.Context, id int64, update UserUpdate) (*User, error)
	DeleteUser(ctx context.Context, id int64) error
}
