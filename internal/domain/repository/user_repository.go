package repository

import (
	"context"

	"adresses/internal/domain/entity"
	"adresses/internal/errors"
)

var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserAlreadyExists is returned when the email is already registered.
	ErrUserAlreadyExists = errors.New("user already exists")
)

// UserRepository stores accounts managed by the local identity provider.
type UserRepository interface {
	// CreateUser persists a new account. Returns ErrUserAlreadyExists on a duplicate email.
	CreateUser(ctx context.Context, user *entity.User) error

	FindUserByUID(ctx context.Context, uid string) (*entity.User, error)

	// FindUserByEmail matches case-insensitively.
	FindUserByEmail(ctx context.Context, email string) (*entity.User, error)

	// UpdateProfile applies the non-nil fields of update.
	UpdateProfile(ctx context.Context, uid string, update entity.ProfileUpdate) (*entity.User, error)

	// IncrementTokenVersion bumps the token version and returns the new value.
	IncrementTokenVersion(ctx context.Context, uid string) (int, error)
}
