package service

import (
	"context"

	"adresses/internal/domain/entity"
	"adresses/internal/errors"
)

// Identity provider errors, mapped to user-facing errors by the identity use case.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrEmailAlreadyUsed   = errors.New("email already used")
	ErrIdentityNotFound   = errors.New("identity not found")
	ErrSignInDelegated    = errors.New("password sign-in is handled by the client SDK")
)

// IdentityProvider is the identity service: it yields a stable user id, a display name and an
// email for a bearer token, and supports sign-up, sign-in, sign-out and profile updates.
type IdentityProvider interface {
	SignUp(ctx context.Context, email, password, displayName string) (*entity.Session, error)
	SignIn(ctx context.Context, email, password string) (*entity.Session, error)

	// SignOut invalidates every outstanding token of uid.
	SignOut(ctx context.Context, uid string) error

	// VerifyToken resolves a bearer token into the identity it was issued for.
	VerifyToken(ctx context.Context, token string) (*entity.Identity, error)

	GetIdentity(ctx context.Context, uid string) (*entity.Identity, error)
	UpdateProfile(ctx context.Context, uid string, update entity.ProfileUpdate) (*entity.Identity, error)
}
