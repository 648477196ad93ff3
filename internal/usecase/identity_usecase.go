package usecase

import (
	"context"

	"adresses/internal/domain/entity"
)

// SignUpInput represents the input for creating an account
type SignUpInput struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required"`
	DisplayName string `json:"display_name" validate:"max=100"`
}

// SignInInput represents the input for password sign-in
type SignInInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileInput carries the profile editor fields. Avatar wins over AvatarURL when both are set.
type UpdateProfileInput struct {
	DisplayName *string
	AvatarURL   *string
	Avatar      *entity.Image
}

// IdentityUsecase defines sign-up, sign-in, sign-out and the profile editor.
type IdentityUsecase interface {
	SignUp(ctx context.Context, input *SignUpInput) (*entity.Session, error)
	SignIn(ctx context.Context, input *SignInInput) (*entity.Session, error)
	SignOut(ctx context.Context, identity *entity.Identity) error

	// Authenticate resolves a bearer token into an identity.
	Authenticate(ctx context.Context, token string) (*entity.Identity, error)

	Profile(ctx context.Context, identity *entity.Identity) (*entity.Identity, error)
	UpdateProfile(ctx context.Context, identity *entity.Identity, input *UpdateProfileInput) (*entity.Identity, error)
}
