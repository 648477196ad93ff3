package auth

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "adresses/internal/delivery/context"
	"adresses/internal/domain/entity"
	"adresses/internal/domain/repository"
	"adresses/internal/domain/service"
	"adresses/internal/errors"
)

// localIdentityProvider manages accounts in the users table and issues HS256 access tokens.
// Each token carries the account's token version; sign-out bumps the version.
type localIdentityProvider struct {
	users  repository.UserRepository
	hasher service.PasswordHasher
	tokens service.TokenService
	logger *slog.Logger
}

// NewLocalIdentityProvider is the constructor for localIdentityProvider.
func NewLocalIdentityProvider(
	users repository.UserRepository,
	hasher service.PasswordHasher,
	tokens service.TokenService,
	logger *slog.Logger,
) service.IdentityProvider {
	return &localIdentityProvider{
		users:  users,
		hasher: hasher,
		tokens: tokens,
		logger: logger,
	}
}

func (p *localIdentityProvider) SignUp(ctx context.Context, email, password, displayName string) (*entity.Session, error) {
	hash, err := p.hasher.Hash(password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	user := &entity.User{
		Email:        email,
		DisplayName:  strings.TrimSpace(displayName),
		PasswordHash: hash,
	}
	if err := p.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUserAlreadyExists) {
			return nil, service.ErrEmailAlreadyUsed
		}

		return nil, err
	}

	deliverycontext.GetLoggerOrDefault(ctx, p.logger).Info("Account created", slog.String("uid", user.UID))

	return p.session(user)
}

func (p *localIdentityProvider) SignIn(ctx context.Context, email, password string) (*entity.Session, error) {
	user, err := p.users.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, service.ErrInvalidCredentials
		}

		return nil, err
	}

	if !p.hasher.Check(password, user.PasswordHash) {
		return nil, service.ErrInvalidCredentials
	}

	return p.session(user)
}

func (p *localIdentityProvider) SignOut(ctx context.Context, uid string) error {
	if _, err := p.users.IncrementTokenVersion(ctx, uid); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return service.ErrIdentityNotFound
		}

		return err
	}

	return nil
}

func (p *localIdentityProvider) VerifyToken(ctx context.Context, token string) (*entity.Identity, error) {
	claims, err := p.tokens.ValidateToken(token)
	if err != nil {
		return nil, errors.Join(service.ErrInvalidToken, err)
	}

	user, err := p.users.FindUserByUID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, service.ErrInvalidToken
		}

		return nil, err
	}

	if user.TokenVersion != claims.TokenVersion {
		return nil, service.ErrInvalidToken
	}

	return user.Identity(), nil
}

func (p *localIdentityProvider) GetIdentity(ctx context.Context, uid string) (*entity.Identity, error) {
	user, err := p.users.FindUserByUID(ctx, uid)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, service.ErrIdentityNotFound
		}

		return nil, err
	}

	return user.Identity(), nil
}

func (p *localIdentityProvider) UpdateProfile(ctx context.Context, uid string, update entity.ProfileUpdate) (*entity.Identity, error) {
	user, err := p.users.UpdateProfile(ctx, uid, update)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, service.ErrIdentityNotFound
		}

		return nil, err
	}

	return user.Identity(), nil
}

func (p *localIdentityProvider) session(user *entity.User) (*entity.Session, error) {
	token, err := p.tokens.GenerateAccessToken(user.UID, user.TokenVersion)
	if err != nil {
		return nil, err
	}

	return &entity.Session{Identity: user.Identity(), Token: token}, nil
}
