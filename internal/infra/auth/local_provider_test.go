package auth

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"adresses/internal/domain/entity"
	"adresses/internal/domain/repository"
	"adresses/internal/domain/service"
	"adresses/internal/errors"
	mockRepository "adresses/internal/mocks/repository"
	mockService "adresses/internal/mocks/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type localProviderFixture struct {
	provider service.IdentityProvider
	users    *mockRepository.MockUserRepository
	hasher   *mockService.MockPasswordHasher
	tokens   *mockService.MockTokenService
}

func newLocalProviderFixture(t *testing.T) *localProviderFixture {
	t.Helper()

	f := &localProviderFixture{
		users:  mockRepository.NewMockUserRepository(t),
		hasher: mockService.NewMockPasswordHasher(t),
		tokens: mockService.NewMockTokenService(t),
	}
	f.provider = NewLocalIdentityProvider(f.users, f.hasher, f.tokens, slog.New(slog.NewTextHandler(io.Discard, nil)))

	return f
}

func TestLocalIdentityProvider_SignUp(t *testing.T) {
	f := newLocalProviderFixture(t)
	ctx := context.Background()

	f.hasher.EXPECT().Hash("secret").Return("hashed", nil)
	f.users.EXPECT().CreateUser(ctx, mock.Anything).RunAndReturn(func(_ context.Context, u *entity.User) error {
		assert.Equal(t, "hashed", u.PasswordHash)
		assert.Equal(t, "Léa", u.DisplayName)
		u.UID = "u1"

		return nil
	})
	f.tokens.EXPECT().GenerateAccessToken("u1", 0).Return("token", nil)

	session, err := f.provider.SignUp(ctx, "lea@example.fr", "secret", " Léa ")
	require.NoError(t, err)
	assert.Equal(t, "token", session.Token)
	assert.Equal(t, "u1", session.Identity.UID)
	assert.Equal(t, "lea@example.fr", session.Identity.Email)
}

func TestLocalIdentityProvider_SignUpDuplicateEmail(t *testing.T) {
	f := newLocalProviderFixture(t)

	f.hasher.EXPECT().Hash(mock.Anything).Return("hashed", nil)
	f.users.EXPECT().CreateUser(mock.Anything, mock.Anything).Return(errors.Wrap(repository.ErrUserAlreadyExists, "insert"))

	_, err := f.provider.SignUp(context.Background(), "lea@example.fr", "secret", "")
	assert.ErrorIs(t, err, service.ErrEmailAlreadyUsed)
}

func TestLocalIdentityProvider_SignIn(t *testing.T) {
	user := &entity.User{UID: "u1", Email: "lea@example.fr", PasswordHash: "hashed", TokenVersion: 3}

	t.Run("unknown email", func(t *testing.T) {
		f := newLocalProviderFixture(t)
		f.users.EXPECT().FindUserByEmail(mock.Anything, "nobody@example.fr").Return(nil, repository.ErrUserNotFound)

		_, err := f.provider.SignIn(context.Background(), "nobody@example.fr", "secret")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		f := newLocalProviderFixture(t)
		f.users.EXPECT().FindUserByEmail(mock.Anything, user.Email).Return(user, nil)
		f.hasher.EXPECT().Check("nope", "hashed").Return(false)

		_, err := f.provider.SignIn(context.Background(), user.Email, "nope")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})

	t.Run("token carries the current version", func(t *testing.T) {
		f := newLocalProviderFixture(t)
		f.users.EXPECT().FindUserByEmail(mock.Anything, user.Email).Return(user, nil)
		f.hasher.EXPECT().Check("secret", "hashed").Return(true)
		f.tokens.EXPECT().GenerateAccessToken("u1", 3).Return("token", nil)

		session, err := f.provider.SignIn(context.Background(), user.Email, "secret")
		require.NoError(t, err)
		assert.Equal(t, "token", session.Token)
	})
}

func TestLocalIdentityProvider_VerifyToken(t *testing.T) {
	claims := func(version int) *service.Claims {
		return &service.Claims{TokenVersion: version, RegisteredClaims: jwt.RegisteredClaims{Subject: "u1"}}
	}

	t.Run("bad signature", func(t *testing.T) {
		f := newLocalProviderFixture(t)
		f.tokens.EXPECT().ValidateToken("forged").Return(nil, errors.New("signature is invalid"))

		_, err := f.provider.VerifyToken(context.Background(), "forged")
		assert.ErrorIs(t, err, service.ErrInvalidToken)
	})

	t.Run("revoked by sign out", func(t *testing.T) {
		f := newLocalProviderFixture(t)
		f.tokens.EXPECT().ValidateToken("old").Return(claims(1), nil)
		f.users.EXPECT().FindUserByUID(mock.Anything, "u1").Return(&entity.User{UID: "u1", TokenVersion: 2}, nil)

		_, err := f.provider.VerifyToken(context.Background(), "old")
		assert.ErrorIs(t, err, service.ErrInvalidToken)
	})

	t.Run("valid", func(t *testing.T) {
		f := newLocalProviderFixture(t)
		f.tokens.EXPECT().ValidateToken("good").Return(claims(2), nil)
		f.users.EXPECT().FindUserByUID(mock.Anything, "u1").Return(&entity.User{UID: "u1", DisplayName: "Léa", TokenVersion: 2}, nil)

		identity, err := f.provider.VerifyToken(context.Background(), "good")
		require.NoError(t, err)
		assert.Equal(t, "Léa", identity.DisplayName)
	})
}

func TestLocalIdentityProvider_SignOut(t *testing.T) {
	f := newLocalProviderFixture(t)
	ctx := context.Background()

	f.users.EXPECT().IncrementTokenVersion(ctx, "u1").Return(4, nil).Once()
	require.NoError(t, f.provider.SignOut(ctx, "u1"))

	f.users.EXPECT().IncrementTokenVersion(ctx, "ghost").Return(0, repository.ErrUserNotFound).Once()
	assert.ErrorIs(t, f.provider.SignOut(ctx, "ghost"), service.ErrIdentityNotFound)
}
