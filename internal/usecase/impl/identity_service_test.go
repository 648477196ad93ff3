package impl

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"adresses/config"
	"adresses/internal/domain/entity"
	domainerrors "adresses/internal/domain/errors"
	"adresses/internal/domain/service"
	"adresses/internal/errors"
	mockService "adresses/internal/mocks/service"
	"adresses/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newIdentityServiceForTest(t *testing.T) (*identityService, *mockService.MockIdentityProvider, *mockService.MockObjectStore) {
	t.Helper()

	provider := mockService.NewMockIdentityProvider(t)
	store := mockService.NewMockObjectStore(t)

	svc := NewIdentityService(IdentityServiceParams{
		Provider:    provider,
		ObjectStore: store,
		Config:      &config.Config{Storage: &config.StorageConfig{MaxUploadSize: 64}},
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}).(*identityService)
	svc.now = func() time.Time { return time.UnixMilli(1700000000123) }

	return svc, provider, store
}

func strPtr(s string) *string {
	return &s
}

func TestIdentityService_SignUp(t *testing.T) {
	t.Run("weak password", func(t *testing.T) {
		svc, _, _ := newIdentityServiceForTest(t)

		_, err := svc.SignUp(context.Background(), &usecase.SignUpInput{Email: "a@b.fr", Password: "12345"})
		assert.ErrorIs(t, err, domainerrors.ErrPasswordTooWeak)
	})

	t.Run("trims and delegates", func(t *testing.T) {
		svc, provider, _ := newIdentityServiceForTest(t)
		ctx := context.Background()
		session := &entity.Session{Identity: &entity.Identity{UID: "u1"}, Token: "tok"}

		provider.EXPECT().SignUp(ctx, "a@b.fr", "secret", "Ana").Return(session, nil)

		got, err := svc.SignUp(ctx, &usecase.SignUpInput{Email: " a@b.fr ", Password: "secret", DisplayName: " Ana "})
		require.NoError(t, err)
		assert.Equal(t, session, got)
	})

	t.Run("email already used", func(t *testing.T) {
		svc, provider, _ := newIdentityServiceForTest(t)
		provider.EXPECT().SignUp(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(nil, errors.Wrap(service.ErrEmailAlreadyUsed, "users"))

		_, err := svc.SignUp(context.Background(), &usecase.SignUpInput{Email: "a@b.fr", Password: "secret"})
		assert.ErrorIs(t, err, domainerrors.ErrEmailAlreadyUsed)
	})
}

func TestIdentityService_SignIn_ErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		provider error
		want     error
	}{
		{name: "bad credentials", provider: service.ErrInvalidCredentials, want: domainerrors.ErrInvalidCredentials},
		{name: "delegated", provider: service.ErrSignInDelegated, want: domainerrors.ErrSignInDelegated},
		{name: "remote failure", provider: errors.New("unavailable"), want: domainerrors.ErrIdentityServiceFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, provider, _ := newIdentityServiceForTest(t)
			provider.EXPECT().SignIn(mock.Anything, "a@b.fr", "pw").Return(nil, tt.provider)

			_, err := svc.SignIn(context.Background(), &usecase.SignInInput{Email: "a@b.fr", Password: "pw"})
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestIdentityService_Authenticate(t *testing.T) {
	svc, provider, _ := newIdentityServiceForTest(t)
	ctx := context.Background()

	_, err := svc.Authenticate(ctx, " ")
	assert.ErrorIs(t, err, domainerrors.ErrNotSignedIn)

	provider.EXPECT().VerifyToken(ctx, "expired").Return(nil, errors.Join(service.ErrInvalidToken, errors.New("token is expired")))
	_, err = svc.Authenticate(ctx, "expired")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)

	provider.EXPECT().VerifyToken(ctx, "good").Return(alice, nil)
	identity, err := svc.Authenticate(ctx, "good")
	require.NoError(t, err)
	assert.Equal(t, "alice", identity.UID)
}

func TestIdentityService_SignOut(t *testing.T) {
	svc, provider, _ := newIdentityServiceForTest(t)
	ctx := context.Background()

	assert.ErrorIs(t, svc.SignOut(ctx, nil), domainerrors.ErrNotSignedIn)

	provider.EXPECT().SignOut(ctx, "alice").Return(errors.New("revoke failed")).Once()
	assert.ErrorIs(t, svc.SignOut(ctx, alice), domainerrors.ErrSignOutFailed)

	provider.EXPECT().SignOut(ctx, "alice").Return(nil).Once()
	assert.NoError(t, svc.SignOut(ctx, alice))
}

func TestIdentityService_UpdateProfile(t *testing.T) {
	t.Run("avatar upload", func(t *testing.T) {
		svc, provider, store := newIdentityServiceForTest(t)
		ctx := context.Background()

		store.EXPECT().Put(ctx, "avatars/alice_1700000000123.png", []byte("png"), "image/png").Return(nil)
		store.EXPECT().URL("avatars/alice_1700000000123.png").Return("https://cdn.example.com/avatars/alice_1700000000123.png")
		provider.EXPECT().UpdateProfile(ctx, "alice", mock.MatchedBy(func(u entity.ProfileUpdate) bool {
			return u.DisplayName != nil && *u.DisplayName == "Alice B" &&
				u.PhotoURL != nil && strings.HasSuffix(*u.PhotoURL, "alice_1700000000123.png")
		})).Return(&entity.Identity{UID: "alice", DisplayName: "Alice B"}, nil)

		profile, err := svc.UpdateProfile(ctx, alice, &usecase.UpdateProfileInput{
			DisplayName: strPtr(" Alice B "),
			AvatarURL:   strPtr("https://ignored.example.com/a.png"),
			Avatar:      &entity.Image{Data: []byte("png"), ContentType: "image/png"},
		})
		require.NoError(t, err)
		assert.Equal(t, "Alice B", profile.DisplayName)
	})

	t.Run("avatar upload failure", func(t *testing.T) {
		svc, _, store := newIdentityServiceForTest(t)
		store.EXPECT().Put(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("quota"))

		_, err := svc.UpdateProfile(context.Background(), alice, &usecase.UpdateProfileInput{
			Avatar: &entity.Image{Data: []byte("jpg"), ContentType: "image/jpeg"},
		})
		assert.ErrorIs(t, err, domainerrors.ErrAvatarUploadFailed)
	})

	t.Run("avatar url rules", func(t *testing.T) {
		svc, _, _ := newIdentityServiceForTest(t)

		for _, raw := range []string{"ftp://x.fr/a.png", "file:///tmp/a.png", "https://", "https://x.fr/" + strings.Repeat("a", 2000)} {
			_, err := svc.UpdateProfile(context.Background(), alice, &usecase.UpdateProfileInput{AvatarURL: strPtr(raw)})
			assert.ErrorIs(t, err, domainerrors.ErrInvalidAvatarURL, raw)
		}
	})

	t.Run("nothing to change returns the profile", func(t *testing.T) {
		svc, provider, _ := newIdentityServiceForTest(t)
		provider.EXPECT().GetIdentity(mock.Anything, "alice").Return(alice, nil)

		profile, err := svc.UpdateProfile(context.Background(), alice, &usecase.UpdateProfileInput{})
		require.NoError(t, err)
		assert.Equal(t, alice, profile)
	})
}

func TestAcceptableAvatarURL(t *testing.T) {
	assert.True(t, acceptableAvatarURL("https://example.com/a.png"))
	assert.True(t, acceptableAvatarURL("HTTP://example.com/a.png"))
	assert.False(t, acceptableAvatarURL(""))
	assert.False(t, acceptableAvatarURL("/media/avatars/a.png"))
	assert.False(t, acceptableAvatarURL("data:image/png;base64,AAAA"))
}
