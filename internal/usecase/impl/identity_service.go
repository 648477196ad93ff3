package impl

import (
	"context"
	"log/slog"
	"net/url"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"adresses/config"
	deliverycontext "adresses/internal/delivery/context"
	"adresses/internal/domain/constants"
	"adresses/internal/domain/entity"
	domainerrors "adresses/internal/domain/errors"
	"adresses/internal/domain/service"
	"adresses/internal/errors"
	"adresses/internal/usecase"
	"adresses/internal/util"

	"go.uber.org/fx"
)

const (
	minPasswordLength  = 6
	maxAvatarURLLength = 2000
)

// IdentityServiceParams holds dependencies for IdentityService, injected by Fx.
type IdentityServiceParams struct {
	fx.In

	Provider    service.IdentityProvider
	ObjectStore service.ObjectStore
	Config      *config.Config
	Logger      *slog.Logger
}

type identityService struct {
	provider      service.IdentityProvider
	objectStore   service.ObjectStore
	maxUploadSize int64
	logger        *slog.Logger
	now           func() time.Time
}

// NewIdentityService creates the identity use case on top of the configured identity provider.
func NewIdentityService(params IdentityServiceParams) usecase.IdentityUsecase {
	var maxUploadSize int64
	if params.Config != nil && params.Config.Storage != nil {
		maxUploadSize = params.Config.Storage.MaxUploadSize
	}

	return &identityService{
		provider:      params.Provider,
		objectStore:   params.ObjectStore,
		maxUploadSize: maxUploadSize,
		logger:        params.Logger,
		now:           time.Now,
	}
}

func (s *identityService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// SignUp creates an account and returns its first session.
func (s *identityService) SignUp(ctx context.Context, input *usecase.SignUpInput) (*entity.Session, error) {
	email := strings.TrimSpace(input.Email)
	if utf8.RuneCountInString(input.Password) < minPasswordLength {
		return nil, domainerrors.ErrPasswordTooWeak
	}

	session, err := s.provider.SignUp(ctx, email, input.Password, strings.TrimSpace(input.DisplayName))
	if err != nil {
		return nil, s.mapProviderError(ctx, "sign up", err)
	}

	s.log(ctx).Info("Account created", slog.String("uid", session.Identity.UID))

	return session, nil
}

// SignIn exchanges credentials for a session.
func (s *identityService) SignIn(ctx context.Context, input *usecase.SignInInput) (*entity.Session, error) {
	session, err := s.provider.SignIn(ctx, strings.TrimSpace(input.Email), input.Password)
	if err != nil {
		return nil, s.mapProviderError(ctx, "sign in", err)
	}

	return session, nil
}

// SignOut revokes every outstanding token of the identity.
func (s *identityService) SignOut(ctx context.Context, identity *entity.Identity) error {
	if identity == nil {
		return domainerrors.ErrNotSignedIn
	}

	if err := s.provider.SignOut(ctx, identity.UID); err != nil {
		s.log(ctx).Error("Sign out failed", slog.String("uid", identity.UID), slog.Any("error", err))

		return domainerrors.ErrSignOutFailed.WithDetails(err.Error())
	}

	return nil
}

// Authenticate resolves a bearer token.
func (s *identityService) Authenticate(ctx context.Context, token string) (*entity.Identity, error) {
	if strings.TrimSpace(token) == "" {
		return nil, domainerrors.ErrNotSignedIn
	}

	identity, err := s.provider.VerifyToken(ctx, token)
	if err != nil {
		return nil, s.mapProviderError(ctx, "verify token", err)
	}

	return identity, nil
}

// Profile returns the stored profile of the identity.
func (s *identityService) Profile(ctx context.Context, identity *entity.Identity) (*entity.Identity, error) {
	if identity == nil {
		return nil, domainerrors.ErrNotSignedIn
	}

	profile, err := s.provider.GetIdentity(ctx, identity.UID)
	if err != nil {
		return nil, s.mapProviderError(ctx, "get identity", err)
	}

	return profile, nil
}

// UpdateProfile saves the display name and the avatar. An uploaded avatar wins over an avatar URL.
func (s *identityService) UpdateProfile(ctx context.Context, identity *entity.Identity, input *usecase.UpdateProfileInput) (*entity.Identity, error) {
	if identity == nil {
		return nil, domainerrors.ErrNotSignedIn
	}

	var update entity.ProfileUpdate
	if input.DisplayName != nil {
		name := strings.TrimSpace(*input.DisplayName)
		update.DisplayName = &name
	}

	switch {
	case !input.Avatar.Empty():
		photoURL, err := s.uploadAvatar(ctx, identity.UID, input.Avatar)
		if err != nil {
			return nil, err
		}
		update.PhotoURL = &photoURL
	case input.AvatarURL != nil:
		photoURL := strings.TrimSpace(*input.AvatarURL)
		if !acceptableAvatarURL(photoURL) {
			return nil, domainerrors.ErrInvalidAvatarURL
		}
		update.PhotoURL = &photoURL
	}

	if update.DisplayName == nil && update.PhotoURL == nil {
		return s.Profile(ctx, identity)
	}

	profile, err := s.provider.UpdateProfile(ctx, identity.UID, update)
	if err != nil {
		if errors.Is(err, service.ErrIdentityNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}
		s.log(ctx).Error("Profile update failed", slog.String("uid", identity.UID), slog.Any("error", err))

		return nil, domainerrors.ErrProfileUpdateFailed.WithDetails(err.Error())
	}

	return profile, nil
}

// uploadAvatar stores the avatar under avatars/{uid}_{unixMillis}.{ext}. The timestamp keeps CDN caches from serving the old picture.
func (s *identityService) uploadAvatar(ctx context.Context, uid string, avatar *entity.Image) (string, error) {
	if s.maxUploadSize > 0 && int64(len(avatar.Data)) > s.maxUploadSize {
		return "", domainerrors.ErrImageTooLarge.WithDetails("max " + util.FormatBytes(s.maxUploadSize))
	}

	key := constants.AvatarPrefix + "/" + uid + "_" + strconv.FormatInt(s.now().UnixMilli(), 10) + "." + avatar.Ext()
	if err := s.objectStore.Put(ctx, key, avatar.Data, avatar.ContentType); err != nil {
		s.log(ctx).Warn("Avatar upload failed", slog.String("key", key), slog.Any("error", err))

		return "", domainerrors.ErrAvatarUploadFailed.WithDetails(err.Error())
	}

	return s.objectStore.URL(key), nil
}

func (s *identityService) mapProviderError(ctx context.Context, op string, err error) error {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		return domainerrors.ErrInvalidCredentials
	case errors.Is(err, service.ErrInvalidToken):
		return domainerrors.ErrInvalidToken
	case errors.Is(err, service.ErrEmailAlreadyUsed):
		return domainerrors.ErrEmailAlreadyUsed
	case errors.Is(err, service.ErrIdentityNotFound):
		return domainerrors.ErrUserNotFound
	case errors.Is(err, service.ErrSignInDelegated):
		return domainerrors.ErrSignInDelegated
	}

	s.log(ctx).Error("Identity provider failed", slog.String("operation", op), slog.Any("error", err))

	return domainerrors.ErrIdentityServiceFailed.WithDetails(err.Error())
}

// acceptableAvatarURL accepts absolute http(s) URLs of at most 2000 characters.
func acceptableAvatarURL(raw string) bool {
	if raw == "" || len(raw) > maxAvatarURLLength {
		return false
	}

	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return false
	}

	return strings.EqualFold(u.Scheme, "http") || strings.EqualFold(u.Scheme, "https")
}
