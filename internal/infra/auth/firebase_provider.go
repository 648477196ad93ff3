package auth

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "adresses/internal/delivery/context"
	"adresses/internal/domain/entity"
	"adresses/internal/domain/service"
	"adresses/internal/errors"

	"firebase.google.com/go/v4/auth"
)

// firebaseAuthClient is the subset of *auth.Client the provider relies on.
type firebaseAuthClient interface {
	CreateUser(ctx context.Context, user *auth.UserToCreate) (*auth.UserRecord, error)
	CustomToken(ctx context.Context, uid string) (string, error)
	RevokeRefreshTokens(ctx context.Context, uid string) error
	VerifyIDTokenAndCheckRevoked(ctx context.Context, idToken string) (*auth.Token, error)
	GetUser(ctx context.Context, uid string) (*auth.UserRecord, error)
	UpdateUser(ctx context.Context, uid string, user *auth.UserToUpdate) (*auth.UserRecord, error)
}

// firebaseIdentityProvider delegates identities to Firebase Authentication.
// Password sign-in happens in the client SDK; the API only verifies the resulting ID tokens.
type firebaseIdentityProvider struct {
	client firebaseAuthClient
	logger *slog.Logger
}

// NewFirebaseIdentityProvider is the constructor for firebaseIdentityProvider.
func NewFirebaseIdentityProvider(client firebaseAuthClient, logger *slog.Logger) service.IdentityProvider {
	return &firebaseIdentityProvider{client: client, logger: logger}
}

// SignUp creates the account and returns a custom token the client exchanges for an ID token.
func (p *firebaseIdentityProvider) SignUp(ctx context.Context, email, password, displayName string) (*entity.Session, error) {
	params := (&auth.UserToCreate{}).Email(strings.TrimSpace(email)).Password(password)
	if name := strings.TrimSpace(displayName); name != "" {
		params = params.DisplayName(name)
	}

	record, err := p.client.CreateUser(ctx, params)
	if err != nil {
		if auth.IsEmailAlreadyExists(err) {
			return nil, service.ErrEmailAlreadyUsed
		}

		return nil, errors.Wrap(err, "failed to create firebase user")
	}

	token, err := p.client.CustomToken(ctx, record.UID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to mint custom token")
	}

	deliverycontext.GetLoggerOrDefault(ctx, p.logger).Info("Firebase account created", slog.String("uid", record.UID))

	return &entity.Session{Identity: toIdentity(record), Token: token}, nil
}

func (p *firebaseIdentityProvider) SignIn(_ context.Context, _, _ string) (*entity.Session, error) {
	return nil, service.ErrSignInDelegated
}

// SignOut revokes every refresh token of uid; ID tokens issued before are rejected from then on.
func (p *firebaseIdentityProvider) SignOut(ctx context.Context, uid string) error {
	if err := p.client.RevokeRefreshTokens(ctx, uid); err != nil {
		if auth.IsUserNotFound(err) {
			return service.ErrIdentityNotFound
		}

		return errors.Wrap(err, "failed to revoke refresh tokens")
	}

	return nil
}

func (p *firebaseIdentityProvider) VerifyToken(ctx context.Context, token string) (*entity.Identity, error) {
	verified, err := p.client.VerifyIDTokenAndCheckRevoked(ctx, token)
	if err != nil {
		return nil, errors.Join(service.ErrInvalidToken, err)
	}

	identity := &entity.Identity{UID: verified.UID}
	if name, ok := verified.Claims["name"].(string); ok {
		identity.DisplayName = name
	}
	if email, ok := verified.Claims["email"].(string); ok {
		identity.Email = email
	}
	if picture, ok := verified.Claims["picture"].(string); ok {
		identity.PhotoURL = picture
	}

	return identity, nil
}

func (p *firebaseIdentityProvider) GetIdentity(ctx context.Context, uid string) (*entity.Identity, error) {
	record, err := p.client.GetUser(ctx, uid)
	if err != nil {
		if auth.IsUserNotFound(err) {
			return nil, service.ErrIdentityNotFound
		}

		return nil, errors.Wrap(err, "failed to get firebase user")
	}

	return toIdentity(record), nil
}

func (p *firebaseIdentityProvider) UpdateProfile(ctx context.Context, uid string, update entity.ProfileUpdate) (*entity.Identity, error) {
	if update.DisplayName == nil && update.PhotoURL == nil {
		return p.GetIdentity(ctx, uid)
	}

	params := &auth.UserToUpdate{}
	if update.DisplayName != nil {
		params = params.DisplayName(*update.DisplayName)
	}
	if update.PhotoURL != nil {
		params = params.PhotoURL(*update.PhotoURL)
	}

	record, err := p.client.UpdateUser(ctx, uid, params)
	if err != nil {
		if auth.IsUserNotFound(err) {
			return nil, service.ErrIdentityNotFound
		}

		return nil, errors.Wrap(err, "failed to update firebase user")
	}

	return toIdentity(record), nil
}

func toIdentity(record *auth.UserRecord) *entity.Identity {
	if record == nil || record.UserInfo == nil {
		return nil
	}

	return &entity.Identity{
		UID:         record.UID,
		DisplayName: record.DisplayName,
		Email:       record.Email,
		PhotoURL:    record.PhotoURL,
	}
}
