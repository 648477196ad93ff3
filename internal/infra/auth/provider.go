package auth

import (
	"context"
	"log/slog"

	"adresses/config"
	"adresses/internal/domain/repository"
	"adresses/internal/domain/service"
	"adresses/internal/errors"

	firebase "firebase.google.com/go/v4"
	"go.uber.org/fx"
)

// IdentityParams holds the dependencies of the identity provider, injected by Fx.
type IdentityParams struct {
	fx.In

	Ctx         context.Context
	Config      *config.Config
	Logger      *slog.Logger
	Users       repository.UserRepository `optional:"true"`
	FirebaseApp *firebase.App             `optional:"true"`
}

// NewIdentityProvider selects the identity provider named by identity.provider.
func NewIdentityProvider(params IdentityParams) (service.IdentityProvider, error) {
	cfg := params.Config

	switch cfg.Identity.Provider {
	case config.IdentityProviderLocal:
		if params.Users == nil {
			return nil, errors.New("local identity provider requires a user repository")
		}

		tokens, err := NewJWTService(cfg)
		if err != nil {
			return nil, err
		}
		params.Logger.Info("Using local identity provider",
			slog.Duration("access_token_ttl", tokens.AccessTokenDuration()),
		)

		return NewLocalIdentityProvider(params.Users, NewBcryptHasher(cfg), tokens, params.Logger), nil

	case config.IdentityProviderFirebase:
		if params.FirebaseApp == nil {
			return nil, errors.New("firebase identity provider requires a Firebase app")
		}

		client, err := params.FirebaseApp.Auth(params.Ctx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create Firebase auth client")
		}
		params.Logger.Info("Using Firebase identity provider")

		return NewFirebaseIdentityProvider(client, params.Logger), nil

	default:
		return nil, errors.Errorf("unknown identity provider: %s", cfg.Identity.Provider)
	}
}
