// Package persistence selects the store that backs the repositories.
package persistence

import (
	"context"
	"log/slog"

	"adresses/config"
	"adresses/internal/domain/repository"
	"adresses/internal/errors"
	"adresses/internal/infra/persistence/docstore"
	"adresses/internal/infra/persistence/postgres"

	firebase "firebase.google.com/go/v4"
	"go.uber.org/fx"
)

// StoreParams defines the dependencies of the store selector.
type StoreParams struct {
	fx.In

	Lc          fx.Lifecycle
	Ctx         context.Context
	Config      *config.Config
	Logger      *slog.Logger
	FirebaseApp *firebase.App `optional:"true"`
}

// StoreResult exposes the repositories of the configured driver.
// Users is nil with the firestore driver: accounts then live in Firebase Authentication.
type StoreResult struct {
	fx.Out

	Addresses repository.AddressRepository
	Comments  repository.CommentRepository
	Ratings   repository.RatingRepository
	TxManager repository.TransactionManager
	Users     repository.UserRepository
}

// NewStore builds the repositories for config.Store.Driver.
func NewStore(params StoreParams) (StoreResult, error) {
	switch params.Config.Store.Driver {
	case config.StoreDriverPostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lc,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return StoreResult{}, err
		}

		return StoreResult{
			Addresses: postgres.NewAddressRepository(db),
			Comments:  postgres.NewCommentRepository(db),
			Ratings:   postgres.NewRatingRepository(db),
			TxManager: postgres.NewTransactionManager(db),
			Users:     postgres.NewUserRepository(db),
		}, nil

	case config.StoreDriverFirestore:
		if params.FirebaseApp == nil {
			return StoreResult{}, errors.New("firestore driver requires a Firebase app")
		}

		client, err := params.FirebaseApp.Firestore(params.Ctx)
		if err != nil {
			return StoreResult{}, errors.Wrap(err, "failed to create Firestore client")
		}

		params.Lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				return client.Close()
			},
		})
		params.Logger.Info("Using Firestore store")

		return StoreResult{
			Addresses: docstore.NewAddressRepository(client),
			Comments:  docstore.NewCommentRepository(client),
			Ratings:   docstore.NewRatingRepository(client),
			TxManager: docstore.NewTransactionManager(client),
		}, nil

	default:
		return StoreResult{}, errors.Errorf("unknown store driver: %s", params.Config.Store.Driver)
	}
}
