// Package firebase builds the Firebase Admin app shared by Firestore and Firebase Authentication.
package firebase

import (
	"context"
	"log/slog"

	"adresses/config"
	"adresses/internal/errors"

	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"
)

// NewApp initializes the Firebase Admin app. It returns nil when no firebase section is configured.
func NewApp(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*firebase.App, error) {
	if cfg.Firebase == nil {
		return nil, nil
	}

	var opts []option.ClientOption
	if cfg.Firebase.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Firebase.CredentialsPath))
	}

	var appConfig *firebase.Config
	if cfg.Firebase.ProjectID != "" {
		appConfig = &firebase.Config{ProjectID: cfg.Firebase.ProjectID}
	}

	app, err := firebase.NewApp(ctx, appConfig, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	logger.Info("Firebase app initialized",
		slog.String("project_id", cfg.Firebase.ProjectID),
		slog.Bool("credentials_file", cfg.Firebase.CredentialsPath != ""),
	)

	return app, nil
}
