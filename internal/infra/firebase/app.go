// Package firebase builds the Firebase app shared by the realtime database
// record store and the Firebase auth provider.
package firebase

import (
	"context"
	"log/slog"

	"lounge/config"

	firebasesdk "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// Params holds dependencies for the Firebase app, injected by Fx
type Params struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewApp initializes the Firebase app. It returns nil when Firebase is not
// configured; consumers that need it fail at their own construction.
func NewApp(params Params) (*firebasesdk.App, error) {
	cfg := params.Config.Firebase
	if cfg == nil || (cfg.ProjectID == "" && cfg.DatabaseURL == "") {
		params.Logger.Info("Firebase not configured")

		return nil, nil
	}

	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	app, err := firebasesdk.NewApp(params.Ctx, &firebasesdk.Config{
		ProjectID:   cfg.ProjectID,
		DatabaseURL: cfg.DatabaseURL,
	}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	params.Logger.Info("Firebase app initialized",
		slog.String("project_id", cfg.ProjectID),
		slog.String("database_url", cfg.DatabaseURL),
	)

	return app, nil
}
