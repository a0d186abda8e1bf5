package auth

import (
	"context"
	"log/slog"

	"lounge/config"
	"lounge/internal/domain/repository"
	"lounge/internal/domain/service"

	firebasesdk "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Identity providers
const (
	ProviderFirebase = "firebase"
	ProviderLocal    = "local"
)

// ProviderParams holds dependencies for the AuthService, injected by Fx
type ProviderParams struct {
	fx.In

	Ctx         context.Context
	Config      *config.Config
	Logger      *slog.Logger
	Store       repository.RecordStore
	Hasher      service.PasswordHasher
	FirebaseApp *firebasesdk.App `optional:"true"`
}

// NewAuthService creates the AuthService selected by auth.provider, wrapped
// with per-identity throttling.
func NewAuthService(params ProviderParams) (service.AuthService, error) {
	cfg := params.Config.Auth

	var (
		authService service.AuthService
		err         error
	)
	switch cfg.Provider {
	case ProviderFirebase:
		if params.FirebaseApp == nil || params.Config.Firebase == nil {
			return nil, errors.New("firebase auth provider requires firebase configuration")
		}
		client, clientErr := params.FirebaseApp.Auth(params.Ctx)
		if clientErr != nil {
			return nil, errors.Wrap(clientErr, "failed to get firebase auth client")
		}
		authService, err = NewFirebaseAuthService(params.Ctx, client, params.Config.Firebase.APIKey)
		if err != nil {
			return nil, err
		}

	case ProviderLocal, "":
		tokens, tokenErr := NewJWTService(params.Config)
		if tokenErr != nil {
			return nil, tokenErr
		}
		authService = NewLocalAuthService(params.Store, params.Hasher, tokens)

	default:
		return nil, errors.Errorf("unknown auth provider: %s", cfg.Provider)
	}

	params.Logger.Info("Auth provider initialized",
		slog.String("provider", cfg.Provider),
		slog.Float64("reauth_per_minute", cfg.ReauthRate.PerMinute),
	)

	return NewThrottledAuthService(authService, cfg.ReauthRate.PerMinute, cfg.ReauthRate.Burst), nil
}
