package auth

import (
	"context"
	"testing"
	"time"

	"lounge/config"
	"lounge/internal/domain/entity"
	domainerrors "lounge/internal/domain/errors"
	"lounge/internal/infra/persistence/memstore"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestLocalAuth(t *testing.T) (*localAuthService, *memstore.Store) {
	cfg := &config.Config{}
	cfg.Auth.SecretKey = "local-auth-test-secret"
	cfg.Auth.BcryptCost = bcrypt.MinCost

	tokens, err := NewJWTService(cfg)
	require.NoError(t, err)

	store := memstore.New()
	svc := NewLocalAuthService(store, NewBcryptHasher(cfg), tokens).(*localAuthService)

	return svc, store
}

func TestLocalAuth_CreateAndSignIn(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestLocalAuth(t)

	require.NoError(t, svc.CreateAccount(ctx, "jane.doe@example.com", "secret123"))
	_, ok, err := store.Get(ctx, entity.CollectionCredentials, "jane_doe@example_com")
	require.NoError(t, err)
	assert.True(t, ok)

	err = svc.CreateAccount(ctx, "jane.doe@example.com", "secret123")
	assert.True(t, errors.Is(err, domainerrors.ErrIdentityConflict))

	session, err := svc.SignIn(ctx, "jane.doe@example.com", "secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)

	email, err := svc.VerifyToken(ctx, session.Token)
	require.NoError(t, err)
	assert.Equal(t, "jane.doe@example.com", email)
}

func TestLocalAuth_CreateAccountValidation(t *testing.T) {
	svc, _ := newTestLocalAuth(t)

	err := svc.CreateAccount(context.Background(), "jane.doe@example.com", "123")
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	err = svc.CreateAccount(context.Background(), "not-an-email", "secret123")
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidIdentity))
}

func TestLocalAuth_Reauthenticate(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestLocalAuth(t)
	require.NoError(t, svc.CreateAccount(ctx, "jane.doe@example.com", "secret123"))

	assert.NoError(t, svc.Reauthenticate(ctx, "jane.doe@example.com", "secret123"))
	assert.True(t, errors.Is(svc.Reauthenticate(ctx, "jane.doe@example.com", "wrong"), domainerrors.ErrAuthFailed))
	assert.True(t, errors.Is(svc.Reauthenticate(ctx, "bob@example.com", "secret123"), domainerrors.ErrAuthFailed))
	assert.True(t, errors.Is(svc.Reauthenticate(ctx, "garbage", "secret123"), domainerrors.ErrAuthFailed))
}

func TestLocalAuth_SignOutRevokesSessions(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestLocalAuth(t)
	require.NoError(t, svc.CreateAccount(ctx, "jane.doe@example.com", "secret123"))

	session, err := svc.SignIn(ctx, "jane.doe@example.com", "secret123")
	require.NoError(t, err)

	svc.now = func() time.Time { return time.Now().Add(time.Minute) }
	require.NoError(t, svc.SignOut(ctx, "jane.doe@example.com"))

	_, err = svc.VerifyToken(ctx, session.Token)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
}

func TestLocalAuth_UpdateEmail(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestLocalAuth(t)
	require.NoError(t, svc.CreateAccount(ctx, "jane.doe@example.com", "secret123"))
	session, err := svc.SignIn(ctx, "jane.doe@example.com", "secret123")
	require.NoError(t, err)

	require.NoError(t, svc.UpdateEmail(ctx, "jane.doe@example.com", "jane.smith@example.com"))

	assert.NoError(t, svc.Reauthenticate(ctx, "jane.smith@example.com", "secret123"))
	assert.Error(t, svc.Reauthenticate(ctx, "jane.doe@example.com", "secret123"))
	assert.Equal(t, 1, store.Len(entity.CollectionCredentials))

	_, err = svc.VerifyToken(ctx, session.Token)
	assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))

	// Retrying after success is a no-op.
	assert.NoError(t, svc.UpdateEmail(ctx, "jane.doe@example.com", "jane.smith@example.com"))
}

func TestLocalAuth_UpdateEmailConflict(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestLocalAuth(t)
	require.NoError(t, svc.CreateAccount(ctx, "jane.doe@example.com", "secret123"))
	require.NoError(t, svc.CreateAccount(ctx, "jane.smith@example.com", "secret456"))

	err := svc.UpdateEmail(ctx, "jane.doe@example.com", "jane.smith@example.com")
	assert.True(t, errors.Is(err, domainerrors.ErrIdentityConflict))

	err = svc.UpdateEmail(ctx, "nobody@example.com", "someone@example.com")
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestLocalAuth_UpdatePassword(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestLocalAuth(t)
	require.NoError(t, svc.CreateAccount(ctx, "jane.doe@example.com", "secret123"))

	require.NoError(t, svc.UpdatePassword(ctx, "jane.doe@example.com", "newsecret1"))

	assert.NoError(t, svc.Reauthenticate(ctx, "jane.doe@example.com", "newsecret1"))
	assert.Error(t, svc.Reauthenticate(ctx, "jane.doe@example.com", "secret123"))
}
