package auth

import (
	"context"
	"time"

	"lounge/internal/domain/entity"
	domainerrors "lounge/internal/domain/errors"
	"lounge/internal/domain/identity"
	"lounge/internal/domain/repository"
	"lounge/internal/domain/service"
	"lounge/internal/domain/validation"

	"github.com/pkg/errors"
)

// localAuthService keeps credentials in the record store under
// credentials/<identityKey> and issues its own session tokens.
type localAuthService struct {
	store  repository.RecordStore
	hasher service.PasswordHasher
	tokens service.TokenService
	now    func() time.Time
}

// NewLocalAuthService creates the self-hosted identity provider.
func NewLocalAuthService(store repository.RecordStore, hasher service.PasswordHasher, tokens service.TokenService) service.AuthService {
	return &localAuthService{
		store:  store,
		hasher: hasher,
		tokens: tokens,
		now:    time.Now,
	}
}

func (s *localAuthService) credential(ctx context.Context, email string) (*entity.Credential, string, error) {
	key, err := identity.Encode(email)
	if err != nil {
		return nil, "", err
	}

	doc, ok, err := s.store.Get(ctx, entity.CollectionCredentials, key)
	if err != nil {
		return nil, key, err
	}
	if !ok {
		return nil, key, nil
	}

	var cred entity.Credential
	if err := entity.DecodeDocument(doc, &cred); err != nil {
		return nil, key, err
	}

	return &cred, key, nil
}

func (s *localAuthService) save(ctx context.Context, key string, cred entity.Credential) error {
	doc, err := entity.NormalizeDocument(cred)
	if err != nil {
		return err
	}

	return s.store.Set(ctx, entity.CollectionCredentials, key, doc)
}

// CreateAccount registers a new email/password credential.
func (s *localAuthService) CreateAccount(ctx context.Context, email, password string) error {
	if len(password) < validation.MinPasswordLength {
		return errors.WithStack(domainerrors.Validation("password is too short"))
	}

	existing, key, err := s.credential(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil {
		return errors.WithStack(domainerrors.ErrIdentityConflict)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return err
	}

	return s.save(ctx, key, entity.Credential{Email: email, PasswordHash: hash})
}

// SignIn checks the password and opens a session.
func (s *localAuthService) SignIn(ctx context.Context, email, password string) (*service.Session, error) {
	if err := s.Reauthenticate(ctx, email, password); err != nil {
		return nil, err
	}

	token, expiresAt, err := s.tokens.GenerateToken(email)
	if err != nil {
		return nil, err
	}

	return &service.Session{Email: email, Token: token, ExpiresAt: expiresAt}, nil
}

// Reauthenticate proves the caller still knows the password for email.
func (s *localAuthService) Reauthenticate(ctx context.Context, email, password string) error {
	cred, _, err := s.credential(ctx, email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrInvalidIdentity) {
			return errors.WithStack(domainerrors.ErrAuthFailed)
		}

		return err
	}
	if cred == nil || !s.hasher.Check(password, cred.PasswordHash) {
		return errors.WithStack(domainerrors.ErrAuthFailed)
	}

	return nil
}

// VerifyToken returns the email a session token belongs to. Tokens issued
// before the last sign-out, or for a credential that no longer exists, are
// rejected.
func (s *localAuthService) VerifyToken(ctx context.Context, token string) (string, error) {
	claims, err := s.tokens.ValidateToken(token)
	if err != nil {
		return "", errors.WithStack(domainerrors.ErrUnauthenticated.WithDetails(err.Error()))
	}

	cred, _, err := s.credential(ctx, claims.Email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrInvalidIdentity) {
			return "", errors.WithStack(domainerrors.ErrUnauthenticated)
		}

		return "", err
	}
	if cred == nil {
		return "", errors.WithStack(domainerrors.ErrUnauthenticated)
	}
	if claims.IssuedAt == nil || claims.IssuedAt.Unix() < cred.TokensValidAfter {
		return "", errors.WithStack(domainerrors.ErrUnauthenticated.WithDetails("session revoked"))
	}

	return claims.Email, nil
}

// SignOut revokes every session of email.
func (s *localAuthService) SignOut(ctx context.Context, email string) error {
	cred, key, err := s.credential(ctx, email)
	if err != nil {
		return err
	}
	if cred == nil {
		return nil
	}

	cred.TokensValidAfter = s.now().Unix()

	return s.save(ctx, key, *cred)
}

// UpdateEmail moves the credential from oldEmail to newEmail. Sessions of
// the old email stop verifying once the old credential is gone.
func (s *localAuthService) UpdateEmail(ctx context.Context, oldEmail, newEmail string) error {
	cred, oldKey, err := s.credential(ctx, oldEmail)
	if err != nil {
		return err
	}
	existing, newKey, err := s.credential(ctx, newEmail)
	if err != nil {
		return err
	}

	switch {
	case cred == nil && existing != nil:
		// Already moved by an earlier attempt.
		return nil
	case cred == nil:
		return errors.WithStack(domainerrors.ErrNotFound.WithDetails("credential " + oldEmail))
	case existing != nil:
		return errors.WithStack(domainerrors.ErrIdentityConflict)
	}

	cred.Email = newEmail
	if err := s.save(ctx, newKey, *cred); err != nil {
		return err
	}

	return s.store.Delete(ctx, entity.CollectionCredentials, oldKey)
}

// UpdatePassword replaces the password of email.
func (s *localAuthService) UpdatePassword(ctx context.Context, email, newPassword string) error {
	cred, key, err := s.credential(ctx, email)
	if err != nil {
		return err
	}
	if cred == nil {
		return errors.WithStack(domainerrors.ErrNotFound.WithDetails("credential " + email))
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return err
	}
	cred.PasswordHash = hash

	return s.save(ctx, key, *cred)
}
