package auth

import (
	"context"
	"net/http"
	"strings"
	"time"

	domainerrors "lounge/internal/domain/errors"
	"lounge/internal/domain/service"

	firebaseauth "firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/identitytoolkit/v3"
	"google.golang.org/api/option"
)

// firebaseAdmin is the part of the Firebase Auth admin client this provider uses.
type firebaseAdmin interface {
	GetUserByEmail(ctx context.Context, email string) (*firebaseauth.UserRecord, error)
	CreateUser(ctx context.Context, user *firebaseauth.UserToCreate) (*firebaseauth.UserRecord, error)
	UpdateUser(ctx context.Context, uid string, user *firebaseauth.UserToUpdate) (*firebaseauth.UserRecord, error)
	RevokeRefreshTokens(ctx context.Context, uid string) error
	VerifyIDTokenAndCheckRevoked(ctx context.Context, idToken string) (*firebaseauth.Token, error)
}

// passwordVerifier checks an email/password pair and returns the session.
type passwordVerifier func(ctx context.Context, email, password string) (*service.Session, error)

// firebaseAuthService delegates to Firebase Authentication. The admin SDK
// cannot check passwords, so password checks go through the Identity Toolkit
// REST API with the project's web API key.
type firebaseAuthService struct {
	admin          firebaseAdmin
	verifyPassword passwordVerifier
}

// NewFirebaseAuthService creates the Firebase identity provider.
func NewFirebaseAuthService(ctx context.Context, admin *firebaseauth.Client, apiKey string) (service.AuthService, error) {
	if apiKey == "" {
		return nil, errors.New("firebase api key is required for password verification")
	}

	toolkit, err := identitytoolkit.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create identity toolkit client")
	}

	return &firebaseAuthService{
		admin:          admin,
		verifyPassword: toolkitVerifier(toolkit),
	}, nil
}

func toolkitVerifier(toolkit *identitytoolkit.Service) passwordVerifier {
	return func(ctx context.Context, email, password string) (*service.Session, error) {
		resp, err := toolkit.Relyingparty.VerifyPassword(&identitytoolkit.IdentitytoolkitRelyingpartyVerifyPasswordRequest{
			Email:             email,
			Password:          password,
			ReturnSecureToken: true,
		}).Context(ctx).Do()
		if err != nil {
			return nil, mapToolkitError(err)
		}

		return &service.Session{
			Email:     resp.Email,
			Token:     resp.IdToken,
			ExpiresAt: time.Now().Add(time.Duration(resp.ExpiresIn) * time.Second),
		}, nil
	}
}

// mapToolkitError turns Identity Toolkit failures into domain errors.
func mapToolkitError(err error) error {
	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) {
		return errors.Wrap(err, "password verification failed")
	}

	message := apiErr.Message
	switch {
	case strings.HasPrefix(message, "TOO_MANY_ATTEMPTS"):
		return errors.WithStack(domainerrors.ErrTooManyAttempts)
	case apiErr.Code == http.StatusBadRequest:
		// INVALID_PASSWORD, EMAIL_NOT_FOUND, INVALID_LOGIN_CREDENTIALS, USER_DISABLED
		return errors.WithStack(domainerrors.ErrAuthFailed.WithDetails(message))
	default:
		return errors.Wrap(err, "password verification failed")
	}
}

func (s *firebaseAuthService) uid(ctx context.Context, email string) (string, error) {
	user, err := s.admin.GetUserByEmail(ctx, email)
	if err != nil {
		if firebaseauth.IsUserNotFound(err) {
			return "", errors.WithStack(domainerrors.ErrNotFound.WithDetails("account " + email))
		}

		return "", errors.Wrap(err, "failed to look up account")
	}

	return user.UID, nil
}

// CreateAccount registers a new email/password credential.
func (s *firebaseAuthService) CreateAccount(ctx context.Context, email, password string) error {
	_, err := s.admin.CreateUser(ctx, (&firebaseauth.UserToCreate{}).Email(email).Password(password))
	if err != nil {
		if firebaseauth.IsEmailAlreadyExists(err) {
			return errors.WithStack(domainerrors.ErrIdentityConflict)
		}

		return errors.Wrap(err, "failed to create account")
	}

	return nil
}

// SignIn checks the password and returns a Firebase ID token.
func (s *firebaseAuthService) SignIn(ctx context.Context, email, password string) (*service.Session, error) {
	return s.verifyPassword(ctx, email, password)
}

// Reauthenticate proves the caller still knows the password for email.
func (s *firebaseAuthService) Reauthenticate(ctx context.Context, email, password string) error {
	_, err := s.verifyPassword(ctx, email, password)

	return err
}

// VerifyToken verifies a Firebase ID token, including revocation.
func (s *firebaseAuthService) VerifyToken(ctx context.Context, token string) (string, error) {
	verified, err := s.admin.VerifyIDTokenAndCheckRevoked(ctx, token)
	if err != nil {
		return "", errors.WithStack(domainerrors.ErrUnauthenticated.WithDetails(err.Error()))
	}

	email, _ := verified.Claims["email"].(string)
	if email == "" {
		return "", errors.WithStack(domainerrors.ErrUnauthenticated.WithDetails("token has no email"))
	}

	return email, nil
}

// SignOut revokes every refresh token of email.
func (s *firebaseAuthService) SignOut(ctx context.Context, email string) error {
	uid, err := s.uid(ctx, email)
	if err != nil {
		return err
	}

	return errors.Wrap(s.admin.RevokeRefreshTokens(ctx, uid), "failed to revoke sessions")
}

// UpdateEmail changes the account email.
func (s *firebaseAuthService) UpdateEmail(ctx context.Context, oldEmail, newEmail string) error {
	uid, err := s.uid(ctx, oldEmail)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			// Already moved by an earlier attempt.
			if _, newErr := s.uid(ctx, newEmail); newErr == nil {
				return nil
			}
		}

		return err
	}

	_, err = s.admin.UpdateUser(ctx, uid, (&firebaseauth.UserToUpdate{}).Email(newEmail))
	if err != nil {
		if firebaseauth.IsEmailAlreadyExists(err) {
			return errors.WithStack(domainerrors.ErrIdentityConflict)
		}

		return errors.Wrap(err, "failed to update email")
	}

	return nil
}

// UpdatePassword replaces the password of email.
func (s *firebaseAuthService) UpdatePassword(ctx context.Context, email, newPassword string) error {
	uid, err := s.uid(ctx, email)
	if err != nil {
		return err
	}

	_, err = s.admin.UpdateUser(ctx, uid, (&firebaseauth.UserToUpdate{}).Password(newPassword))

	return errors.Wrap(err, "failed to update password")
}
