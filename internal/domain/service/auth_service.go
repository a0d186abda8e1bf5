package service

import (
	"context"
	"time"
)

// Session is the result of a successful sign-in.
type Session struct {
	Email     string
	Token     string
	ExpiresAt time.Time
}

// AuthService is the identity provider. It owns credentials; user data lives
// in the record store.
type AuthService interface {
	// CreateAccount registers a new email/password credential.
	CreateAccount(ctx context.Context, email, password string) error

	// SignIn checks the password and opens a session.
	SignIn(ctx context.Context, email, password string) (*Session, error)

	// Reauthenticate proves the caller still knows the password for email.
	// It fails with ErrAuthFailed on a wrong password.
	Reauthenticate(ctx context.Context, email, password string) error

	// VerifyToken returns the email of the identity a session token belongs to.
	VerifyToken(ctx context.Context, token string) (string, error)

	// SignOut revokes every session of email.
	SignOut(ctx context.Context, email string) error

	// UpdateEmail moves the credential from oldEmail to newEmail.
	UpdateEmail(ctx context.Context, oldEmail, newEmail string) error

	// UpdatePassword replaces the password of email.
	UpdatePassword(ctx context.Context, email, newPassword string) error
}
