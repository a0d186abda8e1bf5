package usecase

import (
	"context"
	"time"

	"lounge/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to open an account.
type RegisterInput struct {
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
	Name            string `json:"name" validate:"required"`
	Surname         string `json:"surname" validate:"required"`
}

// LoginInput defines the data required to sign in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateNameInput replaces the profile name and surname.
type UpdateNameInput struct {
	Name    string `json:"name" validate:"required"`
	Surname string `json:"surname" validate:"required"`
}

// ChangeEmailInput moves the account to a new email.
type ChangeEmailInput struct {
	NewEmail string `json:"newEmail" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ChangePasswordInput replaces the account password.
type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

// DeletionRequestInput asks for the account to be erased.
type DeletionRequestInput struct {
	Password  string `json:"password" validate:"required"`
	Reason    string `json:"reason" validate:"required"`
	Confirmed bool   `json:"confirmed"`
}

// --- Output DTOs ---

// ProfileOutput is the profile as shown on the account screen.
type ProfileOutput struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Surname  string `json:"surname"`
	Initials string `json:"initials"`
}

// LoginOutput returns the session opened by a sign-in.
type LoginOutput struct {
	Token     string         `json:"token"`
	ExpiresAt time.Time      `json:"expiresAt"`
	Profile   *ProfileOutput `json:"profile"`
}

// DeletionRequestOutput identifies the stored deletion request.
type DeletionRequestOutput struct {
	RequestID string `json:"requestId"`
}

// AccountUsecase defines the account operations of the signed-in user.
type AccountUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*ProfileOutput, error)
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)
	GetProfile(ctx context.Context, email string) (*ProfileOutput, error)
	UpdateName(ctx context.Context, email string, input UpdateNameInput) (*ProfileOutput, error)
	// ChangeEmail re-authenticates the caller, migrates every record to the
	// new email and then moves the credential. A partial report may be
	// returned alongside an error.
	ChangeEmail(ctx context.Context, email string, input ChangeEmailInput) (*entity.MigrationReport, error)
	ChangePassword(ctx context.Context, email string, input ChangePasswordInput) error
	RequestDeletion(ctx context.Context, email string, input DeletionRequestInput) (*DeletionRequestOutput, error)
	Logout(ctx context.Context, email string) error
}
