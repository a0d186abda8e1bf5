package impl

import (
	"context"
	"log/slog"

	deliverycontext "lounge/internal/delivery/context"
	"lounge/internal/domain/entity"
	domainerrors "lounge/internal/domain/errors"
	"lounge/internal/domain/identity"
	"lounge/internal/domain/repository"
	"lounge/internal/domain/service"
	"lounge/internal/domain/validation"
	"lounge/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	store     repository.RecordStore
	auth      service.AuthService
	migration usecase.IdentityMigrationUsecase
	logger    *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	Store     repository.RecordStore
	Auth      service.AuthService
	Migration usecase.IdentityMigrationUsecase
	Logger    *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		store:     params.Store,
		auth:      params.Auth,
		migration: params.Migration,
		logger:    params.Logger,
	}
}

// Register creates the credential and the profile record of a new account.
func (srv *accountService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.ProfileOutput, error) {
	key, err := identity.Encode(input.Email)
	if err != nil {
		return nil, err
	}
	if err := validation.ValidatePersonName("name", input.Name); err != nil {
		return nil, err
	}
	if err := validation.ValidatePersonName("surname", input.Surname); err != nil {
		return nil, err
	}
	if err := validation.ValidatePassword(input.Password, input.ConfirmPassword); err != nil {
		return nil, err
	}

	_, exists, err := srv.store.Get(ctx, entity.CollectionUsers, key)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check existing profile")
	}
	if exists {
		return nil, errors.WithStack(domainerrors.ErrIdentityConflict.WithDetails(input.Email))
	}

	if err := srv.auth.CreateAccount(ctx, input.Email, input.Password); err != nil {
		return nil, errors.Wrap(err, "failed to create credential")
	}

	profile := entity.UserProfile{
		IdentityKey: key,
		Email:       input.Email,
		Name:        input.Name,
		Surname:     input.Surname,
	}
	doc, err := entity.NormalizeDocument(profile)
	if err != nil {
		return nil, err
	}
	if err := srv.store.Set(ctx, entity.CollectionUsers, key, doc); err != nil {
		return nil, errors.Wrap(err, "failed to save profile")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Account registered", "identity_key", key)

	return toProfileOutput(profile), nil
}

// Login signs the user in and returns the session with the profile.
func (srv *accountService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	session, err := srv.auth.SignIn(ctx, input.Email, input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign in")
	}

	output := &usecase.LoginOutput{
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
	}

	profile, _, err := loadProfile(ctx, srv.store, session.Email)
	switch {
	case err == nil:
		output.Profile = toProfileOutput(profile)
	case errors.Is(err, domainerrors.ErrProfileNotFound):
		deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Warn("Signed in without a profile", "email", session.Email)
	default:
		return nil, err
	}

	return output, nil
}

// GetProfile returns the profile of the signed-in user.
func (srv *accountService) GetProfile(ctx context.Context, email string) (*usecase.ProfileOutput, error) {
	profile, _, err := loadProfile(ctx, srv.store, email)
	if err != nil {
		return nil, err
	}

	return toProfileOutput(profile), nil
}

// UpdateName replaces the name and surname on the profile, keeping every
// other field as stored.
func (srv *accountService) UpdateName(ctx context.Context, email string, input usecase.UpdateNameInput) (*usecase.ProfileOutput, error) {
	if err := validation.ValidatePersonName("name", input.Name); err != nil {
		return nil, err
	}
	if err := validation.ValidatePersonName("surname", input.Surname); err != nil {
		return nil, err
	}

	profile, doc, err := loadProfile(ctx, srv.store, email)
	if err != nil {
		return nil, err
	}

	updated := doc.
		WithField(entity.ProfileFieldName, input.Name).
		WithField(entity.ProfileFieldSurname, input.Surname)
	if err := srv.store.Set(ctx, entity.CollectionUsers, profile.IdentityKey, updated); err != nil {
		return nil, errors.Wrap(err, "failed to update profile")
	}

	return toProfileOutput(profile.WithName(input.Name, input.Surname)), nil
}

// ChangeEmail re-authenticates, migrates every record and moves the
// credential last, so a failed run can be retried with the old email.
func (srv *accountService) ChangeEmail(ctx context.Context, email string, input usecase.ChangeEmailInput) (*entity.MigrationReport, error) {
	if err := identity.Validate(input.NewEmail); err != nil {
		return nil, err
	}
	if err := srv.auth.Reauthenticate(ctx, email, input.Password); err != nil {
		return nil, errors.Wrap(err, "re-authentication failed")
	}

	report, err := srv.migration.MigrateIdentity(ctx, email, input.NewEmail)
	if err != nil {
		return report, errors.Wrap(err, "failed to migrate identity")
	}

	if err := srv.auth.UpdateEmail(context.WithoutCancel(ctx), email, input.NewEmail); err != nil {
		return report, errors.Wrap(err, "failed to update sign-in email")
	}

	return report, nil
}

// ChangePassword re-authenticates and replaces the password.
func (srv *accountService) ChangePassword(ctx context.Context, email string, input usecase.ChangePasswordInput) error {
	if err := validation.ValidatePassword(input.NewPassword, input.ConfirmPassword); err != nil {
		return err
	}
	if err := srv.auth.Reauthenticate(ctx, email, input.CurrentPassword); err != nil {
		return errors.Wrap(err, "re-authentication failed")
	}
	if err := srv.auth.UpdatePassword(ctx, email, input.NewPassword); err != nil {
		return errors.Wrap(err, "failed to update password")
	}

	return nil
}

// RequestDeletion appends a deletion request. Nothing is erased here.
func (srv *accountService) RequestDeletion(ctx context.Context, email string, input usecase.DeletionRequestInput) (*usecase.DeletionRequestOutput, error) {
	if err := validation.ValidateDeletionRequest(input.Confirmed, input.Reason); err != nil {
		return nil, err
	}
	if err := srv.auth.Reauthenticate(ctx, email, input.Password); err != nil {
		return nil, errors.Wrap(err, "re-authentication failed")
	}

	doc, err := entity.NormalizeDocument(entity.DeletionRequest{Email: email, Reason: input.Reason})
	if err != nil {
		return nil, err
	}
	id, err := srv.store.Push(ctx, entity.CollectionDeletionRequests, doc)
	if err != nil {
		return nil, errors.Wrap(err, "failed to save deletion request")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Deletion requested", "request_id", id)

	return &usecase.DeletionRequestOutput{RequestID: id}, nil
}

// Logout revokes every session of the user.
func (srv *accountService) Logout(ctx context.Context, email string) error {
	if err := srv.auth.SignOut(ctx, email); err != nil {
		return errors.Wrap(err, "failed to sign out")
	}

	return nil
}

// loadProfile reads the profile of email together with its raw document.
func loadProfile(ctx context.Context, store repository.RecordStore, email string) (entity.UserProfile, entity.Document, error) {
	key, err := identity.Encode(email)
	if err != nil {
		return entity.UserProfile{}, nil, err
	}

	doc, ok, err := store.Get(ctx, entity.CollectionUsers, key)
	if err != nil {
		return entity.UserProfile{}, nil, errors.Wrap(err, "failed to read profile")
	}
	if !ok {
		return entity.UserProfile{}, nil, errors.WithStack(domainerrors.ErrProfileNotFound.WithDetails(email))
	}

	var profile entity.UserProfile
	if err := entity.DecodeDocument(doc, &profile); err != nil {
		return entity.UserProfile{}, nil, err
	}
	profile.IdentityKey = key
	if profile.Email == "" {
		profile.Email = email
	}

	return profile, doc, nil
}

func toProfileOutput(profile entity.UserProfile) *usecase.ProfileOutput {
	return &usecase.ProfileOutput{
		Email:    profile.Email,
		Name:     profile.Name,
		Surname:  profile.Surname,
		Initials: profile.Initials(),
	}
}
