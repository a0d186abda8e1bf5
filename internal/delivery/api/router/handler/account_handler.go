package handler

import (
	"log/slog"
	"net/http"

	"lounge/internal/delivery/api/middleware"
	"lounge/internal/delivery/api/response"
	"lounge/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AccountHandlerParams holds dependencies for AccountHandler, injected by Fx.
type AccountHandlerParams struct {
	fx.In

	AccountUC   usecase.AccountUsecase
	MigrationUC usecase.IdentityMigrationUsecase
	Logger      *slog.Logger
}

// AccountHandler serves the signed-in user's account endpoints.
type AccountHandler struct {
	accountUC   usecase.AccountUsecase
	migrationUC usecase.IdentityMigrationUsecase
	logger      *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler
func NewAccountHandler(params AccountHandlerParams) *AccountHandler {
	return &AccountHandler{
		accountUC:   params.AccountUC,
		migrationUC: params.MigrationUC,
		logger:      params.Logger,
	}
}

// GetProfile returns the current profile.
func (h *AccountHandler) GetProfile(c echo.Context) error {
	email, err := middleware.Identity(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	profile, err := h.accountUC.GetProfile(c.Request().Context(), email)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile, "")
}

// UpdateName replaces name and surname.
func (h *AccountHandler) UpdateName(c echo.Context) error {
	email, err := middleware.Identity(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req usecase.UpdateNameInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid name input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	profile, err := h.accountUC.UpdateName(c.Request().Context(), email, req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile, "Name updated")
}

// ChangeEmail migrates the account to a new email. When a step fails after
// records were already moved, the partial report is returned with the error
// so the client can retry.
func (h *AccountHandler) ChangeEmail(c echo.Context) error {
	email, err := middleware.Identity(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req usecase.ChangeEmailInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid email change input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	report, err := h.accountUC.ChangeEmail(c.Request().Context(), email, req)
	if err != nil {
		if report != nil {
			return response.HandleAppErrorWithData(c, err, report)
		}

		return response.HandleAppError(c, err)
	}

	if !report.Complete() {
		return response.Success(c, http.StatusOK, report, "Email changed, some records could not be updated")
	}

	return response.Success(c, http.StatusOK, report, "Email changed")
}

// MigrationHistory lists the email changes recorded for the current identity.
func (h *AccountHandler) MigrationHistory(c echo.Context) error {
	email, err := middleware.Identity(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	records, err := h.migrationUC.History(c.Request().Context(), email)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, records, "")
}

// ChangePassword replaces the password after re-authentication.
func (h *AccountHandler) ChangePassword(c echo.Context) error {
	email, err := middleware.Identity(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req usecase.ChangePasswordInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid password change input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.accountUC.ChangePassword(c.Request().Context(), email, req); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Password changed")
}

// RequestDeletion stores an account deletion request.
func (h *AccountHandler) RequestDeletion(c echo.Context) error {
	email, err := middleware.Identity(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req usecase.DeletionRequestInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid deletion request input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.accountUC.RequestDeletion(c.Request().Context(), email, req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, output, "Deletion request received")
}

// Logout revokes every session of the current identity.
func (h *AccountHandler) Logout(c echo.Context) error {
	email, err := middleware.Identity(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.accountUC.Logout(c.Request().Context(), email); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Logged out")
}
