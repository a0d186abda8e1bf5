// Package middleware contains the echo middleware of the API server.
package middleware

import (
	"strings"

	deliverycontext "lounge/internal/delivery/context"
	domainerrors "lounge/internal/domain/errors"
	"lounge/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const bearerPrefix = "Bearer "

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	Auth service.AuthService
}

// AuthMiddleware resolves the session token to the signed-in identity.
type AuthMiddleware struct {
	auth service.AuthService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{auth: params.Auth}
}

// Authenticate rejects requests without a valid bearer token and stores the
// token's email on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		token, found := strings.CutPrefix(header, bearerPrefix)
		if !found || strings.TrimSpace(token) == "" {
			return errors.WithStack(domainerrors.ErrUnauthenticated)
		}

		email, err := m.auth.VerifyToken(c.Request().Context(), strings.TrimSpace(token))
		if err != nil {
			var appErr domainerrors.AppError
			if errors.As(err, &appErr) {
				return err
			}

			return errors.WithStack(domainerrors.ErrUnauthenticated.WithDetails(err.Error()))
		}

		deliverycontext.SetIdentity(c, email)

		return next(c)
	}
}

// Identity returns the email stored by Authenticate.
func Identity(c echo.Context) (string, error) {
	email, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return "", errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	return email, nil
}
