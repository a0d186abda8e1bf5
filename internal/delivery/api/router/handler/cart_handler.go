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

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC usecase.CartUsecase
	Logger *slog.Logger
}

// CartHandler serves the café cart.
type CartHandler struct {
	cartUC usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{
		cartUC: params.CartUC,
		logger: params.Logger,
	}
}

// GetCart returns the current cart.
func (h *CartHandler) GetCart(c echo.Context) error {
	email, err := middleware.Identity(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	cart, err := h.cartUC.GetCart(c.Request().Context(), email)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cart, "")
}

// AddMenuItem adds one unit of a menu item.
func (h *CartHandler) AddMenuItem(c echo.Context) error {
	email, err := middleware.Identity(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req usecase.AddMenuItemInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid cart item input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	cart, err := h.cartUC.AddMenuItem(c.Request().Context(), email, req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cart, "Item added to cart")
}
