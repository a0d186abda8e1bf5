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

// HistoryHandlerParams holds dependencies for HistoryHandler, injected by Fx.
type HistoryHandlerParams struct {
	fx.In

	HistoryUC usecase.HistoryUsecase
	Logger    *slog.Logger
}

// HistoryHandler serves order and booking history and reviews.
type HistoryHandler struct {
	historyUC usecase.HistoryUsecase
	logger    *slog.Logger
}

// NewHistoryHandler is the constructor for HistoryHandler
func NewHistoryHandler(params HistoryHandlerParams) *HistoryHandler {
	return &HistoryHandler{
		historyUC: params.HistoryUC,
		logger:    params.Logger,
	}
}

// ListOrders returns the orders placed by the current identity.
func (h *HistoryHandler) ListOrders(c echo.Context) error {
	email, err := middleware.Identity(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	orders, err := h.historyUC.ListOrders(c.Request().Context(), email)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, orders, "")
}

// ListBookings returns the bookings made by the current identity.
func (h *HistoryHandler) ListBookings(c echo.Context) error {
	email, err := middleware.Identity(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	bookings, err := h.historyUC.ListBookings(c.Request().Context(), email)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, bookings, "")
}

// SubmitReview reviews an order or booking of the current identity.
func (h *HistoryHandler) SubmitReview(c echo.Context) error {
	email, err := middleware.Identity(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req usecase.SubmitReviewInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid review input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	review, err := h.historyUC.SubmitReview(c.Request().Context(), email, req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, review, "Review submitted")
}

// ListReviews returns every review.
func (h *HistoryHandler) ListReviews(c echo.Context) error {
	reviews, err := h.historyUC.ListReviews(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, reviews, "")
}
