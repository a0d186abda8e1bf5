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

// BookingHandlerParams holds dependencies for BookingHandler, injected by Fx.
type BookingHandlerParams struct {
	fx.In

	BookingUC usecase.BookingUsecase
	Logger    *slog.Logger
}

// BookingHandler serves pod availability and bookings.
type BookingHandler struct {
	bookingUC usecase.BookingUsecase
	logger    *slog.Logger
}

// NewBookingHandler is the constructor for BookingHandler
func NewBookingHandler(params BookingHandlerParams) *BookingHandler {
	return &BookingHandler{
		bookingUC: params.BookingUC,
		logger:    params.Logger,
	}
}

// AvailablePodsRequest selects how many pods to list
type AvailablePodsRequest struct {
	Count int `query:"count" validate:"required,min=1"`
}

// BookingNumberRequest carries a booking number path parameter
type BookingNumberRequest struct {
	Number int `param:"number" validate:"required,min=1"`
}

// AvailablePods lists the first count available pods.
func (h *BookingHandler) AvailablePods(c echo.Context) error {
	var req AvailablePodsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "count must be a number")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	pods, err := h.bookingUC.AvailablePods(c.Request().Context(), req.Count)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, pods, "")
}

// ConfirmBooking books pods for the current identity.
func (h *BookingHandler) ConfirmBooking(c echo.Context) error {
	email, err := middleware.Identity(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req usecase.ConfirmBookingInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid booking input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	booking, err := h.bookingUC.ConfirmBooking(c.Request().Context(), email, req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, booking, "Booking confirmed")
}

// CheckInQRCode renders the check-in QR code of a booking as PNG.
func (h *BookingHandler) CheckInQRCode(c echo.Context) error {
	email, err := middleware.Identity(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req BookingNumberRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "booking number must be a number")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.bookingUC.CheckInQRCode(c.Request().Context(), email, req.Number)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
