package handler

import (
	"log/slog"
	"net/http"

	"lounge/internal/delivery/api/response"
	"lounge/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ServiceRequestHandlerParams holds dependencies for ServiceRequestHandler, injected by Fx.
type ServiceRequestHandlerParams struct {
	fx.In

	ServiceRequestUC usecase.ServiceRequestUsecase
	Logger           *slog.Logger
}

// ServiceRequestHandler serves in-stay service requests. Guests identify
// themselves by booking number, not by session.
type ServiceRequestHandler struct {
	serviceRequestUC usecase.ServiceRequestUsecase
	logger           *slog.Logger
}

// NewServiceRequestHandler is the constructor for ServiceRequestHandler
func NewServiceRequestHandler(params ServiceRequestHandlerParams) *ServiceRequestHandler {
	return &ServiceRequestHandler{
		serviceRequestUC: params.ServiceRequestUC,
		logger:           params.Logger,
	}
}

// LookupBooking reports whether a booking number is valid for today.
func (h *ServiceRequestHandler) LookupBooking(c echo.Context) error {
	var req BookingNumberRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "booking number must be a number")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.serviceRequestUC.LookupBooking(c.Request().Context(), req.Number)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, output, output.StatusText)
}

// Submit stores a validated service request.
func (h *ServiceRequestHandler) Submit(c echo.Context) error {
	var req usecase.SubmitServiceRequestInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid service request input")
	}
	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.serviceRequestUC.Submit(c.Request().Context(), req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, output, "Service request submitted")
}
