package usecase

import (
	"context"

	"lounge/internal/domain/validation"
)

// BookingLookupOutput is the result of looking a booking up by number.
type BookingLookupOutput struct {
	Status       validation.BookingLookupStatus `json:"-"`
	StatusText   string                         `json:"status"`
	BookingFound bool                           `json:"bookingFound"`
	Email        string                         `json:"email,omitempty"`
	Name         string                         `json:"name,omitempty"`
}

// SubmitServiceRequestInput is a guest request for extras.
type SubmitServiceRequestInput struct {
	BookingNumber int               `json:"bookingNumber" validate:"required"`
	Items         map[string]string `json:"items"`
	Quantities    map[string]int    `json:"quantities"`
}

// ServiceRequestOutput identifies a stored service request.
type ServiceRequestOutput struct {
	RequestID string `json:"requestId"`
}

// ServiceRequestUsecase handles in-stay service requests.
type ServiceRequestUsecase interface {
	LookupBooking(ctx context.Context, bookingNumber int) (*BookingLookupOutput, error)
	// Submit validates the request against a booking that is Found today and
	// stores it. Nothing is written when validation fails.
	Submit(ctx context.Context, input SubmitServiceRequestInput) (*ServiceRequestOutput, error)
}
