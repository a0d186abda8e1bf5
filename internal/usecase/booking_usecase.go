package usecase

import (
	"context"

	"lounge/internal/domain/entity"
)

// ConfirmBookingInput books a number of pods for a date and time slot.
type ConfirmBookingInput struct {
	NumPods      int    `json:"numPods" validate:"required,min=1"`
	SelectedDate string `json:"selectedDate" validate:"required"`
	CheckInTime  string `json:"checkInTime"`
	CheckOutTime string `json:"checkOutTime"`
}

// BookingUsecase handles sleeping-pod availability and bookings.
type BookingUsecase interface {
	// AvailablePods returns the first count pods marked available. It fails
	// with ErrPodsUnavailable when fewer exist.
	AvailablePods(ctx context.Context, count int) ([]entity.SleepingPod, error)
	ConfirmBooking(ctx context.Context, email string, input ConfirmBookingInput) (*entity.Booking, error)
	// CheckInQRCode renders the check-in code of a booking owned by email.
	CheckInQRCode(ctx context.Context, email string, bookingNumber int) ([]byte, error)
}
