package impl

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"lounge/config"
	deliverycontext "lounge/internal/delivery/context"
	"lounge/internal/domain/entity"
	domainerrors "lounge/internal/domain/errors"
	"lounge/internal/domain/repository"
	"lounge/internal/domain/validation"
	"lounge/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const submittedTimeLayout = "15:04:05"

// serviceRequestService implements the ServiceRequestUsecase interface.
type serviceRequestService struct {
	store    repository.RecordStore
	location *time.Location
	now      func() time.Time
	logger   *slog.Logger
}

// ServiceRequestServiceParams holds dependencies for ServiceRequestService,
// injected by Fx.
type ServiceRequestServiceParams struct {
	fx.In

	Store  repository.RecordStore
	Config *config.Config
	Logger *slog.Logger
}

// NewServiceRequestService is the constructor for serviceRequestService.
func NewServiceRequestService(params ServiceRequestServiceParams) usecase.ServiceRequestUsecase {
	return &serviceRequestService{
		store:    params.Store,
		location: params.Config.Booking.Location(),
		now:      time.Now,
		logger:   params.Logger,
	}
}

// LookupBooking finds a booking by number and classifies it against today.
// Guest details are only returned for a booking that is Found.
func (srv *serviceRequestService) LookupBooking(ctx context.Context, bookingNumber int) (*usecase.BookingLookupOutput, error) {
	booking, status, err := srv.lookup(ctx, bookingNumber)
	if err != nil {
		return nil, err
	}

	output := &usecase.BookingLookupOutput{
		Status:       status,
		StatusText:   status.String(),
		BookingFound: status == validation.BookingFound,
	}
	if output.BookingFound {
		output.Email = booking.Email
		output.Name = booking.Name
	}

	return output, nil
}

func (srv *serviceRequestService) lookup(ctx context.Context, bookingNumber int) (*entity.Booking, validation.BookingLookupStatus, error) {
	booking, err := findBooking(ctx, srv.store, bookingNumber)
	if err != nil {
		return nil, validation.BookingNotFound, err
	}

	return booking, validation.ClassifyBooking(booking, srv.now(), srv.location), nil
}

// Submit validates the request and stores it against a booking that is
// valid today.
func (srv *serviceRequestService) Submit(ctx context.Context, input usecase.SubmitServiceRequestInput) (*usecase.ServiceRequestOutput, error) {
	if err := validation.ValidateServiceRequest(input.Items, input.Quantities); err != nil {
		return nil, err
	}

	booking, status, err := srv.lookup(ctx, input.BookingNumber)
	if err != nil {
		return nil, err
	}
	switch status {
	case validation.BookingNotFound:
		return nil, errors.WithStack(domainerrors.ErrBookingNotFound.WithDetails(strconv.Itoa(input.BookingNumber)))
	case validation.BookingExpired:
		return nil, errors.WithStack(domainerrors.ErrBookingExpired.WithDetails(booking.BookingDate))
	}

	quantities := input.Quantities
	if quantities == nil {
		quantities = map[string]int{}
	}
	now := srv.now().In(srv.location)
	request := entity.ServiceRequest{
		Items:         input.Items,
		Quantities:    quantities,
		BookingNumber: booking.BookingNumber,
		Email:         booking.Email,
		Name:          booking.Name,
		SubmittedDate: now.Format(entity.BookingDateLayout),
		SubmittedTime: now.Format(submittedTimeLayout),
	}

	id, err := srv.store.Push(ctx, entity.CollectionServiceRequests, request.Document())
	if err != nil {
		return nil, errors.Wrap(err, "failed to save service request")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Service request submitted",
		"request_id", id, "booking_number", booking.BookingNumber)

	return &usecase.ServiceRequestOutput{RequestID: id}, nil
}
