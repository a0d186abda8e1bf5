package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"lounge/config"
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

const (
	bookingTimeLayout = "15:04"

	// Booking numbers are four digits, as printed on the check-in slip.
	minBookingNumber      = 1000
	bookingNumberRange    = 9000
	bookingNumberAttempts = 5

	podFieldAvailability = "availability"
)

// bookingService implements the BookingUsecase interface.
type bookingService struct {
	store    repository.RecordStore
	qrcode   service.QRCodeService
	location *time.Location
	maxPods  int
	now      func() time.Time
	intN     func(n int) int
	logger   *slog.Logger
}

// BookingServiceParams holds dependencies for BookingService, injected by Fx.
type BookingServiceParams struct {
	fx.In

	Store  repository.RecordStore
	QRCode service.QRCodeService
	Config *config.Config
	Logger *slog.Logger
}

// NewBookingService is the constructor for bookingService.
func NewBookingService(params BookingServiceParams) usecase.BookingUsecase {
	return &bookingService{
		store:    params.Store,
		qrcode:   params.QRCode,
		location: params.Config.Booking.Location(),
		maxPods:  params.Config.Booking.MaxPods,
		now:      time.Now,
		intN:     rand.IntN,
		logger:   params.Logger,
	}
}

type availablePod struct {
	key string
	doc entity.Document
	pod entity.SleepingPod
}

// AvailablePods returns the first count available pods in key order.
func (srv *bookingService) AvailablePods(ctx context.Context, count int) ([]entity.SleepingPod, error) {
	found, err := srv.availablePods(ctx, count)
	if err != nil {
		return nil, err
	}

	pods := make([]entity.SleepingPod, 0, len(found))
	for _, p := range found {
		pods = append(pods, p.pod)
	}

	return pods, nil
}

func (srv *bookingService) availablePods(ctx context.Context, count int) ([]availablePod, error) {
	if count < 1 || (srv.maxPods > 0 && count > srv.maxPods) {
		return nil, errors.WithStack(domainerrors.Validation(
			fmt.Sprintf("number of pods must be between 1 and %d", srv.maxPods)))
	}

	records, err := srv.store.Scan(ctx, entity.CollectionSleepingPods, func(_ string, doc entity.Document) bool {
		available, _ := doc[podFieldAvailability].(bool)

		return available
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to scan sleeping pods")
	}

	var found []availablePod
	for key, doc := range records {
		var pod entity.SleepingPod
		if err := entity.DecodeDocument(doc, &pod); err != nil {
			deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Warn("Skipping unreadable pod", "key", key, "error", err)

			continue
		}
		if pod.PodID == "" {
			pod.PodID = key
		}
		found = append(found, availablePod{key: key, doc: doc, pod: pod})
	}

	if len(found) < count {
		return nil, errors.WithStack(domainerrors.ErrPodsUnavailable.WithDetails(
			fmt.Sprintf("only %d pods are available", len(found))))
	}

	return found[:count], nil
}

// ConfirmBooking assigns the first available pods, stores the booking and
// marks the pods as taken.
func (srv *bookingService) ConfirmBooking(ctx context.Context, email string, input usecase.ConfirmBookingInput) (*entity.Booking, error) {
	if _, ok := validation.ParseBookingDate(input.SelectedDate, srv.location); !ok {
		return nil, errors.WithStack(domainerrors.Validation("selectedDate is not a valid date"))
	}

	profile, _, err := loadProfile(ctx, srv.store, email)
	if err != nil {
		return nil, err
	}

	pods, err := srv.availablePods(ctx, input.NumPods)
	if err != nil {
		return nil, err
	}

	number, err := srv.newBookingNumber(ctx)
	if err != nil {
		return nil, err
	}

	now := srv.now().In(srv.location)
	booking := entity.Booking{
		BookingNumber: number,
		Email:         email,
		Name:          strings.TrimSpace(profile.Name + " " + profile.Surname),
		SelectedDate:  input.SelectedDate,
		BookingDate:   now.Format(entity.BookingDateLayout),
		BookingTime:   now.Format(bookingTimeLayout),
		CheckInTime:   input.CheckInTime,
		CheckOutTime:  input.CheckOutTime,
	}
	for _, p := range pods {
		booking.PodIDs = append(booking.PodIDs, p.pod.PodID)
		booking.BedNumbers = append(booking.BedNumbers, p.pod.BedNumber)
		booking.Prices = append(booking.Prices, p.pod.Price)
		booking.TotalPrice += p.pod.Price
	}

	doc, err := entity.NormalizeDocument(booking)
	if err != nil {
		return nil, err
	}
	key, err := srv.store.Push(ctx, entity.CollectionBookings, doc)
	if err != nil {
		return nil, errors.Wrap(err, "failed to save booking")
	}
	booking.Key = key

	for _, p := range pods {
		if err := srv.store.Set(ctx, entity.CollectionSleepingPods, p.key, p.doc.WithField(podFieldAvailability, false)); err != nil {
			return nil, errors.Wrapf(err, "failed to reserve pod %s", p.pod.PodID)
		}
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Booking confirmed",
		"booking_number", number, "pods", len(pods), "identity_key", identity.EncodeUnchecked(email))

	return &booking, nil
}

// newBookingNumber draws a four-digit number not used by another booking.
func (srv *bookingService) newBookingNumber(ctx context.Context) (int, error) {
	for range bookingNumberAttempts {
		number := minBookingNumber + srv.intN(bookingNumberRange)
		existing, err := findBooking(ctx, srv.store, number)
		if err != nil {
			return 0, err
		}
		if existing == nil {
			return number, nil
		}
	}

	return 0, errors.WithStack(domainerrors.ErrInternalError.WithDetails("no free booking number"))
}

// CheckInQRCode renders the check-in code of a booking owned by email.
func (srv *bookingService) CheckInQRCode(ctx context.Context, email string, bookingNumber int) ([]byte, error) {
	booking, err := findBooking(ctx, srv.store, bookingNumber)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, errors.WithStack(domainerrors.ErrBookingNotFound.WithDetails(strconv.Itoa(bookingNumber)))
	}
	if !identity.Equal(booking.Email, email) {
		return nil, errors.WithStack(domainerrors.ErrForbidden.WithDetails("not your booking"))
	}

	png, err := srv.qrcode.GenerateBookingQR(service.BookingCheckIn{
		BookingNumber: booking.BookingNumber,
		Email:         booking.Email,
		PodIDs:        booking.PodIDs,
		BookingDate:   booking.BookingDate,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate check-in code")
	}

	return png, nil
}

// findBooking returns the first booking, in key order, with the given
// number, or nil. Numbers are stored as either numbers or strings.
func findBooking(ctx context.Context, store repository.RecordStore, number int) (*entity.Booking, error) {
	want := strconv.Itoa(number)
	records, err := store.Scan(ctx, entity.CollectionBookings, func(_ string, doc entity.Document) bool {
		return strings.TrimSpace(doc.String("bookingNumber")) == want
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to scan bookings")
	}

	for key, doc := range records {
		booking, err := entity.DecodeBooking(key, doc)
		if err != nil {
			return nil, err
		}

		return &booking, nil
	}

	return nil, nil
}
