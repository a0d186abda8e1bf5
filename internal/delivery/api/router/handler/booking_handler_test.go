package handler

import (
	"net/http"
	"testing"

	"lounge/internal/domain/entity"
	domainerrors "lounge/internal/domain/errors"
	mockUsecase "lounge/internal/mocks/usecase"
	"lounge/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestBookingHandler(t *testing.T) (*BookingHandler, *mockUsecase.MockBookingUsecase) {
	bookingUC := mockUsecase.NewMockBookingUsecase(t)

	return NewBookingHandler(BookingHandlerParams{BookingUC: bookingUC, Logger: discardLogger()}), bookingUC
}

func TestBookingHandler_AvailablePods(t *testing.T) {
	handler, bookingUC := createTestBookingHandler(t)
	e := newTestEcho()
	e.GET("/pods/available", handler.AvailablePods)

	bookingUC.EXPECT().AvailablePods(mock.Anything, 2).Return([]entity.SleepingPod{
		{PodID: "pod-1", BedNumber: "A1", Price: 45, Availability: true},
		{PodID: "pod-2", BedNumber: "A2", Price: 45, Availability: true},
	}, nil).Once()

	rec := serve(t, e, http.MethodGet, "/pods/available?count=2", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	pods := decodeData[[]entity.SleepingPod](t, decode(t, rec))
	require.Len(t, pods, 2)
	assert.Equal(t, "A2", pods[1].BedNumber)
}

func TestBookingHandler_AvailablePods_BadCount(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		wantCode string
	}{
		{"not a number", "?count=many", "INVALID_INPUT"},
		{"missing", "", "VALIDATION_FAILED"},
		{"negative", "?count=-1", "VALIDATION_FAILED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, _ := createTestBookingHandler(t)
			e := newTestEcho()
			e.GET("/pods/available", handler.AvailablePods)

			rec := serve(t, e, http.MethodGet, "/pods/available"+tt.query, nil)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.wantCode, decode(t, rec).Error.Code)
		})
	}
}

func TestBookingHandler_ConfirmBooking(t *testing.T) {
	handler, bookingUC := createTestBookingHandler(t)
	e := newTestEcho()
	e.POST("/bookings", handler.ConfirmBooking, signedIn(testEmail))

	input := usecase.ConfirmBookingInput{NumPods: 2, SelectedDate: "2026/03/14", CheckInTime: "22:00", CheckOutTime: "08:00"}
	bookingUC.EXPECT().ConfirmBooking(mock.Anything, testEmail, input).Return(&entity.Booking{
		BookingNumber: 4821,
		Email:         testEmail,
		PodIDs:        []string{"pod-1", "pod-2"},
		TotalPrice:    90,
		BookingDate:   "2026/03/14",
	}, nil).Once()

	rec := serve(t, e, http.MethodPost, "/bookings", input)

	assert.Equal(t, http.StatusCreated, rec.Code)
	booking := decodeData[entity.Booking](t, decode(t, rec))
	assert.Equal(t, 4821, booking.BookingNumber)
	assert.Equal(t, []string{"pod-1", "pod-2"}, booking.PodIDs)
}

func TestBookingHandler_ConfirmBooking_PodsUnavailable(t *testing.T) {
	handler, bookingUC := createTestBookingHandler(t)
	e := newTestEcho()
	e.POST("/bookings", handler.ConfirmBooking, signedIn(testEmail))

	bookingUC.EXPECT().ConfirmBooking(mock.Anything, testEmail, mock.Anything).
		Return(nil, errors.WithStack(domainerrors.ErrPodsUnavailable.WithDetails("only 1 pods are available"))).Once()

	rec := serve(t, e, http.MethodPost, "/bookings", usecase.ConfirmBookingInput{NumPods: 3, SelectedDate: "2026/03/14"})

	assert.Equal(t, http.StatusConflict, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "PODS_UNAVAILABLE", env.Error.Code)
	assert.Equal(t, "only 1 pods are available", env.Error.Details)
}

func TestBookingHandler_CheckInQRCode(t *testing.T) {
	png := []byte{0x89, 'P', 'N', 'G'}

	t.Run("owner gets the image", func(t *testing.T) {
		handler, bookingUC := createTestBookingHandler(t)
		e := newTestEcho()
		e.GET("/bookings/:number/qrcode", handler.CheckInQRCode, signedIn(testEmail))

		bookingUC.EXPECT().CheckInQRCode(mock.Anything, testEmail, 4821).Return(png, nil).Once()

		rec := serve(t, e, http.MethodGet, "/bookings/4821/qrcode", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
		assert.Equal(t, png, rec.Body.Bytes())
	})

	t.Run("someone else's booking", func(t *testing.T) {
		handler, bookingUC := createTestBookingHandler(t)
		e := newTestEcho()
		e.GET("/bookings/:number/qrcode", handler.CheckInQRCode, signedIn(testEmail))

		bookingUC.EXPECT().CheckInQRCode(mock.Anything, testEmail, 1234).
			Return(nil, errors.WithStack(domainerrors.ErrForbidden)).Once()

		rec := serve(t, e, http.MethodGet, "/bookings/1234/qrcode", nil)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "FORBIDDEN", decode(t, rec).Error.Code)
	})

	t.Run("not a number", func(t *testing.T) {
		handler, _ := createTestBookingHandler(t)
		e := newTestEcho()
		e.GET("/bookings/:number/qrcode", handler.CheckInQRCode, signedIn(testEmail))

		rec := serve(t, e, http.MethodGet, "/bookings/abc/qrcode", nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_INPUT", decode(t, rec).Error.Code)
	})
}
