package validation

import (
	"strings"
	"time"

	"lounge/internal/domain/entity"
)

// BookingLookupStatus is the outcome of looking a booking up for a service
// request.
type BookingLookupStatus int

const (
	BookingNotFound BookingLookupStatus = iota
	BookingFound
	BookingExpired
)

func (s BookingLookupStatus) String() string {
	switch s {
	case BookingFound:
		return "found"
	case BookingExpired:
		return "expired"
	default:
		return "not_found"
	}
}

// bookingDateLayouts are the formats bookingDate has been written in.
var bookingDateLayouts = []string{
	entity.BookingDateLayout,
	"2006-01-02",
}

// ParseBookingDate parses a stored bookingDate as a calendar date in loc.
func ParseBookingDate(value string, loc *time.Location) (time.Time, bool) {
	value = strings.TrimSpace(value)
	for _, layout := range bookingDateLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

// ClassifyBooking decides whether a booking can take service requests today.
// A booking is Found only on its booking date; any other date is Expired. A
// nil booking or an unreadable date is NotFound.
func ClassifyBooking(booking *entity.Booking, today time.Time, loc *time.Location) BookingLookupStatus {
	if booking == nil {
		return BookingNotFound
	}
	if loc == nil {
		loc = time.Local
	}

	date, ok := ParseBookingDate(booking.BookingDate, loc)
	if !ok {
		return BookingNotFound
	}

	y1, m1, d1 := date.Date()
	y2, m2, d2 := today.In(loc).Date()
	if y1 == y2 && m1 == m2 && d1 == d2 {
		return BookingFound
	}

	return BookingExpired
}
