package entity

// BookingDateLayout is the date format the clients store in bookingDate
// (en-ZA short date).
const BookingDateLayout = "2006/01/02"

// Booking is a sleeping-pod booking. Ownership is the email value.
type Booking struct {
	Key           string    `json:"-"`
	BookingNumber int       `json:"bookingNumber"`
	Email         string    `json:"email"`
	Name          string    `json:"name,omitempty"`
	PodIDs        []string  `json:"podId"`
	BedNumbers    []string  `json:"bedNumbers"`
	Prices        []float64 `json:"prices"`
	TotalPrice    float64   `json:"totalPrice"`
	SelectedDate  string    `json:"selectedDate,omitempty"`
	BookingDate   string    `json:"bookingDate"`
	BookingTime   string    `json:"bookingTime"`
	CheckInTime   string    `json:"checkInTime,omitempty"`
	CheckOutTime  string    `json:"checkOutTime,omitempty"`
	Reviewed      bool      `json:"Reviews,omitempty"`
}

// WithEmail returns a copy owned by email.
func (b Booking) WithEmail(email string) Booking {
	b.Email = email

	return b
}

// DecodeBooking builds a typed booking from a stored document.
func DecodeBooking(key string, doc Document) (Booking, error) {
	var booking Booking
	if err := DecodeDocument(doc, &booking); err != nil {
		return Booking{}, err
	}
	booking.Key = key

	return booking, nil
}
