package service

// BookingCheckIn is the payload encoded into a booking's check-in QR code.
type BookingCheckIn struct {
	BookingNumber int      `json:"booking_number"`
	Email         string   `json:"email"`
	PodIDs        []string `json:"pod_ids"`
	BookingDate   string   `json:"booking_date"`
}

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateBookingQR renders the check-in payload as a PNG
	GenerateBookingQR(checkIn BookingCheckIn) ([]byte, error)

	// ParseBookingQR parses scanned QR code data back into the payload
	ParseBookingQR(qrData string) (*BookingCheckIn, error)
}
