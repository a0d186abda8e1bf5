// Package qrcode renders booking check-in codes.
package qrcode

import (
	"encoding/json"

	"lounge/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const checkInType = "booking_check_in"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// payload is what the scanner at the pod reception reads
type payload struct {
	Type string `json:"type"`
	service.BookingCheckIn
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	if size <= 0 {
		size = 256
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: recoveryLevel(errorCorrectionLevel),
	}
}

func recoveryLevel(name string) qrcode.RecoveryLevel {
	switch name {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// GenerateBookingQR renders the check-in payload as a PNG
func (s *qrcodeService) GenerateBookingQR(checkIn service.BookingCheckIn) ([]byte, error) {
	if checkIn.BookingNumber <= 0 {
		return nil, errors.New("booking number is required")
	}

	jsonData, err := json.Marshal(payload{Type: checkInType, BookingCheckIn: checkIn})
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal QR code data")
	}

	pngBytes, err := qrcode.Encode(string(jsonData), s.errorCorrectionLevel, s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseBookingQR parses scanned QR code data back into the payload
func (s *qrcodeService) ParseBookingQR(qrData string) (*service.BookingCheckIn, error) {
	var data payload
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal QR code data")
	}
	if data.Type != checkInType {
		return nil, errors.Errorf("invalid QR code type: %s", data.Type)
	}
	if data.BookingNumber <= 0 {
		return nil, errors.New("QR code has no booking number")
	}

	return &data.BookingCheckIn, nil
}
