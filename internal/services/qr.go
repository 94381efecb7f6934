package services

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/skip2/go-qrcode"

	"oficina-tg-client/internal/constants"
	"oficina-tg-client/internal/models"
)

// QRService provides QR code generation functionality
type QRService struct {
	logger *logrus.Logger
}

// NewQRService creates a new QR code service
func NewQRService(logger *logrus.Logger) *QRService {
	return &QRService{
		logger: logger,
	}
}

// BookingQRText returns the text encoded in a booking confirmation QR
func BookingQRText(b models.Booking) string {
	return fmt.Sprintf("AGENDAMENTO:%d;DATA:%s;OFICINA:%d;USUARIO:%d", b.ID, b.Date, b.ShopID, b.UserID)
}

// GenerateBookingQR generates the confirmation QR of a booking
func (s *QRService) GenerateBookingQR(b models.Booking) ([]byte, error) {
	return s.GenerateQR(BookingQRText(b))
}

// GenerateQR generates a QR code for the given text
func (s *QRService) GenerateQR(text string) ([]byte, error) {
	s.logger.Debugf("Generating QR code for text: %s", text)

	qr, err := qrcode.Encode(text, qrcode.Medium, constants.QRCodeSize)
	if err != nil {
		s.logger.Errorf("Failed to generate QR code: %v", err)
		return nil, err
	}

	return qr, nil
}
