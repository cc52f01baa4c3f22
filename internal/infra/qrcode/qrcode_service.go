package qrcode

import (
	"strings"
	"unicode"

	"bdgaraj/config"
	"bdgaraj/internal/domain/service"
	"bdgaraj/internal/errors"

	"github.com/skip2/go-qrcode"
)

const (
	defaultSize = 256
	waMeBaseURL = "https://wa.me/"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return newQRCodeService(defaultSize, "M")
	}

	return newQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func newQRCodeService(size int, errorCorrectionLevel string) *qrcodeService {
	if size <= 0 {
		size = defaultSize
	}

	var level qrcode.RecoveryLevel
	switch strings.ToUpper(errorCorrectionLevel) {
	case "L":
		level = qrcode.Low
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateWhatsAppQR renders a PNG pointing at https://wa.me/<digits>.
func (s *qrcodeService) GenerateWhatsAppQR(phone string) ([]byte, error) {
	link, err := WhatsAppLink(phone)
	if err != nil {
		return nil, err
	}

	pngBytes, err := qrcode.Encode(link, s.errorCorrectionLevel, s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate QR code")
	}

	return pngBytes, nil
}

// WhatsAppLink keeps only the digits of phone, so "whatsapp:+90 532 683 26 03"
// becomes https://wa.me/905326832603.
func WhatsAppLink(phone string) (string, error) {
	var digits strings.Builder
	for _, r := range phone {
		if unicode.IsDigit(r) {
			digits.WriteRune(r)
		}
	}

	if digits.Len() == 0 {
		return "", errors.Errorf("phone number %q has no digits", phone)
	}

	return waMeBaseURL + digits.String(), nil
}
