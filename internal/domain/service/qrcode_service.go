package service

// QRCodeService renders QR codes as PNG images.
type QRCodeService interface {
	// GenerateWhatsAppQR encodes a wa.me chat link for the given phone number.
	GenerateWhatsAppQR(phone string) ([]byte, error)
}
