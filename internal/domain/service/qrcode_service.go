package service

// QRCodeService generates QR codes pointing at the public subscribe page.
type QRCodeService interface {
	// GenerateSubscribeQR returns a PNG QR code encoding the subscribe URL.
	GenerateSubscribeQR() ([]byte, error)
}
