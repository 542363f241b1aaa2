// Package qrcode renders QR codes for the printed flyers and shelf cards that
// point shoppers at the newsletter subscribe page.
package qrcode

import (
	"dealdigest/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	subscribeURL         string
}

// NewQRCodeService creates a new QR code service instance. The subscribe URL
// is what the code encodes; size is the PNG edge length in pixels.
func NewQRCodeService(size int, errorCorrectionLevel string, subscribeURL string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
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
		subscribeURL:         subscribeURL,
	}
}

// GenerateSubscribeQR returns a PNG QR code encoding the subscribe URL.
func (s *qrcodeService) GenerateSubscribeQR() ([]byte, error) {
	qrCode, err := qrcode.New(s.subscribeURL, s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}
