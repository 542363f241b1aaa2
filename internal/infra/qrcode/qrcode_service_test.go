package qrcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel, "http://localhost:8080/subscribe")
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GenerateSubscribeQR(t *testing.T) {
	service := NewQRCodeService(256, "M", "http://localhost:8080/subscribe")

	qrBytes, err := service.GenerateSubscribeQR()
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, byte(0x89), qrBytes[0])
	assert.Equal(t, byte(0x50), qrBytes[1])
	assert.Equal(t, byte(0x4E), qrBytes[2])
	assert.Equal(t, byte(0x47), qrBytes[3])
}

func TestQRCodeService_GenerateSubscribeQR_Deterministic(t *testing.T) {
	service := NewQRCodeService(256, "M", "http://localhost:8080/subscribe")

	first, err := service.GenerateSubscribeQR()
	require.NoError(t, err)
	second, err := service.GenerateSubscribeQR()
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
