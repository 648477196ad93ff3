package qrcode

import (
	"testing"

	"adresses/config"

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
		{"Default size", 0, "M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel, "")
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GenerateAddressQR(t *testing.T) {
	service := NewQRCodeService(256, "M", "https://adresses.example.com/a")

	qrBytes, err := service.GenerateAddressQR("0190c3c4-6a6f-7b1e-9d2f-3a4b5c6d7e8f")
	require.NoError(t, err)
	require.NotEmpty(t, qrBytes)

	// PNG magic number
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, qrBytes[:4])
}

func TestQRCodeService_GenerateAddressQR_EmptyID(t *testing.T) {
	service := NewQRCodeService(256, "M", "")

	_, err := service.GenerateAddressQR("")
	assert.Error(t, err)
}

func TestQRCodeService_GenerateAddressQR_DifferentSizes(t *testing.T) {
	for _, size := range []int{128, 256, 512} {
		service := NewQRCodeService(size, "M", "")

		qrBytes, err := service.GenerateAddressQR("abc")
		require.NoError(t, err)
		assert.NotEmpty(t, qrBytes)
	}
}

func TestQRCodeService_ShareLinkRoundTrip(t *testing.T) {
	service := NewQRCodeService(256, "M", "https://adresses.example.com/a/")

	for _, id := range []string{"Xy12AbCd", "0190c3c4-6a6f-7b1e-9d2f-3a4b5c6d7e8f", "with space"} {
		link := service.ShareLink(id)
		assert.Contains(t, link, "https://adresses.example.com/a/")

		parsed, err := service.ParseAddressLink(link)
		require.NoError(t, err)
		assert.Equal(t, id, parsed)
	}
}

func TestQRCodeService_ParseAddressLink_Invalid(t *testing.T) {
	service := NewQRCodeService(256, "M", "adresses://address")

	tests := []struct {
		name string
		link string
	}{
		{"other scheme", "https://evil.example.com/address/abc"},
		{"missing id", "adresses://address/"},
		{"nested path", "adresses://address/abc/comments"},
		{"bad escape", "adresses://address/%zz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.ParseAddressLink(tt.link)
			assert.Error(t, err)
		})
	}
}

func TestNewFromConfig_Defaults(t *testing.T) {
	service := NewFromConfig(&config.Config{})

	assert.Equal(t, "adresses://address/abc", service.ShareLink("abc"))
}
