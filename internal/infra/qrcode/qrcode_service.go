package qrcode

import (
	"fmt"
	"net/url"
	"strings"

	"adresses/config"
	"adresses/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

const (
	defaultSize    = 256
	defaultLevel   = "M"
	defaultBaseURL = "adresses://address"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a new QR code service instance. Links have the form {baseURL}/{addressID}.
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
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

	if size <= 0 {
		size = defaultSize
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

// NewFromConfig creates the QR code service from the qrcode config section, with defaults when absent.
func NewFromConfig(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return NewQRCodeService(defaultSize, defaultLevel, defaultBaseURL)
	}

	return NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

// ShareLink returns the deep link of an address
func (s *qrcodeService) ShareLink(addressID string) string {
	return s.baseURL + "/" + url.PathEscape(addressID)
}

// GenerateAddressQR generates a PNG QR code encoding the share link of an address
func (s *qrcodeService) GenerateAddressQR(addressID string) ([]byte, error) {
	if addressID == "" {
		return nil, fmt.Errorf("address ID is required")
	}

	qrCode, err := qrcode.New(s.ShareLink(addressID), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseAddressLink extracts the address ID from a scanned share link
func (s *qrcodeService) ParseAddressLink(link string) (string, error) {
	rest, ok := strings.CutPrefix(strings.TrimSpace(link), s.baseURL+"/")
	if !ok {
		return "", fmt.Errorf("not an address link: %s", link)
	}

	rest = strings.TrimRight(rest, "/")
	if rest == "" || strings.Contains(rest, "/") {
		return "", fmt.Errorf("invalid address link: %s", link)
	}

	addressID, err := url.PathUnescape(rest)
	if err != nil {
		return "", fmt.Errorf("failed to decode address ID: %w", err)
	}

	return addressID, nil
}
