package service

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateAddressQR generates a PNG QR code pointing at the share link of an address
	GenerateAddressQR(addressID string) ([]byte, error)

	// ShareLink returns the link encoded by GenerateAddressQR
	ShareLink(addressID string) string

	// ParseAddressLink extracts the address ID from a scanned share link
	ParseAddressLink(link string) (string, error)
}
