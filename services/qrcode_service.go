// File: services/qrcode_service.go
package services

import (
	"errors"

	"github.com/skip2/go-qrcode"
)

// QRCodeEncoder matches qrcode.Encode so tests can inject failures.
type QRCodeEncoder func(content string, level qrcode.RecoveryLevel, size int) ([]byte, error)

// ShareQRCode renders the join link for a published tournament as a PNG, so
// it can be scanned straight from the browse page.
func ShareQRCode(shareURL string, size int, encode QRCodeEncoder) ([]byte, error) {
	if shareURL == "" {
		return nil, errors.New("share URL is required")
	}
	return encode(shareURL, qrcode.Medium, size)
}
