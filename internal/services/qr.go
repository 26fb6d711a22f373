package services

import (
	"github.com/skip2/go-qrcode"
)

// ShareQRCode renders a stored link's URL as a PNG QR code for sharing.
func ShareQRCode(url string, size int) ([]byte, error) {
	if size <= 0 {
		size = 256
	}
	return qrcode.Encode(url, qrcode.Medium, size)
}
