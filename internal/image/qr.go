package imagepkg

import (
	"image"

	qrcode "github.com/skip2/go-qrcode"
)

// EncodeQR returns a size x size QR image of text at medium recovery level.
func EncodeQR(text string, size int) (image.Image, error) {
	if text == "" {
		return nil, ErrEmptyPayload
	}
	q, err := qrcode.New(text, qrcode.Medium)
	if err != nil {
		return nil, err
	}
	return q.Image(size), nil
}
