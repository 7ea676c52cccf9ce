package imagepkg

import (
	"bytes"
	"context"
	"image"
	"net/http"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"

	"github.com/youruser/idcardgen/internal/util"
)

// maxImageBytes caps remote bodies and decoded inline payloads.
const maxImageBytes = 10 << 20

// DownloadImage downloads an image from url and returns it decoded.
func DownloadImage(ctx context.Context, client *http.Client, url string) (image.Image, error) {
	body, err := util.GetBytes(ctx, client, url, maxImageBytes)
	if err != nil {
		return nil, err
	}
	return decodeBytes(body)
}

func decodeBytes(b []byte) (image.Image, error) {
	return imaging.Decode(bytes.NewReader(b), imaging.AutoOrientation(true))
}
