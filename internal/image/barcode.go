package imagepkg

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
	"github.com/disintegration/imaging"
)

// ErrEmptyPayload is returned when there is nothing to encode.
var ErrEmptyPayload = errors.New("empty barcode payload")

// BarcodeFill is the plate color behind the bars.
var BarcodeFill = color.NRGBA{R: 0xCD, G: 0xCD, B: 0xCF, A: 0xFF}

// barcodePadding is the quiet zone kept inside the plate on every side.
const barcodePadding = 8

// EncodeBarcode renders payload as Code128 scaled into a width x height
// plate. Only the dark modules are painted over BarcodeFill.
func EncodeBarcode(payload string, width, height int) (image.Image, error) {
	if payload == "" {
		return nil, ErrEmptyPayload
	}
	bc, err := code128.Encode(payload)
	if err != nil {
		return nil, fmt.Errorf("encode code128: %w", err)
	}
	innerW := width - 2*barcodePadding
	innerH := height - 2*barcodePadding
	if innerW <= 0 || innerH <= 0 {
		return nil, fmt.Errorf("barcode rect %dx%d too small", width, height)
	}
	scaled, err := barcode.Scale(bc, innerW, innerH)
	if err != nil {
		return nil, fmt.Errorf("scale code128: %w", err)
	}

	out := imaging.New(width, height, BarcodeFill)
	sb := scaled.Bounds()
	ox := (width - sb.Dx()) / 2
	oy := (height - sb.Dy()) / 2
	ink := color.NRGBA{A: 0xFF}
	for y := sb.Min.Y; y < sb.Max.Y; y++ {
		for x := sb.Min.X; x < sb.Max.X; x++ {
			if isDark(scaled.At(x, y)) {
				out.SetNRGBA(ox+x-sb.Min.X, oy+y-sb.Min.Y, ink)
			}
		}
	}
	return out, nil
}

func isDark(c color.Color) bool {
	return color.GrayModel.Convert(c).(color.Gray).Y < 128
}
