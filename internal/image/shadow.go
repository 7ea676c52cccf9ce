package imagepkg

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
)

// silhouette returns img's alpha shape filled with the shadow color, padded
// on every side by the returned amount and blurred with sigma = Blur/2.
func silhouette(img *image.NRGBA, s Shadow) (*image.NRGBA, int) {
	pad := int(math.Ceil(s.Blur * 2))
	b := img.Bounds()
	base := color.NRGBA{R: s.Color.R, G: s.Color.G, B: s.Color.B}

	tinted := imaging.AdjustFunc(img, func(c color.NRGBA) color.NRGBA {
		return color.NRGBA{
			R: s.Color.R,
			G: s.Color.G,
			B: s.Color.B,
			A: uint8(math.Round(float64(c.A) * float64(s.Color.A) / 255)),
		}
	})
	out := imaging.New(b.Dx()+2*pad, b.Dy()+2*pad, base)
	out = imaging.Paste(out, tinted, image.Pt(pad, pad))
	if s.Blur > 0 {
		out = imaging.Blur(out, s.Blur/2)
	}
	return out, pad
}
