package imagepkg

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
)

// Placeholders stand in for bundled artwork that is missing from the assets
// directory, so the service still renders a complete card.

// PlaceholderBackground fills w x h with base and a darker header band.
func PlaceholderBackground(w, h int, base color.NRGBA) image.Image {
	dc := gg.NewContext(w, h)
	dc.SetColor(base)
	dc.Clear()
	dc.SetColor(shade(base, 0.7))
	dc.DrawRectangle(0, 0, float64(w), float64(h)*0.24)
	dc.Fill()
	dc.SetColor(shade(base, 0.85))
	dc.DrawRectangle(0, float64(h)*0.9, float64(w), float64(h)*0.1)
	dc.Fill()
	return dc.Image()
}

// PlaceholderPhoto draws a neutral head-and-shoulders silhouette.
func PlaceholderPhoto(size int) image.Image {
	s := float64(size)
	dc := gg.NewContext(size, size)
	dc.SetRGB255(0xDD, 0xE3, 0xEA)
	dc.Clear()
	dc.SetRGB255(0x9A, 0xA8, 0xB8)
	dc.DrawCircle(s/2, s*0.38, s*0.2)
	dc.Fill()
	dc.DrawEllipse(s/2, s*0.95, s*0.36, s*0.3)
	dc.Fill()
	return dc.Image()
}

// PlaceholderLogo draws a ringed seal.
func PlaceholderLogo(size int) image.Image {
	s := float64(size)
	dc := gg.NewContext(size, size)
	dc.SetRGB255(0x1B, 0x2A, 0x4A)
	dc.DrawCircle(s/2, s/2, s/2)
	dc.Fill()
	dc.SetRGB255(0xE8, 0xC5, 0x47)
	dc.SetLineWidth(s * 0.06)
	dc.DrawCircle(s/2, s/2, s*0.36)
	dc.Stroke()
	dc.DrawRegularPolygon(5, s/2, s/2, s*0.2, 0)
	dc.Fill()
	return dc.Image()
}

// PlaceholderHand fills a hand background with a desk tone and a palm shape.
func PlaceholderHand(w, h int) image.Image {
	fw, fh := float64(w), float64(h)
	dc := gg.NewContext(w, h)
	dc.SetRGB255(0x6B, 0x55, 0x44)
	dc.Clear()
	dc.SetRGB255(0xE0, 0xAC, 0x88)
	dc.DrawEllipse(fw*0.5, fh*0.78, fw*0.34, fh*0.3)
	dc.Fill()
	dc.DrawRoundedRectangle(fw*0.08, fh*0.52, fw*0.2, fh*0.1, fh*0.05)
	dc.Fill()
	return dc.Image()
}

func shade(c color.NRGBA, f float64) color.NRGBA {
	return color.NRGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: c.A,
	}
}
