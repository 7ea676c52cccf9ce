package imagepkg

import (
	"image"
	"math"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
)

// applyClip masks img with clip in the image's own frame. The circle is
// centered at size/2; the rounded rectangle spans the whole image.
func applyClip(img *image.NRGBA, clip Clip) *image.NRGBA {
	if clip.Shape == ClipNone {
		return img
	}
	b := img.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())

	dc := gg.NewContext(b.Dx(), b.Dy())
	switch clip.Shape {
	case ClipCircle:
		dc.DrawCircle(w/2, h/2, math.Min(w, h)/2)
	case ClipRoundedRect:
		RoundedRectPath(dc, 0, 0, w, h, clip.Radius)
	default:
		return img
	}
	dc.Clip()
	dc.DrawImage(img, 0, 0)
	return imaging.Clone(dc.Image())
}

// RoundedRectPath appends a rectangle with four quadratic corners of radius r
// to the current path. r <= 0 yields a plain rectangle; r is capped at half
// the shorter side.
func RoundedRectPath(dc *gg.Context, x, y, w, h, r float64) {
	if r <= 0 {
		dc.DrawRectangle(x, y, w, h)
		return
	}
	r = math.Min(r, math.Min(w, h)/2)
	dc.NewSubPath()
	dc.MoveTo(x+r, y)
	dc.LineTo(x+w-r, y)
	dc.QuadraticTo(x+w, y, x+w, y+r)
	dc.LineTo(x+w, y+h-r)
	dc.QuadraticTo(x+w, y+h, x+w-r, y+h)
	dc.LineTo(x+r, y+h)
	dc.QuadraticTo(x, y+h, x, y+h-r)
	dc.LineTo(x, y+r)
	dc.QuadraticTo(x, y, x+r, y)
	dc.ClosePath()
}
