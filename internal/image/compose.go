package imagepkg

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"golang.org/x/image/font"
)

// Canvas is the per-request drawing surface. It must not be shared between
// requests.
type Canvas struct {
	dc    *gg.Context
	fonts *FontBook
	faces map[FontSpec]font.Face
}

// NewCanvas allocates a w x h transparent canvas.
func NewCanvas(w, h int, fonts *FontBook) *Canvas {
	return &Canvas{
		dc:    gg.NewContext(w, h),
		fonts: fonts,
		faces: map[FontSpec]font.Face{},
	}
}

func (c *Canvas) Width() int  { return c.dc.Width() }
func (c *Canvas) Height() int { return c.dc.Height() }

// Image returns the canvas raster.
func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

// DrawBackground stretches img over the whole canvas. A nil image leaves a
// white canvas.
func (c *Canvas) DrawBackground(img image.Image) {
	if img == nil {
		c.dc.SetColor(color.White)
		c.dc.Clear()
		return
	}
	w, h := c.Width(), c.Height()
	b := img.Bounds()
	if b.Dx() != w || b.Dy() != h {
		img = imaging.Resize(img, w, h, imaging.Lanczos)
	}
	c.dc.DrawImage(img, 0, 0)
}

// DrawLayer paints a layer: resize to the rect, clip, fade, shadow, paint.
func (c *Canvas) DrawLayer(l Layer) {
	if l.Image == nil {
		return
	}
	img := prepareLayer(l)
	if img == nil {
		return
	}
	x := int(math.Round(l.Rect.X))
	y := int(math.Round(l.Rect.Y))
	if l.Shadow != nil {
		sh, pad := silhouette(img, *l.Shadow)
		c.dc.DrawImage(sh, x+int(math.Round(l.Shadow.OffsetX))-pad, y+int(math.Round(l.Shadow.OffsetY))-pad)
	}
	c.dc.DrawImage(img, x, y)
}

// Watermark paints a faded size x size copy of img centered on the canvas.
// A non-nil shadow is faded with it.
func (c *Canvas) Watermark(img image.Image, size int, opacity float64, shadow *Shadow) {
	if img == nil || opacity <= 0 || size <= 0 {
		return
	}
	if opacity > 1 {
		opacity = 1
	}
	s := float64(size)
	c.DrawLayer(Layer{
		Image:   img,
		Rect:    Rect{X: (float64(c.Width()) - s) / 2, Y: (float64(c.Height()) - s) / 2, W: s, H: s},
		Shadow:  shadow,
		Opacity: opacity,
	})
}

// WithTransform runs fn inside a translated and rotated local frame. The
// previous transform and clip are restored when fn returns.
func (c *Canvas) WithTransform(tx, ty, degrees float64, fn func() error) error {
	c.dc.Push()
	defer c.dc.Pop()
	c.dc.Translate(tx, ty)
	if degrees != 0 {
		c.dc.Rotate(gg.Radians(degrees))
	}
	return fn()
}

func prepareLayer(l Layer) *image.NRGBA {
	w := int(math.Round(l.Rect.W))
	h := int(math.Round(l.Rect.H))
	if w <= 0 || h <= 0 {
		return nil
	}
	img := imaging.Resize(l.Image, w, h, imaging.Lanczos)
	img = applyClip(img, l.Clip)
	if l.Opacity > 0 && l.Opacity < 1 {
		img = fade(img, l.Opacity)
	}
	return img
}

func fade(img *image.NRGBA, opacity float64) *image.NRGBA {
	return imaging.AdjustFunc(img, func(c color.NRGBA) color.NRGBA {
		c.A = uint8(math.Round(float64(c.A) * opacity))
		return c
	})
}
