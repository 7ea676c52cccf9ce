package render

import (
	"context"
	"image"

	imagepkg "github.com/youruser/idcardgen/internal/image"
)

// Hand composites a finished card onto a hand background. style is 1 or 2;
// other values use style 1. The card is painted in a frame centered on the
// style's destination rect and rotated by its angle.
func (r *Renderer) Hand(ctx context.Context, card image.Image, style int) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	hs := r.templates.Hand(style)

	cv := imagepkg.NewCanvas(hs.Width, hs.Height, r.fonts)
	cv.DrawBackground(r.assets.Hand(hs))

	cx, cy := hs.Dest.Center()
	err := cv.WithTransform(cx, cy, hs.Rotation, func() error {
		cv.DrawLayer(imagepkg.Layer{
			Image:  card,
			Rect:   imagepkg.Rect{X: -hs.Dest.W / 2, Y: -hs.Dest.H / 2, W: hs.Dest.W, H: hs.Dest.H},
			Clip:   imagepkg.Clip{Shape: imagepkg.ClipRoundedRect, Radius: hs.Radius},
			Shadow: hs.Shadow,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cv.Image(), nil
}
