package render

import (
	"context"
	"image"

	"github.com/disintegration/imaging"
	"go.uber.org/zap"

	imagepkg "github.com/youruser/idcardgen/internal/image"
	"github.com/youruser/idcardgen/internal/logger"
	"github.com/youruser/idcardgen/internal/template"
)

// Bundled asset names substituted when the caller supplies no image or the
// supplied one cannot be loaded.
const (
	DefaultPhotoAsset = "default_student.png"
	DefaultLogoAsset  = "college_logo.png"
)

// Assets are the bundled images, loaded once at startup and shared
// read-only by every request.
type Assets struct {
	backgrounds map[string]image.Image
	hands       map[string]image.Image
	photo       image.Image
	logo        image.Image
}

// LoadAssets reads every template background, hand background and default
// image through resolver. Anything missing is replaced by a generated
// placeholder so rendering never depends on the assets directory.
func LoadAssets(ctx context.Context, resolver *imagepkg.Resolver, reg *template.Registry) *Assets {
	a := &Assets{
		backgrounds: map[string]image.Image{},
		hands:       map[string]image.Image{},
	}
	var missing int
	for _, d := range reg.Descriptors() {
		img := resolver.Resolve(ctx, d.Background)
		if img == nil {
			missing++
			img = imagepkg.PlaceholderBackground(d.Width, d.Height, d.BackgroundColor)
		}
		a.backgrounds[d.Background] = fitCanvas(img, d.Width, d.Height)
	}
	for _, h := range reg.Hands() {
		img := resolver.Resolve(ctx, h.Background)
		if img == nil {
			missing++
			img = imagepkg.PlaceholderHand(h.Width, h.Height)
		}
		a.hands[h.Background] = fitCanvas(img, h.Width, h.Height)
	}
	if a.photo = resolver.Resolve(ctx, DefaultPhotoAsset); a.photo == nil {
		missing++
		a.photo = imagepkg.PlaceholderPhoto(400)
	}
	if a.logo = resolver.Resolve(ctx, DefaultLogoAsset); a.logo == nil {
		missing++
		a.logo = imagepkg.PlaceholderLogo(300)
	}
	if missing > 0 {
		logger.WarnCtx(ctx, "bundled assets missing, using generated placeholders", zap.Int("missing", missing))
	}
	return a
}

func fitCanvas(img image.Image, w, h int) image.Image {
	b := img.Bounds()
	if b.Dx() == w && b.Dy() == h {
		return img
	}
	return imaging.Resize(img, w, h, imaging.Lanczos)
}

// Background returns the artwork for d.
func (a *Assets) Background(d *template.Descriptor) image.Image {
	return a.backgrounds[d.Background]
}

// Hand returns the hand photo for h.
func (a *Assets) Hand(h template.HandStyle) image.Image {
	return a.hands[h.Background]
}

func (a *Assets) DefaultPhoto() image.Image { return a.photo }
func (a *Assets) DefaultLogo() image.Image  { return a.logo }
