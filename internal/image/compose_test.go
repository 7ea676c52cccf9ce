package imagepkg

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"
)

var (
	red  = color.NRGBA{R: 255, A: 255}
	blue = color.NRGBA{B: 255, A: 255}
)

func testFonts(t *testing.T) *FontBook {
	t.Helper()
	fb, err := LoadFontBook("")
	if err != nil {
		t.Fatalf("load fonts: %v", err)
	}
	return fb
}

func rgbaAt(img image.Image, x, y int) (r, g, b, a uint32) {
	r, g, b, a = img.At(x, y).RGBA()
	return r >> 8, g >> 8, b >> 8, a >> 8
}

func TestRoundedClipRadiusZeroIsPlainRect(t *testing.T) {
	c := NewCanvas(100, 100, testFonts(t))
	c.DrawLayer(Layer{
		Image: imaging.New(40, 30, red),
		Rect:  Rect{X: 10, Y: 10, W: 40, H: 30},
		Clip:  Clip{Shape: ClipRoundedRect},
	})
	if r, _, _, a := rgbaAt(c.Image(), 10, 10); r < 250 || a < 250 {
		t.Fatalf("expected opaque corner with radius 0, got r=%d a=%d", r, a)
	}
}

func TestRoundedClipCutsCorners(t *testing.T) {
	c := NewCanvas(100, 100, testFonts(t))
	c.DrawLayer(Layer{
		Image: imaging.New(60, 60, red),
		Rect:  Rect{X: 20, Y: 20, W: 60, H: 60},
		Clip:  Clip{Shape: ClipRoundedRect, Radius: 20},
	})
	img := c.Image()
	if _, _, _, a := rgbaAt(img, 20, 20); a != 0 {
		t.Fatalf("expected transparent corner, got alpha %d", a)
	}
	if _, _, _, a := rgbaAt(img, 50, 20); a < 250 {
		t.Fatalf("expected opaque top edge midpoint, got alpha %d", a)
	}
}

func TestCircleClipCenteredOnRect(t *testing.T) {
	c := NewCanvas(120, 120, testFonts(t))
	c.DrawLayer(Layer{
		Image: imaging.New(100, 100, red),
		Rect:  Rect{X: 10, Y: 10, W: 100, H: 100},
		Clip:  Clip{Shape: ClipCircle},
	})
	img := c.Image()
	if _, _, _, a := rgbaAt(img, 13, 13); a != 0 {
		t.Fatalf("expected transparent outside circle, got alpha %d", a)
	}
	if r, _, _, a := rgbaAt(img, 60, 60); r < 250 || a < 250 {
		t.Fatalf("expected opaque center, got r=%d a=%d", r, a)
	}
	if _, _, _, a := rgbaAt(img, 60, 12); a < 200 {
		t.Fatalf("expected top of circle inside clip, got alpha %d", a)
	}
}

func TestWithTransformRestoresState(t *testing.T) {
	c := NewCanvas(100, 100, testFonts(t))
	err := c.WithTransform(50, 50, 45, func() error {
		c.DrawLayer(Layer{Image: imaging.New(10, 10, blue), Rect: Rect{W: 10, H: 10}})
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c.DrawLayer(Layer{Image: imaging.New(10, 10, red), Rect: Rect{W: 10, H: 10}})

	img := c.Image()
	if r, _, b, _ := rgbaAt(img, 5, 5); r < 250 || b != 0 {
		t.Fatalf("expected untransformed red square at origin, got r=%d b=%d", r, b)
	}
	// local (5,5) rotated 45 degrees about the group origin lands near (50,57)
	if _, _, b, _ := rgbaAt(img, 50, 57); b < 200 {
		t.Fatalf("expected rotated blue square, got b=%d", b)
	}
	if _, _, _, a := rgbaAt(img, 60, 50); a != 0 {
		t.Fatalf("expected (60,50) outside the rotated square")
	}
}

func TestWithTransformPropagatesError(t *testing.T) {
	c := NewCanvas(10, 10, testFonts(t))
	want := errors.New("layer failed")
	if err := c.WithTransform(1, 1, 0, func() error { return want }); !errors.Is(err, want) {
		t.Fatalf("expected %v, got %v", want, err)
	}
}

func TestWatermarkOpacity(t *testing.T) {
	c := NewCanvas(100, 100, testFonts(t))
	c.DrawBackground(nil)
	c.Watermark(imaging.New(10, 10, color.NRGBA{A: 255}), 20, 0.1, nil)
	img := c.Image()
	r, _, _, _ := rgbaAt(img, 50, 50)
	if r < 224 || r > 234 {
		t.Fatalf("expected ~90%% white at center, got %d", r)
	}
	if r, _, _, _ := rgbaAt(img, 5, 5); r != 255 {
		t.Fatalf("watermark leaked outside its rect: %d", r)
	}
}

func TestWatermarkZeroOpacitySkipped(t *testing.T) {
	c := NewCanvas(40, 40, testFonts(t))
	c.DrawBackground(nil)
	c.Watermark(imaging.New(10, 10, color.NRGBA{A: 255}), 20, 0, nil)
	if r, _, _, _ := rgbaAt(c.Image(), 20, 20); r != 255 {
		t.Fatalf("expected untouched canvas, got %d", r)
	}
}

func TestWatermarkShadowIsFaded(t *testing.T) {
	c := NewCanvas(100, 100, testFonts(t))
	c.DrawBackground(nil)
	c.Watermark(imaging.New(20, 20, color.NRGBA{A: 255}), 40, 0.5, SoftShadow)
	img := c.Image()
	r, _, _, _ := rgbaAt(img, 71, 50)
	if r == 255 {
		t.Fatalf("expected shadow right of the watermark")
	}
	// an unfaded shadow would be about 180 here
	if r < 195 {
		t.Fatalf("shadow not faded with the watermark: %d", r)
	}
	if r, _, _, _ := rgbaAt(img, 95, 95); r != 255 {
		t.Fatalf("shadow spread too far: %d", r)
	}
}

func TestLayerShadowPaintsOffset(t *testing.T) {
	c := NewCanvas(80, 80, testFonts(t))
	c.DrawBackground(nil)
	c.DrawLayer(Layer{
		Image:  imaging.New(20, 20, red),
		Rect:   Rect{X: 20, Y: 20, W: 20, H: 20},
		Shadow: SoftShadow,
	})
	img := c.Image()
	if r, g, _, _ := rgbaAt(img, 41, 30); r == 255 && g == 255 {
		t.Fatalf("expected shadow right of the layer")
	}
	if r, g, _, _ := rgbaAt(img, 70, 70); r != 255 || g != 255 {
		t.Fatalf("shadow spread too far")
	}
}

func TestDrawBackgroundStretches(t *testing.T) {
	c := NewCanvas(64, 32, testFonts(t))
	c.DrawBackground(imaging.New(8, 8, blue))
	if _, _, b, a := rgbaAt(c.Image(), 63, 31); b < 250 || a < 250 {
		t.Fatalf("expected background to cover the canvas")
	}
}

func TestDrawTextWithShadow(t *testing.T) {
	c := NewCanvas(300, 80, testFonts(t))
	c.DrawBackground(nil)
	c.DrawText(Text{
		Value:  "HELLO",
		X:      10,
		Y:      55,
		Font:   FontSpec{Family: SerifBold, Size: 40},
		Color:  red,
		Shadow: SoftShadow,
	})
	img := c.Image()
	var inked int
	for y := 0; y < 80; y++ {
		for x := 0; x < 300; x++ {
			if r, g, _, _ := rgbaAt(img, x, y); r > 200 && g < 60 {
				inked++
			}
		}
	}
	if inked == 0 {
		t.Fatalf("expected red glyph pixels")
	}
}
