package imagepkg

import (
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"golang.org/x/image/font"
)

// Text is a single run drawn with its baseline at (X, Y).
type Text struct {
	Value  string
	X, Y   float64
	Font   FontSpec
	Color  color.Color
	Shadow *Shadow
}

// DrawText paints t, shadow first.
func (c *Canvas) DrawText(t Text) {
	if t.Value == "" {
		return
	}
	face := c.face(t.Font)
	c.dc.SetFontFace(face)
	if t.Shadow != nil {
		c.drawTextShadow(t, face)
	}
	if t.Color == nil {
		t.Color = color.Black
	}
	c.dc.SetColor(t.Color)
	c.dc.DrawString(t.Value, t.X, t.Y)
}

func (c *Canvas) face(spec FontSpec) font.Face {
	if f, ok := c.faces[spec]; ok {
		return f
	}
	f := c.fonts.NewFace(spec)
	c.faces[spec] = f
	return f
}

func (c *Canvas) drawTextShadow(t Text, face font.Face) {
	m := face.Metrics()
	ascent := m.Ascent.Ceil()
	descent := m.Descent.Ceil()
	w, _ := c.dc.MeasureString(t.Value)

	tc := gg.NewContext(int(math.Ceil(w))+2, ascent+descent)
	tc.SetFontFace(face)
	tc.SetColor(color.Black)
	tc.DrawString(t.Value, 0, float64(ascent))

	sh, pad := silhouette(imaging.Clone(tc.Image()), *t.Shadow)
	x := int(math.Round(t.X+t.Shadow.OffsetX)) - pad
	y := int(math.Round(t.Y+t.Shadow.OffsetY)) - ascent - pad
	c.dc.DrawImage(sh, x, y)
}
