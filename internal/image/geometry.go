package imagepkg

import (
	"image"
	"image/color"
)

// Rect is a placement in canvas pixels.
type Rect struct {
	X, Y, W, H float64
}

// Center returns origin + size/2.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Offset returns r moved by dx, dy.
func (r Rect) Offset(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// ClipShape selects the clip path applied to a layer.
type ClipShape int

const (
	ClipNone ClipShape = iota
	ClipCircle
	ClipRoundedRect
)

// Clip is a clip path in the layer's own frame. Radius is used only by
// ClipRoundedRect; 0 gives a plain rectangle.
type Clip struct {
	Shape  ClipShape
	Radius float64
}

// Shadow is a blurred, offset silhouette painted under a layer or text run.
type Shadow struct {
	Color   color.NRGBA
	Blur    float64
	OffsetX float64
	OffsetY float64
}

// SoftShadow is the 50% black, blur 4, offset (2,2) shadow used across the
// templates.
var SoftShadow = &Shadow{
	Color:   color.NRGBA{A: 128},
	Blur:    4,
	OffsetX: 2,
	OffsetY: 2,
}

// Layer is one raster painted by the compositor. A zero Opacity is opaque.
type Layer struct {
	Image   image.Image
	Rect    Rect
	Clip    Clip
	Shadow  *Shadow
	Opacity float64
}
