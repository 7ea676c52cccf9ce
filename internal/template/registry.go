package template

import (
	"errors"
	"fmt"
)

// ErrUnknownStyle is returned for a family or style outside the catalog.
var ErrUnknownStyle = errors.New("unknown style")

// Registry is the static template catalog. It is built once at startup and
// only read afterwards.
type Registry struct {
	families map[Family][]*Descriptor
	hands    []HandStyle
}

// NewRegistry builds the catalog.
func NewRegistry() *Registry {
	return &Registry{
		families: buildCatalog(),
		hands:    buildHands(),
	}
}

// Resolve returns the descriptor for a 1-based style.
func (r *Registry) Resolve(family Family, style int) (*Descriptor, error) {
	styles, ok := r.families[family]
	if !ok {
		return nil, fmt.Errorf("%w: family %q", ErrUnknownStyle, family)
	}
	if style < 1 || style > len(styles) {
		return nil, fmt.Errorf("%w: %s style %d, want 1..%d", ErrUnknownStyle, family, style, len(styles))
	}
	return styles[style-1], nil
}

// Hand returns hand style 1 or 2; anything else is style 1.
func (r *Registry) Hand(style int) HandStyle {
	if style < 1 || style > len(r.hands) {
		style = 1
	}
	return r.hands[style-1]
}

// Descriptors lists every template, for asset preloading.
func (r *Registry) Descriptors() []*Descriptor {
	var out []*Descriptor
	for _, f := range []Family{AcademicClassic, AcademicBanner, School} {
		out = append(out, r.families[f]...)
	}
	return out
}

// Hands lists every hand style.
func (r *Registry) Hands() []HandStyle {
	out := make([]HandStyle, len(r.hands))
	copy(out, r.hands)
	return out
}

// AcademicFamily maps the public template selector to a family: "2" is the
// banner layout, anything else the classic one.
func AcademicFamily(selector string) Family {
	if selector == "2" {
		return AcademicBanner
	}
	return AcademicClassic
}
