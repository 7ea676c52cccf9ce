package imagepkg

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang/freetype/truetype"
	"go.uber.org/zap"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"

	"github.com/youruser/idcardgen/internal/logger"
)

// FontFamily names a font slot used by the templates.
type FontFamily string

const (
	SerifBold FontFamily = "serif-bold"
	Script    FontFamily = "script"
)

// FontSpec is a family at a pixel size.
type FontSpec struct {
	Family FontFamily
	Size   float64
}

// font files looked up in the assets directory, first match wins
var fontFiles = map[FontFamily][]string{
	SerifBold: {"timesbd.ttf", "times.ttf"},
	Script:    {"AlexBrush-Regular.ttf"},
}

var embeddedFonts = map[FontFamily][]byte{
	SerifBold: gobold.TTF,
	Script:    goitalic.TTF,
}

// FontBook holds parsed fonts. Parsed fonts are read-only and shared; faces
// are not, so every canvas creates its own.
type FontBook struct {
	fonts map[FontFamily]*truetype.Font
}

// LoadFontBook parses the template fonts from assetsDir, falling back to the
// embedded Go fonts for any slot whose file is missing or unreadable.
func LoadFontBook(assetsDir string) (*FontBook, error) {
	b := &FontBook{fonts: map[FontFamily]*truetype.Font{}}
	for family, embedded := range embeddedFonts {
		f := loadFontFile(assetsDir, family)
		if f == nil {
			var err error
			f, err = truetype.Parse(embedded)
			if err != nil {
				return nil, fmt.Errorf("parse embedded %s font: %w", family, err)
			}
		}
		b.fonts[family] = f
	}
	return b, nil
}

func loadFontFile(assetsDir string, family FontFamily) *truetype.Font {
	if assetsDir == "" {
		return nil
	}
	for _, name := range fontFiles[family] {
		path := filepath.Join(assetsDir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		f, err := truetype.Parse(data)
		if err != nil {
			logger.WarnCtx(context.Background(), "could not parse font, trying next",
				zap.String("path", path), zap.Error(err))
			continue
		}
		return f
	}
	logger.InfoCtx(context.Background(), "using embedded font", zap.String("family", string(family)))
	return nil
}

// NewFace returns a fresh face for spec. Unknown families use SerifBold.
func (b *FontBook) NewFace(spec FontSpec) font.Face {
	f, ok := b.fonts[spec.Family]
	if !ok {
		f = b.fonts[SerifBold]
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:    spec.Size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}
