package template

import (
	"fmt"
	"image/color"

	imagepkg "github.com/youruser/idcardgen/internal/image"
)

const (
	AcademicWidth  = 1280
	AcademicHeight = 804
	SchoolWidth    = 1000
	SchoolHeight   = 630
	HandWidth      = 1400
	HandHeight     = 1050

	// StyleCount is the number of background styles in every family.
	StyleCount = 6
)

var (
	white   = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	black   = color.NRGBA{A: 0xFF}
	coral   = color.NRGBA{R: 0xF4, G: 0x52, B: 0x45, A: 0xFF}
	navy    = color.NRGBA{R: 0x1B, G: 0x2A, B: 0x4A, A: 0xFF}
	slate   = color.NRGBA{R: 0x2E, G: 0x34, B: 0x40, A: 0xFF}
	palette = [StyleCount]color.NRGBA{
		{R: 0xF3, G: 0xEE, B: 0xE3, A: 0xFF},
		{R: 0xDC, G: 0xE8, B: 0xF5, A: 0xFF},
		{R: 0xE3, G: 0xF2, B: 0xE1, A: 0xFF},
		{R: 0xF8, G: 0xE1, B: 0xE4, A: 0xFF},
		{R: 0xEC, G: 0xE4, B: 0xF6, A: 0xFF},
		{R: 0xFF, G: 0xF1, B: 0xD0, A: 0xFF},
	}
	bannerPalette = [StyleCount]color.NRGBA{
		{R: 0x23, G: 0x3D, B: 0x6E, A: 0xFF},
		{R: 0x1F, G: 0x5E, B: 0x55, A: 0xFF},
		{R: 0x6E, G: 0x23, B: 0x3A, A: 0xFF},
		{R: 0x3B, G: 0x2F, B: 0x6B, A: 0xFF},
		{R: 0x2D, G: 0x2D, B: 0x2D, A: 0xFF},
		{R: 0x7A, G: 0x4B, B: 0x12, A: 0xFF},
	}
)

func serif(size float64) imagepkg.FontSpec {
	return imagepkg.FontSpec{Family: imagepkg.SerifBold, Size: size}
}

func script(size float64) imagepkg.FontSpec {
	return imagepkg.FontSpec{Family: imagepkg.Script, Size: size}
}

func academicClassic() Descriptor {
	return Descriptor{
		Family:        AcademicClassic,
		Width:         AcademicWidth,
		Height:        AcademicHeight,
		Logo:          imagepkg.Rect{X: 15, Y: 49, W: 165, H: 165},
		Photo:         imagepkg.Rect{X: 155, Y: 227, W: 348, H: 348},
		PhotoClip:     imagepkg.Clip{Shape: imagepkg.ClipCircle},
		WatermarkSize: 620,
		Title: TitleLayout{
			Wrap:         WrapTwoLine,
			Font:         serif(32),
			Color:        black,
			Shadow:       imagepkg.SoftShadow,
			Uppercase:    true,
			Single:       Point{165, 130},
			First:        Point{158, 112},
			SecondSingle: Point{300, 149},
			SecondMulti:  Point{200, 149},
		},
		Fields: []Anchor{
			{Field: FieldName, X: 625, Y: 402, Font: serif(52), Color: coral, Uppercase: true},
			{Field: FieldID, X: 810, Y: 462, Font: serif(31), Color: black},
			{Field: FieldDOB, X: 808, Y: 512, Font: serif(31), Color: black},
			{Field: FieldAddress, X: 810, Y: 557, Font: serif(31), Color: black, MaxChars: 30},
			{Field: FieldAcademicYear, X: 665, Y: 694, Font: serif(45), Color: coral},
			{Field: FieldIssueDate, X: 1050, Y: 80, Font: serif(30), Color: white},
			{Field: FieldExpiryDate, X: 65, Y: 785, Font: serif(30), Color: white},
			{Field: FieldIssueLabel, X: 1005, Y: 40, Font: serif(40), Color: white},
			{Field: FieldExpiryLabel, X: 10, Y: 745, Font: serif(34), Color: white},
			{Field: FieldSignatory, X: 1047, Y: 693, Font: script(38), Color: black, Shadow: imagepkg.SoftShadow},
		},
	}
}

func academicBanner() Descriptor {
	// the banner layout shifts the title block by (380, 110) and keeps the
	// soft shadow on every raster layer
	const dx, dy = 380, 110
	shadow := imagepkg.SoftShadow
	return Descriptor{
		Family:          AcademicBanner,
		Width:           AcademicWidth,
		Height:          AcademicHeight,
		Logo:            imagepkg.Rect{X: 433, Y: 177, W: 102, H: 102},
		LogoShadow:      shadow,
		Photo:           imagepkg.Rect{X: 67, Y: 179, W: 282, H: 282},
		PhotoClip:       imagepkg.Clip{Shape: imagepkg.ClipCircle},
		PhotoShadow:     shadow,
		WatermarkSize:   620,
		WatermarkShadow: shadow,
		Title: TitleLayout{
			Wrap:         WrapTwoLine,
			Font:         serif(32),
			Color:        white,
			Shadow:       shadow,
			Uppercase:    true,
			Single:       Point{165 + dx, 130 + dy},
			First:        Point{158 + dx, 112 + dy},
			SecondSingle: Point{300 + dx, 149 + dy},
			SecondMulti:  Point{200 + dx, 149 + dy},
		},
		Fields: []Anchor{
			{Field: FieldName, X: 85, Y: 750, Font: serif(52), Color: white, Shadow: shadow, Uppercase: true},
			{Field: FieldID, X: 715, Y: 359, Font: serif(40), Color: white, Shadow: shadow},
			{Field: FieldDOB, X: 715, Y: 428, Font: serif(40), Color: white, Shadow: shadow},
			{Field: FieldAddress, X: 715, Y: 490, Font: serif(40), Color: white, Shadow: shadow, MaxChars: 30},
			{Field: FieldAcademicYear, X: 715, Y: 553, Font: serif(40), Color: white, Shadow: shadow},
			{Field: FieldExpiryDate, X: 715, Y: 620, Font: serif(40), Color: white, Shadow: shadow},
			{Field: FieldIssueDate, X: 1050, Y: 80, Font: serif(30), Color: white, Shadow: shadow},
			{Field: FieldIssueLabel, X: 1005, Y: 40, Font: serif(40), Color: white, Shadow: shadow},
			{Field: FieldSignatory, X: 955, Y: 700, Font: script(38), Color: white, Shadow: shadow},
		},
	}
}

func school() Descriptor {
	shadow := imagepkg.SoftShadow
	return Descriptor{
		Family:        School,
		Width:         SchoolWidth,
		Height:        SchoolHeight,
		Logo:          imagepkg.Rect{X: 36, Y: 28, W: 104, H: 104},
		LogoShadow:    shadow,
		Photo:         imagepkg.Rect{X: 56, Y: 170, W: 236, H: 296},
		PhotoClip:     imagepkg.Clip{Shape: imagepkg.ClipRoundedRect, Radius: 24},
		WatermarkSize: 360,
		Barcode:       &imagepkg.Rect{X: 330, Y: 512, W: 400, H: 52},
		Title: TitleLayout{
			Wrap:         WrapShortName,
			Font:         serif(40),
			Color:        white,
			Shadow:       shadow,
			Uppercase:    true,
			Single:       Point{160, 95},
			First:        Point{160, 72},
			SecondSingle: Point{160, 118},
			SecondMulti:  Point{160, 118},
		},
		Fields: []Anchor{
			{Field: FieldName, X: 330, Y: 222, Font: serif(38), Color: navy, Uppercase: true},
			{Field: FieldClass, Prefix: "Class: ", X: 330, Y: 272, Font: serif(26), Color: slate},
			{Field: FieldRoll, Prefix: "Roll No: ", X: 330, Y: 310, Font: serif(26), Color: slate},
			{Field: FieldDOB, Prefix: "DOB: ", X: 330, Y: 348, Font: serif(26), Color: slate},
			{Field: FieldBloodGroup, Prefix: "Blood Group: ", X: 330, Y: 386, Font: serif(26), Color: slate},
			{Field: FieldGuardian, Prefix: "Guardian: ", X: 330, Y: 424, Font: serif(26), Color: slate},
			{Field: FieldPhone, Prefix: "Phone: ", X: 330, Y: 462, Font: serif(26), Color: slate},
			{Field: FieldAddress, Prefix: "Address: ", X: 330, Y: 500, Font: serif(26), Color: slate, MaxChars: 30},
			{Field: FieldSession, X: 56, Y: 530, Font: serif(26), Color: navy},
			{Field: FieldID, Prefix: "ID: ", X: 56, Y: 606, Font: serif(26), Color: white, Shadow: shadow},
		},
	}
}

// styled returns base for 1-based style with its artwork set.
func styled(base Descriptor, style int, asset string, bg color.NRGBA) *Descriptor {
	d := base
	d.Style = style
	d.Background = asset
	d.BackgroundColor = bg
	return &d
}

func buildCatalog() map[Family][]*Descriptor {
	out := map[Family][]*Descriptor{}
	for i := 0; i < StyleCount; i++ {
		style := i + 1
		out[AcademicClassic] = append(out[AcademicClassic],
			styled(academicClassic(), style, fmt.Sprintf("temp%d.png", style), palette[i]))
		out[AcademicBanner] = append(out[AcademicBanner],
			styled(academicBanner(), style, fmt.Sprintf("temp2_%d.png", style), bannerPalette[i]))
		out[School] = append(out[School],
			styled(school(), style, fmt.Sprintf("school%d.png", style), palette[i]))
	}
	return out
}

func buildHands() []HandStyle {
	shadow := &imagepkg.Shadow{Color: color.NRGBA{A: 110}, Blur: 12, OffsetX: 6, OffsetY: 10}
	return []HandStyle{
		{
			Style:      1,
			Background: "hand1.png",
			Width:      HandWidth,
			Height:     HandHeight,
			Dest:       imagepkg.Rect{X: 300, Y: 273, W: 800, H: 504},
			Rotation:   -8,
			Radius:     28,
			Shadow:     shadow,
		},
		{
			Style:      2,
			Background: "hand2.png",
			Width:      HandWidth,
			Height:     HandHeight,
			Dest:       imagepkg.Rect{X: 330, Y: 290, W: 740, H: 466},
			Rotation:   6,
			Radius:     0,
			Shadow:     shadow,
		},
	}
}
