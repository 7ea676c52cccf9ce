// Package template declares the card templates: canvas size, artwork and the
// anchor of every drawn field, per family and style.
package template

import (
	"image/color"

	imagepkg "github.com/youruser/idcardgen/internal/image"
)

// Family is an independent card layout.
type Family string

const (
	AcademicClassic Family = "academic-classic"
	AcademicBanner  Family = "academic-banner"
	School          Family = "school"
)

// Field names a text value supplied by the render pipeline.
type Field string

const (
	FieldName         Field = "name"
	FieldDOB          Field = "dob"
	FieldID           Field = "id"
	FieldAddress      Field = "address"
	FieldAcademicYear Field = "academic_year"
	FieldIssueDate    Field = "issue_date"
	FieldIssueLabel   Field = "issue_label"
	FieldExpiryDate   Field = "expiry_date"
	FieldExpiryLabel  Field = "expiry_label"
	FieldSignatory    Field = "signatory"
	FieldClass        Field = "class"
	FieldRoll         Field = "roll"
	FieldBloodGroup   Field = "blood_group"
	FieldPhone        Field = "phone"
	FieldGuardian     Field = "guardian"
	FieldSession      Field = "session"
)

// WrapMode selects the line breaking used for the title.
type WrapMode int

const (
	// WrapTwoLine is the 28 character institution wrap.
	WrapTwoLine WrapMode = iota
	// WrapShortName is the 16 character school name wrap.
	WrapShortName
)

// Point is a text baseline origin.
type Point struct {
	X, Y float64
}

// Anchor is where and how one field is drawn. MaxChars > 0 truncates the
// value to that many characters before Prefix is prepended.
type Anchor struct {
	Field     Field
	Prefix    string
	X, Y      float64
	Font      imagepkg.FontSpec
	Color     color.NRGBA
	Shadow    *imagepkg.Shadow
	MaxChars  int
	Uppercase bool
}

// TitleLayout places the wrapped institution or school name. Single is used
// when everything fits on one line; otherwise First holds line one and
// SecondSingle or SecondMulti holds line two depending on its word count.
type TitleLayout struct {
	Wrap         WrapMode
	Font         imagepkg.FontSpec
	Color        color.NRGBA
	Shadow       *imagepkg.Shadow
	Uppercase    bool
	Single       Point
	First        Point
	SecondSingle Point
	SecondMulti  Point
}

// Descriptor is one resolved template. Descriptors are immutable.
type Descriptor struct {
	Family     Family
	Style      int
	Width      int
	Height     int
	Background string
	// BackgroundColor paints the placeholder when Background is missing.
	BackgroundColor color.NRGBA

	Logo        imagepkg.Rect
	LogoShadow  *imagepkg.Shadow
	Photo       imagepkg.Rect
	PhotoClip   imagepkg.Clip
	PhotoShadow *imagepkg.Shadow
	// WatermarkSize is the side of the centered faded logo.
	WatermarkSize   int
	WatermarkShadow *imagepkg.Shadow
	// Barcode is nil for templates without a barcode plate.
	Barcode *imagepkg.Rect

	Title  TitleLayout
	Fields []Anchor
}

// HandStyle places a finished card onto a hand photo.
type HandStyle struct {
	Style      int
	Background string
	Width      int
	Height     int
	Dest       imagepkg.Rect
	Rotation   float64
	Radius     float64
	Shadow     *imagepkg.Shadow
}
