package render

import (
	"errors"
	"strings"
)

// ErrNameRequired is returned when an academic card is requested without a
// name.
var ErrNameRequired = errors.New("name parameter is required")

// DefaultOpacity is the watermark opacity when none is given.
const DefaultOpacity = 0.1

// AcademicRequest carries the caller fields of an academic card. Empty
// strings and nil pointers take the defaults applied by WithDefaults.
type AcademicRequest struct {
	// Template is the layout selector, "2" for the banner layout.
	Template string
	Style    int

	Name         string
	DOB          string
	IDFormat     string
	IDValue      string
	AcademicYear string
	Opacity      *float64
	Country      int

	InstitutionName    string
	InstitutionAddress string
	Signatory          string

	Photo string
	Logo  string

	IssueDate   string
	IssueLabel  string
	ExpiryDate  string
	ExpiryLabel string
}

// Validate reports a missing mandatory field.
func (r AcademicRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return ErrNameRequired
	}
	return nil
}

// WithDefaults returns r with every empty optional field filled.
func (r AcademicRequest) WithDefaults() AcademicRequest {
	def(&r.Template, "1")
	def(&r.DOB, "2001-01-25")
	def(&r.IDFormat, "1")
	def(&r.AcademicYear, "2025-2028")
	def(&r.Signatory, "Osama Aziz")
	def(&r.IssueDate, "15 AUG 2025")
	def(&r.IssueLabel, "Date Of Issue")
	def(&r.ExpiryDate, "31 DEC 2025")
	def(&r.ExpiryLabel, "Card Expires")
	if r.Style == 0 {
		r.Style = 2
	}
	if r.Opacity == nil {
		o := DefaultOpacity
		r.Opacity = &o
	}
	return r
}

// SchoolRequest carries the caller fields of a school card. Every field is
// optional.
type SchoolRequest struct {
	Style int
	// Hand selects the hand background, 1 or 2.
	Hand int

	SchoolName string
	Name       string
	Class      string
	Roll       string
	DOB        string
	BloodGroup string
	Phone      string
	Guardian   string
	Address    string
	Session    string
	IDFormat   string
	IDValue    string
	Opacity    *float64

	Photo string
	Logo  string
}

// WithDefaults returns r with every empty field filled.
func (r SchoolRequest) WithDefaults() SchoolRequest {
	def(&r.SchoolName, "Springfield Prep Charter School")
	def(&r.Name, "Alex Morgan")
	def(&r.Class, "Grade 8 - B")
	def(&r.Roll, "23")
	def(&r.DOB, "2012-04-17")
	def(&r.BloodGroup, "O+")
	def(&r.Phone, "+1 555 0134")
	def(&r.Guardian, "Jordan Morgan")
	def(&r.Address, "742 Evergreen Terrace, Springfield")
	def(&r.Session, "Session 2025-2026")
	def(&r.IDFormat, "1")
	if r.Style == 0 {
		r.Style = 1
	}
	if r.Hand == 0 {
		r.Hand = 1
	}
	if r.Opacity == nil {
		o := DefaultOpacity
		r.Opacity = &o
	}
	return r
}

func def(s *string, v string) {
	if strings.TrimSpace(*s) == "" {
		*s = v
	}
}
