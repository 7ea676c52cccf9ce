package api

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/youruser/idcardgen/internal/logger"
	"github.com/youruser/idcardgen/internal/render"
	"github.com/youruser/idcardgen/internal/template"
)

// Param is a request value. Query and form values bind as plain strings; in
// a JSON body it also accepts a number or a boolean, kept as its literal
// text.
type Param string

func (p *Param) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(string(b))
	if raw == "null" {
		*p = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*p = Param(s)
		return nil
	}
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch v.(type) {
	case float64, bool:
		*p = Param(raw)
		return nil
	}
	return fmt.Errorf("unsupported value %s", raw)
}

func (p Param) String() string { return strings.TrimSpace(string(p)) }

// Int parses p, reporting false when it is empty or not an integer.
func (p Param) Int() (int, bool) {
	s := p.String()
	if s == "" {
		return 0, false
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n, true
	}
	// JSON clients sometimes send 2.0
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return int(f), true
}

// Is reports whether p is numerically equal to n.
func (p Param) Is(n int) bool {
	v, ok := p.Int()
	return ok && v == n
}

type academicParams struct {
	Name         Param `form:"name" json:"name"`
	DOB          Param `form:"dob" json:"dob"`
	ID           Param `form:"id" json:"id"`
	IDValue      Param `form:"id_value" json:"id_value"`
	AcademicYear Param `form:"academicyear" json:"academicyear"`
	Opacity      Param `form:"opacity" json:"opacity"`
	Country      Param `form:"country" json:"country"`
	CollegeName  Param `form:"clgName" json:"clgName"`
	CollegeAddr  Param `form:"clgAdd" json:"clgAdd"`
	Principal    Param `form:"principal" json:"principal"`
	Template     Param `form:"template" json:"template"`
	Style        Param `form:"style" json:"style"`
	StudentPhoto Param `form:"student_photo" json:"student_photo"`
	CollegeLogo  Param `form:"college_logo" json:"college_logo"`
	IssueDate    Param `form:"issue_date" json:"issue_date"`
	IssueText    Param `form:"issue_txt" json:"issue_txt"`
	ExpiryDate   Param `form:"exp_date" json:"exp_date"`
	ExpiryText   Param `form:"exp_txt" json:"exp_txt"`
	RawByte      Param `form:"rawByte" json:"rawByte"`
}

func (p academicParams) request(ctx context.Context) render.AcademicRequest {
	country, _ := p.Country.Int()
	return render.AcademicRequest{
		Template:           p.Template.String(),
		Style:              parseStyle(ctx, p.Style, 2),
		Name:               p.Name.String(),
		DOB:                p.DOB.String(),
		IDFormat:           p.ID.String(),
		IDValue:            p.IDValue.String(),
		AcademicYear:       p.AcademicYear.String(),
		Opacity:            parseOpacity(p.Opacity),
		Country:            country,
		InstitutionName:    p.CollegeName.String(),
		InstitutionAddress: p.CollegeAddr.String(),
		Signatory:          p.Principal.String(),
		Photo:              p.StudentPhoto.String(),
		Logo:               p.CollegeLogo.String(),
		IssueDate:          p.IssueDate.String(),
		IssueLabel:         p.IssueText.String(),
		ExpiryDate:         p.ExpiryDate.String(),
		ExpiryLabel:        p.ExpiryText.String(),
	}
}

type schoolParams struct {
	SchoolName Param `form:"school_name" json:"school_name"`
	Name       Param `form:"name" json:"name"`
	Class      Param `form:"class" json:"class"`
	Roll       Param `form:"roll" json:"roll"`
	DOB        Param `form:"dob" json:"dob"`
	BloodGroup Param `form:"blood_group" json:"blood_group"`
	Phone      Param `form:"phone" json:"phone"`
	Guardian   Param `form:"guardian" json:"guardian"`
	Address    Param `form:"address" json:"address"`
	Session    Param `form:"session" json:"session"`
	ID         Param `form:"id" json:"id"`
	IDValue    Param `form:"id_value" json:"id_value"`
	Photo      Param `form:"photo" json:"photo"`
	Logo       Param `form:"logo" json:"logo"`
	Opacity    Param `form:"opacity" json:"opacity"`
	Style      Param `form:"style" json:"style"`
	Hand       Param `form:"hand" json:"hand"`
	RawByte    Param `form:"rawByte" json:"rawByte"`
}

func (p schoolParams) request(ctx context.Context) render.SchoolRequest {
	hand, _ := p.Hand.Int()
	return render.SchoolRequest{
		Style:      parseStyle(ctx, p.Style, 1),
		Hand:       hand,
		SchoolName: p.SchoolName.String(),
		Name:       p.Name.String(),
		Class:      p.Class.String(),
		Roll:       p.Roll.String(),
		DOB:        p.DOB.String(),
		BloodGroup: p.BloodGroup.String(),
		Phone:      p.Phone.String(),
		Guardian:   p.Guardian.String(),
		Address:    p.Address.String(),
		Session:    p.Session.String(),
		IDFormat:   p.ID.String(),
		IDValue:    p.IDValue.String(),
		Opacity:    parseOpacity(p.Opacity),
		Photo:      p.Photo.String(),
		Logo:       p.Logo.String(),
	}
}

// parseOpacity returns nil for a missing or unparsable value so the default
// applies. Parsed values are clamped to [0, 1].
func parseOpacity(p Param) *float64 {
	s := p.String()
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) {
		return nil
	}
	v = math.Max(0, math.Min(1, v))
	return &v
}

// parseStyle maps an absent or out-of-range style to def.
func parseStyle(ctx context.Context, p Param, def int) int {
	if p.String() == "" {
		return def
	}
	n, ok := p.Int()
	if !ok || n < 1 || n > template.StyleCount {
		logger.WarnCtx(ctx, "style out of range, using default",
			zap.String("style", p.String()), zap.Int("default", def))
		return def
	}
	return n
}
