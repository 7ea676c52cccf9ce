// Package render turns a card request into a finished PNG: it resolves the
// template and images, paints the layers and encodes the result.
package render

import (
	"context"
	"fmt"
	"image"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/youruser/idcardgen/internal/ident"
	imagepkg "github.com/youruser/idcardgen/internal/image"
	"github.com/youruser/idcardgen/internal/institution"
	"github.com/youruser/idcardgen/internal/layout"
	"github.com/youruser/idcardgen/internal/logger"
	"github.com/youruser/idcardgen/internal/template"
)

// Renderer holds the read-only state shared by all requests.
type Renderer struct {
	templates *template.Registry
	orgs      *institution.Directory
	resolver  *imagepkg.Resolver
	assets    *Assets
	fonts     *imagepkg.FontBook
}

// New wires a renderer from state built once at startup.
func New(templates *template.Registry, orgs *institution.Directory, resolver *imagepkg.Resolver, assets *Assets, fonts *imagepkg.FontBook) *Renderer {
	return &Renderer{
		templates: templates,
		orgs:      orgs,
		resolver:  resolver,
		assets:    assets,
		fonts:     fonts,
	}
}

// Card is a rendered card and its PNG encoding. It lives for one request.
type Card struct {
	Image image.Image
	PNG   []byte
}

// Size is the encoded byte length.
func (c *Card) Size() int { return len(c.PNG) }

// content is everything painted onto one card canvas.
type content struct {
	desc     *template.Descriptor
	title    string
	values   map[template.Field]string
	logoRef  string
	photoRef string
	opacity  float64
	// barcode is the payload of the barcode plate, if the template has one.
	barcode string
}

// RenderAcademic renders an academic card.
func (r *Renderer) RenderAcademic(ctx context.Context, req AcademicRequest) (*Card, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	req = req.WithDefaults()

	desc, err := r.templates.Resolve(template.AcademicFamily(req.Template), req.Style)
	if err != nil {
		return nil, err
	}
	org := r.orgs.Select(req.InstitutionName, req.InstitutionAddress, req.Country)

	id := req.IDValue
	if id == "" {
		id = ident.Generate(req.IDFormat)
	}

	img, err := r.paint(ctx, content{
		desc:  desc,
		title: org.Name,
		values: map[template.Field]string{
			template.FieldName:         req.Name,
			template.FieldDOB:          req.DOB,
			template.FieldID:           id,
			template.FieldAddress:      org.Address,
			template.FieldAcademicYear: req.AcademicYear,
			template.FieldIssueDate:    req.IssueDate,
			template.FieldIssueLabel:   req.IssueLabel,
			template.FieldExpiryDate:   req.ExpiryDate,
			template.FieldExpiryLabel:  req.ExpiryLabel,
			template.FieldSignatory:    req.Signatory,
		},
		logoRef:  req.Logo,
		photoRef: req.Photo,
		opacity:  *req.Opacity,
		barcode:  id,
	})
	if err != nil {
		return nil, err
	}
	return encode(img)
}

// RenderSchool renders a school card and places it on the selected hand
// background.
func (r *Renderer) RenderSchool(ctx context.Context, req SchoolRequest) (*Card, error) {
	req = req.WithDefaults()

	desc, err := r.templates.Resolve(template.School, req.Style)
	if err != nil {
		return nil, err
	}

	id := req.IDValue
	if id == "" {
		id = ident.Generate(req.IDFormat)
	}

	img, err := r.paint(ctx, content{
		desc:  desc,
		title: req.SchoolName,
		values: map[template.Field]string{
			template.FieldName:       req.Name,
			template.FieldClass:      req.Class,
			template.FieldRoll:       req.Roll,
			template.FieldDOB:        req.DOB,
			template.FieldBloodGroup: req.BloodGroup,
			template.FieldGuardian:   req.Guardian,
			template.FieldPhone:      req.Phone,
			template.FieldAddress:    req.Address,
			template.FieldSession:    req.Session,
			template.FieldID:         id,
		},
		logoRef:  req.Logo,
		photoRef: req.Photo,
		opacity:  *req.Opacity,
		barcode:  id,
	})
	if err != nil {
		return nil, err
	}

	img, err = r.Hand(ctx, img, req.Hand)
	if err != nil {
		return nil, err
	}
	return encode(img)
}

func (r *Renderer) paint(ctx context.Context, c content) (image.Image, error) {
	logo, photo, code := r.gather(ctx, c)
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("render %s card: %w", c.desc.Family, err)
	}

	d := c.desc
	cv := imagepkg.NewCanvas(d.Width, d.Height, r.fonts)
	cv.DrawBackground(r.assets.Background(d))
	cv.DrawLayer(imagepkg.Layer{Image: logo, Rect: d.Logo, Shadow: d.LogoShadow})
	cv.DrawLayer(imagepkg.Layer{Image: photo, Rect: d.Photo, Clip: d.PhotoClip, Shadow: d.PhotoShadow})
	cv.Watermark(logo, d.WatermarkSize, c.opacity, d.WatermarkShadow)

	for _, line := range placeTitle(d.Title, c.title) {
		cv.DrawText(line)
	}
	for _, a := range d.Fields {
		v := fieldText(a, c.values[a.Field])
		if v == "" {
			continue
		}
		cv.DrawText(imagepkg.Text{Value: v, X: a.X, Y: a.Y, Font: a.Font, Color: a.Color, Shadow: a.Shadow})
	}
	if code != nil {
		cv.DrawLayer(imagepkg.Layer{Image: code, Rect: *d.Barcode})
	}
	return cv.Image(), nil
}

// gather resolves the logo and photo and encodes the barcode concurrently.
// Missing images fall back to the bundled defaults; a failed barcode is
// returned as nil and left off the card.
func (r *Renderer) gather(ctx context.Context, c content) (logo, photo, code image.Image) {
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		logo = r.resolver.Resolve(ctx, c.logoRef)
	}()
	go func() {
		defer wg.Done()
		photo = r.resolver.Resolve(ctx, c.photoRef)
	}()
	if c.desc.Barcode != nil {
		rect := *c.desc.Barcode
		var err error
		code, err = imagepkg.EncodeBarcode(c.barcode, int(rect.W), int(rect.H))
		if err != nil {
			logger.WarnCtx(ctx, "barcode omitted", zap.String("payload", c.barcode), zap.Error(err))
		}
	}
	wg.Wait()

	if logo == nil {
		logo = r.assets.DefaultLogo()
	}
	if photo == nil {
		photo = r.assets.DefaultPhoto()
	}
	return logo, photo, code
}

// placeTitle wraps the title per the layout and anchors each line.
func placeTitle(tl template.TitleLayout, title string) []imagepkg.Text {
	if tl.Uppercase {
		title = strings.ToUpper(title)
	}
	var lines layout.Lines
	switch tl.Wrap {
	case template.WrapShortName:
		lines = layout.WrapShortName(title, layout.ShortNameBudget)
	default:
		lines = layout.WrapTwoLine(title, layout.TitleBudget)
	}
	if lines.First == "" {
		return nil
	}

	text := func(s string, p template.Point) imagepkg.Text {
		return imagepkg.Text{Value: s, X: p.X, Y: p.Y, Font: tl.Font, Color: tl.Color, Shadow: tl.Shadow}
	}
	if lines.Second == "" {
		return []imagepkg.Text{text(lines.First, tl.Single)}
	}
	second := tl.SecondMulti
	if lines.SecondIsSingleWord() {
		second = tl.SecondSingle
	}
	return []imagepkg.Text{text(lines.First, tl.First), text(lines.Second, second)}
}

// fieldText applies the anchor's truncation, case and prefix to v.
func fieldText(a template.Anchor, v string) string {
	if v == "" {
		return ""
	}
	if a.MaxChars > 0 {
		v = layout.Truncate(v, a.MaxChars)
	}
	if a.Uppercase {
		v = strings.ToUpper(v)
	}
	return a.Prefix + v
}

func encode(img image.Image) (*Card, error) {
	b, err := imagepkg.EncodePNG(img)
	if err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return &Card{Image: img, PNG: b}, nil
}
