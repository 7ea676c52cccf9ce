package render

import (
	"bytes"
	"context"
	"errors"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	imagepkg "github.com/youruser/idcardgen/internal/image"
	"github.com/youruser/idcardgen/internal/institution"
	"github.com/youruser/idcardgen/internal/template"
)

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	fonts, err := imagepkg.LoadFontBook("")
	if err != nil {
		t.Fatalf("load fonts: %v", err)
	}
	resolver := imagepkg.NewResolver(t.TempDir(), 2*time.Second)
	reg := template.NewRegistry()
	assets := LoadAssets(context.Background(), resolver, reg)
	orgs := institution.NewDirectory([]institution.Record{
		{Country: "Bangladesh", Name: "University of Dhaka", Address: "Nilkhet Rd, Dhaka 1000"},
		{Country: "India", Name: "Indian Institute of Technology Delhi", Address: "Hauz Khas, New Delhi 110016"},
	})
	return New(reg, orgs, resolver, assets, fonts)
}

func pngSize(t *testing.T, b []byte) (int, int) {
	t.Helper()
	cfg, err := png.DecodeConfig(bytes.NewReader(b))
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}
	return cfg.Width, cfg.Height
}

func TestRenderAcademicDefaults(t *testing.T) {
	r := newTestRenderer(t)
	for _, tmpl := range []string{"1", "2"} {
		card, err := r.RenderAcademic(context.Background(), AcademicRequest{Name: "Jane Doe", Template: tmpl})
		if err != nil {
			t.Fatalf("template %s: render: %v", tmpl, err)
		}
		if card.Size() == 0 || card.Size() != len(card.PNG) {
			t.Fatalf("template %s: unexpected size %d", tmpl, card.Size())
		}
		if w, h := pngSize(t, card.PNG); w != template.AcademicWidth || h != template.AcademicHeight {
			t.Fatalf("template %s: got %dx%d", tmpl, w, h)
		}
	}
}

func TestRenderAcademicRequiresName(t *testing.T) {
	r := newTestRenderer(t)
	_, err := r.RenderAcademic(context.Background(), AcademicRequest{Name: "   "})
	if !errors.Is(err, ErrNameRequired) {
		t.Fatalf("expected ErrNameRequired, got %v", err)
	}
}

func TestRenderAcademicUnknownStyle(t *testing.T) {
	r := newTestRenderer(t)
	_, err := r.RenderAcademic(context.Background(), AcademicRequest{Name: "Jane", Style: 9})
	if !errors.Is(err, template.ErrUnknownStyle) {
		t.Fatalf("expected ErrUnknownStyle, got %v", err)
	}
}

func TestRenderAcademicUnreachablePhotoFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
	url := srv.URL + "/photo.png"
	srv.Close()

	r := newTestRenderer(t)
	card, err := r.RenderAcademic(context.Background(), AcademicRequest{
		Name:  "Jane Doe",
		Photo: url,
		Logo:  "does-not-exist.png",
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if w, h := pngSize(t, card.PNG); w != template.AcademicWidth || h != template.AcademicHeight {
		t.Fatalf("got %dx%d", w, h)
	}
}

func TestRenderAcademicCanceledContext(t *testing.T) {
	r := newTestRenderer(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := r.RenderAcademic(ctx, AcademicRequest{Name: "Jane Doe"})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestRenderSchoolOnHand(t *testing.T) {
	r := newTestRenderer(t)
	for _, hand := range []int{1, 2, 7} {
		card, err := r.RenderSchool(context.Background(), SchoolRequest{Hand: hand})
		if err != nil {
			t.Fatalf("hand %d: render: %v", hand, err)
		}
		if w, h := pngSize(t, card.PNG); w != template.HandWidth || h != template.HandHeight {
			t.Fatalf("hand %d: got %dx%d", hand, w, h)
		}
	}
}

func TestRenderSchoolOversizedBarcodeStillRenders(t *testing.T) {
	r := newTestRenderer(t)
	_, err := r.RenderSchool(context.Background(), SchoolRequest{IDValue: strings.Repeat("X", 60)})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
}

func TestRenderConcurrentRequests(t *testing.T) {
	r := newTestRenderer(t)
	var wg sync.WaitGroup
	errs := make(chan error, 4)
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			var err error
			if i%2 == 0 {
				_, err = r.RenderAcademic(context.Background(), AcademicRequest{Name: "Jane Doe", Style: i + 1})
			} else {
				_, err = r.RenderSchool(context.Background(), SchoolRequest{Style: i + 1})
			}
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Fatalf("render: %v", err)
		}
	}
}

func TestPlaceTitleAnchors(t *testing.T) {
	reg := template.NewRegistry()
	classic, err := reg.Resolve(template.AcademicClassic, 1)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	tl := classic.Title

	single := placeTitle(tl, "Oxford College")
	if len(single) != 1 || single[0].Value != "OXFORD COLLEGE" || single[0].X != tl.Single.X || single[0].Y != tl.Single.Y {
		t.Fatalf("unexpected single-line title: %+v", single)
	}

	multi := placeTitle(tl, institution.Fallback.Name)
	if len(multi) != 2 {
		t.Fatalf("expected two lines, got %d", len(multi))
	}
	if multi[0].Value != "WESTMINSTER INTERNATIONAL" || multi[0].X != tl.First.X {
		t.Fatalf("unexpected first line: %+v", multi[0])
	}
	if multi[1].Value != "UNIVERSITY IN TASHKENT" || multi[1].X != tl.SecondMulti.X {
		t.Fatalf("unexpected second line: %+v", multi[1])
	}

	lone := placeTitle(tl, "Massachusetts Institute of Technology")
	if len(lone) != 2 || lone[1].Value != "TECHNOLOGY" || lone[1].X != tl.SecondSingle.X {
		t.Fatalf("expected single-word second line at SecondSingle, got %+v", lone)
	}

	if got := placeTitle(tl, "   "); got != nil {
		t.Fatalf("expected no lines for blank title, got %+v", got)
	}
}

func TestPlaceTitleSchoolName(t *testing.T) {
	reg := template.NewRegistry()
	d, err := reg.Resolve(template.School, 1)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	lines := placeTitle(d.Title, "Springfield Prep Charter School")
	if len(lines) != 2 || lines[0].Value != "SPRINGFIELD PREP" || lines[1].Value != "CHARTER SCHOOL" {
		t.Fatalf("unexpected school title: %+v", lines)
	}
}

func TestFieldText(t *testing.T) {
	addr := template.Anchor{Field: template.FieldAddress, Prefix: "Address: ", MaxChars: 30}
	got := fieldText(addr, "1600 Amphitheatre Parkway, Mountain View, CA")
	if got != "Address: 1600 Amphitheatre Parkway, Mou" {
		t.Fatalf("unexpected truncation %q", got)
	}
	name := template.Anchor{Field: template.FieldName, Uppercase: true}
	if got := fieldText(name, "Jane Doe"); got != "JANE DOE" {
		t.Fatalf("unexpected name %q", got)
	}
	if got := fieldText(addr, ""); got != "" {
		t.Fatalf("expected empty value to stay empty, got %q", got)
	}
}

func TestAcademicDefaults(t *testing.T) {
	req := AcademicRequest{Name: "Jane"}.WithDefaults()
	if req.Style != 2 || req.Template != "1" || req.AcademicYear != "2025-2028" {
		t.Fatalf("unexpected defaults %+v", req)
	}
	if req.Opacity == nil || *req.Opacity != DefaultOpacity {
		t.Fatalf("expected default opacity")
	}
	zero := 0.0
	req = AcademicRequest{Name: "Jane", Opacity: &zero}.WithDefaults()
	if *req.Opacity != 0 {
		t.Fatalf("explicit zero opacity was overwritten")
	}
}
