package html_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-brandsocial/pkg/brand"
	"github.com/goliatone/go-brandsocial/pkg/render"
	"github.com/goliatone/go-brandsocial/pkg/renderers/html"
	"github.com/goliatone/go-brandsocial/pkg/session"
	"github.com/goliatone/go-brandsocial/pkg/testsupport"
)

func newSession(t *testing.T, record brand.Brand) *session.Session {
	t.Helper()
	s, err := session.New(session.WithID("test"), session.WithPrefill(record))
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	return s
}

func advance(t *testing.T, s *session.Session, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		if err := s.Dispatch(testsupport.Context(), session.Advance{}); err != nil {
			t.Fatalf("advance: %v", err)
		}
	}
}

func renderView(t *testing.T, r *html.Renderer, view session.StepView, opts render.RenderOptions) string {
	t.Helper()
	out, err := r.Render(testsupport.Context(), view, opts)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return string(out)
}

func mustContain(t *testing.T, doc string, fragments ...string) {
	t.Helper()
	for _, fragment := range fragments {
		if !strings.Contains(doc, fragment) {
			t.Fatalf("expected output to contain %q\n%s", fragment, doc)
		}
	}
}

func TestRenderer_FirstStep(t *testing.T) {
	r, err := html.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	if r.Name() != "html" || !strings.HasPrefix(r.ContentType(), "text/html") {
		t.Fatalf("unexpected renderer identity %q %q", r.Name(), r.ContentType())
	}

	record := brand.New()
	record.Name = `Acme "Outdoor" <Co>`
	doc := renderView(t, r, newSession(t, record).View(), render.RenderOptions{})

	mustContain(t, doc,
		"<h1>Brand Social</h1>",
		"<h2>Brand Basics</h2>",
		"What is your business or brand name?",
		`name="name" value="Acme &quot;Outdoor&quot; &lt;Co&gt;"`,
		`name="industry" value=""`,
		`value="previous" disabled`,
		`value="next"`,
		`aria-current="step"`,
		`<span>5</span>`,
		`name="_session" value="test"`,
		`name="_step" value="basics"`,
		`data-theme="brandsocial" data-variant="light"`,
		"--brand: #2563eb;",
		".bs-card",
	)
	if strings.Contains(doc, `value="complete"`) {
		t.Fatalf("first step must not offer Complete")
	}
}

func TestRenderer_LastStepShowsCompleteAndChecks(t *testing.T) {
	r, err := html.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	s := newSession(t, brand.New())
	advance(t, s, 4)

	doc := renderView(t, r, s.View(), render.RenderOptions{})
	mustContain(t, doc,
		"<h2>Unique Value Proposition</h2>",
		`value="complete"`,
		"Complete",
		`<textarea id="bs-uniqueValueProposition" name="uniqueValueProposition" rows="3"`,
		"bs-indicator__bubble is-completed",
		"bs-indicator__connector is-completed",
	)
	if strings.Contains(doc, `value="previous" disabled`) {
		t.Fatalf("previous must be enabled on the last step")
	}
	if strings.Count(doc, "M20 6 9 17l-5-5") != 4 {
		t.Fatalf("expected four check icons for completed steps")
	}
}

func TestRenderer_ListFieldSharesOneLabel(t *testing.T) {
	r, err := html.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	record := brand.New()
	record.Values = []string{"Care", "Grit"}
	s := newSession(t, record)
	advance(t, s, 3)

	doc := renderView(t, r, s.View(), render.RenderOptions{})
	mustContain(t, doc,
		`name="values.0" value="Care"`,
		`name="values.1" value="Grit"`,
		`aria-labelledby="bs-values-label"`,
	)
	if strings.Count(doc, "What are your brand’s core values?") != 1 {
		t.Fatalf("expected the list label once")
	}
}

func TestRenderer_OptionsFlowIntoPage(t *testing.T) {
	r, err := html.New(html.WithTitle("Acme Brand Lab"), html.WithLabels(html.Labels{Next: "Continue"}))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	view := newSession(t, brand.New()).View()

	doc := renderView(t, r, view, render.RenderOptions{
		Action:       "/brands/test",
		HiddenFields: map[string]string{"_csrf": "tok"},
	})
	mustContain(t, doc,
		"<h1>Acme Brand Lab</h1>",
		`action="/brands/test"`,
		`name="_csrf" value="tok"`,
		"Continue",
	)
	if strings.Contains(doc, `role="alert"`) || strings.Contains(doc, "error") {
		t.Fatalf("page should carry no feedback markup:\n%s", doc)
	}
}

func TestRenderer_ThemeVariantAndStylesheet(t *testing.T) {
	manifest := html.Manifest()
	manifest.Assets.Files = map[string]string{html.AssetStylesheet: "brandsocial.css"}

	selector, err := html.NewSelector(html.ThemeName, html.VariantLight, manifest)
	if err != nil {
		t.Fatalf("new selector: %v", err)
	}
	cfg, err := html.ResolveTheme(selector, "", html.VariantDark)
	if err != nil {
		t.Fatalf("resolve theme: %v", err)
	}

	r, err := html.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	doc := renderView(t, r, newSession(t, brand.New()).View(), render.RenderOptions{Theme: cfg})
	mustContain(t, doc,
		`data-variant="dark"`,
		"--surface: #1f2937;",
		"--brand: #2563eb;",
		`<link rel="stylesheet" href="/assets/brandsocial/brandsocial.css">`,
	)
}

func TestRenderer_ThemePartialOverridesTemplate(t *testing.T) {
	files := fstest.MapFS{
		"templates/step.tmpl": {Data: []byte("default")},
		"themes/compact.tmpl": {Data: []byte("compact {{ step.id }} {{ actions.primaryLabel }}")},
	}
	r, err := html.New(html.WithTemplatesFS(files))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	manifest := html.Manifest()
	manifest.Templates = map[string]string{html.PartialStep: "themes/compact.tmpl"}
	selector, err := html.NewSelector("", "", manifest)
	if err != nil {
		t.Fatalf("new selector: %v", err)
	}
	cfg, err := html.ResolveTheme(selector, html.ThemeName, "")
	if err != nil {
		t.Fatalf("resolve theme: %v", err)
	}

	view := newSession(t, brand.New()).View()
	if got := renderView(t, r, view, render.RenderOptions{Theme: cfg}); got != "compact basics Next" {
		t.Fatalf("unexpected output %q", got)
	}
	if got := renderView(t, r, view, render.RenderOptions{}); got != "default" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestRenderer_IconOverridesAreSanitized(t *testing.T) {
	r, err := html.New(html.WithIcons(map[string]string{
		html.IconSparkles: `<svg viewBox="0 0 10 10" onload="alert(1)"><script>alert(2)</script><circle cx="5" cy="5" r="4"></circle></svg>`,
	}))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	doc := renderView(t, r, newSession(t, brand.New()).View(), render.RenderOptions{})
	mustContain(t, doc, `<circle cx="5" cy="5" r="4">`)
	if strings.Contains(doc, "alert(") || strings.Contains(doc, "onload") {
		t.Fatalf("icon markup was not sanitized")
	}
}

func TestRenderer_Errors(t *testing.T) {
	r, err := html.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	if _, err := r.Render(testsupport.Context(), session.StepView{}, render.RenderOptions{}); err == nil {
		t.Fatalf("expected error for empty view")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	view := newSession(t, brand.New()).View()
	if _, err := r.Render(ctx, view, render.RenderOptions{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestRenderer_EveryStepFromFixture(t *testing.T) {
	r, err := html.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	s := newSession(t, testsupport.MustLoadBrand(t, "testdata/brand.json"))

	want := []string{
		`name="industry" value="Outdoor gear"`,
		">A trail for everyone.</textarea>",
		">Urban professionals, 25-40</textarea>",
		`name="values.2" value="Grit"`,
		">Lifetime repairs.</textarea>",
	}
	for i, fragment := range want {
		if i > 0 {
			advance(t, s, 1)
		}
		mustContain(t, renderView(t, r, s.View(), render.RenderOptions{}), fragment)
	}
}
