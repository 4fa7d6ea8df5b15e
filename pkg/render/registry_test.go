package render_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-brandsocial/pkg/render"
	"github.com/goliatone/go-brandsocial/pkg/session"
)

type fakeRenderer struct {
	name string
	err  error
}

func (f fakeRenderer) Name() string        { return f.name }
func (f fakeRenderer) ContentType() string { return "text/plain" }

func (f fakeRenderer) Render(_ context.Context, view session.StepView, _ render.RenderOptions) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []byte(f.name + ":" + view.Step.ID), nil
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	registry := render.NewRegistry()
	registry.MustRegister(fakeRenderer{name: "HTML"})
	registry.MustRegister(fakeRenderer{name: "json"})

	if err := registry.Register(fakeRenderer{name: "html"}); err == nil {
		t.Fatalf("expected duplicate registration error")
	}
	if err := registry.Register(fakeRenderer{name: " "}); err == nil {
		t.Fatalf("expected empty name error")
	}
	if err := registry.Register(nil); err == nil {
		t.Fatalf("expected nil renderer error")
	}

	if diff := cmp.Diff([]string{"html", "json"}, registry.List()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
	if !registry.Has("JSON") {
		t.Fatalf("expected case-insensitive lookup")
	}

	fallback, err := registry.Get("")
	if err != nil {
		t.Fatalf("get fallback: %v", err)
	}
	if fallback.Name() != "HTML" {
		t.Fatalf("expected first registered renderer as fallback, got %q", fallback.Name())
	}

	if _, err := registry.Get("xml"); !errors.Is(err, render.ErrRendererNotFound) {
		t.Fatalf("expected ErrRendererNotFound, got %v", err)
	}
}

func TestRegistry_Render(t *testing.T) {
	registry := render.NewRegistry()
	registry.MustRegister(fakeRenderer{name: "plain"})
	boom := errors.New("boom")
	registry.MustRegister(fakeRenderer{name: "broken", err: boom})

	view, err := newView(t)
	if err != nil {
		t.Fatalf("new view: %v", err)
	}

	out, contentType, err := registry.Render(context.Background(), "plain", view, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if string(out) != "plain:basics" || contentType != "text/plain" {
		t.Fatalf("unexpected output %q (%s)", out, contentType)
	}

	if _, _, err := registry.Render(context.Background(), "broken", view, render.RenderOptions{}); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped renderer error, got %v", err)
	}
}

func newView(t *testing.T) (session.StepView, error) {
	t.Helper()
	s, err := session.New(session.WithID("test"))
	if err != nil {
		return session.StepView{}, err
	}
	return s.View(), nil
}
