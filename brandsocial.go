// Package brandsocial is the entry point for the Brand Social wizard: a
// five-step session that fills one brand record and hands it to a sink on
// completion. Subpackages hold the pieces; this package wires the defaults.
package brandsocial

import (
	"context"
	"fmt"
	"io/fs"

	"github.com/goliatone/go-brandsocial/pkg/brand"
	"github.com/goliatone/go-brandsocial/pkg/render"
	"github.com/goliatone/go-brandsocial/pkg/renderers/html"
	"github.com/goliatone/go-brandsocial/pkg/renderers/jsonview"
	"github.com/goliatone/go-brandsocial/pkg/session"
	"github.com/goliatone/go-brandsocial/pkg/wizard"
)

// Brand aliases the record collected by the wizard.
type Brand = brand.Brand

// StepView aliases the per-step projection handed to renderers.
type StepView = session.StepView

// RenderOptions aliases the per-request renderer options.
type RenderOptions = render.RenderOptions

// NewSession starts a wizard session on the first step.
func NewSession(options ...session.Option) (*session.Session, error) {
	return session.New(options...)
}

// NewRegistry returns a renderer registry holding the built-in "html" and
// "json" renderers. "html" is the fallback for empty names.
func NewRegistry(options ...html.Option) (*render.Registry, error) {
	htmlRenderer, err := html.New(options...)
	if err != nil {
		return nil, fmt.Errorf("brandsocial: %w", err)
	}
	registry := render.NewRegistry()
	if err := registry.Register(htmlRenderer); err != nil {
		return nil, fmt.Errorf("brandsocial: %w", err)
	}
	if err := registry.Register(jsonview.New()); err != nil {
		return nil, fmt.Errorf("brandsocial: %w", err)
	}
	return registry, nil
}

// RenderStep renders the session's current step with the named built-in
// renderer and returns the payload plus its content type.
func RenderStep(ctx context.Context, s *session.Session, rendererName string, options RenderOptions) ([]byte, string, error) {
	if s == nil {
		return nil, "", fmt.Errorf("brandsocial: session is nil")
	}
	registry, err := NewRegistry()
	if err != nil {
		return nil, "", err
	}
	return registry.Render(ctx, rendererName, s.View(), options)
}

// EmbeddedTemplates exposes the built-in HTML templates so callers can reuse
// or extend them.
func EmbeddedTemplates() fs.FS {
	return html.TemplatesFS()
}

// EmbeddedAssets exposes the stylesheet bundle.
//
// Typical mount:
//
//	mux.Handle("/assets/brandsocial/",
//	  http.StripPrefix("/assets/brandsocial/",
//	    http.FileServerFS(brandsocial.EmbeddedAssets()),
//	  ),
//	)
func EmbeddedAssets() fs.FS {
	return html.AssetsFS()
}

// StepCatalog exposes the embedded step catalogue.
func StepCatalog() fs.FS {
	return wizard.CatalogFS()
}
