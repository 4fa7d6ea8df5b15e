// Package jsonview renders a wizard step as a JSON document for clients that
// draw their own controls.
package jsonview

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/goliatone/go-brandsocial/pkg/render"
	"github.com/goliatone/go-brandsocial/pkg/session"
)

type Option func(*Renderer)

// WithIndent sets the indentation used for each nesting level. Empty output
// is compact.
func WithIndent(indent string) Option {
	return func(r *Renderer) {
		r.indent = indent
	}
}

type Renderer struct {
	indent string
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the JSON renderer. Output is indented with two spaces unless
// overridden.
func New(options ...Option) *Renderer {
	r := &Renderer{indent: "  "}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

func (r *Renderer) Name() string {
	return "json"
}

func (r *Renderer) ContentType() string {
	return "application/json"
}

// Document is the rendered payload.
type Document struct {
	View         session.StepView     `json:"view"`
	Action       string               `json:"action,omitempty"`
	HiddenFields []render.HiddenField `json:"hiddenFields"`
	Theme        *Theme               `json:"theme,omitempty"`
}

// Theme is the subset of the resolved theme a client needs.
type Theme struct {
	Name    string            `json:"name"`
	Variant string            `json:"variant,omitempty"`
	Tokens  map[string]string `json:"tokens,omitempty"`
	CSSVars map[string]string `json:"cssVars,omitempty"`
}

func (r *Renderer) Render(ctx context.Context, view session.StepView, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if view.Total == 0 {
		return nil, errors.New("json renderer: step view is empty")
	}

	doc := Document{
		View:         view,
		Action:       options.Action,
		HiddenFields: render.SortedHiddenFields(render.MergeHiddenFields(options.HiddenFields, render.StepFields(view)...)),
	}
	if cfg := options.Theme; cfg != nil {
		doc.Theme = &Theme{
			Name:    cfg.Theme,
			Variant: cfg.Variant,
			Tokens:  cfg.Tokens,
			CSSVars: cfg.CSSVars,
		}
	}

	var (
		out []byte
		err error
	)
	if r.indent == "" {
		out, err = json.Marshal(doc)
	} else {
		out, err = json.MarshalIndent(doc, "", r.indent)
	}
	if err != nil {
		return nil, fmt.Errorf("json renderer: encode: %w", err)
	}
	return append(out, '\n'), nil
}
