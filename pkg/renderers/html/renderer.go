// Package html renders a wizard step as a self-contained HTML page using the
// pongo2 engine and the embedded templates.
package html

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-brandsocial/pkg/render"
	rendertemplate "github.com/goliatone/go-brandsocial/pkg/render/template"
	"github.com/goliatone/go-brandsocial/pkg/render/template/pongo"
	"github.com/goliatone/go-brandsocial/pkg/session"
	"github.com/goliatone/go-brandsocial/pkg/wizard"
)

// DefaultTitle is the page header.
const DefaultTitle = "Brand Social"

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	title            string
	labels           Labels
	icons            map[string]string
}

// Labels are the navigation button captions.
type Labels struct {
	Previous string
	Next     string
	Complete string
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithTitle overrides the page header.
func WithTitle(title string) Option {
	return func(cfg *config) {
		if trimmed := strings.TrimSpace(title); trimmed != "" {
			cfg.title = trimmed
		}
	}
}

// WithLabels overrides navigation captions. Empty entries keep the default.
func WithLabels(labels Labels) Option {
	return func(cfg *config) {
		if labels.Previous != "" {
			cfg.labels.Previous = labels.Previous
		}
		if labels.Next != "" {
			cfg.labels.Next = labels.Next
		}
		if labels.Complete != "" {
			cfg.labels.Complete = labels.Complete
		}
	}
}

// WithIcons replaces built-in SVG icons by name. Markup is sanitized to a
// strict SVG subset before use.
func WithIcons(icons map[string]string) Option {
	return func(cfg *config) {
		if cfg.icons == nil {
			cfg.icons = make(map[string]string, len(icons))
		}
		for name, markup := range icons {
			cfg.icons[name] = markup
		}
	}
}

type Renderer struct {
	templates rendertemplate.TemplateRenderer
	title     string
	labels    Labels
	icons     map[string]string
	theme     *theme.RendererConfig
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the HTML renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{
		templateFS: TemplatesFS(),
		title:      DefaultTitle,
		labels:     Labels{Previous: "Previous", Next: "Next", Complete: "Complete"},
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := pongo.New(
			pongo.WithFS(cfg.templateFS),
			pongo.WithExtension(".tmpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("html renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	builtin, err := NewSelector(ThemeName, VariantLight)
	if err != nil {
		return nil, fmt.Errorf("html renderer: built-in theme: %w", err)
	}
	fallbackTheme, err := ResolveTheme(builtin, "", "")
	if err != nil {
		return nil, fmt.Errorf("html renderer: built-in theme: %w", err)
	}

	return &Renderer{
		templates: renderer,
		title:     cfg.title,
		labels:    cfg.labels,
		icons:     resolveIcons(cfg.icons),
		theme:     fallbackTheme,
	}, nil
}

func (r *Renderer) Name() string {
	return "html"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

func (r *Renderer) Render(ctx context.Context, view session.StepView, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.templates == nil {
		return nil, errors.New("html renderer: template renderer is nil")
	}
	if view.Total == 0 {
		return nil, errors.New("html renderer: step view is empty")
	}

	themeCfg := options.Theme
	if themeCfg == nil {
		themeCfg = r.theme
	}

	templateName := DefaultFallbacks()[PartialStep]
	if partial := strings.TrimSpace(themeCfg.Partials[PartialStep]); partial != "" {
		templateName = partial
	}

	result, err := r.templates.RenderTemplate(templateName, r.pageData(view, options, themeCfg))
	if err != nil {
		return nil, fmt.Errorf("html renderer: render template: %w", err)
	}
	return []byte(result), nil
}

type pageData struct {
	Page      pageMeta             `json:"page"`
	Theme     themeData            `json:"theme"`
	Classes   classData            `json:"classes"`
	Icons     iconData             `json:"icons"`
	Step      stepData             `json:"step"`
	Indicator []indicatorData      `json:"indicator"`
	Fields    []fieldData          `json:"fields"`
	Hidden    []render.HiddenField `json:"hidden"`
	Actions   actionData           `json:"actions"`
}

type pageMeta struct {
	Title  string `json:"title"`
	FormID string `json:"formId"`
	Action string `json:"action"`
}

type themeData struct {
	Name           string `json:"name"`
	Variant        string `json:"variant"`
	CSSVars        string `json:"cssVars"`
	Stylesheet     string `json:"stylesheet"`
	StylesheetHref string `json:"stylesheetHref"`
}

type classData struct {
	Page      string `json:"page"`
	Header    string `json:"header"`
	Indicator string `json:"indicator"`
	Card      string `json:"card"`
	Fields    string `json:"fields"`
	Actions   string `json:"actions"`
}

type iconData struct {
	Sparkles   string `json:"sparkles"`
	Check      string `json:"check"`
	ArrowLeft  string `json:"arrowLeft"`
	ArrowRight string `json:"arrowRight"`
	Rocket     string `json:"rocket"`
}

type stepData struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type indicatorData struct {
	ID             string `json:"id"`
	Number         int    `json:"number"`
	Title          string `json:"title"`
	Completed      bool   `json:"completed"`
	Current        bool   `json:"current"`
	StatusClass    string `json:"statusClass"`
	Connector      bool   `json:"connector"`
	ConnectorClass string `json:"connectorClass"`
}

type fieldData struct {
	ID        string `json:"id"`
	LabelID   string `json:"labelId"`
	Field     string `json:"field"`
	Name      string `json:"name"`
	Label     string `json:"label"`
	ShowLabel bool   `json:"showLabel"`
	Multiline bool   `json:"multiline"`
	Value     string `json:"value"`
}

type actionData struct {
	PreviousLabel    string `json:"previousLabel"`
	PreviousDisabled bool   `json:"previousDisabled"`
	PrimaryLabel     string `json:"primaryLabel"`
	Complete         bool   `json:"complete"`
}

func (r *Renderer) pageData(view session.StepView, options render.RenderOptions, themeCfg *theme.RendererConfig) pageData {
	data := pageData{
		Page: pageMeta{
			Title:  r.title,
			FormID: "brand-" + view.SessionID,
			Action: strings.TrimSpace(options.Action),
		},
		Theme: themeData{
			Name:       themeCfg.Theme,
			Variant:    themeCfg.Variant,
			CSSVars:    cssVarsStyle(themeCfg.CSSVars),
			Stylesheet: defaultStylesheet(),
		},
		Classes: classData{
			Page:      string(ClassPage),
			Header:    string(ClassHeader),
			Indicator: string(ClassIndicator),
			Card:      string(ClassCard),
			Fields:    string(ClassFields),
			Actions:   string(ClassActions),
		},
		Icons: iconData{
			Sparkles:   r.icons[IconSparkles],
			Check:      r.icons[IconCheck],
			ArrowLeft:  r.icons[IconArrowLeft],
			ArrowRight: r.icons[IconArrowRight],
			Rocket:     r.icons[IconRocket],
		},
		Step: stepData{
			ID:          view.Step.ID,
			Title:       view.Step.Title,
			Description: view.Step.Description,
		},
		Hidden: render.SortedHiddenFields(render.MergeHiddenFields(options.HiddenFields, render.StepFields(view)...)),
		Actions: actionData{
			PreviousLabel:    r.labels.Previous,
			PreviousDisabled: !view.CanRetreat,
			PrimaryLabel:     r.labels.Next,
			Complete:         view.PrimaryAction == session.ActionComplete,
		},
	}
	if data.Actions.Complete {
		data.Actions.PrimaryLabel = r.labels.Complete
	}
	if themeCfg.AssetURL != nil {
		data.Theme.StylesheetHref = themeCfg.AssetURL(AssetStylesheet)
	}

	for _, item := range view.Indicator {
		statusClass := statusClass(item.Status)
		connectorClass := string(ClassUpcoming)
		if item.Status == wizard.StatusCompleted {
			connectorClass = string(ClassCompleted)
		}
		data.Indicator = append(data.Indicator, indicatorData{
			ID:             item.ID,
			Number:         item.Number,
			Title:          item.Title,
			Completed:      item.Status == wizard.StatusCompleted,
			Current:        item.Status == wizard.StatusCurrent,
			StatusClass:    statusClass,
			Connector:      item.Connector,
			ConnectorClass: connectorClass,
		})
	}

	for _, field := range view.Fields {
		data.Fields = append(data.Fields, buildField(field))
	}
	return data
}

func buildField(field session.FieldView) fieldData {
	out := fieldData{
		ID:        controlID(field.Path),
		LabelID:   labelID(field.Path),
		Field:     string(field.Field),
		Name:      field.Path,
		Label:     field.Label,
		ShowLabel: true,
		Multiline: field.Control == wizard.ControlTextArea,
		Value:     field.Value,
	}
	if field.Field.IsList() {
		// One label heads the whole list; every element points at it.
		out.LabelID = labelID(string(field.Field))
		out.ShowLabel = field.Index == 0
	}
	return out
}

func statusClass(status wizard.Status) string {
	switch status {
	case wizard.StatusCompleted:
		return string(ClassCompleted)
	case wizard.StatusCurrent:
		return string(ClassCurrent)
	default:
		return string(ClassUpcoming)
	}
}
