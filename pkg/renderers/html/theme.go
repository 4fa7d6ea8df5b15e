package html

import (
	"errors"
	"fmt"
	"path"
	"sort"
	"strings"
	"sync"

	theme "github.com/goliatone/go-theme"
)

// Built-in theme identifiers.
const (
	ThemeName    = "brandsocial"
	VariantLight = "light"
	VariantDark  = "dark"
)

// PartialStep is the theme template key for the step page.
const PartialStep = "brandsocial.step"

// AssetStylesheet is the theme asset key for an external stylesheet. When a
// theme resolves it, the page links it instead of inlining the built-in CSS.
const AssetStylesheet = "stylesheet"

// ErrThemeNotFound is returned when a selector has no manifest for a name.
var ErrThemeNotFound = errors.New("html: theme not found")

// ErrVariantNotFound is returned when a manifest lacks the requested variant.
var ErrVariantNotFound = errors.New("html: theme variant not found")

// DefaultFallbacks maps theme partial keys to the embedded templates.
func DefaultFallbacks() map[string]string {
	return map[string]string{
		PartialStep: "templates/step.tmpl",
	}
}

// Manifest returns the built-in theme. The base tokens are the light variant.
func Manifest() *theme.Manifest {
	return &theme.Manifest{
		Name:    ThemeName,
		Version: "1.0.0",
		Tokens: map[string]string{
			"brand":         "#2563eb",
			"accent":        "#dc2626",
			"backdrop-from": "#8c1c2b",
			"backdrop-to":   "#4a0d16",
			"surface":       "#ffffff",
			"header":        "#ffffff",
			"text":          "#1f2937",
			"muted":         "#6b7280",
			"border":        "#d1d5db",
		},
		Assets: theme.Assets{
			Prefix: "/assets/brandsocial",
		},
		Variants: map[string]theme.Variant{
			VariantDark: {
				Tokens: map[string]string{
					"surface": "#1f2937",
					"header":  "#111827",
					"text":    "#f3f4f6",
					"muted":   "#9ca3af",
					"border":  "#4b5563",
				},
			},
		},
	}
}

type manifestRegistry interface {
	Register(*theme.Manifest) error
}

// Selector resolves theme/variant names against registered manifests. The
// base manifest answers to the empty variant and to its default variant name.
type Selector struct {
	mu             sync.RWMutex
	registry       manifestRegistry
	manifests      map[string]*theme.Manifest
	defaultTheme   string
	defaultVariant string
}

var _ theme.ThemeSelector = (*Selector)(nil)

// NewSelector registers manifests with a go-theme registry and returns a
// selector over them. With no manifests the built-in theme is used.
func NewSelector(defaultTheme, defaultVariant string, manifests ...*theme.Manifest) (*Selector, error) {
	if len(manifests) == 0 {
		manifests = []*theme.Manifest{Manifest()}
	}
	s := &Selector{
		registry:       theme.NewRegistry(),
		manifests:      make(map[string]*theme.Manifest, len(manifests)),
		defaultTheme:   strings.TrimSpace(defaultTheme),
		defaultVariant: strings.TrimSpace(defaultVariant),
	}
	for _, manifest := range manifests {
		if err := s.Register(manifest); err != nil {
			return nil, err
		}
	}
	if s.defaultTheme == "" {
		s.defaultTheme = manifests[0].Name
	}
	if s.defaultVariant == "" {
		s.defaultVariant = VariantLight
	}
	return s, nil
}

// Register adds a manifest.
func (s *Selector) Register(manifest *theme.Manifest) error {
	if manifest == nil || strings.TrimSpace(manifest.Name) == "" {
		return errors.New("html: theme manifest name is required")
	}
	if err := s.registry.Register(manifest); err != nil {
		return fmt.Errorf("html: register theme %q: %w", manifest.Name, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.manifests[manifest.Name] = manifest
	return nil
}

// Themes lists registered theme names.
func (s *Selector) Themes() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.manifests))
	for name := range s.manifests {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Select implements theme.ThemeSelector.
func (s *Selector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = s.defaultTheme
	}
	variant = strings.TrimSpace(variant)
	if variant == "" {
		variant = s.defaultVariant
	}

	s.mu.RLock()
	manifest, ok := s.manifests[name]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrThemeNotFound, name)
	}
	if _, ok := manifest.Variants[variant]; !ok && variant != VariantLight {
		return nil, fmt.Errorf("%w: %q/%q", ErrVariantNotFound, name, variant)
	}
	return &theme.Selection{
		Theme:    name,
		Variant:  variant,
		Manifest: manifest,
	}, nil
}

// RendererConfig flattens a selection into the config renderers consume:
// variant tokens override base tokens, every token becomes a "--name" CSS
// variable, and partials fall back to fallbacks.
func RendererConfig(selection *theme.Selection, fallbacks map[string]string) *theme.RendererConfig {
	if selection == nil || selection.Manifest == nil {
		return nil
	}
	manifest := selection.Manifest
	variant := manifest.Variants[selection.Variant]

	tokens := mergeStrings(manifest.Tokens, variant.Tokens)
	cssVars := make(map[string]string, len(tokens))
	for key, value := range tokens {
		cssVars["--"+key] = value
	}

	partials := mergeStrings(fallbacks, manifest.Templates)
	partials = mergeStrings(partials, variant.Templates)

	prefix := manifest.Assets.Prefix
	if strings.TrimSpace(variant.Assets.Prefix) != "" {
		prefix = variant.Assets.Prefix
	}
	files := mergeStrings(manifest.Assets.Files, variant.Assets.Files)

	return &theme.RendererConfig{
		Theme:    selection.Theme,
		Variant:  selection.Variant,
		Partials: partials,
		Tokens:   tokens,
		CSSVars:  cssVars,
		AssetURL: func(key string) string {
			file, ok := files[key]
			if !ok || file == "" {
				return ""
			}
			if strings.Contains(file, "://") || strings.HasPrefix(file, "/") {
				return file
			}
			if prefix == "" {
				return file
			}
			return path.Join(prefix, file)
		},
	}
}

// ResolveTheme selects name/variant and builds its renderer config.
func ResolveTheme(selector theme.ThemeSelector, name, variant string) (*theme.RendererConfig, error) {
	if selector == nil {
		return nil, errors.New("html: theme selector is nil")
	}
	selection, err := selector.Select(name, variant)
	if err != nil {
		return nil, err
	}
	return RendererConfig(selection, DefaultFallbacks()), nil
}

func mergeStrings(base, override map[string]string) map[string]string {
	out := make(map[string]string, len(base)+len(override))
	for key, value := range base {
		out[key] = value
	}
	for key, value := range override {
		out[key] = value
	}
	return out
}
