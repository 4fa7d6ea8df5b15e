package html

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

// Icon names used by the step template.
const (
	IconSparkles   = "sparkles"
	IconCheck      = "check"
	IconArrowLeft  = "arrow-left"
	IconArrowRight = "arrow-right"
	IconRocket     = "rocket"
)

const svgOpen = `<svg xmlns="http://www.w3.org/2000/svg" width="24" height="24" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round" aria-hidden="true">`

var defaultIcons = map[string]string{
	IconSparkles: svgOpen +
		`<path d="m12 3-1.912 5.813a2 2 0 0 1-1.275 1.275L3 12l5.813 1.912a2 2 0 0 1 1.275 1.275L12 21l1.912-5.813a2 2 0 0 1 1.275-1.275L21 12l-5.813-1.912a2 2 0 0 1-1.275-1.275L12 3Z"></path>` +
		`<path d="M5 3v4"></path><path d="M19 17v4"></path><path d="M3 5h4"></path><path d="M17 19h4"></path></svg>`,
	IconCheck: svgOpen + `<path d="M20 6 9 17l-5-5"></path></svg>`,
	IconArrowLeft: svgOpen +
		`<path d="m12 19-7-7 7-7"></path><path d="M19 12H5"></path></svg>`,
	IconArrowRight: svgOpen +
		`<path d="M5 12h14"></path><path d="m12 5 7 7-7 7"></path></svg>`,
	IconRocket: svgOpen +
		`<path d="M4.5 16.5c-1.5 1.26-2 5-2 5s3.74-.5 5-2c.71-.84.7-2.13-.09-2.91a2.18 2.18 0 0 0-2.91-.09z"></path>` +
		`<path d="m12 15-3-3a22 22 0 0 1 2-3.95A12.88 12.88 0 0 1 22 2c0 2.72-.78 7.5-6 11a22.35 22.35 0 0 1-4 2z"></path>` +
		`<path d="M9 12H4s.55-3.03 2-4c1.62-1.08 5 0 5 0"></path><path d="M12 15v5s3.03-.55 4-2c1.08-1.62 0-5 0-5"></path></svg>`,
}

var (
	iconPolicyOnce sync.Once
	iconPolicy     *bluemonday.Policy
)

// resolveIcons merges overrides over the built-in set and sanitizes every
// entry. Overrides that sanitize to nothing fall back to the built-in icon.
func resolveIcons(overrides map[string]string) map[string]string {
	out := make(map[string]string, len(defaultIcons)+len(overrides))
	for name, markup := range defaultIcons {
		out[name] = sanitizeIconMarkup(markup)
	}
	for name, markup := range overrides {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if cleaned := sanitizeIconMarkup(markup); cleaned != "" {
			out[name] = cleaned
		}
	}
	return out
}

func sanitizeIconMarkup(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(iconSanitizer().Sanitize(trimmed))
}

func iconSanitizer() *bluemonday.Policy {
	iconPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements("svg", "g", "path", "circle", "rect", "line", "polyline", "polygon", "title")

		policy.AllowAttrs(
			"xmlns", "viewBox", "width", "height", "fill", "stroke",
			"stroke-width", "stroke-linecap", "stroke-linejoin", "aria-hidden",
			"role", "focusable", "class",
		).OnElements("svg")

		for _, el := range []string{"path", "circle", "rect", "line", "polyline", "polygon"} {
			policy.AllowAttrs(
				"d", "cx", "cy", "r", "x", "y", "x1", "y1", "x2", "y2",
				"points", "rx", "ry", "fill", "stroke", "stroke-width",
				"stroke-linecap", "stroke-linejoin",
			).OnElements(el)
		}
		policy.AllowAttrs("class").OnElements("g")

		iconPolicy = policy
	})
	return iconPolicy
}
