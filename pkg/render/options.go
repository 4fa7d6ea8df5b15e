package render

import (
	theme "github.com/goliatone/go-theme"
)

// RenderOptions describe per-request data that renderers can use to customise
// their output without touching the session.
type RenderOptions struct {
	// Action is the URL the step form posts to. Empty keeps the form on the
	// current URL.
	Action string
	// HiddenFields are emitted as hidden inputs next to the visible controls.
	// The session and step ids are always added by the HTML renderer.
	HiddenFields map[string]string
	// Theme carries resolved theme tokens and asset helpers. Nil falls back to
	// the renderer's built-in theme.
	Theme *theme.RendererConfig
}
