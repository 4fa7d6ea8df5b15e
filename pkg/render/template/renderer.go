package template

import (
	"io"
)

// TemplateRenderer is the seam HTML renderers rely on. Implementations render
// a named template (or inline template source) with the supplied data,
// optionally copying the result onto extra writers.
type TemplateRenderer interface {
	RenderTemplate(name string, data any, out ...io.Writer) (string, error)
	RenderString(templateContent string, data any, out ...io.Writer) (string, error)
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
	GlobalContext(data any) error
}
