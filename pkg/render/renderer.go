package render

import (
	"context"

	"github.com/goliatone/go-brandsocial/pkg/session"
)

// Renderer converts a StepView into a byte representation (HTML, JSON, etc.).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, view session.StepView, options RenderOptions) ([]byte, error)
}
