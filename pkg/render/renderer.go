package render

import (
	"context"
)

// Renderer converts a named page into a byte representation (HTML).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, page string, options RenderOptions) ([]byte, error)
}
