package template

import (
	"io"
)

// TemplateRenderer is the engine contract page renderers depend on. Render
// accepts either a template name or inline template content.
type TemplateRenderer interface {
	Render(name string, data any, out ...io.Writer) (string, error)
	// RegisterFilter adds a filter usable from every template. Filter names
	// may be process wide, so implementations can refuse duplicates.
	RegisterFilter(name string, fn func(input any, param any) (any, error)) error
	GlobalContext(data any) error
}

// Resetter is implemented by engines that cache parsed templates and can
// drop that cache so edited files are picked up.
type Resetter interface {
	Reset()
}
