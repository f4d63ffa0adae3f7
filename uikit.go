package uikit

import (
	"context"
	"io/fs"

	theme "github.com/goliatone/go-theme"
	"github.com/goliatone/go-uikit/pkg/components"
	"github.com/goliatone/go-uikit/pkg/orchestrator"
	"github.com/goliatone/go-uikit/pkg/render"
	"github.com/goliatone/go-uikit/pkg/site"
)

// RenderOptions describes per-request overrides that renderers can use to
// prefill values or surface server-side validation errors.
type RenderOptions = render.RenderOptions

// Params carries string props for rendering a component by name.
type Params = components.Params

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// NewComponentRegistry returns a registry holding the built-in primitives
// (button, input, spinner, logo, logo-icon).
func NewComponentRegistry() *components.Registry {
	return components.NewDefaultRegistry()
}

// WithThemeSelector forwards a go-theme selector to the orchestrator.
func WithThemeSelector(selector theme.ThemeSelector) orchestrator.Option {
	return orchestrator.WithThemeSelector(selector)
}

// WithThemeManifests builds an in-memory selector over manifests. The first
// manifest is the default theme unless WithDefaultTheme says otherwise.
func WithThemeManifests(manifests ...*theme.Manifest) (orchestrator.Option, error) {
	selector, err := orchestrator.NewManifestSelector(manifests...)
	if err != nil {
		return nil, err
	}
	return orchestrator.WithThemeSelector(selector), nil
}

// WithDefaultTheme forwards the default theme name and variant.
func WithDefaultTheme(name, variant string) orchestrator.Option {
	return orchestrator.WithDefaultTheme(name, variant)
}

// RenderPage renders one of the built-in pages (landing, terms, privacy) with
// the embedded templates and copy. It is the simplest entry point for callers
// that just want HTML output.
func RenderPage(ctx context.Context, page string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{Page: page})
}

// EmbeddedTemplates exposes the built-in page templates so callers can reuse
// or extend them without importing the site package directly.
func EmbeddedTemplates() fs.FS {
	return site.TemplatesFS()
}

// EmbeddedContent exposes the built-in page copy (YAML documents).
func EmbeddedContent() fs.FS {
	return site.ContentFS()
}
