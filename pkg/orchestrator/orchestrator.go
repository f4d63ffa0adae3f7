package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	theme "github.com/goliatone/go-theme"
	"github.com/goliatone/go-uikit/pkg/render"
	"github.com/goliatone/go-uikit/pkg/site"
)

const defaultRendererName = "site"

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// WithSiteOptions configures the built-in site renderer registered when no
// registry is supplied.
func WithSiteOptions(options ...site.Option) Option {
	return func(o *Orchestrator) {
		o.siteOptions = append(o.siteOptions, options...)
	}
}

// WithThemeSelector wires a go-theme selector. Requests naming a theme, and
// requests relying on the defaults set by WithDefaultTheme, resolve their
// RendererConfig through it.
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(o *Orchestrator) {
		o.themeSelector = selector
	}
}

// WithDefaultTheme sets the theme and variant used when a request leaves
// them empty.
func WithDefaultTheme(name, variant string) Option {
	return func(o *Orchestrator) {
		o.defaultTheme = strings.TrimSpace(name)
		o.defaultVariant = strings.TrimSpace(variant)
	}
}

// WithThemeFallbacks replaces the partials used when the selected theme does
// not provide a template for a key.
func WithThemeFallbacks(fallbacks map[string]string) Option {
	return func(o *Orchestrator) {
		o.themeFallbacks = cloneStrings(fallbacks)
	}
}

// Orchestrator resolves a theme selection and a renderer for each page
// request, then renders the page. It starts with the embedded site renderer
// so callers can render pages with a single constructor call.
type Orchestrator struct {
	registry        *render.Registry
	defaultRenderer string
	siteOptions     []site.Option
	themeSelector   theme.ThemeSelector
	defaultTheme    string
	defaultVariant  string
	themeFallbacks  map[string]string
	initialiseErr   error
	defaultsApplied bool
}

// New constructs an Orchestrator applying any provided options.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
		themeFallbacks:  defaultThemeFallbacks(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// Request describes a single page render.
type Request struct {
	// Page names the page to render (landing, terms, privacy).
	Page string

	// Renderer names the renderer to use. If empty, the orchestrator falls back
	// to the configured default renderer.
	Renderer string

	// ThemeName and ThemeVariant select a theme through the configured
	// selector. Empty values use the defaults from WithDefaultTheme.
	ThemeName    string
	ThemeVariant string

	// RenderOptions carries prefilled values and server-side errors. A Theme
	// set here wins over the selector.
	RenderOptions render.RenderOptions
}

// Generate resolves the theme and renderer for req and returns the rendered
// bytes (HTML for the default site renderer).
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := o.ready(); err != nil {
		return nil, err
	}

	if strings.TrimSpace(req.Page) == "" {
		return nil, errors.New("orchestrator: page is required")
	}

	options := req.RenderOptions
	if options.Theme == nil {
		cfg, err := o.ResolveTheme(req.ThemeName, req.ThemeVariant)
		if err != nil {
			return nil, err
		}
		options.Theme = cfg
	}

	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return nil, err
	}

	output, err := renderer.Render(ctx, req.Page, options)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render output: %w", err)
	}
	return output, nil
}

// Renderer returns the renderer a request naming name would use.
func (o *Orchestrator) Renderer(name string) (render.Renderer, error) {
	if err := o.ready(); err != nil {
		return nil, err
	}
	return o.rendererFor(name)
}

// ResolveTheme selects a theme and converts the selection into the renderer
// configuration. It returns nil without error when no selector is configured.
func (o *Orchestrator) ResolveTheme(name, variant string) (*theme.RendererConfig, error) {
	if o.themeSelector == nil {
		return nil, nil
	}
	if strings.TrimSpace(name) == "" {
		name = o.defaultTheme
	}
	if strings.TrimSpace(variant) == "" {
		variant = o.defaultVariant
	}

	selection, err := o.themeSelector.Select(name, variant)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: select theme %q: %w", name, err)
	}
	if selection == nil {
		return nil, fmt.Errorf("orchestrator: select theme %q: empty selection", name)
	}
	return RendererConfig(selection, o.themeFallbacks), nil
}

func (o *Orchestrator) ready() error {
	if err := o.initialiseErr; err != nil {
		return err
	}
	if !o.defaultsApplied {
		o.applyDefaults()
	}
	return o.initialiseErr
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if o.registry == nil {
		return nil, errors.New("orchestrator: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = o.defaultRenderer
	}

	if target != "" {
		renderer, err := o.registry.Get(target)
		if err == nil {
			return renderer, nil
		}
		if name != "" {
			return nil, fmt.Errorf("orchestrator: renderer %q: %w", name, err)
		}
	}

	renderer, err := o.registry.Resolve("")
	if err != nil {
		return nil, fmt.Errorf("orchestrator: %w", err)
	}
	return renderer, nil
}

func (o *Orchestrator) applyDefaults() {
	if o.defaultsApplied {
		return
	}

	if o.registry == nil {
		o.registry = render.NewRegistry()
		renderer, err := site.New(o.siteOptions...)
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default renderer: %w", err)
		} else {
			o.registry.MustRegister(renderer)
		}
	}
	if o.defaultRenderer == "" {
		o.defaultRenderer = defaultRendererName
	}

	o.defaultsApplied = true
}
