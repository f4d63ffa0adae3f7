package site

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/goliatone/go-uikit/pkg/components"
	"github.com/goliatone/go-uikit/pkg/render"
	rendertemplate "github.com/goliatone/go-uikit/pkg/render/template"
	gotemplate "github.com/goliatone/go-uikit/pkg/render/template/gotemplate"
)

const (
	templateExt    = ".tmpl"
	layoutTemplate = "layout" + templateExt
)

// Option customises the renderer configuration.
type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	contentFS        fs.FS
	content          *Content
	stylesheet       string
	assetURLPrefix   string
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		if files != nil {
			cfg.templateFS = files
		}
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
// The renderer registers its filters and site globals on it, so renderers
// sharing one engine also share those globals.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithContentFS loads page copy from files instead of the embedded bundle.
func WithContentFS(files fs.FS) Option {
	return func(cfg *config) {
		if files != nil {
			cfg.contentFS = files
		}
	}
}

// WithContent uses already loaded content. It takes precedence over
// WithContentFS.
func WithContent(content Content) Option {
	return func(cfg *config) {
		cfg.content = &content
	}
}

// WithStylesheet sets the stylesheet linked from every page when the theme
// does not resolve one.
func WithStylesheet(path string) Option {
	return func(cfg *config) {
		cfg.stylesheet = strings.TrimSpace(path)
	}
}

// WithAssetURLPrefix prefixes relative asset paths (e.g. "/static").
func WithAssetURLPrefix(prefix string) Option {
	return func(cfg *config) {
		cfg.assetURLPrefix = prefix
	}
}

// Renderer renders site pages. It satisfies render.Renderer where the page
// argument is a page name.
type Renderer struct {
	templates      rendertemplate.TemplateRenderer
	content        Content
	stylesheet     string
	assetURLPrefix string
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs a site renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{
		templateFS: TemplatesFS(),
		contentFS:  ContentFS(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	templateRenderer := cfg.templateRenderer
	if templateRenderer == nil {
		if err := ensureTemplates(cfg.templateFS); err != nil {
			return nil, err
		}
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(templateExt),
		)
		if err != nil {
			return nil, fmt.Errorf("site renderer: configure template renderer: %w", err)
		}
		templateRenderer = engine
	}

	var content Content
	if cfg.content != nil {
		content = *cfg.content
		if err := content.Validate(); err != nil {
			return nil, err
		}
	} else {
		loaded, err := LoadContent(cfg.contentFS)
		if err != nil {
			return nil, err
		}
		content = loaded
	}

	if err := configureTemplates(templateRenderer, content); err != nil {
		return nil, err
	}

	return &Renderer{
		templates:      templateRenderer,
		content:        content,
		stylesheet:     cfg.stylesheet,
		assetURLPrefix: cfg.assetURLPrefix,
	}, nil
}

// Name identifies the renderer inside the registry.
func (r *Renderer) Name() string {
	return "site"
}

// ContentType returns the MIME type for generated documents.
func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Templates exposes the template engine so callers can reset its cache.
func (r *Renderer) Templates() rendertemplate.TemplateRenderer {
	if r == nil {
		return nil
	}
	return r.templates
}

// Content returns the copy the renderer was built with.
func (r *Renderer) Content() Content {
	return r.content
}

// Render produces the HTML document for the named page. Values and Errors in
// options populate the landing page sign-up field.
func (r *Renderer) Render(ctx context.Context, name string, options render.RenderOptions) ([]byte, error) {
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	}
	if r == nil || r.templates == nil {
		return nil, fmt.Errorf("site renderer: template renderer is nil")
	}

	page, err := ParsePage(name)
	if err != nil {
		return nil, err
	}

	data := map[string]any{
		"page":   string(page),
		"theme":  buildThemeContext(options.Theme),
		"assets": map[string]string{"stylesheet": r.stylesheetURL(options)},
	}

	switch page {
	case PageLanding:
		data["landing"] = r.landingView(options)
	default:
		data["legal"] = r.legalView(page)
	}

	tpl := page.templateName()
	if partial := themePartial(options.Theme, page.partialKey()); partial != "" {
		tpl = partial
	}

	rendered, err := r.templates.Render(tpl, data)
	if err != nil {
		return nil, fmt.Errorf("site renderer: render %s: %w", page, err)
	}
	return []byte(rendered), nil
}

func (r *Renderer) stylesheetURL(options render.RenderOptions) string {
	css := r.stylesheet
	if resolver := themeAssetResolver(options.Theme); resolver != nil {
		if resolved := resolver(themeAssetStylesheet); strings.TrimSpace(resolved) != "" {
			css = resolved
		}
	}
	return expandAssetURL(r.assetURLPrefix, css)
}

type landingView struct {
	Logo       string          `json:"logo"`
	Headline   string          `json:"headline"`
	Tagline    string          `json:"tagline"`
	Primary    string          `json:"primary"`
	Secondary  string          `json:"secondary"`
	Newsletter *newsletterView `json:"newsletter,omitempty"`
}

type newsletterView struct {
	Action string `json:"action"`
	Field  string `json:"field"`
	Submit string `json:"submit"`
}

func (r *Renderer) landingView(options render.RenderOptions) landingView {
	landing := r.content.Landing
	view := landingView{
		Logo:     string(components.Logo(components.LogoProps{Size: components.LogoSizeXL})),
		Headline: landing.Headline,
		Tagline:  landing.Tagline,
	}

	if landing.Primary.Href != "" {
		view.Primary = string(components.LinkButton(components.LinkButtonProps{
			Href:    landing.Primary.Href,
			Variant: components.VariantPrimary,
			Size:    components.ButtonSizeLG,
			Class:   "px-8 py-4 font-semibold shadow-lg hover:shadow-xl transform hover:scale-105",
			Text:    landing.Primary.Label,
		}))
	}
	if landing.Secondary.Href != "" {
		view.Secondary = string(components.LinkButton(components.LinkButtonProps{
			Href:    landing.Secondary.Href,
			Variant: components.VariantOutline,
			Size:    components.ButtonSizeLG,
			Class:   "px-8 py-4 font-semibold transform hover:scale-105",
			Text:    landing.Secondary.Label,
		}))
	}

	if form := landing.Newsletter; form.Enabled() {
		view.Newsletter = &newsletterView{
			Action: form.Action,
			Field: string(components.Input(components.InputProps{
				Label:       form.Label,
				Name:        form.Name,
				Type:        "email",
				Placeholder: form.Placeholder,
				Value:       options.Value(form.Name),
				Error:       options.FirstError(form.Name),
				Required:    true,
			})),
			Submit: string(components.Button(components.ButtonProps{
				Type: "submit",
				Text: submitLabel(form.Submit),
			})),
		}
	}

	return view
}

type legalView struct {
	Logo     string        `json:"logo"`
	Title    string        `json:"title"`
	Updated  string        `json:"updated"`
	Intro    string        `json:"intro"`
	Sections []sectionView `json:"sections"`
	Contact  contactView   `json:"contact"`
	Back     Link          `json:"back"`
}

type sectionView struct {
	Number int    `json:"number"`
	Title  string `json:"title"`
	Body   string `json:"body"`
}

type contactView struct {
	Number int    `json:"number"`
	Title  string `json:"title"`
	Prompt string `json:"prompt"`
	Email  string `json:"email"`
	Href   string `json:"href"`
}

func (r *Renderer) legalView(page Page) legalView {
	legal := r.content.Legal[page]
	view := legalView{
		Logo:     string(components.Logo(components.LogoProps{Size: components.LogoSizeLG})),
		Title:    legal.Title,
		Updated:  legal.Updated,
		Intro:    legal.Intro,
		Sections: make([]sectionView, 0, len(legal.Sections)),
		Back:     legal.Back,
	}
	for i, section := range legal.Sections {
		view.Sections = append(view.Sections, sectionView{
			Number: i + 1,
			Title:  section.Title,
			Body:   section.Body,
		})
	}
	view.Contact = contactView{
		Number: len(legal.Sections) + 1,
		Title:  legal.Contact.Title,
		Prompt: legal.Contact.Prompt,
		Email:  legal.Contact.Email,
		Href:   "mailto:" + legal.Contact.Email,
	}
	return view
}

func submitLabel(label string) string {
	if strings.TrimSpace(label) == "" {
		return "Submit"
	}
	return label
}

func langOrDefault(lang string) string {
	if strings.TrimSpace(lang) == "" {
		return "en"
	}
	return lang
}

func ensureTemplates(store fs.FS) error {
	if store == nil {
		return fmt.Errorf("site renderer: template file system is nil")
	}
	names := []string{layoutTemplate}
	for _, page := range pages {
		names = append(names, page.templateName())
	}
	for _, name := range names {
		if _, err := fs.Stat(store, name); err != nil {
			return fmt.Errorf("site renderer: template %q not found: %w", name, err)
		}
	}
	return nil
}
