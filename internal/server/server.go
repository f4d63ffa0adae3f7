package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-uikit/internal/logging"
	"github.com/goliatone/go-uikit/pkg/components"
	"github.com/goliatone/go-uikit/pkg/render"
	"github.com/goliatone/go-uikit/pkg/site"
)

// NewsletterField is the form field the landing page sign-up posts.
const NewsletterField = "email"

// Options wires the handler dependencies.
type Options struct {
	// Pages renders the site pages by name.
	Pages render.Renderer
	// Components backs the preview routes. Defaults to
	// components.NewDefaultRegistry().
	Components *components.Registry
	// Theme is applied to every page render.
	Theme *theme.RendererConfig
	// Themes, when set, lets page requests pick a theme with the "theme" and
	// "variant" query parameters.
	Themes ThemeResolver
	Logger *logging.Logger
}

// ThemeResolver turns a theme name and variant into renderer configuration.
// *orchestrator.Orchestrator satisfies it.
type ThemeResolver interface {
	ResolveTheme(name, variant string) (*theme.RendererConfig, error)
}

type handler struct {
	pages      render.Renderer
	components *components.Registry
	theme      *theme.RendererConfig
	themes     ThemeResolver
	logger     *logging.Logger
}

// New builds the HTTP handler serving pages, component previews and health
// checks.
func New(opts Options) (http.Handler, error) {
	if opts.Pages == nil {
		return nil, errors.New("server: page renderer is required")
	}
	registry := opts.Components
	if registry == nil {
		registry = components.NewDefaultRegistry()
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Nop()
	}

	h := &handler{
		pages:      opts.Pages,
		components: registry,
		theme:      opts.Theme,
		themes:     opts.Themes,
		logger:     logger,
	}

	mux := http.NewServeMux()
	for _, page := range site.Pages() {
		pattern := "GET " + page.Path()
		if page.Path() == "/" {
			pattern = "GET /{$}"
		}
		mux.Handle(pattern, h.pageHandler(page))
	}
	mux.HandleFunc("POST /newsletter", h.handleNewsletter)
	mux.HandleFunc("GET /components", h.handleComponentList)
	mux.HandleFunc("GET /components/{name}", h.handleComponent)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	return withRequestLogging(logger, mux), nil
}

func (h *handler) pageHandler(page site.Page) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cfg, err := h.themeFor(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		h.renderPage(w, r, page, http.StatusOK, render.RenderOptions{Theme: cfg})
	})
}

func (h *handler) themeFor(r *http.Request) (*theme.RendererConfig, error) {
	if h.themes == nil {
		return h.theme, nil
	}
	query := r.URL.Query()
	name := strings.TrimSpace(query.Get("theme"))
	variant := strings.TrimSpace(query.Get("variant"))
	if name == "" && variant == "" {
		return h.theme, nil
	}
	return h.themes.ResolveTheme(name, variant)
}

func (h *handler) renderPage(w http.ResponseWriter, r *http.Request, page site.Page, status int, options render.RenderOptions) {
	output, err := h.pages.Render(r.Context(), string(page), options)
	if err != nil {
		switch {
		case errors.Is(err, site.ErrPageNotFound):
			http.Error(w, err.Error(), http.StatusNotFound)
		case r.Context().Err() != nil:
			// client went away
		default:
			h.logger.WithFields(map[string]any{"page": string(page)}).Error(err, "render page")
			http.Error(w, "render failed", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", h.pages.ContentType())
	w.WriteHeader(status)
	if _, err := w.Write(output); err != nil {
		h.logger.Error(err, "write response")
	}
}

type newsletterForm struct {
	Email string `validate:"required,email"`
}

var (
	formValidatorOnce sync.Once
	formValidator     *validator.Validate
)

func newsletterValidator() *validator.Validate {
	formValidatorOnce.Do(func() {
		formValidator = validator.New()
	})
	return formValidator
}

func (h *handler) handleNewsletter(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form payload", http.StatusBadRequest)
		return
	}

	form := newsletterForm{Email: strings.TrimSpace(r.PostForm.Get(NewsletterField))}
	if err := newsletterValidator().Struct(form); err != nil {
		message := "Enter a valid email address"
		if form.Email == "" {
			message = "Email address is required"
		}
		cfg, themeErr := h.themeFor(r)
		if themeErr != nil {
			cfg = h.theme
		}
		h.renderPage(w, r, site.PageLanding, http.StatusUnprocessableEntity, render.RenderOptions{
			Theme:  cfg,
			Values: map[string]any{NewsletterField: form.Email},
			Errors: map[string][]string{NewsletterField: {message}},
		})
		return
	}

	h.logger.WithFields(map[string]any{"field": NewsletterField}).Info("newsletter sign-up accepted")
	http.Redirect(w, r, site.PageLanding.Path()+"?subscribed=1", http.StatusSeeOther)
}

func (h *handler) handleComponentList(w http.ResponseWriter, _ *http.Request) {
	payload := struct {
		Components []string `json:"components"`
	}{Components: h.components.Names()}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error(err, "write component list")
	}
}

func (h *handler) handleComponent(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	params := make(components.Params)
	for key, values := range r.URL.Query() {
		if len(values) > 0 {
			params[key] = values[0]
		}
	}

	var buf bytes.Buffer
	if err := h.components.Render(&buf, name, params); err != nil {
		switch {
		case errors.Is(err, components.ErrUnknownComponent):
			http.Error(w, err.Error(), http.StatusNotFound)
		case errors.Is(err, components.ErrInvalidParams),
			errors.Is(err, components.ErrUnknownVariant),
			errors.Is(err, components.ErrUnknownSize):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			h.logger.WithFields(map[string]any{"component": name}).Error(err, "render component")
			http.Error(w, "render failed", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write(buf.Bytes()); err != nil {
		h.logger.Error(err, "write response")
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	if s.status == 0 {
		s.status = code
	}
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusRecorder) Write(b []byte) (int, error) {
	if s.status == 0 {
		s.status = http.StatusOK
	}
	return s.ResponseWriter.Write(b)
}

func withRequestLogging(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w}
		next.ServeHTTP(recorder, r)

		status := recorder.status
		if status == 0 {
			status = http.StatusOK
		}
		logger.Request(r.Method, r.URL.Path, status, time.Since(start))
	})
}

// Addr normalises a listen address, accepting a bare port.
func Addr(addr string) string {
	trimmed := strings.TrimSpace(addr)
	if trimmed == "" {
		return ""
	}
	if !strings.Contains(trimmed, ":") {
		return fmt.Sprintf(":%s", trimmed)
	}
	return trimmed
}
