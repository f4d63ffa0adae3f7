package orchestrator_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	theme "github.com/goliatone/go-theme"
	"github.com/goliatone/go-uikit/pkg/orchestrator"
	"github.com/goliatone/go-uikit/pkg/render"
	"github.com/goliatone/go-uikit/pkg/site"
	"github.com/goliatone/go-uikit/pkg/testsupport"
)

func TestOrchestrator_Generate_DefaultSiteRenderer(t *testing.T) {
	gen := orchestrator.New()

	output, err := gen.Generate(testsupport.Context(), orchestrator.Request{Page: "privacy"})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	html := string(output)
	testsupport.AssertContains(t, html, "Privacy Policy")
	testsupport.AssertContains(t, html, "privacy@tradingjournal.com")

	renderer, err := gen.Renderer("")
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}
	if renderer.Name() != "site" {
		t.Fatalf("expected site renderer, got %q", renderer.Name())
	}
}

func TestOrchestrator_Generate_ThemedLanding(t *testing.T) {
	manifest := &theme.Manifest{
		Name:    "midnight",
		Version: "0.1.0",
		Tokens:  map[string]string{"brand": "#0f172a"},
		Assets: theme.Assets{
			Prefix: "/static/midnight",
			Files:  map[string]string{"site.stylesheet": "midnight.css"},
		},
	}
	selector, err := orchestrator.NewManifestSelector(manifest)
	if err != nil {
		t.Fatalf("new selector: %v", err)
	}

	gen := orchestrator.New(orchestrator.WithThemeSelector(selector))
	output, err := gen.Generate(testsupport.Context(), orchestrator.Request{
		Page: "landing",
		RenderOptions: render.RenderOptions{
			Values: map[string]any{"email": "trader@example.com"},
		},
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	html := string(output)
	testsupport.AssertContains(t, html, `href="/static/midnight/midnight.css"`)
	testsupport.AssertContains(t, html, "--brand: #0f172a;")
	testsupport.AssertContains(t, html, `data-theme="midnight"`)
	testsupport.AssertContains(t, html, `value="trader@example.com"`)
}

func TestOrchestrator_Generate_Errors(t *testing.T) {
	gen := orchestrator.New()

	cancelled, cancel := context.WithCancel(context.Background())
	cancel()

	tests := []struct {
		name  string
		ctx   context.Context
		req   orchestrator.Request
		check func(error) bool
	}{
		{
			name:  "nil context",
			ctx:   nil,
			req:   orchestrator.Request{Page: "landing"},
			check: func(err error) bool { return err != nil },
		},
		{
			name:  "cancelled context",
			ctx:   cancelled,
			req:   orchestrator.Request{Page: "landing"},
			check: func(err error) bool { return errors.Is(err, context.Canceled) },
		},
		{
			name:  "missing page",
			ctx:   context.Background(),
			req:   orchestrator.Request{Page: "  "},
			check: func(err error) bool { return err != nil && strings.Contains(err.Error(), "page is required") },
		},
		{
			name:  "unknown page",
			ctx:   context.Background(),
			req:   orchestrator.Request{Page: "pricing"},
			check: func(err error) bool { return errors.Is(err, site.ErrPageNotFound) },
		},
		{
			name:  "unknown renderer",
			ctx:   context.Background(),
			req:   orchestrator.Request{Page: "landing", Renderer: "pdf"},
			check: func(err error) bool { return errors.Is(err, render.ErrRendererNotFound) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := gen.Generate(tt.ctx, tt.req)
			if !tt.check(err) {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestOrchestrator_Generate_ThemeNotFound(t *testing.T) {
	selector, err := orchestrator.NewManifestSelector(&theme.Manifest{Name: "acme"})
	if err != nil {
		t.Fatalf("new selector: %v", err)
	}
	gen := orchestrator.New(orchestrator.WithThemeSelector(selector))

	_, err = gen.Generate(context.Background(), orchestrator.Request{Page: "landing", ThemeName: "other"})
	if !errors.Is(err, orchestrator.ErrThemeNotFound) {
		t.Fatalf("expected ErrThemeNotFound, got %v", err)
	}

	_, err = gen.Generate(context.Background(), orchestrator.Request{Page: "landing", ThemeVariant: "dark"})
	if !errors.Is(err, orchestrator.ErrVariantNotFound) {
		t.Fatalf("expected ErrVariantNotFound, got %v", err)
	}
}

func TestOrchestrator_DefaultRendererError(t *testing.T) {
	gen := orchestrator.New(orchestrator.WithSiteOptions(site.WithTemplatesFS(testsupport.MapFS(map[string]string{
		"layout.tmpl": "{% block content %}{% endblock %}",
	}))))

	if _, err := gen.Generate(context.Background(), orchestrator.Request{Page: "landing"}); err == nil {
		t.Fatalf("expected initialisation error for incomplete templates")
	}
}

func TestManifestSelector(t *testing.T) {
	first := &theme.Manifest{Name: "Acme", Variants: map[string]theme.Variant{"dark": {}}}
	second := &theme.Manifest{Name: "midnight"}

	selector, err := orchestrator.NewManifestSelector(first, second)
	if err != nil {
		t.Fatalf("new selector: %v", err)
	}
	if got := selector.Names(); len(got) != 2 || got[0] != "acme" || got[1] != "midnight" {
		t.Fatalf("unexpected names: %v", got)
	}

	selection, err := selector.Select("", "")
	if err != nil {
		t.Fatalf("select default: %v", err)
	}
	if selection.Theme != "Acme" || selection.Manifest != first {
		t.Fatalf("expected first manifest as default, got %+v", selection)
	}

	selection, err = selector.Select(" ACME ", "dark")
	if err != nil {
		t.Fatalf("select variant: %v", err)
	}
	if selection.Variant != "dark" {
		t.Fatalf("expected dark variant, got %q", selection.Variant)
	}

	if err := selector.Add(&theme.Manifest{Name: "acme"}); err == nil {
		t.Fatalf("expected duplicate registration error")
	}
	if err := selector.Add(&theme.Manifest{}); err == nil {
		t.Fatalf("expected missing name error")
	}
	if err := selector.Add(nil); err == nil {
		t.Fatalf("expected nil manifest error")
	}

	empty, err := orchestrator.NewManifestSelector()
	if err != nil {
		t.Fatalf("new empty selector: %v", err)
	}
	if _, err := empty.Select("", ""); !errors.Is(err, orchestrator.ErrThemeNotFound) {
		t.Fatalf("expected ErrThemeNotFound from empty selector, got %v", err)
	}
}
