package gotemplate_test

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-uikit/pkg/render/template/gotemplate"
	"github.com/goliatone/go-uikit/pkg/testsupport"
)

func newTemplates() fstest.MapFS {
	return testsupport.MapFS(map[string]string{
		"hello.tmpl":      "Hello {{ name }}",
		"use-global.tmpl": "env={{ settings.env }}",
		"use-filter.tmpl": "{{ name|uikit_shout }}",
		"escape.tmpl":     "{{ markup }}|{{ markup|safe }}",
		"base.tmpl":       "<main>{% block body %}{% endblock %}</main>",
		"child.tmpl":      `{% extends "base.tmpl" %}{% block body %}{{ title }}{% endblock %}`,
	})
}

func newEngine(t *testing.T, files fstest.MapFS) *gotemplate.Engine {
	t.Helper()
	engine, err := gotemplate.New(gotemplate.WithFS(files))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return engine
}

func TestEngine_RequiresSource(t *testing.T) {
	if _, err := gotemplate.New(); err == nil {
		t.Fatalf("expected error without base dir or fs")
	}
}

func TestEngine_Render(t *testing.T) {
	engine := newEngine(t, newTemplates())

	result, written := testsupport.CaptureTemplateOutput(t, func(w io.Writer) (string, error) {
		return engine.Render("hello", map[string]any{"name": "Ada"}, w)
	})

	if result != "Hello Ada" {
		t.Fatalf("render mismatch result: %q", result)
	}
	if written != result {
		t.Fatalf("writer mismatch\nwant: %q\n got: %q", result, written)
	}
}

func TestEngine_RenderAcceptsExtension(t *testing.T) {
	engine := newEngine(t, newTemplates())

	got, err := engine.Render("hello.tmpl", map[string]any{"name": "Grace"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "Hello Grace" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestEngine_RenderInlineContent(t *testing.T) {
	engine := newEngine(t, newTemplates())

	got, err := engine.Render("{{ a }}-{{ b }}", map[string]any{"a": 1, "b": "two"})
	if err != nil {
		t.Fatalf("render string: %v", err)
	}
	if got != "1-two" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestEngine_StructData(t *testing.T) {
	engine := newEngine(t, newTemplates())

	data := struct {
		Name string `json:"name"`
	}{Name: "Linus"}

	got, err := engine.Render("hello", data)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "Hello Linus" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestEngine_GlobalContext(t *testing.T) {
	engine := newEngine(t, newTemplates())
	if err := engine.GlobalContext(map[string]any{
		"settings": map[string]any{"env": "staging"},
	}); err != nil {
		t.Fatalf("global context: %v", err)
	}

	got, err := engine.Render("use-global", nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "env=staging" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestEngine_RegisterFilter(t *testing.T) {
	engine := newEngine(t, newTemplates())
	err := engine.RegisterFilter("uikit_shout", func(input any, _ any) (any, error) {
		if input == nil {
			return "", nil
		}
		return fmt.Sprintf("%s!", strings.ToUpper(fmt.Sprint(input))), nil
	})
	if err != nil {
		t.Fatalf("register filter: %v", err)
	}

	got, err := engine.Render("use-filter", map[string]any{"name": "Ada"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "ADA!" {
		t.Fatalf("unexpected output %q", got)
	}

	err = engine.RegisterFilter("uikit_shout", func(any, any) (any, error) { return nil, nil })
	if !errors.Is(err, gotemplate.ErrFilterExists) {
		t.Fatalf("expected ErrFilterExists, got %v", err)
	}
	if err := engine.RegisterFilter(" ", nil); err == nil {
		t.Fatalf("expected blank filter registration to fail")
	}
}

func TestEngine_AutoescapeAndSafe(t *testing.T) {
	engine := newEngine(t, newTemplates())

	got, err := engine.Render("escape", map[string]any{"markup": "<b>hi</b>"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := "&lt;b&gt;hi&lt;/b&gt;|<b>hi</b>"
	if got != want {
		t.Fatalf("unexpected output\nwant: %q\n got: %q", want, got)
	}
}

func TestEngine_Extends(t *testing.T) {
	engine := newEngine(t, newTemplates())

	got, err := engine.Render("child", map[string]any{"title": "Terms"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "<main>Terms</main>" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestEngine_MissingTemplate(t *testing.T) {
	engine := newEngine(t, newTemplates())

	if _, err := engine.Render("missing", nil); err == nil {
		t.Fatalf("expected missing template error")
	}
}

func TestEngine_ResetReloadsTemplates(t *testing.T) {
	files := testsupport.MapFS(map[string]string{"page.tmpl": "v1"})
	engine := newEngine(t, files)

	first, err := engine.Render("page", nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if first != "v1" {
		t.Fatalf("unexpected first output %q", first)
	}
	if engine.Cached() != 1 {
		t.Fatalf("expected one cached template, got %d", engine.Cached())
	}

	files["page.tmpl"] = &fstest.MapFile{Data: []byte("v2")}

	cached, err := engine.Render("page", nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if cached != "v1" {
		t.Fatalf("expected cached output before reset, got %q", cached)
	}

	engine.Reset()
	if engine.Cached() != 0 {
		t.Fatalf("expected empty cache after reset, got %d", engine.Cached())
	}

	reloaded, err := engine.Render("page", nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if reloaded != "v2" {
		t.Fatalf("expected reloaded output, got %q", reloaded)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("boom") }

func TestEngine_WriterError(t *testing.T) {
	engine := newEngine(t, newTemplates())

	if _, err := engine.Render("hello", map[string]any{"name": "x"}, failingWriter{}); err == nil {
		t.Fatalf("expected writer error")
	}
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestEngine_BaseDirShadowsBundledTemplates(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "hello.tmpl", "Howdy {{ name }}")

	engine, err := gotemplate.New(gotemplate.WithBaseDir(dir), gotemplate.WithFS(newTemplates()))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	tests := []struct {
		name     string
		template string
		data     map[string]any
		want     string
	}{
		{name: "shadowed file", template: "hello", data: map[string]any{"name": "Ada"}, want: "Howdy Ada"},
		{name: "bundled child extends bundled parent", template: "child", data: map[string]any{"title": "Terms"}, want: "<main>Terms</main>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := engine.Render(tt.template, tt.data)
			if err != nil {
				t.Fatalf("render: %v", err)
			}
			if got != tt.want {
				t.Fatalf("unexpected output\nwant: %q\n got: %q", tt.want, got)
			}
		})
	}
}

func TestEngine_BaseDirParentServesBundledChild(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "base.tmpl", "<article>{% block body %}{% endblock %}</article>")

	engine, err := gotemplate.New(gotemplate.WithBaseDir(dir), gotemplate.WithFS(newTemplates()))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	got, err := engine.Render("child", map[string]any{"title": "Privacy"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "<article>Privacy</article>" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestEngine_BaseDirOnly(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "page.tmpl", "disk {{ n }}")

	engine, err := gotemplate.New(gotemplate.WithBaseDir(dir))
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	got, err := engine.Render("page", map[string]any{"n": 1})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got != "disk 1" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestEngine_InvalidBaseDir(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing")
	if _, err := gotemplate.New(gotemplate.WithBaseDir(missing)); err == nil {
		t.Fatalf("expected error for missing base dir")
	}

	file := filepath.Join(t.TempDir(), "file.tmpl")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := gotemplate.New(gotemplate.WithBaseDir(file)); err == nil {
		t.Fatalf("expected error for non-directory base dir")
	}
}
