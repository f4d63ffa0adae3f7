package components

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRegistryDescriptorClone(t *testing.T) {
	reg := New()
	renderer := func(io.Writer, Params) error { return nil }

	if err := reg.Register("test", Descriptor{Renderer: renderer, Stylesheets: []string{"/a.css"}}); err != nil {
		t.Fatalf("register: %v", err)
	}

	desc, ok := reg.Descriptor("test")
	if !ok {
		t.Fatalf("descriptor not found")
	}

	desc.Stylesheets = append(desc.Stylesheets, "/mutated.css")

	original, _ := reg.Descriptor("test")
	if len(original.Stylesheets) != 1 || original.Stylesheets[0] != "/a.css" {
		t.Fatalf("registry descriptor mutated: %#v", original.Stylesheets)
	}
}

func TestRegistryRegisterValidation(t *testing.T) {
	reg := New()
	if err := reg.Register("  ", Descriptor{Renderer: func(io.Writer, Params) error { return nil }}); err == nil {
		t.Fatalf("expected error for empty name")
	}
	if err := reg.Register("button", Descriptor{}); err == nil {
		t.Fatalf("expected error for nil renderer")
	}
}

func TestRegistryStylesheetsDeduplicates(t *testing.T) {
	reg := New()
	renderer := func(io.Writer, Params) error { return nil }

	reg.MustRegister("input", Descriptor{Renderer: renderer, Stylesheets: []string{"/shared.css", "/input.css"}})
	reg.MustRegister("button", Descriptor{Renderer: renderer, Stylesheets: []string{"/shared.css", "/button.css", ""}})

	got := reg.Stylesheets([]string{"input", "missing", "BUTTON"})
	if diff := cmp.Diff([]string{"/shared.css", "/input.css", "/button.css"}, got); diff != "" {
		t.Fatalf("stylesheets mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistryCloneIsolated(t *testing.T) {
	reg := NewDefaultRegistry()
	cloned := reg.Clone()
	cloned.MustRegister("badge", Descriptor{Renderer: func(io.Writer, Params) error { return nil }})

	if _, ok := reg.Descriptor("badge"); ok {
		t.Fatalf("expected original registry to be untouched")
	}
	if _, ok := cloned.Descriptor("badge"); !ok {
		t.Fatalf("expected clone to contain new component")
	}
}

func TestDefaultRegistryNames(t *testing.T) {
	want := []string{NameButton, NameInput, NameLogo, NameLogoIcon, NameSpinner}
	if diff := cmp.Diff(want, NewDefaultRegistry().Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
}

func TestDefaultRegistryRendersButton(t *testing.T) {
	var buf bytes.Buffer
	err := NewDefaultRegistry().Render(&buf, "Button", Params{
		"variant":  "outline",
		"size":     "lg",
		"text":     "Create Account",
		"disabled": "",
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	want := string(Button(ButtonProps{Variant: VariantOutline, Size: ButtonSizeLG, Text: "Create Account", Disabled: true}))
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Fatalf("markup mismatch (-want +got):\n%s", diff)
	}
}

func TestDefaultRegistryRendersInputAndSpinner(t *testing.T) {
	reg := NewDefaultRegistry()

	var input bytes.Buffer
	if err := reg.Render(&input, NameInput, Params{"label": "Email Address", "required": "true", "error": "Enter an email"}); err != nil {
		t.Fatalf("render input: %v", err)
	}
	if !strings.Contains(input.String(), `<label for="email-address"`) {
		t.Fatalf("expected derived id, got %s", input.String())
	}

	var spinner bytes.Buffer
	if err := reg.Render(&spinner, NameSpinner, Params{"size": "64"}); err != nil {
		t.Fatalf("render spinner: %v", err)
	}
	if !strings.Contains(spinner.String(), `width="64" height="64"`) {
		t.Fatalf("expected 64px icon, got %s", spinner.String())
	}
}

func TestRegistryRenderErrors(t *testing.T) {
	reg := NewDefaultRegistry()
	var buf bytes.Buffer

	tests := []struct {
		name      string
		component string
		params    Params
		want      error
	}{
		{name: "unknown component", component: "carousel", want: ErrUnknownComponent},
		{name: "unknown variant", component: NameButton, params: Params{"variant": "neon"}, want: ErrInvalidParams},
		{name: "unknown size", component: NameButton, params: Params{"size": "xxl"}, want: ErrInvalidParams},
		{name: "unknown param", component: NameButton, params: Params{"colour": "red"}, want: ErrInvalidParams},
		{name: "bad bool", component: NameInput, params: Params{"required": "maybe"}, want: ErrInvalidParams},
		{name: "bad int", component: NameSpinner, params: Params{"size": "big"}, want: ErrInvalidParams},
		{name: "int out of range", component: NameSpinner, params: Params{"size": "9000"}, want: ErrInvalidParams},
		{name: "logo size", component: NameLogo, params: Params{"size": "xxl"}, want: ErrInvalidParams},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			err := reg.Render(&buf, tt.component, tt.params)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestInvalidParamsNameTheParam(t *testing.T) {
	err := NewDefaultRegistry().Render(io.Discard, NameButton, Params{"variant": "neon"})
	if err == nil || !strings.Contains(err.Error(), "variant must satisfy oneof") {
		t.Fatalf("expected validation detail naming the param, got %v", err)
	}
}

func TestParseVariantAndSizes(t *testing.T) {
	if v, err := ParseVariant(""); err != nil || v != VariantPrimary {
		t.Fatalf("expected default variant, got %q %v", v, err)
	}
	if v, err := ParseVariant(" Ghost "); err != nil || v != VariantGhost {
		t.Fatalf("expected ghost, got %q %v", v, err)
	}
	if _, err := ParseVariant("neon"); !errors.Is(err, ErrUnknownVariant) {
		t.Fatalf("expected ErrUnknownVariant, got %v", err)
	}
	if s, err := ParseButtonSize(""); err != nil || s != ButtonSizeMD {
		t.Fatalf("expected default size, got %q %v", s, err)
	}
	if _, err := ParseButtonSize("xl"); !errors.Is(err, ErrUnknownSize) {
		t.Fatalf("expected ErrUnknownSize, got %v", err)
	}
	if s, err := ParseLogoSize("xl"); err != nil || s != LogoSizeXL {
		t.Fatalf("expected xl logo, got %q %v", s, err)
	}
	if _, err := ParseLogoSize("xxl"); !errors.Is(err, ErrUnknownSize) {
		t.Fatalf("expected ErrUnknownSize, got %v", err)
	}
}
