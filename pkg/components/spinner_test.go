package components

import (
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoadingSpinnerPropagatesSize(t *testing.T) {
	var received []int
	icon := func(w io.Writer, props LogoIconProps) error {
		received = append(received, props.Size)
		_, err := io.WriteString(w, "<icon/>")
		return err
	}

	got := string(LoadingSpinner(SpinnerProps{Size: 64, Icon: icon}))
	if diff := cmp.Diff([]int{64}, received); diff != "" {
		t.Fatalf("icon size mismatch (-want +got):\n%s", diff)
	}

	want := `<div class="flex items-center justify-center" role="status" aria-live="polite"><div class="animate-pulse"><icon/></div></div>`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("markup mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadingSpinnerDefaults(t *testing.T) {
	got := string(LoadingSpinner(SpinnerProps{Class: "py-12"}))
	if !strings.HasPrefix(got, `<div class="flex items-center justify-center py-12"`) {
		t.Fatalf("expected class override on container, got %s", got)
	}
	if !strings.Contains(got, `width="48" height="48"`) {
		t.Fatalf("expected default 48px icon, got %s", got)
	}
	if !strings.Contains(got, `<div class="animate-pulse">`) {
		t.Fatalf("expected pulse wrapper, got %s", got)
	}
}

func TestLoadingSpinnerRendersBuiltInIconAtSize(t *testing.T) {
	got := string(LoadingSpinner(SpinnerProps{Size: 64}))
	if !strings.Contains(got, `<svg xmlns="http://www.w3.org/2000/svg" width="64" height="64"`) {
		t.Fatalf("expected 64px icon, got %s", got)
	}
}

func TestLogoIconCustomMarkupIsSanitized(t *testing.T) {
	got := string(LogoIcon(LogoIconProps{
		Size:   20,
		Markup: `<svg viewBox="0 0 10 10"><script>alert(1)</script><circle cx="5" cy="5" r="4"/></svg>`,
	}))

	if strings.Contains(got, "script") {
		t.Fatalf("expected script to be stripped, got %s", got)
	}
	if !strings.Contains(got, `style="width:20px;height:20px" data-size="20"`) {
		t.Fatalf("expected sized wrapper, got %s", got)
	}
	if !strings.Contains(got, "<circle") {
		t.Fatalf("expected custom glyph, got %s", got)
	}
}

func TestLogoIconUnusableMarkupFallsBack(t *testing.T) {
	got := string(LogoIcon(LogoIconProps{Size: 32, Markup: `<img src=x onerror=alert(1)>`}))
	if !strings.Contains(got, `width="32" height="32"`) || !strings.Contains(got, "<rect") {
		t.Fatalf("expected built-in glyph, got %s", got)
	}
}

func TestLogoSizes(t *testing.T) {
	want := map[LogoSize]int{LogoSizeSM: 24, LogoSizeMD: 32, LogoSizeLG: 48, LogoSizeXL: 64}
	for _, size := range LogoSizes() {
		if got := LogoIconSize(size); got != want[size] {
			t.Fatalf("LogoIconSize(%s) = %d, want %d", size, got, want[size])
		}
	}
	if LogoIconSize("huge") != 32 {
		t.Fatalf("expected default icon size for unknown preset")
	}
}

func TestLogoMarkup(t *testing.T) {
	got := string(Logo(LogoProps{Size: LogoSizeXL, Class: "justify-center"}))
	if !strings.HasPrefix(got, `<div class="flex items-center gap-3 justify-center">`) {
		t.Fatalf("unexpected container, got %s", got)
	}
	if !strings.Contains(got, `width="64"`) {
		t.Fatalf("expected xl icon, got %s", got)
	}
	if !strings.Contains(got, `<span class="font-bold tracking-tight text-gray-900 text-4xl">Trading Journal</span>`) {
		t.Fatalf("expected wordmark, got %s", got)
	}

	iconOnly := string(Logo(LogoProps{HideText: true}))
	if strings.Contains(iconOnly, Wordmark) {
		t.Fatalf("expected wordmark to be hidden, got %s", iconOnly)
	}
}
