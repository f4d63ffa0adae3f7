package components

import (
	"html/template"
	"io"
	"strings"

	"github.com/goliatone/go-uikit/pkg/classnames"
)

// SpinnerProps configures a LoadingSpinner render.
type SpinnerProps struct {
	// Size is the icon dimension in pixels; values <= 0 use DefaultIconSize.
	Size  int
	Class string
	// Icon draws the pulsing glyph; RenderLogoIcon is used when nil.
	Icon IconRenderer
}

// IconRenderer draws a brand icon at the requested size.
type IconRenderer func(w io.Writer, props LogoIconProps) error

// RenderLoadingSpinner writes a pulsing brand icon into w. The spinner has
// no completion state; callers add and remove it around their own work.
func RenderLoadingSpinner(w io.Writer, props SpinnerProps) error {
	size := props.Size
	if size <= 0 {
		size = DefaultIconSize
	}

	var builder strings.Builder
	builder.WriteString(`<div`)
	writeAttr(&builder, "class", classnames.Join("flex items-center justify-center", props.Class))
	builder.WriteString(` role="status" aria-live="polite">`)
	builder.WriteString(`<div class="animate-pulse">`)
	icon := props.Icon
	if icon == nil {
		icon = RenderLogoIcon
	}
	if err := icon(&builder, LogoIconProps{Size: size}); err != nil {
		return err
	}
	builder.WriteString(`</div></div>`)

	_, err := io.WriteString(w, builder.String())
	return err
}

// LoadingSpinner renders props into an HTML fragment.
func LoadingSpinner(props SpinnerProps) template.HTML {
	var builder strings.Builder
	_ = RenderLoadingSpinner(&builder, props)
	return template.HTML(builder.String())
}
