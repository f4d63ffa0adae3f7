package components

import (
	"html"
	"html/template"
	"io"
	"strconv"
	"strings"

	"github.com/goliatone/go-uikit/pkg/classnames"
	"github.com/goliatone/go-uikit/pkg/sanitize"
)

// DefaultIconSize is the pixel size used when no icon size is supplied.
const DefaultIconSize = 48

// Wordmark is the product name rendered next to the icon by Logo.
const Wordmark = "Trading Journal"

// LogoIconProps configures the brand icon.
type LogoIconProps struct {
	Size  int
	Class string
	// Markup replaces the built-in glyph. It is sanitized before use and
	// ignored when nothing usable survives.
	Markup string
}

// RenderLogoIcon writes the brand icon into w, sized to props.Size pixels.
func RenderLogoIcon(w io.Writer, props LogoIconProps) error {
	size := props.Size
	if size <= 0 {
		size = DefaultIconSize
	}
	px := strconv.Itoa(size)

	var builder strings.Builder
	if custom := sanitize.Icon(props.Markup); custom != "" {
		builder.WriteString(`<span`)
		writeAttr(&builder, "class", classnames.Join("inline-block", props.Class))
		writeAttr(&builder, "style", "width:"+px+"px;height:"+px+"px")
		writeAttr(&builder, "data-size", px)
		builder.WriteString(`>`)
		builder.WriteString(custom)
		builder.WriteString(`</span>`)
	} else {
		builder.WriteString(`<svg xmlns="http://www.w3.org/2000/svg"`)
		writeAttr(&builder, "width", px)
		writeAttr(&builder, "height", px)
		builder.WriteString(` viewBox="0 0 48 48" fill="none" aria-hidden="true" focusable="false"`)
		writeOptionalAttr(&builder, "class", classnames.Join(props.Class))
		builder.WriteString(`>`)
		builder.WriteString(`<rect width="48" height="48" rx="12" fill="#2563EB"/>`)
		builder.WriteString(`<path d="M11 33l9-9 6 6 11-13" stroke="#FFFFFF" stroke-width="3.5" stroke-linecap="round" stroke-linejoin="round"/>`)
		builder.WriteString(`<circle cx="37" cy="17" r="2.5" fill="#FFFFFF"/>`)
		builder.WriteString(`</svg>`)
	}

	_, err := io.WriteString(w, builder.String())
	return err
}

// LogoIcon renders the brand icon into an HTML fragment.
func LogoIcon(props LogoIconProps) template.HTML {
	var builder strings.Builder
	_ = RenderLogoIcon(&builder, props)
	return template.HTML(builder.String())
}

// LogoSize picks one of the preset logo scales.
type LogoSize string

const (
	LogoSizeSM LogoSize = "sm"
	LogoSizeMD LogoSize = "md"
	LogoSizeLG LogoSize = "lg"
	LogoSizeXL LogoSize = "xl"

	DefaultLogoSize = LogoSizeMD
)

type logoScale struct {
	icon int
	text string
}

var logoScales = map[LogoSize]logoScale{
	LogoSizeSM: {icon: 24, text: "text-lg"},
	LogoSizeMD: {icon: 32, text: "text-xl"},
	LogoSizeLG: {icon: 48, text: "text-2xl"},
	LogoSizeXL: {icon: 64, text: "text-4xl"},
}

// LogoSizes lists the logo presets from smallest to largest.
func LogoSizes() []LogoSize {
	return []LogoSize{LogoSizeSM, LogoSizeMD, LogoSizeLG, LogoSizeXL}
}

// LogoProps configures the icon plus wordmark lockup.
type LogoProps struct {
	Size     LogoSize
	Class    string
	HideText bool
	// IconMarkup is forwarded to LogoIconProps.Markup.
	IconMarkup string
}

// LogoIconSize reports the icon pixel size used for a logo preset.
func LogoIconSize(size LogoSize) int {
	return logoScaleFor(size).icon
}

func logoScaleFor(size LogoSize) logoScale {
	if scale, ok := logoScales[size]; ok {
		return scale
	}
	return logoScales[DefaultLogoSize]
}

// RenderLogo writes the logo lockup into w.
func RenderLogo(w io.Writer, props LogoProps) error {
	scale := logoScaleFor(props.Size)

	var builder strings.Builder
	builder.WriteString(`<div`)
	writeAttr(&builder, "class", classnames.Join("flex items-center gap-3", props.Class))
	builder.WriteString(`>`)
	if err := RenderLogoIcon(&builder, LogoIconProps{Size: scale.icon, Markup: props.IconMarkup}); err != nil {
		return err
	}
	if !props.HideText {
		builder.WriteString(`<span`)
		writeAttr(&builder, "class", classnames.Join("font-bold tracking-tight text-gray-900", scale.text))
		builder.WriteString(`>`)
		builder.WriteString(html.EscapeString(Wordmark))
		builder.WriteString(`</span>`)
	}
	builder.WriteString(`</div>`)

	_, err := io.WriteString(w, builder.String())
	return err
}

// Logo renders the lockup into an HTML fragment.
func Logo(props LogoProps) template.HTML {
	var builder strings.Builder
	_ = RenderLogo(&builder, props)
	return template.HTML(builder.String())
}
