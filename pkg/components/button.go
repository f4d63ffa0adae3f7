package components

import (
	"html"
	"html/template"
	"io"
	"strings"

	"github.com/goliatone/go-uikit/pkg/classnames"
)

// Variant is the visual preset of a Button.
type Variant string

const (
	VariantPrimary   Variant = "primary"
	VariantSecondary Variant = "secondary"
	VariantOutline   Variant = "outline"
	VariantGhost     Variant = "ghost"
)

// ButtonSize controls Button padding and type scale.
type ButtonSize string

const (
	ButtonSizeSM ButtonSize = "sm"
	ButtonSizeMD ButtonSize = "md"
	ButtonSizeLG ButtonSize = "lg"
)

const (
	DefaultVariant    = VariantPrimary
	DefaultButtonSize = ButtonSizeMD
)

const buttonBaseClasses = "inline-flex items-center justify-center rounded-lg font-semibold transition-all duration-200 focus:outline-none focus:ring-2 focus:ring-offset-2 disabled:opacity-50 disabled:cursor-not-allowed"

var buttonVariantClasses = map[Variant]string{
	VariantPrimary:   "bg-blue-600 text-white hover:bg-blue-700 focus:ring-blue-500 shadow-lg hover:shadow-xl",
	VariantSecondary: "bg-gray-100 text-gray-900 hover:bg-gray-200 focus:ring-gray-500",
	VariantOutline:   "border-2 border-blue-600 text-blue-600 hover:bg-blue-600 hover:text-white focus:ring-blue-500",
	VariantGhost:     "text-gray-600 hover:text-gray-900 hover:bg-gray-100 focus:ring-gray-500",
}

var buttonSizeClasses = map[ButtonSize]string{
	ButtonSizeSM: "px-3 py-2 text-sm",
	ButtonSizeMD: "px-4 py-3 text-base",
	ButtonSizeLG: "px-6 py-4 text-lg",
}

// Variants lists the button variants in declaration order.
func Variants() []Variant {
	return []Variant{VariantPrimary, VariantSecondary, VariantOutline, VariantGhost}
}

// ButtonSizes lists the button sizes from smallest to largest.
func ButtonSizes() []ButtonSize {
	return []ButtonSize{ButtonSizeSM, ButtonSizeMD, ButtonSizeLG}
}

// ButtonProps configures a Button render.
type ButtonProps struct {
	Variant Variant
	Size    ButtonSize
	// Class is appended after the variant and size classes.
	Class string

	ID       string
	Type     string
	Name     string
	Value    string
	Disabled bool
	Attrs    Attributes

	// Text is escaped; Children is trusted markup written after it.
	Text     string
	Children template.HTML

	Ref func(Handle)
}

// ButtonClasses resolves the class attribute for props.
func ButtonClasses(props ButtonProps) string {
	return classnames.Join(
		buttonBaseClasses,
		variantClass(props.Variant),
		buttonSizeClass(props.Size),
		props.Class,
	)
}

func variantClass(variant Variant) string {
	if class, ok := buttonVariantClasses[variant]; ok {
		return class
	}
	return buttonVariantClasses[DefaultVariant]
}

func buttonSizeClass(size ButtonSize) string {
	if class, ok := buttonSizeClasses[size]; ok {
		return class
	}
	return buttonSizeClasses[DefaultButtonSize]
}

// RenderButton writes the button markup into w.
func RenderButton(w io.Writer, props ButtonProps) error {
	classes := ButtonClasses(props)

	var builder strings.Builder
	builder.WriteString(`<button`)
	writeOptionalAttr(&builder, "id", props.ID)
	writeAttr(&builder, "class", classes)

	owned := ownedSet("id", "class")
	if props.Type != "" {
		writeAttr(&builder, "type", props.Type)
		owned["type"] = struct{}{}
	}
	if props.Name != "" {
		writeAttr(&builder, "name", props.Name)
		owned["name"] = struct{}{}
	}
	if props.Value != "" {
		writeAttr(&builder, "value", props.Value)
		owned["value"] = struct{}{}
	}
	if props.Disabled {
		writeBoolAttr(&builder, "disabled")
		owned["disabled"] = struct{}{}
	}
	props.Attrs.write(&builder, owned)
	builder.WriteString(`>`)
	builder.WriteString(html.EscapeString(props.Text))
	builder.WriteString(string(props.Children))
	builder.WriteString(`</button>`)

	if _, err := io.WriteString(w, builder.String()); err != nil {
		return err
	}

	if props.Ref != nil {
		props.Ref(Handle{Tag: "button", ID: props.ID, Name: props.Name, Class: classes})
	}
	return nil
}

// Button renders props into an HTML fragment.
func Button(props ButtonProps) template.HTML {
	var builder strings.Builder
	_ = RenderButton(&builder, props)
	return template.HTML(builder.String())
}

// LinkButtonProps configures an anchor styled with the Button class contract.
type LinkButtonProps struct {
	Href    string
	Variant Variant
	Size    ButtonSize
	Class   string
	Text    string
	Attrs   Attributes
}

// LinkButton renders an anchor that shares the Button styling. Navigation is
// left entirely to the anchor element.
func LinkButton(props LinkButtonProps) template.HTML {
	classes := ButtonClasses(ButtonProps{Variant: props.Variant, Size: props.Size, Class: props.Class})

	var builder strings.Builder
	builder.WriteString(`<a`)
	writeAttr(&builder, "href", props.Href)
	writeAttr(&builder, "class", classes)
	props.Attrs.write(&builder, ownedSet("href", "class"))
	builder.WriteString(`>`)
	builder.WriteString(html.EscapeString(props.Text))
	builder.WriteString(`</a>`)
	return template.HTML(builder.String())
}
