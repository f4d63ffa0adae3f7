package components

import (
	"html"
	"html/template"
	"io"
	"strings"
	"unicode"

	"github.com/goliatone/go-uikit/pkg/classnames"
)

const (
	inputShapeClasses       = "block w-full px-4 py-3 text-base border"
	inputSurfaceClasses     = "rounded-lg shadow-sm"
	inputPlaceholderClasses = "placeholder:text-gray-400"
	inputFocusClasses       = "focus:outline-none focus:ring-2"
	inputDisabledClasses    = "disabled:bg-gray-50 disabled:text-gray-500 disabled:cursor-not-allowed"
	inputTransitionClasses  = "transition-all duration-200"

	inputDefaultBorder = "border-gray-300"
	inputDefaultFocus  = "focus:ring-blue-500 focus:border-blue-500"
	inputErrorBorder   = "border-red-500"
	inputErrorFocus    = "focus:ring-red-500 focus:border-red-500"

	inputWrapperClasses = "space-y-2"
	labelClasses        = "block text-sm font-medium text-gray-700"
	requiredClasses     = "text-red-500 ml-1"
	errorClasses        = "text-sm text-red-600"

	// RequiredMarker is appended to labels of required fields.
	RequiredMarker = "*"
)

// InputProps configures an Input render.
type InputProps struct {
	Label    string
	Error    string
	Required bool
	// ID overrides the identifier derived from Label.
	ID string

	Name        string
	Type        string
	Placeholder string
	Value       string
	Disabled    bool
	Class       string
	Attrs       Attributes

	Ref func(Handle)
}

// ResolveID returns the identifier used to associate a label with its field.
// An explicit id wins verbatim; otherwise the label is lower-cased and every
// run of whitespace becomes a single hyphen. Without either, no id is set and
// a rendered label stays unassociated.
func ResolveID(id, label string) string {
	if id != "" {
		return id
	}
	if label == "" {
		return ""
	}

	lowered := strings.ToLower(label)
	var builder strings.Builder
	builder.Grow(len(lowered))
	inSpace := false
	for _, r := range lowered {
		if isIDSpace(r) {
			if !inSpace {
				builder.WriteByte('-')
				inSpace = true
			}
			continue
		}
		inSpace = false
		builder.WriteRune(r)
	}
	return builder.String()
}

// isIDSpace matches the browser \s class: Unicode White_Space plus U+FEFF,
// except U+0085 which \s leaves alone. Lower-casing follows Go's simple case
// mapping, so a few letters differ from toLowerCase (U+0130 maps to a plain
// "i" here instead of "i" plus a combining dot).
func isIDSpace(r rune) bool {
	if r == '\u0085' {
		return false
	}
	return unicode.IsSpace(r) || r == '\uFEFF'
}

// InputClasses resolves the class attribute for the field element. The error
// and default tones are mutually exclusive.
func InputClasses(props InputProps) string {
	border, focus := inputDefaultBorder, inputDefaultFocus
	if hasError(props) {
		border, focus = inputErrorBorder, inputErrorFocus
	}
	return classnames.Join(
		inputShapeClasses,
		border,
		inputSurfaceClasses,
		inputPlaceholderClasses,
		inputFocusClasses,
		focus,
		inputDisabledClasses,
		inputTransitionClasses,
		props.Class,
	)
}

func hasError(props InputProps) bool {
	return props.Error != ""
}

// ErrorID returns the id of the error message node for a field id.
func ErrorID(fieldID string) string {
	if fieldID == "" {
		return ""
	}
	return fieldID + "-error"
}

// RenderInput writes the labelled field markup into w.
func RenderInput(w io.Writer, props InputProps) error {
	id := ResolveID(props.ID, props.Label)
	classes := InputClasses(props)

	var builder strings.Builder
	builder.WriteString(`<div class="`)
	builder.WriteString(inputWrapperClasses)
	builder.WriteString(`">`)

	if props.Label != "" {
		builder.WriteString(`<label`)
		writeOptionalAttr(&builder, "for", id)
		writeAttr(&builder, "class", labelClasses)
		builder.WriteString(`>`)
		builder.WriteString(html.EscapeString(props.Label))
		if props.Required {
			builder.WriteString(`<span class="`)
			builder.WriteString(requiredClasses)
			builder.WriteString(`">`)
			builder.WriteString(RequiredMarker)
			builder.WriteString(`</span>`)
		}
		builder.WriteString(`</label>`)
	}

	owned := ownedSet("id", "class")
	builder.WriteString(`<input`)
	writeOptionalAttr(&builder, "id", id)
	writeAttr(&builder, "class", classes)
	if props.Type != "" {
		writeAttr(&builder, "type", props.Type)
		owned["type"] = struct{}{}
	}
	if props.Name != "" {
		writeAttr(&builder, "name", props.Name)
		owned["name"] = struct{}{}
	}
	if props.Placeholder != "" {
		writeAttr(&builder, "placeholder", props.Placeholder)
		owned["placeholder"] = struct{}{}
	}
	if props.Value != "" {
		writeAttr(&builder, "value", props.Value)
		owned["value"] = struct{}{}
	}
	if props.Required {
		writeBoolAttr(&builder, "required")
		owned["required"] = struct{}{}
	}
	if props.Disabled {
		writeBoolAttr(&builder, "disabled")
		owned["disabled"] = struct{}{}
	}
	if hasError(props) {
		writeAttr(&builder, "aria-invalid", "true")
		owned["aria-invalid"] = struct{}{}
		if errID := ErrorID(id); errID != "" {
			writeAttr(&builder, "aria-describedby", errID)
			owned["aria-describedby"] = struct{}{}
		}
	}
	props.Attrs.write(&builder, owned)
	builder.WriteString(`>`)

	if hasError(props) {
		builder.WriteString(`<p`)
		writeOptionalAttr(&builder, "id", ErrorID(id))
		writeAttr(&builder, "class", errorClasses)
		builder.WriteString(`>`)
		builder.WriteString(html.EscapeString(props.Error))
		builder.WriteString(`</p>`)
	}
	builder.WriteString(`</div>`)

	if _, err := io.WriteString(w, builder.String()); err != nil {
		return err
	}

	if props.Ref != nil {
		props.Ref(Handle{Tag: "input", ID: id, Name: props.Name, Class: classes})
	}
	return nil
}

// Input renders props into an HTML fragment.
func Input(props InputProps) template.HTML {
	var builder strings.Builder
	_ = RenderInput(&builder, props)
	return template.HTML(builder.String())
}
