package render

import theme "github.com/goliatone/go-theme"

// RenderOptions describe per-request data that renderers can use to customise
// their output.
type RenderOptions struct {
	// Theme carries the resolved theme selection. Renderers read template
	// overrides from Partials, emit CSSVars as custom properties, and resolve
	// stylesheet URLs through AssetURL.
	Theme *theme.RendererConfig
	// Values pre-populates rendered fields keyed by field name.
	Values map[string]any
	// Errors surfaces server-side validation feedback keyed by field name.
	// Only the first message per field is shown inline.
	Errors map[string][]string
}

// Value returns the string form of the prefilled value for name.
func (o RenderOptions) Value(name string) string {
	if len(o.Values) == 0 {
		return ""
	}
	switch v := o.Values[name].(type) {
	case nil:
		return ""
	case string:
		return v
	case []string:
		if len(v) == 0 {
			return ""
		}
		return v[0]
	default:
		return ""
	}
}

// FirstError returns the first non-empty error message recorded for name.
func (o RenderOptions) FirstError(name string) string {
	for _, message := range o.Errors[name] {
		if message != "" {
			return message
		}
	}
	return ""
}
