package components

import (
	"html"
	"slices"
	"strings"
)

// Attributes carries arbitrary native attributes for the host element. Keys
// are written in sorted order so output stays deterministic.
type Attributes map[string]string

// Handle describes the host control a primitive rendered.
type Handle struct {
	Tag   string
	ID    string
	Name  string
	Class string
}

// Selector returns a CSS selector addressing the host control, preferring the
// id and falling back to the name attribute. It is empty when neither is set.
func (h Handle) Selector() string {
	if id := strings.TrimSpace(h.ID); id != "" {
		return "#" + id
	}
	if name := strings.TrimSpace(h.Name); name != "" && h.Tag != "" {
		return h.Tag + `[name="` + name + `"]`
	}
	return ""
}

var booleanAttributes = map[string]struct{}{
	"autofocus":      {},
	"checked":        {},
	"disabled":       {},
	"formnovalidate": {},
	"hidden":         {},
	"multiple":       {},
	"novalidate":     {},
	"readonly":       {},
	"required":       {},
}

func isBooleanAttribute(name string) bool {
	_, ok := booleanAttributes[name]
	return ok
}

// write appends the attributes to builder, skipping keys the component owns.
func (a Attributes) write(builder *strings.Builder, owned map[string]struct{}) {
	if len(a) == 0 {
		return
	}
	keys := make([]string, 0, len(a))
	for key := range a {
		name := strings.ToLower(strings.TrimSpace(key))
		if !validAttributeName(name) {
			continue
		}
		if _, skip := owned[name]; skip {
			continue
		}
		keys = append(keys, key)
	}
	slices.SortFunc(keys, func(x, y string) int {
		return strings.Compare(strings.ToLower(strings.TrimSpace(x)), strings.ToLower(strings.TrimSpace(y)))
	})

	for _, key := range keys {
		name := strings.ToLower(strings.TrimSpace(key))
		value := a[key]
		if isBooleanAttribute(name) {
			switch strings.ToLower(strings.TrimSpace(value)) {
			case "", "true", name:
				writeBoolAttr(builder, name)
			}
			continue
		}
		writeAttr(builder, name, value)
	}
}

func validAttributeName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
		case r == '-', r == '_', r == ':', r == '.':
		default:
			return false
		}
	}
	return true
}

func writeAttr(builder *strings.Builder, name, value string) {
	builder.WriteByte(' ')
	builder.WriteString(name)
	builder.WriteString(`="`)
	builder.WriteString(html.EscapeString(value))
	builder.WriteByte('"')
}

func writeOptionalAttr(builder *strings.Builder, name, value string) {
	if value == "" {
		return
	}
	writeAttr(builder, name, value)
}

func writeBoolAttr(builder *strings.Builder, name string) {
	builder.WriteByte(' ')
	builder.WriteString(name)
}

func ownedSet(names ...string) map[string]struct{} {
	out := make(map[string]struct{}, len(names))
	for _, name := range names {
		out[name] = struct{}{}
	}
	return out
}
