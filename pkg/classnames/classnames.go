package classnames

import "strings"

// Join space-joins the provided class strings, skipping empty or
// whitespace-only entries. Each entry is trimmed but otherwise kept verbatim.
func Join(classes ...string) string {
	if len(classes) == 0 {
		return ""
	}

	var builder strings.Builder
	for _, class := range classes {
		trimmed := strings.TrimSpace(class)
		if trimmed == "" {
			continue
		}
		if builder.Len() > 0 {
			builder.WriteByte(' ')
		}
		builder.WriteString(trimmed)
	}
	return builder.String()
}

// If returns class when cond holds and an empty string otherwise, so
// conditional entries can be passed inline to Join.
func If(cond bool, class string) string {
	if !cond {
		return ""
	}
	return class
}

// Tokens splits a class string into its individual utility classes.
func Tokens(value string) []string {
	return strings.Fields(value)
}

// Has reports whether value contains the exact utility class token.
func Has(value, token string) bool {
	token = strings.TrimSpace(token)
	if token == "" {
		return false
	}
	for _, candidate := range strings.Fields(value) {
		if candidate == token {
			return true
		}
	}
	return false
}
