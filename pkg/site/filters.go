package site

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	rendertemplate "github.com/goliatone/go-uikit/pkg/render/template"
	gotemplate "github.com/goliatone/go-uikit/pkg/render/template/gotemplate"
	"github.com/goliatone/go-uikit/pkg/sanitize"
)

// configureTemplates registers the page filters and publishes the site wide
// values every template reads.
func configureTemplates(templates rendertemplate.TemplateRenderer, content Content) error {
	filters := map[string]func(any, any) (any, error){
		"inline":   filterInline,
		"numbered": filterNumbered,
	}
	for name, fn := range filters {
		err := templates.RegisterFilter(name, fn)
		if err != nil && !errors.Is(err, gotemplate.ErrFilterExists) {
			return fmt.Errorf("site renderer: register filter %q: %w", name, err)
		}
	}

	globals := map[string]any{
		"site": map[string]any{
			"title": content.Site.Title,
			"lang":  langOrDefault(content.Site.Lang),
		},
		"home": PageLanding.Path(),
	}
	if err := templates.GlobalContext(globals); err != nil {
		return fmt.Errorf("site renderer: template globals: %w", err)
	}
	return nil
}

// filterInline applies the inline copy policy: {{ body|inline|safe }}.
func filterInline(input any, _ any) (any, error) {
	if input == nil {
		return "", nil
	}
	return sanitize.Inline(fmt.Sprint(input)), nil
}

// filterNumbered prefixes a heading with its position: {{ title|numbered:2 }}.
func filterNumbered(input any, param any) (any, error) {
	title := ""
	if input != nil {
		title = fmt.Sprint(input)
	}
	n, err := toInt(param)
	if err != nil {
		return nil, fmt.Errorf("numbered: %w", err)
	}
	return numbered(n, title), nil
}

func numbered(n int, title string) string {
	return strconv.Itoa(n) + ". " + strings.TrimSpace(title)
}

func toInt(value any) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		return int(v), nil
	case string:
		return strconv.Atoi(strings.TrimSpace(v))
	default:
		return 0, fmt.Errorf("position %v of type %T is not a number", value, value)
	}
}
