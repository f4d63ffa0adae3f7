package config

import (
	"maps"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// StylesheetAsset is the asset key page renderers resolve their stylesheet
// through.
const StylesheetAsset = "site.stylesheet"

// DefaultThemeName names the manifest built from a theme section that sets
// values but no name.
const DefaultThemeName = "default"

// ThemeConfig describes the page theme. Tokens become CSS custom properties,
// partials replace page templates, assets map keys to URLs.
type ThemeConfig struct {
	Name         string                   `yaml:"name"`
	Version      string                   `yaml:"version"`
	Variant      string                   `yaml:"variant"`
	Tokens       map[string]string        `yaml:"tokens"`
	Partials     map[string]string        `yaml:"partials"`
	Stylesheet   string                   `yaml:"stylesheet"`
	AssetsPrefix string                   `yaml:"assets_prefix"`
	Assets       map[string]string        `yaml:"assets"`
	Variants     map[string]VariantConfig `yaml:"variants"`
}

// VariantConfig overrides the base theme values for one variant.
type VariantConfig struct {
	Tokens   map[string]string `yaml:"tokens"`
	Partials map[string]string `yaml:"partials"`
	Assets   map[string]string `yaml:"assets"`
}

// Empty reports whether no theme value is configured.
func (t ThemeConfig) Empty() bool {
	return strings.TrimSpace(t.Name) == "" &&
		strings.TrimSpace(t.Variant) == "" &&
		len(t.Tokens) == 0 &&
		len(t.Partials) == 0 &&
		strings.TrimSpace(t.Stylesheet) == "" &&
		strings.TrimSpace(t.AssetsPrefix) == "" &&
		len(t.Assets) == 0 &&
		len(t.Variants) == 0
}

// ThemeName returns the configured name or DefaultThemeName.
func (t ThemeConfig) ThemeName() string {
	if name := strings.TrimSpace(t.Name); name != "" {
		return name
	}
	return DefaultThemeName
}

// Manifest converts the section into a go-theme manifest. It returns nil when
// nothing is configured. The selected variant is always declared so it can be
// selected even when it carries no overrides.
func (t ThemeConfig) Manifest() *theme.Manifest {
	if t.Empty() {
		return nil
	}

	files := trimmedMap(t.Assets)
	if stylesheet := strings.TrimSpace(t.Stylesheet); stylesheet != "" {
		files[StylesheetAsset] = stylesheet
	}

	manifest := &theme.Manifest{
		Name:      t.ThemeName(),
		Version:   strings.TrimSpace(t.Version),
		Tokens:    copyStringMap(t.Tokens),
		Templates: copyStringMap(t.Partials),
		Assets: theme.Assets{
			Prefix: strings.TrimSpace(t.AssetsPrefix),
			Files:  files,
		},
		Variants: make(map[string]theme.Variant, len(t.Variants)+1),
	}

	for name, variant := range t.Variants {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		manifest.Variants[name] = theme.Variant{
			Tokens:    copyStringMap(variant.Tokens),
			Templates: copyStringMap(variant.Partials),
			Assets:    theme.Assets{Files: trimmedMap(variant.Assets)},
		}
	}
	if selected := strings.TrimSpace(t.Variant); selected != "" {
		if _, ok := manifest.Variants[selected]; !ok {
			manifest.Variants[selected] = theme.Variant{}
		}
	}

	return manifest
}

func trimmedMap(in map[string]string) map[string]string {
	out := make(map[string]string, len(in)+1)
	for key, value := range in {
		out[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return out
}

func copyStringMap(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	maps.Copy(out, in)
	return out
}
