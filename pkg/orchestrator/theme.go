package orchestrator

import (
	"maps"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// defaultThemeFallbacks maps each page partial key to the embedded page
// template, so a theme only needs to list the pages it replaces.
func defaultThemeFallbacks() map[string]string {
	return map[string]string{
		"site.landing": "landing",
		"site.terms":   "terms",
		"site.privacy": "privacy",
	}
}

// RendererConfig flattens a theme selection into the configuration renderers
// consume. Variant tokens, templates and asset files override the manifest
// values; fallbacks fill partial keys neither of them declares. CSS variables
// are derived from the merged tokens with a "--" prefix.
func RendererConfig(selection *theme.Selection, fallbacks map[string]string) *theme.RendererConfig {
	if selection == nil {
		return nil
	}

	tokens := map[string]string{}
	partials := cloneStrings(fallbacks)
	files := map[string]string{}
	prefix := ""

	if manifest := selection.Manifest; manifest != nil {
		maps.Copy(tokens, manifest.Tokens)
		maps.Copy(partials, manifest.Templates)
		maps.Copy(files, manifest.Assets.Files)
		prefix = manifest.Assets.Prefix

		if variant, ok := manifest.Variants[selection.Variant]; ok && selection.Variant != "" {
			maps.Copy(tokens, variant.Tokens)
			maps.Copy(partials, variant.Templates)
			maps.Copy(files, variant.Assets.Files)
			if strings.TrimSpace(variant.Assets.Prefix) != "" {
				prefix = variant.Assets.Prefix
			}
		}
	}

	cssVars := make(map[string]string, len(tokens))
	for key, value := range tokens {
		name := strings.TrimSpace(key)
		if name == "" {
			continue
		}
		if !strings.HasPrefix(name, "--") {
			name = "--" + name
		}
		cssVars[name] = value
	}

	return &theme.RendererConfig{
		Theme:    selection.Theme,
		Variant:  selection.Variant,
		Partials: partials,
		Tokens:   tokens,
		CSSVars:  cssVars,
		AssetURL: assetResolver(prefix, files),
	}
}

// assetResolver returns the URL for an asset key. Keys without a file entry
// resolve to "".
func assetResolver(prefix string, files map[string]string) func(string) string {
	return func(key string) string {
		file := strings.TrimSpace(files[key])
		if file == "" {
			return ""
		}
		if strings.HasPrefix(file, "/") || strings.Contains(file, "://") {
			return file
		}
		prefix := strings.TrimRight(prefix, "/")
		if prefix == "" {
			return file
		}
		return prefix + "/" + strings.TrimLeft(file, "/")
	}
}

func cloneStrings(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	maps.Copy(out, in)
	return out
}
