package orchestrator

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	theme "github.com/goliatone/go-theme"
)

var (
	// ErrThemeNotFound is returned when a selector has no manifest by the
	// requested name.
	ErrThemeNotFound = errors.New("orchestrator: theme not found")
	// ErrVariantNotFound is returned when the manifest does not declare the
	// requested variant.
	ErrVariantNotFound = errors.New("orchestrator: theme variant not found")
)

// ManifestSelector is an in-memory theme.ThemeSelector over a fixed set of
// manifests. An empty theme name selects the first manifest added.
type ManifestSelector struct {
	mu        sync.RWMutex
	manifests map[string]*theme.Manifest
	order     []string
}

var _ theme.ThemeSelector = (*ManifestSelector)(nil)

// NewManifestSelector registers the given manifests in order.
func NewManifestSelector(manifests ...*theme.Manifest) (*ManifestSelector, error) {
	s := &ManifestSelector{manifests: make(map[string]*theme.Manifest)}
	for _, manifest := range manifests {
		if err := s.Add(manifest); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Add registers a manifest. Names are case-insensitive and must be unique.
func (s *ManifestSelector) Add(manifest *theme.Manifest) error {
	if manifest == nil {
		return errors.New("orchestrator: theme manifest is required")
	}
	name := normalizeThemeName(manifest.Name)
	if name == "" {
		return errors.New("orchestrator: theme manifest name is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.manifests[name]; exists {
		return fmt.Errorf("orchestrator: theme %q already registered", manifest.Name)
	}
	s.manifests[name] = manifest
	s.order = append(s.order, name)
	return nil
}

// Names lists the registered theme names in registration order.
func (s *ManifestSelector) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.order)
}

// Select implements theme.ThemeSelector. Query options are ignored.
func (s *ManifestSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	key := normalizeThemeName(name)
	if key == "" {
		if len(s.order) == 0 {
			return nil, fmt.Errorf("%w: no themes registered", ErrThemeNotFound)
		}
		key = s.order[0]
	}

	manifest, ok := s.manifests[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrThemeNotFound, name)
	}

	variant = strings.TrimSpace(variant)
	if variant != "" {
		if _, ok := manifest.Variants[variant]; !ok {
			return nil, fmt.Errorf("%w: %q/%q", ErrVariantNotFound, manifest.Name, variant)
		}
	}

	return &theme.Selection{
		Theme:    manifest.Name,
		Variant:  variant,
		Manifest: manifest,
	}, nil
}

func normalizeThemeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
