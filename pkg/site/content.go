package site

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Content holds the copy for every page. Body text may carry a small set of
// inline tags which the inline template filter sanitises.
type Content struct {
	Site    Meta
	Landing Landing
	Legal   map[Page]Legal
}

// Meta carries document level values shared by every page.
type Meta struct {
	Title string `json:"title" yaml:"title" validate:"required"`
	Lang  string `json:"lang" yaml:"lang"`
}

// Link is a labelled navigation target.
type Link struct {
	Label string `json:"label" yaml:"label"`
	Href  string `json:"href" yaml:"href"`
}

// Newsletter configures the sign-up field on the landing page.
type Newsletter struct {
	Action      string `json:"action" yaml:"action"`
	Label       string `json:"label" yaml:"label"`
	Name        string `json:"name" yaml:"name"`
	Placeholder string `json:"placeholder" yaml:"placeholder"`
	Submit      string `json:"submit" yaml:"submit"`
}

// Enabled reports whether the landing page should render the form.
func (n Newsletter) Enabled() bool {
	return strings.TrimSpace(n.Action) != "" && strings.TrimSpace(n.Name) != ""
}

// Landing is the marketing page copy.
type Landing struct {
	Headline   string     `json:"headline" yaml:"headline" validate:"required"`
	Tagline    string     `json:"tagline" yaml:"tagline"`
	Primary    Link       `json:"primary" yaml:"primary"`
	Secondary  Link       `json:"secondary" yaml:"secondary"`
	Newsletter Newsletter `json:"newsletter" yaml:"newsletter"`
}

// Section is one numbered block of a legal page.
type Section struct {
	Title string `json:"title" yaml:"title" validate:"required"`
	Body  string `json:"body" yaml:"body" validate:"required"`
}

// Contact closes a legal page with an email address.
type Contact struct {
	Title  string `json:"title" yaml:"title" validate:"required"`
	Prompt string `json:"prompt" yaml:"prompt"`
	Email  string `json:"email" yaml:"email" validate:"required,email"`
}

// Legal is the copy for the terms and privacy pages.
type Legal struct {
	Title    string    `json:"title" yaml:"title" validate:"required"`
	Updated  string    `json:"updated" yaml:"updated"`
	Intro    string    `json:"intro" yaml:"intro"`
	Sections []Section `json:"sections" yaml:"sections" validate:"min=1,dive"`
	Contact  Contact   `json:"contact" yaml:"contact"`
	Back     Link      `json:"back" yaml:"back"`
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func contentValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// LoadContent parses the JSON/YAML content files found at the root of fsys.
// Files are matched to pages by base name: site, landing, terms and privacy.
func LoadContent(fsys fs.FS) (Content, error) {
	if fsys == nil {
		return Content{}, errors.New("site: content file system is nil")
	}

	content := Content{Legal: make(map[Page]Legal, 2)}
	seen := make(map[string]string)

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return Content{}, fmt.Errorf("site: read content: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() || !isContentFile(entry.Name()) {
			continue
		}
		name := entry.Name()
		key := strings.TrimSuffix(name, path.Ext(name))
		if prev, exists := seen[key]; exists {
			return Content{}, fmt.Errorf("site: content %q defined by %s and %s", key, prev, name)
		}
		seen[key] = name

		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return Content{}, fmt.Errorf("site: read %s: %w", name, err)
		}

		switch key {
		case "site":
			err = parseDocument(data, name, &content.Site)
		case string(PageLanding):
			err = parseDocument(data, name, &content.Landing)
		case string(PageTerms), string(PagePrivacy):
			var legal Legal
			err = parseDocument(data, name, &legal)
			content.Legal[Page(key)] = legal
		default:
			err = fmt.Errorf("site: unknown content file %s", name)
		}
		if err != nil {
			return Content{}, err
		}
	}

	if err := content.Validate(); err != nil {
		return Content{}, err
	}
	return content, nil
}

// Validate checks that every page has the copy it needs.
func (c Content) Validate() error {
	v := contentValidator()
	if err := v.Struct(c.Site); err != nil {
		return fmt.Errorf("site: invalid site content: %w", err)
	}
	if err := v.Struct(c.Landing); err != nil {
		return fmt.Errorf("site: invalid %s content: %w", PageLanding, err)
	}
	for _, page := range []Page{PageTerms, PagePrivacy} {
		legal, ok := c.Legal[page]
		if !ok {
			return fmt.Errorf("site: missing %s content", page)
		}
		if err := v.Struct(legal); err != nil {
			return fmt.Errorf("site: invalid %s content: %w", page, err)
		}
	}
	return nil
}

func parseDocument(data []byte, source string, dst any) error {
	if len(strings.TrimSpace(string(data))) == 0 {
		return fmt.Errorf("site: file %s is empty", source)
	}

	if err := json.Unmarshal(data, dst); err == nil {
		return nil
	}

	if err := yaml.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("site: parse %s: invalid JSON or YAML: %w", source, err)
	}
	return nil
}

func isContentFile(name string) bool {
	switch strings.ToLower(path.Ext(name)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
