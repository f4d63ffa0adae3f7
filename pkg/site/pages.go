package site

import (
	"errors"
	"fmt"
	"strings"
)

// Page identifies a renderable page.
type Page string

const (
	PageLanding Page = "landing"
	PageTerms   Page = "terms"
	PagePrivacy Page = "privacy"
)

// ErrPageNotFound reports a page name outside Pages().
var ErrPageNotFound = errors.New("site: page not found")

var pages = []Page{PageLanding, PageTerms, PagePrivacy}

// Pages lists every page in navigation order.
func Pages() []Page {
	return append([]Page(nil), pages...)
}

// ParsePage normalises name and resolves it to a Page.
func ParsePage(name string) (Page, error) {
	candidate := Page(strings.ToLower(strings.TrimSpace(name)))
	for _, page := range pages {
		if page == candidate {
			return page, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrPageNotFound, name)
}

// Path returns the URL path the page is served from.
func (p Page) Path() string {
	if p == PageLanding {
		return "/"
	}
	return "/" + string(p)
}

func (p Page) templateName() string {
	return string(p) + templateExt
}

func (p Page) partialKey() string {
	return "site." + string(p)
}
