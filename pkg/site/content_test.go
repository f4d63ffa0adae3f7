package site_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-uikit/pkg/site"
	"github.com/goliatone/go-uikit/pkg/testsupport"
)

func TestLoadContent_Embedded(t *testing.T) {
	content, err := site.LoadContent(site.ContentFS())
	if err != nil {
		t.Fatalf("load content: %v", err)
	}

	if content.Site.Title != "Trading Journal - Track, Analyze, Improve" {
		t.Fatalf("unexpected site title %q", content.Site.Title)
	}
	if content.Landing.Primary != (site.Link{Label: "Sign In", Href: "/auth/login"}) {
		t.Fatalf("unexpected primary link %+v", content.Landing.Primary)
	}

	var titles []string
	for _, section := range content.Legal[site.PageTerms].Sections {
		titles = append(titles, section.Title)
	}
	want := []string{"Acceptance of Terms", "Use License", "Disclaimer"}
	if diff := cmp.Diff(want, titles); diff != "" {
		t.Fatalf("terms sections mismatch (-want +got):\n%s", diff)
	}
	if got := content.Legal[site.PagePrivacy].Contact.Email; got != "privacy@tradingjournal.com" {
		t.Fatalf("unexpected privacy contact %q", got)
	}
}

func validFiles() map[string]string {
	legal := `{
  "title": "Policy",
  "sections": [{"title": "One", "body": "Body"}],
  "contact": {"title": "Contact", "email": "help@example.com"}
}`
	return map[string]string{
		"site.yaml":    "title: Example\n",
		"landing.yml":  "headline: Hello\n",
		"terms.json":   legal,
		"privacy.yaml": "title: Privacy\nsections:\n  - title: One\n    body: Body\ncontact:\n  title: Contact\n  email: p@example.com\n",
		"README.md":    "ignored",
	}
}

func TestLoadContent_JSONAndYAML(t *testing.T) {
	content, err := site.LoadContent(testsupport.MapFS(validFiles()))
	if err != nil {
		t.Fatalf("load content: %v", err)
	}
	if content.Legal[site.PageTerms].Title != "Policy" {
		t.Fatalf("expected JSON terms content, got %+v", content.Legal[site.PageTerms])
	}
	if content.Legal[site.PagePrivacy].Contact.Email != "p@example.com" {
		t.Fatalf("expected YAML privacy content, got %+v", content.Legal[site.PagePrivacy])
	}
}

func TestLoadContent_Errors(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(map[string]string)
		want   string
	}{
		{
			name:   "missing page",
			mutate: func(files map[string]string) { delete(files, "privacy.yaml") },
			want:   "missing privacy content",
		},
		{
			name:   "unknown file",
			mutate: func(files map[string]string) { files["pricing.yaml"] = "title: x\n" },
			want:   "unknown content file pricing.yaml",
		},
		{
			name:   "duplicate page",
			mutate: func(files map[string]string) { files["terms.yaml"] = "title: x\n" },
			want:   `content "terms" defined by`,
		},
		{
			name:   "empty file",
			mutate: func(files map[string]string) { files["site.yaml"] = "  \n" },
			want:   "file site.yaml is empty",
		},
		{
			name: "invalid contact email",
			mutate: func(files map[string]string) {
				files["privacy.yaml"] = strings.Replace(files["privacy.yaml"], "p@example.com", "nope", 1)
			},
			want: "invalid privacy content",
		},
		{
			name: "missing sections",
			mutate: func(files map[string]string) {
				files["terms.json"] = `{"title": "T", "contact": {"title": "C", "email": "a@b.co"}}`
			},
			want: "invalid terms content",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			files := validFiles()
			tc.mutate(files)
			_, err := site.LoadContent(testsupport.MapFS(files))
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error containing %q, got %v", tc.want, err)
			}
		})
	}
}

func TestLoadContent_NilFS(t *testing.T) {
	if _, err := site.LoadContent(nil); err == nil {
		t.Fatalf("expected error for nil fs")
	}
}
