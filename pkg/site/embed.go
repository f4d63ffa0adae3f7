package site

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tmpl
var embeddedTemplates embed.FS

//go:embed content/*.yaml
var embeddedContent embed.FS

// TemplatesFS exposes the embedded page templates rooted at the template
// directory, so names resolve as "landing.tmpl", "layout.tmpl" and so on.
func TemplatesFS() fs.FS {
	return mustSub(embeddedTemplates, "templates")
}

// ContentFS exposes the embedded page copy.
func ContentFS() fs.FS {
	return mustSub(embeddedContent, "content")
}

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return sub
}
