package web

import (
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"time"

	"github.com/ziadkadry99/livenav/internal/snippets"
)

// templateData is the dynamic data handed to every page template.
type templateData struct {
	ProjectName string
	CurrentYear int
	Snippet     *snippets.Snippet
	Snippets    []snippets.Snippet
	Content     template.HTML
	Form        snippets.Form
	FieldErrors map[string]string
}

// humanDate formats t in UTC for display. The zero time renders as "".
func humanDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format("02 Jan 2006 at 15:04")
}

var functions = template.FuncMap{
	"humanDate": humanDate,
}

// newTemplateCache parses base, partials and one page per entry, keyed by the
// page file name (e.g. "home.tmpl.html").
func newTemplateCache(fsys fs.FS) (map[string]*template.Template, error) {
	cache := map[string]*template.Template{}

	pages, err := fs.Glob(fsys, "html/pages/*.tmpl.html")
	if err != nil {
		return nil, err
	}

	for _, page := range pages {
		name := path.Base(page)

		patterns := []string{
			"html/base.tmpl.html",
			"html/partials/*.tmpl.html",
			page,
		}

		ts, err := template.New(name).Funcs(functions).ParseFS(fsys, patterns...)
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", name, err)
		}
		cache[name] = ts
	}

	return cache, nil
}
