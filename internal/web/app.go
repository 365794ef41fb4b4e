// Package web serves the snippet pages: home, about, view and create.
package web

import (
	"html/template"
	"log"
	"os"

	"github.com/go-playground/form/v4"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"

	"github.com/ziadkadry99/livenav/internal/snippets"
	"github.com/ziadkadry99/livenav/ui"
)

// App holds the dependencies of the web handlers.
type App struct {
	ProjectName string

	snippets    *snippets.Store
	templates   map[string]*template.Template
	formDecoder *form.Decoder
	markdown    goldmark.Markdown
	errorLog    *log.Logger
}

// New builds an App, parsing every page template from the embedded UI files.
func New(store *snippets.Store, projectName string) (*App, error) {
	cache, err := newTemplateCache(ui.Files)
	if err != nil {
		return nil, err
	}

	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
	)

	return &App{
		ProjectName: projectName,
		snippets:    store,
		templates:   cache,
		formDecoder: form.NewDecoder(),
		markdown:    md,
		errorLog:    log.New(os.Stderr, "ERROR\t", log.Ldate|log.Ltime|log.Lshortfile),
	}, nil
}
