package web

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/go-playground/form/v4"
)

func (a *App) serverError(w http.ResponseWriter, err error) {
	trace := fmt.Sprintf("%s\n%s", err.Error(), debug.Stack())
	a.errorLog.Output(2, trace)

	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

func (a *App) clientError(w http.ResponseWriter, status int) {
	http.Error(w, http.StatusText(status), status)
}

func (a *App) notFound(w http.ResponseWriter) {
	a.clientError(w, http.StatusNotFound)
}

func (a *App) newTemplateData() *templateData {
	return &templateData{
		ProjectName: a.ProjectName,
		CurrentYear: time.Now().Year(),
	}
}

// render executes the named page into a buffer first so template errors
// still produce a clean 500.
func (a *App) render(w http.ResponseWriter, status int, page string, data *templateData) {
	ts, ok := a.templates[page]
	if !ok {
		a.serverError(w, fmt.Errorf("the template %s does not exist", page))
		return
	}

	buf := new(bytes.Buffer)
	if err := ts.ExecuteTemplate(buf, "base", data); err != nil {
		a.serverError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

// decodePostForm parses the request body into dst. An invalid dst is a
// programming error and panics.
func (a *App) decodePostForm(r *http.Request, dst any) error {
	if err := r.ParseForm(); err != nil {
		return err
	}

	err := a.formDecoder.Decode(dst, r.PostForm)
	if err != nil {
		var invalidDecoderError *form.InvalidDecoderError
		if errors.As(err, &invalidDecoderError) {
			panic(err)
		}
		return err
	}
	return nil
}

// renderMarkdown converts snippet content to HTML.
func (a *App) renderMarkdown(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := a.markdown.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("converting markdown: %w", err)
	}
	return template.HTML(buf.String()), nil
}
