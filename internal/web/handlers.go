package web

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ziadkadry99/livenav/internal/snippets"
)

func (a *App) home(w http.ResponseWriter, r *http.Request) {
	latest, err := a.snippets.Latest(r.Context(), snippets.DefaultLatestLimit)
	if err != nil {
		a.serverError(w, err)
		return
	}

	data := a.newTemplateData()
	data.Snippets = latest
	a.render(w, http.StatusOK, "home.tmpl.html", data)
}

func (a *App) about(w http.ResponseWriter, r *http.Request) {
	a.render(w, http.StatusOK, "about.tmpl.html", a.newTemplateData())
}

func (a *App) snippetView(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		a.notFound(w)
		return
	}

	sn, err := a.snippets.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, snippets.ErrNoRecord) {
			a.notFound(w)
		} else {
			a.serverError(w, err)
		}
		return
	}

	content, err := a.renderMarkdown(sn.Content)
	if err != nil {
		a.serverError(w, err)
		return
	}

	data := a.newTemplateData()
	data.Snippet = sn
	data.Content = content
	a.render(w, http.StatusOK, "view.tmpl.html", data)
}

func (a *App) snippetCreate(w http.ResponseWriter, r *http.Request) {
	data := a.newTemplateData()
	data.Form = snippets.Form{Expires: 365}
	a.render(w, http.StatusOK, "create.tmpl.html", data)
}

func (a *App) snippetCreatePost(w http.ResponseWriter, r *http.Request) {
	var f snippets.Form
	if err := a.decodePostForm(r, &f); err != nil {
		a.clientError(w, http.StatusBadRequest)
		return
	}

	if errs := f.Validate(); len(errs) > 0 {
		data := a.newTemplateData()
		data.Form = f
		data.FieldErrors = errs
		a.render(w, http.StatusUnprocessableEntity, "create.tmpl.html", data)
		return
	}

	id, err := a.snippets.Insert(r.Context(), f.Title, f.Content, f.Expires)
	if err != nil {
		a.serverError(w, err)
		return
	}

	http.Redirect(w, r, "/snippet/view/"+id, http.StatusSeeOther)
}
