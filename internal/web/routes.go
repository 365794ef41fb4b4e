package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ziadkadry99/livenav/ui"
)

// RegisterRoutes mounts the page routes and the embedded static assets.
func (a *App) RegisterRoutes(r chi.Router) {
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		a.notFound(w)
	})

	r.Handle("/static/*", http.FileServer(http.FS(ui.Files)))

	r.Group(func(r chi.Router) {
		r.Use(secureHeaders)

		r.Get("/", a.home)
		r.Get("/about", a.about)
		r.Get("/snippet/view/{id}", a.snippetView)
		r.Get("/snippet/create", a.snippetCreate)
		r.Post("/snippet/create", a.snippetCreatePost)
	})
}

// secureHeaders sets the response headers every page carries.
func secureHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Security-Policy",
			"default-src 'self'; style-src 'self' 'unsafe-inline'")
		w.Header().Set("Referrer-Policy", "origin-when-cross-origin")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "deny")
		w.Header().Set("X-XSS-Protection", "0")

		next.ServeHTTP(w, r)
	})
}
