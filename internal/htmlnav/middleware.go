package htmlnav

import (
	"bytes"
	"log"
	"net/http"
	"strconv"
	"strings"
)

// Middleware returns an HTTP middleware that applies the highlighter to every
// text/html response, using the request's escaped URL path as the current
// path, the same string a browser exposes as location.pathname.
// Other content types are passed through without buffering.
func Middleware(opts Options) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rw := &rewriteWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rw, r)
			rw.finish(r.URL.EscapedPath(), opts)
		})
	}
}

// rewriteWriter defers the header until it knows the content type, then
// either buffers (HTML) or streams (everything else).
type rewriteWriter struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
	decided     bool
	buffering   bool
	buf         bytes.Buffer
}

func (w *rewriteWriter) WriteHeader(code int) {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true
	w.status = code
}

func (w *rewriteWriter) Write(p []byte) (int, error) {
	if !w.decided {
		// An empty write carries nothing to sniff.
		if len(p) == 0 && w.Header().Get("Content-Type") == "" {
			return 0, nil
		}
		w.decide(p)
	}
	if w.buffering {
		return w.buf.Write(p)
	}
	return w.ResponseWriter.Write(p)
}

// Unwrap lets http.ResponseController reach the underlying writer.
func (w *rewriteWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

func (w *rewriteWriter) decide(first []byte) {
	w.decided = true
	h := w.Header()
	ct := h.Get("Content-Type")
	if ct == "" && len(first) > 0 {
		ct = http.DetectContentType(first)
		h.Set("Content-Type", ct)
	}
	w.buffering = strings.HasPrefix(ct, "text/html")
	if !w.buffering {
		w.ResponseWriter.WriteHeader(w.status)
	}
}

func (w *rewriteWriter) finish(path string, opts Options) {
	if !w.decided {
		if w.wroteHeader {
			w.ResponseWriter.WriteHeader(w.status)
		}
		return
	}
	if !w.buffering {
		return
	}

	body := w.buf.Bytes()
	out, _, err := RewriteBytes(body, path, opts)
	if err != nil {
		log.Printf("htmlnav: %s: %v", path, err)
		out = body
	}

	h := w.Header()
	h.Set("Content-Length", strconv.Itoa(len(out)))
	w.ResponseWriter.WriteHeader(w.status)
	if _, err := w.ResponseWriter.Write(out); err != nil {
		log.Printf("htmlnav: %s: writing response: %v", path, err)
	}
}
