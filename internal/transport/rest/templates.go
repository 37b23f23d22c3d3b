package rest

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	indexPage = "index.html"
	wordPage  = "word.html"
)

// pageTemplates parses every page together with the shared layout.
func pageTemplates() (map[string]*template.Template, error) {
	pages := make(map[string]*template.Template, 2)
	for _, name := range []string{indexPage, wordPage} {
		t, err := template.ParseFS(templateFS, "templates/layout.html", "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("rest: parse %s: %w", name, err)
		}
		pages[name] = t
	}
	return pages, nil
}

// render executes a page into a buffer first so a template error still
// yields a clean 500.
func (h *WordHandler) render(w http.ResponseWriter, r *http.Request, status int, name string, data any) {
	var buf bytes.Buffer
	if err := h.pages[name].ExecuteTemplate(&buf, name, data); err != nil {
		h.log.ErrorContext(r.Context(), "render page",
			slog.String("page", name),
			slog.String("error", err.Error()),
		)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
