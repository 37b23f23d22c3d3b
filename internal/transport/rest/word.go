package rest

import (
	"context"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/heartmarshall/wordexplorer/internal/domain"
	"github.com/heartmarshall/wordexplorer/internal/service/wotd"
)

// wordService is what the page and API handlers need from the lookup service.
type wordService interface {
	Lookup(ctx context.Context, term string) (*domain.WordPage, error)
	GetCombinedEtymology(ctx context.Context, word string) (string, bool)
	GetEtymology(markup string) string
}

// emptyQueryMessage is shown when the search form is submitted blank.
const emptyQueryMessage = "Please enter a word."

// WordHandler serves the HTML pages and the JSON word API.
type WordHandler struct {
	svc   wordService
	pages map[string]*template.Template
	now   func() time.Time
	log   *slog.Logger
}

// NewWordHandler creates a WordHandler. It fails only if the embedded
// templates do not parse.
func NewWordHandler(svc wordService, logger *slog.Logger) (*WordHandler, error) {
	pages, err := pageTemplates()
	if err != nil {
		return nil, err
	}
	return &WordHandler{
		svc:   svc,
		pages: pages,
		now:   time.Now,
		log:   logger.With("handler", "word"),
	}, nil
}

type indexView struct {
	Query        string
	Error        string
	WordOfTheDay domain.WordOfTheDay
}

// Index renders the search page with the word of the day.
func (h *WordHandler) Index(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, indexPage, indexView{WordOfTheDay: wotd.For(h.now())})
}

// Search handles the search form: a blank query re-renders the page with an
// error, anything else redirects to the word page.
func (h *WordHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.FormValue("q"))
	if q == "" {
		h.render(w, r, http.StatusOK, indexPage, indexView{
			Error:        emptyQueryMessage,
			WordOfTheDay: wotd.For(h.now()),
		})
		return
	}

	http.Redirect(w, r, wordPath(q), http.StatusSeeOther)
}

// Word renders the page for the {term} path value. A blank term goes back to
// the index.
func (h *WordHandler) Word(w http.ResponseWriter, r *http.Request) {
	term := strings.TrimSpace(r.PathValue("term"))
	if term == "" {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	page, err := h.svc.Lookup(r.Context(), term)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			h.render(w, r, http.StatusBadRequest, indexPage, indexView{
				Query:        term,
				Error:        validationMessage(err),
				WordOfTheDay: wotd.For(h.now()),
			})
			return
		}
		h.log.ErrorContext(r.Context(), "lookup failed", slog.String("word", term), slog.String("error", err.Error()))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.render(w, r, http.StatusOK, wordPage, newWordView(page))
}

// Redirect sends bare /word/ requests back to the index.
func (h *WordHandler) Redirect(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusFound)
}

func wordPath(term string) string {
	return "/word/" + url.PathEscape(term)
}

func validationMessage(err error) string {
	var ve *domain.ValidationError
	if errors.As(err, &ve) && len(ve.Errors) > 0 {
		return "Invalid " + ve.First().String() + "."
	}
	return "Invalid request."
}
