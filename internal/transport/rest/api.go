package rest

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/heartmarshall/wordexplorer/internal/domain"
	"github.com/heartmarshall/wordexplorer/internal/etymology"
)

// maxMarkupBytes bounds the body of an extract request.
const maxMarkupBytes = 2 << 20

type definitionResponse struct {
	PartOfSpeech string `json:"partOfSpeech,omitempty"`
	Definition   string `json:"definition"`
	Example      string `json:"example,omitempty"`
}

type summaryResponse struct {
	Extract string `json:"extract"`
	URL     string `json:"url,omitempty"`
}

type frequencyResponse struct {
	Year int     `json:"year"`
	Freq float64 `json:"freq"`
}

type wordOfTheDayResponse struct {
	Word       string `json:"word"`
	Definition string `json:"definition"`
}

type wordResponse struct {
	Term                string               `json:"term"`
	Phonetic            string               `json:"phonetic,omitempty"`
	Definitions         []definitionResponse `json:"definitions"`
	Wikipedia           *summaryResponse     `json:"wikipedia"`
	Etymology           string               `json:"etymology"`
	EtymologyProvenance string               `json:"etymologyProvenance"`
	Ngram               []frequencyResponse  `json:"ngram"`
	WordOfTheDay        wordOfTheDayResponse `json:"wordOfTheDay"`
}

type etymologyResponse struct {
	Word      string  `json:"word"`
	Etymology *string `json:"etymology"`
}

type extractResponse struct {
	Strict    *string `json:"strict"`
	Etymology string  `json:"etymology"`
}

// GetWord returns the full word page as JSON.
func (h *WordHandler) GetWord(w http.ResponseWriter, r *http.Request) {
	page, err := h.svc.Lookup(r.Context(), r.PathValue("term"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toWordResponse(page))
}

// GetEtymology returns the labeled multi-source etymology of a word, with a
// null etymology when no source had one.
func (h *WordHandler) GetEtymology(w http.ResponseWriter, r *http.Request) {
	term, err := domain.ValidateTerm(r.PathValue("term"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	resp := etymologyResponse{Word: term}
	if text, ok := h.svc.GetCombinedEtymology(r.Context(), term); ok {
		resp.Etymology = &text
	}

	writeJSON(w, http.StatusOK, resp)
}

// Extract runs the etymology pipeline over raw wiki markup sent as the
// request body.
func (h *WordHandler) Extract(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxMarkupBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "markup too large")
			return
		}
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	markup := string(body)

	var resp extractResponse
	if strict, ok := etymology.ExtractStrict(markup); ok {
		resp.Strict = &strict
	}
	resp.Etymology = h.svc.GetEtymology(markup)

	writeJSON(w, http.StatusOK, resp)
}

func (h *WordHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, strings.TrimPrefix(err.Error(), "lookup: "))
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func toWordResponse(page *domain.WordPage) wordResponse {
	resp := wordResponse{
		Term:                page.Term,
		Phonetic:            page.Phonetic,
		Definitions:         make([]definitionResponse, 0, len(page.Definitions)),
		Etymology:           page.Etymology,
		EtymologyProvenance: page.EtymologyProvenance,
		Ngram:               make([]frequencyResponse, 0, len(page.Ngram)),
		WordOfTheDay: wordOfTheDayResponse{
			Word:       page.WordOfTheDay.Word,
			Definition: page.WordOfTheDay.Definition,
		},
	}

	for _, d := range page.Definitions {
		resp.Definitions = append(resp.Definitions, definitionResponse(d))
	}
	for _, p := range page.Ngram {
		resp.Ngram = append(resp.Ngram, frequencyResponse(p))
	}
	if page.Wikipedia != nil {
		resp.Wikipedia = &summaryResponse{Extract: page.Wikipedia.Extract, URL: page.Wikipedia.URL}
	}

	return resp
}
