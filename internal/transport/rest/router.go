package rest

import "net/http"

// NewRouter registers every page, API, probe and metrics route.
func NewRouter(words *WordHandler, health *HealthHandler, metrics http.Handler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", words.Index)
	mux.HandleFunc("POST /{$}", words.Search)
	mux.HandleFunc("GET /word/{term}", words.Word)
	mux.HandleFunc("GET /word/", words.Redirect)

	mux.HandleFunc("GET /api/v1/words/{term}", words.GetWord)
	mux.HandleFunc("GET /api/v1/words/{term}/etymology", words.GetEtymology)
	mux.HandleFunc("POST /api/v1/etymology/extract", words.Extract)

	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)

	if metrics != nil {
		mux.Handle("GET /metrics", metrics)
	}

	return mux
}
