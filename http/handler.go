package http

import (
	"encoding/json"
	"net/http"

	"github.com/fwojciec/docsearch"
)

// SearchHandler serves the documentation site's search endpoint as
// JSON over HTTP. Snippets and titles in the response are already
// HTML-escaped and highlighted by the query engine.
type SearchHandler struct {
	search docsearch.SearchService
}

// NewSearchHandler creates a SearchHandler over the given service.
func NewSearchHandler(search docsearch.SearchService) *SearchHandler {
	return &SearchHandler{search: search}
}

// searchResponse is the JSON shape of a search API response.
// Suggestions carries the static no-results guidance and is present
// only when the result list is empty.
type searchResponse struct {
	Query       string             `json:"query"`
	Results     []docsearch.Result `json:"results"`
	Suggestions []string           `json:"suggestions,omitempty"`
}

// Routes returns an http.Handler with the search API routes mounted.
func (h *SearchHandler) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /search", h.handleSearch)
	mux.HandleFunc("GET /healthz", h.handleHealth)
	return mux
}

// handleSearch runs the query pipeline for the q parameter. A short or
// empty query returns an empty result list, not an error, mirroring
// the in-process contract.
func (h *SearchHandler) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	results := h.search.Search(query)
	if results == nil {
		results = []docsearch.Result{}
	}

	response := searchResponse{Query: query, Results: results}
	if len(results) == 0 {
		response.Suggestions = docsearch.NoResultsSuggestions
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, docsearch.ErrorMessage(err), http.StatusInternalServerError)
	}
}

func (h *SearchHandler) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
