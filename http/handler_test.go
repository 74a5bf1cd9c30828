package http_test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/fwojciec/docsearch"
	dochttp "github.com/fwojciec/docsearch/http"
	"github.com/fwojciec/docsearch/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchHandler(t *testing.T) {
	t.Parallel()

	t.Run("returns results as JSON", func(t *testing.T) {
		t.Parallel()

		search := &mock.SearchService{
			SearchFn: func(query string) []docsearch.Result {
				assert.Equal(t, "widget", query)
				return []docsearch.Result{{
					Entry:            docsearch.Entry{Title: "Widget", URL: "/widget"},
					Score:            150,
					HighlightedTitle: "<mark>Widget</mark>",
					Snippet:          "about the <mark>widget</mark>",
				}}
			},
		}
		srv := httptest.NewServer(dochttp.NewSearchHandler(search).Routes())
		defer srv.Close()

		resp, err := srv.Client().Get(srv.URL + "/search?q=widget")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, 200, resp.StatusCode)
		assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

		var body struct {
			Query   string             `json:"query"`
			Results []docsearch.Result `json:"results"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "widget", body.Query)
		require.Len(t, body.Results, 1)
		assert.Equal(t, "/widget", body.Results[0].Entry.URL)
		assert.Equal(t, "<mark>Widget</mark>", body.Results[0].HighlightedTitle)
	})

	t.Run("empty query returns empty results, not an error", func(t *testing.T) {
		t.Parallel()

		search := &mock.SearchService{
			SearchFn: func(query string) []docsearch.Result { return nil },
		}
		srv := httptest.NewServer(dochttp.NewSearchHandler(search).Routes())
		defer srv.Close()

		resp, err := srv.Client().Get(srv.URL + "/search")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, 200, resp.StatusCode)

		var body struct {
			Results     []docsearch.Result `json:"results"`
			Suggestions []string           `json:"suggestions"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.NotNil(t, body.Results)
		assert.Empty(t, body.Results)
		assert.Equal(t, docsearch.NoResultsSuggestions, body.Suggestions)
	})

	t.Run("suggestions are omitted when there are results", func(t *testing.T) {
		t.Parallel()

		search := &mock.SearchService{
			SearchFn: func(query string) []docsearch.Result {
				return []docsearch.Result{{Entry: docsearch.Entry{Title: "Widget", URL: "/widget"}, Score: 150}}
			},
		}
		srv := httptest.NewServer(dochttp.NewSearchHandler(search).Routes())
		defer srv.Close()

		resp, err := srv.Client().Get(srv.URL + "/search?q=widget")
		require.NoError(t, err)
		defer resp.Body.Close()

		var body struct {
			Suggestions []string `json:"suggestions"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Empty(t, body.Suggestions)
	})

	t.Run("health endpoint responds ok", func(t *testing.T) {
		t.Parallel()

		search := &mock.SearchService{SearchFn: func(string) []docsearch.Result { return nil }}
		srv := httptest.NewServer(dochttp.NewSearchHandler(search).Routes())
		defer srv.Close()

		resp, err := srv.Client().Get(srv.URL + "/healthz")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, 200, resp.StatusCode)
	})
}
