package integration

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hnrks/tidings/internal/config"
	"github.com/hnrks/tidings/internal/news"
	"github.com/hnrks/tidings/internal/session"
)

// newsServer fakes the external service well enough to drive the whole
// session -> query -> fetch flow: /top and /all with pagination, and a
// switchable failure mode.
func newsServer(t *testing.T, failWith *int32) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if code := atomic.LoadInt32(failWith); code != 0 {
			w.WriteHeader(int(code))
			return
		}

		pageParam := r.URL.Query().Get("page")
		pageNum, _ := strconv.Atoi(pageParam)

		var data []map[string]any
		if pageNum < 3 { // page 3 simulates paging past the end
			data = []map[string]any{
				{
					"uuid":   r.URL.Path + "-" + pageParam,
					"title":  "Article on " + r.URL.Path + " page " + pageParam,
					"source": "example.com",
					"url":    "https://example.com/a",
				},
			}
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"meta": map[string]any{"found": 2, "returned": len(data), "limit": 3, "page": pageNum},
			"data": data,
		})
	}))
}

func TestFetchFlow(t *testing.T) {
	var failWith int32
	server := newsServer(t, &failWith)
	defer server.Close()

	cfg := config.TestConfig()
	cfg.API.BaseURL = server.URL

	client := news.NewClient(cfg)
	state := session.New(cfg.API.DefaultLanguage, cfg.API.DefaultCategory)
	ctx := context.Background()

	// Initial load hits top headlines
	require.True(t, state.BeginLoad())
	page, err := client.Fetch(ctx, state.Query())
	state.EndLoad(err == nil)
	require.NoError(t, err)
	require.Len(t, page.Data, 1)
	assert.Contains(t, page.Data[0].Title, "/top page 1")

	// Search switches to the filter endpoint and resets the page
	state.NextPage()
	state.SetSearch("fusion")
	assert.Equal(t, 1, state.Page())

	require.True(t, state.BeginLoad())
	page, err = client.Fetch(ctx, state.Query())
	state.EndLoad(err == nil)
	require.NoError(t, err)
	assert.Contains(t, page.Data[0].Title, "/all page 1")

	// Paging past the end yields the empty state, not an error
	state.NextPage()
	state.NextPage()
	require.True(t, state.BeginLoad())
	page, err = client.Fetch(ctx, state.Query())
	state.EndLoad(err == nil)
	require.NoError(t, err)
	assert.Empty(t, page.Data)

	// A failure settles the cycle as Failed and the next action works
	atomic.StoreInt32(&failWith, http.StatusTooManyRequests)
	require.True(t, state.BeginLoad())
	_, err = client.Fetch(ctx, state.Query())
	state.EndLoad(err == nil)

	var rateErr *news.RateLimitError
	require.ErrorAs(t, err, &rateErr)
	assert.Equal(t, session.PhaseFailed, state.Phase())

	atomic.StoreInt32(&failWith, 0)
	require.True(t, state.BeginLoad(), "failed phase must accept the next cycle")
}

func TestFetchFlow_LanguageChange(t *testing.T) {
	var failWith int32
	server := newsServer(t, &failWith)
	defer server.Close()

	cfg := config.TestConfig()
	cfg.API.BaseURL = server.URL

	client := news.NewClient(cfg)
	state := session.New("en", "")
	state.NextPage()

	// Changing language resets to page 1 before the next request
	state.SetLanguage("de")
	require.True(t, state.BeginLoad())
	page, err := client.Fetch(context.Background(), state.Query())
	state.EndLoad(err == nil)

	require.NoError(t, err)
	assert.Equal(t, 1, page.Meta.Page)
	assert.Equal(t, session.PhaseSuccess, state.Phase())
}
