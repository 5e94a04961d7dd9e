package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hnrks/tidings/internal/config"
	"github.com/hnrks/tidings/internal/news"
	"github.com/hnrks/tidings/internal/session"
)

func newTestApp() *App {
	return NewApp(config.TestConfig())
}

func testPage(titles ...string) *news.Page {
	articles := make([]news.Article, len(titles))
	for i, title := range titles {
		articles[i] = news.Article{UUID: title, Title: title, URL: "https://example.com/" + title}
	}
	return &news.Page{
		Meta: news.Meta{Found: 42, Returned: len(articles), Limit: 3, Page: 1},
		Data: articles,
	}
}

func TestNewApp_StartsIdleOnPageOne(t *testing.T) {
	app := newTestApp()

	assert.Equal(t, ViewArticles, app.view)
	assert.Equal(t, 1, app.state.Page())
	assert.Equal(t, "en", app.state.Language())
	assert.False(t, app.state.Loading())
	assert.False(t, app.configBroken)
}

func TestUpdate_PageLoaded_Success(t *testing.T) {
	app := newTestApp()
	require.True(t, app.state.BeginLoad())

	model, _ := app.Update(pageLoadedMsg{page: testPage("one", "two")})
	app = model.(*App)

	assert.Equal(t, session.PhaseSuccess, app.state.Phase())
	assert.Len(t, app.articles, 2)
	assert.Equal(t, 42, app.meta.Found)
	assert.Len(t, app.articleList.Items(), 2)
	// Every load lands back at the top of the page
	assert.Equal(t, 0, app.articleList.Index())
}

func TestUpdate_PageLoaded_Failure_ForcesEmptyState(t *testing.T) {
	app := newTestApp()

	// Seed a previous successful page
	require.True(t, app.state.BeginLoad())
	model, _ := app.Update(pageLoadedMsg{page: testPage("stale")})
	app = model.(*App)
	require.Len(t, app.articles, 1)

	// Then fail the next cycle
	require.True(t, app.state.BeginLoad())
	model, cmd := app.Update(pageLoadedMsg{err: &news.StatusError{Code: 500}})
	app = model.(*App)

	assert.Equal(t, session.PhaseFailed, app.state.Phase())
	assert.Empty(t, app.articles, "stale content must not survive a failure")
	assert.Empty(t, app.articleList.Items())
	assert.Equal(t, "The news service returned an error (HTTP 500).", app.errText)
	assert.NotNil(t, cmd, "a clear timer must be scheduled")
}

func TestUpdate_ErrorCleared(t *testing.T) {
	app := newTestApp()
	app.errText = "boom"

	model, _ := app.Update(errorClearedMsg{})
	app = model.(*App)

	assert.Empty(t, app.errText)
}

func TestUpdate_RateLimitMessage(t *testing.T) {
	app := newTestApp()
	require.True(t, app.state.BeginLoad())

	model, _ := app.Update(pageLoadedMsg{err: &news.RateLimitError{Message: news.RateLimitMessage}})
	app = model.(*App)

	assert.Equal(t, news.RateLimitMessage, app.errText)
	assert.Empty(t, app.articles)
}

func TestBusyGuard_DropsActionsWhileLoading(t *testing.T) {
	app := newTestApp()
	require.True(t, app.state.BeginLoad())

	assert.Nil(t, app.nextPage())
	assert.Equal(t, 1, app.state.Page(), "dropped action must not touch state")

	assert.Nil(t, app.submitSearch("query"))
	assert.Equal(t, "", app.state.Search())

	assert.Nil(t, app.pickLanguage("fr"))
	assert.Equal(t, "en", app.state.Language())

	assert.Nil(t, app.refresh())
	assert.Equal(t, session.PhaseLoading, app.state.Phase())
}

func TestPrevPage_NoRequestOnPageOne(t *testing.T) {
	app := newTestApp()

	assert.Nil(t, app.prevPage())
	assert.Equal(t, 1, app.state.Page())
	assert.False(t, app.state.Loading())
}

func TestNextPage_Fetches(t *testing.T) {
	app := newTestApp()

	cmd := app.nextPage()
	assert.NotNil(t, cmd)
	assert.Equal(t, 2, app.state.Page())
	assert.True(t, app.state.Loading())
}

func TestSubmitSearch_ResetsPageAndFetches(t *testing.T) {
	app := newTestApp()
	app.state.NextPage()
	app.state.EndLoad(true)

	cmd := app.submitSearch("  fusion power  ")
	assert.NotNil(t, cmd)
	assert.Equal(t, "fusion power", app.state.Search())
	assert.Equal(t, 1, app.state.Page())
	assert.True(t, app.state.Loading())
	assert.Equal(t, ViewArticles, app.view)
}

func TestPickCategory_ResetsPage(t *testing.T) {
	app := newTestApp()
	app.state.NextPage()

	cmd := app.pickCategory("science")
	assert.NotNil(t, cmd)
	assert.Equal(t, "science", app.state.Category())
	assert.Equal(t, 1, app.state.Page())
}

func TestConfigBroken_RefusesToFetch(t *testing.T) {
	cfg := config.TestConfig()
	cfg.API.Token = config.PlaceholderToken
	app := NewApp(cfg)

	assert.True(t, app.configBroken)
	assert.Nil(t, app.startFetch())
	assert.False(t, app.state.Loading())

	app.width = 80
	app.height = 24
	assert.Contains(t, app.View(), "No API token configured")
}

func TestView_EmptyStateHidesPagination(t *testing.T) {
	app := newTestApp()
	app.width = 80
	app.height = 24

	// Empty page after a fetch
	require.True(t, app.state.BeginLoad())
	model, _ := app.Update(pageLoadedMsg{page: &news.Page{}})
	app = model.(*App)

	bar := app.statusBar()
	assert.NotContains(t, bar, "page 1", "pagination hints hidden on empty state")

	// With articles the page indicator shows
	require.True(t, app.state.BeginLoad())
	model, _ = app.Update(pageLoadedMsg{page: testPage("one")})
	app = model.(*App)

	bar = app.statusBar()
	assert.Contains(t, bar, "page 1")
}

func TestView_ErrorTakesOverStatusBar(t *testing.T) {
	app := newTestApp()
	app.width = 80
	app.height = 24
	app.errText = "something broke"

	assert.Contains(t, app.statusBar(), "something broke")
}

func TestSelectedArticle(t *testing.T) {
	app := newTestApp()
	assert.Nil(t, app.selectedArticle())

	require.True(t, app.state.BeginLoad())
	model, _ := app.Update(pageLoadedMsg{page: testPage("one", "two")})
	app = model.(*App)

	article := app.selectedArticle()
	require.NotNil(t, article)
	assert.Equal(t, "one", article.Title)
}

func TestUserMessage_GenericError(t *testing.T) {
	assert.NotEmpty(t, userMessage(errors.New("whatever")))
}

func TestKeyHandler_SearchKeyOpensSearch(t *testing.T) {
	app := newTestApp()

	model, _ := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	app = model.(*App)

	assert.Equal(t, ViewSearch, app.view)
	assert.True(t, app.searchInput.Focused())
}

func TestKeyHandler_LanguageAndCategoryKeys(t *testing.T) {
	app := newTestApp()

	model, _ := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'l'}})
	app = model.(*App)
	assert.Equal(t, ViewLanguage, app.view)

	model, _ = app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	app = model.(*App)
	assert.Equal(t, ViewArticles, app.view)

	model, _ = app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'c'}})
	app = model.(*App)
	assert.Equal(t, ViewCategory, app.view)
}

func TestKeyHandler_PaginationKeysWhileLoadingAreDropped(t *testing.T) {
	app := newTestApp()
	require.True(t, app.state.BeginLoad())

	model, cmd := app.Update(tea.KeyMsg{Type: tea.KeyRight})
	app = model.(*App)

	assert.Nil(t, cmd)
	assert.Equal(t, 1, app.state.Page())
}

func TestKeyHandler_EnterOpensReader(t *testing.T) {
	app := newTestApp()
	require.True(t, app.state.BeginLoad())
	model, _ := app.Update(pageLoadedMsg{page: testPage("one")})
	app = model.(*App)

	model, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	app = model.(*App)

	assert.Equal(t, ViewReader, app.view)
	assert.NotNil(t, app.current)
	assert.NotNil(t, cmd, "reader content renders asynchronously")
}

func TestKeyHandler_QuitFromConfigError(t *testing.T) {
	cfg := config.TestConfig()
	cfg.API.Token = ""
	app := NewApp(cfg)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	assert.NotNil(t, cmd)

	// Everything else is ignored while unconfigured
	model, cmd := app.Update(tea.KeyMsg{Type: tea.KeyRight})
	app = model.(*App)
	assert.Nil(t, cmd)
	assert.False(t, app.state.Loading())
}
