package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hnrks/tidings/internal/debuglog"
	"github.com/hnrks/tidings/internal/news"
)

// pageLoadedMsg is the outcome of one fetch cycle.
type pageLoadedMsg struct {
	page *news.Page
	err  error
}

// articleRenderedMsg carries the glamour output for the reader view.
type articleRenderedMsg struct {
	content string
}

// errorMsg surfaces ancillary failures (e.g. the browser launcher).
type errorMsg struct {
	text string
}

// errorClearedMsg fires when the status-bar error timer elapses.
type errorClearedMsg struct{}

func (a *App) fetchPage(q news.Query) tea.Cmd {
	return func() tea.Msg {
		page, err := a.client.Fetch(context.Background(), q)
		return pageLoadedMsg{page: page, err: err}
	}
}

// clearErrorLater schedules the status-bar error to clear. The timer
// always fires; it is never cancelled by later state changes.
func clearErrorLater() tea.Cmd {
	return tea.Tick(errorDisplayDuration*time.Second, func(time.Time) tea.Msg {
		return errorClearedMsg{}
	})
}

func (a *App) renderArticle(article news.Article) tea.Cmd {
	return func() tea.Msg {
		r, err := a.getRenderer()
		if err != nil {
			return articleRenderedMsg{content: "Error initializing renderer: " + err.Error()}
		}

		rendered, err := r.Render(articleMarkdown(article, time.Now()))
		if err != nil {
			debuglog.Errorf("rendering article: %v", err)
			return articleRenderedMsg{content: "Failed to render article. Press Esc to go back."}
		}

		return articleRenderedMsg{content: rendered}
	}
}

func (a *App) openArticle(article news.Article) tea.Cmd {
	return func() tea.Msg {
		if err := a.launcher.Open(article.URL); err != nil {
			debuglog.Errorf("opening article: %v", err)
			return errorMsg{text: "Could not open the article in a browser."}
		}
		return nil
	}
}
