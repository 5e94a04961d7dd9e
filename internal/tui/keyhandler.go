package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hnrks/tidings/internal/config"
)

type KeyHandler struct {
	app      *App
	bindings config.KeyBindings
}

func NewKeyHandler(app *App, cfg *config.Config) *KeyHandler {
	return &KeyHandler{app: app, bindings: cfg.Keys.Bindings}
}

func (kh *KeyHandler) HandleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	a := kh.app
	key := msg.String()

	if key == "ctrl+c" {
		return a, tea.Quit
	}

	if a.view == ViewSearch && a.searchInput.Focused() {
		return kh.handleSearchInput(msg)
	}

	if a.configBroken {
		if key == kh.bindings.Quit {
			return a, tea.Quit
		}
		return a, nil
	}

	switch a.view {
	case ViewArticles:
		return kh.handleArticlesKeys(msg)
	case ViewLanguage:
		return kh.handlePickerKeys(msg, ViewLanguage)
	case ViewCategory:
		return kh.handlePickerKeys(msg, ViewCategory)
	case ViewReader:
		return kh.handleReaderKeys(msg)
	case ViewSearch:
		// Input lost focus; any key returns to the articles
		a.view = ViewArticles
		return a, nil
	}

	return a, nil
}

func (kh *KeyHandler) handleSearchInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	a := kh.app

	switch msg.String() {
	case kh.bindings.Back:
		a.searchInput.Blur()
		a.view = ViewArticles
		return a, nil
	case "enter":
		text := a.searchInput.Value()
		a.searchInput.Blur()
		cmd := a.submitSearch(text)
		if cmd == nil {
			// Dropped by the busy guard; nothing changed
			a.view = ViewArticles
		}
		return a, cmd
	default:
		var cmd tea.Cmd
		a.searchInput, cmd = a.searchInput.Update(msg)
		return a, cmd
	}
}

func (kh *KeyHandler) handleArticlesKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	a := kh.app

	switch msg.String() {
	case kh.bindings.Quit:
		return a, tea.Quit
	case kh.bindings.Search:
		a.view = ViewSearch
		a.searchInput.SetValue(a.state.Search())
		a.searchInput.CursorEnd()
		a.searchInput.Focus()
		return a, textinput.Blink
	case kh.bindings.Language:
		a.view = ViewLanguage
		return a, nil
	case kh.bindings.Category:
		a.view = ViewCategory
		return a, nil
	case kh.bindings.NextPage, "n":
		return a, a.nextPage()
	case kh.bindings.PrevPage, "p":
		return a, a.prevPage()
	case kh.bindings.Refresh:
		return a, a.refresh()
	case kh.bindings.Open:
		if article := a.selectedArticle(); article != nil {
			return a, a.openArticle(*article)
		}
		return a, nil
	case "enter":
		if article := a.selectedArticle(); article != nil {
			a.current = article
			a.view = ViewReader
			a.loadingView = true
			return a, a.renderArticle(*article)
		}
		return a, nil
	}

	var cmd tea.Cmd
	a.articleList, cmd = a.articleList.Update(msg)
	return a, cmd
}

func (kh *KeyHandler) handlePickerKeys(msg tea.KeyMsg, view View) (tea.Model, tea.Cmd) {
	a := kh.app

	switch msg.String() {
	case kh.bindings.Back, kh.bindings.Quit:
		a.view = ViewArticles
		return a, nil
	case "enter":
		var picked optionItem
		var ok bool
		var cmd tea.Cmd

		if view == ViewLanguage {
			picked, ok = a.languageList.SelectedItem().(optionItem)
			if ok {
				cmd = a.pickLanguage(picked.code)
			}
		} else {
			picked, ok = a.categoryList.SelectedItem().(optionItem)
			if ok {
				cmd = a.pickCategory(picked.code)
			}
		}

		a.view = ViewArticles
		return a, cmd
	}

	var cmd tea.Cmd
	if view == ViewLanguage {
		a.languageList, cmd = a.languageList.Update(msg)
	} else {
		a.categoryList, cmd = a.categoryList.Update(msg)
	}
	return a, cmd
}

func (kh *KeyHandler) handleReaderKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	a := kh.app

	switch msg.String() {
	case kh.bindings.Back:
		a.view = ViewArticles
		a.current = nil
		return a, nil
	case kh.bindings.Quit:
		return a, tea.Quit
	case kh.bindings.Open:
		if a.current != nil {
			return a, a.openArticle(*a.current)
		}
		return a, nil
	}

	var cmd tea.Cmd
	a.viewport, cmd = a.viewport.Update(msg)
	return a, cmd
}
