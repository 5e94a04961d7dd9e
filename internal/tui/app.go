package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/hnrks/tidings/internal/browser"
	"github.com/hnrks/tidings/internal/config"
	"github.com/hnrks/tidings/internal/debuglog"
	"github.com/hnrks/tidings/internal/news"
	"github.com/hnrks/tidings/internal/session"
)

type App struct {
	config     *config.Config
	client     *news.Client
	launcher   *browser.Launcher
	state      *session.State
	keyHandler *KeyHandler

	articleList  list.Model
	languageList list.Model
	categoryList list.Model
	searchInput  textinput.Model
	viewport     viewport.Model
	spin         spinner.Model

	view         View
	articles     []news.Article
	meta         news.Meta
	current      *news.Article
	errText      string
	fetchedOnce  bool
	loadingView  bool // Reader content still rendering
	configBroken bool

	width  int
	height int

	glamourRenderer *glamour.TermRenderer
	rendererWidth   int
}

func NewApp(cfg *config.Config) *App {
	articleList := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	articleList.Title = "› headlines"
	articleList.SetShowStatusBar(false)
	articleList.SetFilteringEnabled(false)
	articleList.SetShowHelp(false)

	languageList := list.New(optionsToItems(languageOptions), list.NewDefaultDelegate(), 0, 0)
	languageList.Title = "› language"
	languageList.SetShowStatusBar(false)
	languageList.SetShowHelp(false)

	categoryList := list.New(optionsToItems(categoryOptions), list.NewDefaultDelegate(), 0, 0)
	categoryList.Title = "› category"
	categoryList.SetShowStatusBar(false)
	categoryList.SetShowHelp(false)

	si := textinput.New()
	si.Placeholder = "Search the news…"

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(AccentColor)

	vp := viewport.New(0, 0)

	app := &App{
		config:       cfg,
		client:       news.NewClient(cfg),
		launcher:     browser.NewLauncher(cfg),
		state:        session.New(cfg.API.DefaultLanguage, cfg.API.DefaultCategory),
		articleList:  articleList,
		languageList: languageList,
		categoryList: categoryList,
		searchInput:  si,
		viewport:     vp,
		spin:         sp,
		view:         ViewArticles,
		configBroken: !cfg.TokenConfigured(),
	}

	app.keyHandler = NewKeyHandler(app, cfg)

	return app
}

func optionsToItems(options []optionItem) []list.Item {
	items := make([]list.Item, len(options))
	for i, o := range options {
		items[i] = o
	}
	return items
}

func (a *App) getRenderer() (*glamour.TermRenderer, error) {
	wordWrapWidth := (a.width * 9) / 10
	if wordWrapWidth > a.config.UI.Card.WordWrapMaxWidth {
		wordWrapWidth = a.config.UI.Card.WordWrapMaxWidth
	}
	if wordWrapWidth < a.config.UI.Card.WordWrapMinWidth {
		wordWrapWidth = a.config.UI.Card.WordWrapMinWidth
	}

	if a.glamourRenderer == nil || abs(a.rendererWidth-wordWrapWidth) > 10 {
		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(wordWrapWidth),
		)
		if err != nil {
			return nil, err
		}
		a.glamourRenderer = r
		a.rendererWidth = wordWrapWidth
	}

	return a.glamourRenderer, nil
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func (a *App) Init() tea.Cmd {
	if a.configBroken {
		debuglog.Warnf("API token not configured; refusing to fetch")
		return tea.EnterAltScreen
	}
	return tea.Batch(
		a.startFetch(),
		tea.EnterAltScreen,
	)
}

// startFetch begins one fetch cycle for the current state. It returns
// nil, changing nothing else, when a cycle is already active — actions
// arriving while loading are dropped, not queued.
func (a *App) startFetch() tea.Cmd {
	if a.configBroken {
		return nil
	}
	if !a.state.BeginLoad() {
		debuglog.Debugf("fetch dropped: already loading")
		return nil
	}

	a.view = ViewArticles
	return tea.Batch(a.spin.Tick, a.fetchPage(a.state.Query()))
}

// Controller actions. Each one refuses to touch state while a fetch
// cycle is outstanding, then mutates state and starts the next cycle.

func (a *App) submitSearch(text string) tea.Cmd {
	if a.state.Loading() {
		return nil
	}
	a.state.SetSearch(strings.TrimSpace(text))
	return a.startFetch()
}

func (a *App) pickLanguage(code string) tea.Cmd {
	if a.state.Loading() {
		return nil
	}
	a.state.SetLanguage(code)
	return a.startFetch()
}

func (a *App) pickCategory(code string) tea.Cmd {
	if a.state.Loading() {
		return nil
	}
	a.state.SetCategory(code)
	return a.startFetch()
}

func (a *App) nextPage() tea.Cmd {
	if a.state.Loading() {
		return nil
	}
	a.state.NextPage()
	return a.startFetch()
}

func (a *App) prevPage() tea.Cmd {
	if a.state.Loading() {
		return nil
	}
	if !a.state.PrevPage() {
		// Already on page 1: no request
		return nil
	}
	return a.startFetch()
}

func (a *App) refresh() tea.Cmd {
	if a.state.Loading() {
		return nil
	}
	return a.startFetch()
}

func (a *App) selectedArticle() *news.Article {
	if item, ok := a.articleList.SelectedItem().(articleItem); ok {
		article := item.article
		return &article
	}
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.articleList.SetSize(msg.Width, msg.Height-4)
		a.languageList.SetSize(msg.Width, msg.Height-4)
		a.categoryList.SetSize(msg.Width, msg.Height-4)
		a.viewport.Width = msg.Width
		a.viewport.Height = msg.Height - 3

		inputWidth := msg.Width - 8
		if inputWidth < 20 {
			inputWidth = msg.Width
		}
		a.searchInput.Width = inputWidth

	case tea.KeyMsg:
		return a.keyHandler.HandleKey(msg)

	case spinner.TickMsg:
		if a.state.Loading() {
			var cmd tea.Cmd
			a.spin, cmd = a.spin.Update(msg)
			cmds = append(cmds, cmd)
		}

	case pageLoadedMsg:
		a.fetchedOnce = true
		a.state.EndLoad(msg.err == nil)

		if msg.err != nil {
			debuglog.Errorf("fetch failed: %v", msg.err)
			// Failures never leave stale content beside the message
			a.articles = nil
			a.meta = news.Meta{}
			a.articleList.SetItems(nil)
			a.errText = userMessage(msg.err)
			return a, clearErrorLater()
		}

		a.articles = msg.page.Data
		a.meta = msg.page.Meta
		items := make([]list.Item, len(msg.page.Data))
		for i, article := range msg.page.Data {
			items[i] = articleItem{article: article}
		}
		a.articleList.SetItems(items)
		// Back to the top of the page after every load
		a.articleList.Select(0)

	case articleRenderedMsg:
		if a.view == ViewReader {
			a.viewport.SetContent(msg.content)
			a.viewport.GotoTop()
			a.loadingView = false
		}

	case errorMsg:
		a.errText = msg.text
		return a, clearErrorLater()

	case errorClearedMsg:
		a.errText = ""
	}

	switch a.view {
	case ViewArticles:
		newListModel, cmd := a.articleList.Update(msg)
		a.articleList = newListModel
		cmds = append(cmds, cmd)
	case ViewLanguage:
		newListModel, cmd := a.languageList.Update(msg)
		a.languageList = newListModel
		cmds = append(cmds, cmd)
	case ViewCategory:
		newListModel, cmd := a.categoryList.Update(msg)
		a.categoryList = newListModel
		cmds = append(cmds, cmd)
	case ViewSearch:
		newInput, cmd := a.searchInput.Update(msg)
		a.searchInput = newInput
		cmds = append(cmds, cmd)
	case ViewReader:
		switch msg.(type) {
		case tea.KeyMsg, tea.WindowSizeMsg, tea.MouseMsg:
			newViewport, cmd := a.viewport.Update(msg)
			a.viewport = newViewport
			cmds = append(cmds, cmd)
		}
	}

	return a, tea.Batch(cmds...)
}

func (a *App) View() string {
	if a.configBroken {
		return lipgloss.NewStyle().
			Width(a.width).
			Height(a.height).
			Align(lipgloss.Center, lipgloss.Center).
			Render(GetConfigErrorMessage())
	}

	var content string

	switch a.view {
	case ViewArticles:
		content = a.articlesView()
	case ViewSearch:
		content = a.searchView()
	case ViewLanguage:
		content = a.languageList.View()
	case ViewCategory:
		content = a.categoryList.View()
	case ViewReader:
		if a.loadingView {
			content = lipgloss.NewStyle().
				Width(a.width).
				Height(a.height-3).
				Align(lipgloss.Center, lipgloss.Center).
				Render(HelpStyle.Render(MsgLoading))
		} else {
			content = a.viewport.View()
		}
	}

	statusBar := a.statusBar()
	separatorWidth := a.width - 1
	if separatorWidth < 0 {
		separatorWidth = 0
	}
	separator := SeparatorStyle.Render(strings.Repeat("─", separatorWidth))

	return lipgloss.JoinVertical(lipgloss.Top, content, separator, statusBar)
}

func (a *App) articlesView() string {
	header := a.filterHeader()

	if a.state.Loading() {
		body := lipgloss.JoinVertical(
			lipgloss.Left,
			a.spin.View()+HelpStyle.Render(" "+MsgLoading),
			"",
			renderPlaceholders(a.config.API.Limit, a.width),
		)
		return lipgloss.JoinVertical(lipgloss.Top, header, body)
	}

	if len(a.articles) == 0 {
		if !a.fetchedOnce {
			return lipgloss.NewStyle().
				Width(a.width).
				Height(a.height - 3).
				Align(lipgloss.Center, lipgloss.Center).
				Render(GetWelcomeMessage())
		}
		return lipgloss.JoinVertical(lipgloss.Top, header, renderEmptyState(a.width, a.height-5))
	}

	return lipgloss.JoinVertical(lipgloss.Top, header, a.articleList.View())
}

func (a *App) filterHeader() string {
	parts := []string{CompactLogo}
	if a.state.Search() != "" {
		parts = append(parts, fmt.Sprintf("search: %q", truncateEnd(a.state.Search(), 24)))
	}
	if a.state.Category() != "" {
		parts = append(parts, "category: "+a.state.Category())
	}
	parts = append(parts, "lang: "+a.state.Language())

	return TitleStyle.Render(parts[0]) + " " + HelpStyle.Render(strings.Join(parts[1:], " • "))
}

func (a *App) searchView() string {
	input := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(AccentColor).
		Padding(0, 1).
		Width(a.searchInput.Width + 4).
		Render(a.searchInput.View())

	return lipgloss.NewStyle().
		Width(a.width).
		Height(a.height - 3).
		Align(lipgloss.Center, lipgloss.Center).
		Render(
			lipgloss.JoinVertical(
				lipgloss.Center,
				TitleStyle.Render("› search"),
				"",
				input,
				"",
				HelpStyle.Render("Enter: search • Esc: cancel"),
			),
		)
}

func (a *App) statusBar() string {
	if a.errText != "" {
		return StatusBarStyle.Render(ErrorMessageStyle.Render("✗ " + a.errText))
	}

	var hints []string
	switch a.view {
	case ViewArticles:
		if len(a.articles) > 0 && !a.state.Loading() {
			// Pagination hints are hidden on the empty state
			hints = append(hints, MsgPage(a.state.Page(), a.meta.Found), "←/→ page")
		}
		hints = append(hints, "/ search", "l lang", "c category", "r refresh", "q quit")
		if len(a.articles) > 0 && !a.state.Loading() {
			hints = append(hints, "enter read", "o open")
		}
	case ViewSearch:
		hints = append(hints, "enter search", "esc back")
	case ViewLanguage, ViewCategory:
		hints = append(hints, "enter select", "esc back")
	case ViewReader:
		if a.current != nil && a.current.URL != "" {
			hints = append(hints, truncateMiddle(a.current.URL, 40))
		}
		hints = append(hints, "↑/↓ scroll", "o open", "esc back")
	}

	return StatusBarStyle.Render(strings.Join(hints, " • "))
}
