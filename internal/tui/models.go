package tui

type View int

const (
	ViewArticles View = iota
	ViewSearch
	ViewLanguage
	ViewCategory
	ViewReader
)
