// Package session holds the mutable per-run state of the reader: the
// current page, filters, search text, and the load-cycle phase. One
// instance, one writer (the TUI event loop), no locking needed.
package session

import "github.com/hnrks/tidings/internal/news"

// Phase is the explicit load-cycle state. The cycle is
// Idle -> Loading -> (Success|Failed) -> Idle; only one cycle may be
// active at a time.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseSuccess
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseSuccess:
		return "success"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

type State struct {
	page     int
	language string
	category string
	search   string
	phase    Phase
}

// New returns a session on page 1 with the given default filters.
func New(language, category string) *State {
	return &State{
		page:     1,
		language: language,
		category: category,
		phase:    PhaseIdle,
	}
}

func (s *State) Page() int        { return s.page }
func (s *State) Language() string { return s.language }
func (s *State) Category() string { return s.category }
func (s *State) Search() string   { return s.search }
func (s *State) Phase() Phase     { return s.phase }

// Loading reports whether a fetch cycle is outstanding. Actions
// arriving while loading are dropped by the caller, not queued.
func (s *State) Loading() bool { return s.phase == PhaseLoading }

// Query snapshots the state into the request parameters for a fetch.
func (s *State) Query() news.Query {
	return news.Query{
		Page:     s.page,
		Language: s.language,
		Category: s.category,
		Search:   s.search,
	}
}

// SetSearch replaces the search text and resets to page 1.
func (s *State) SetSearch(text string) {
	s.search = text
	s.page = 1
}

// SetLanguage replaces the language filter and resets to page 1.
func (s *State) SetLanguage(code string) {
	s.language = code
	s.page = 1
}

// SetCategory replaces the category filter (empty means all) and
// resets to page 1.
func (s *State) SetCategory(category string) {
	s.category = category
	s.page = 1
}

// NextPage advances one page. There is no upper bound; the service
// answers an out-of-range page with zero articles, which renders as
// the empty state.
func (s *State) NextPage() {
	s.page++
}

// PrevPage steps back one page. At page 1 it is a no-op and the caller
// must not issue a request.
//
// The returned bool is false when nothing changed.
func (s *State) PrevPage() bool {
	if s.page <= 1 {
		return false
	}
	s.page--
	return true
}

// BeginLoad transitions into the Loading phase. It returns false, and
// changes nothing, when a cycle is already active — this is the busy
// guard that serializes fetches.
func (s *State) BeginLoad() bool {
	if s.phase == PhaseLoading {
		return false
	}
	s.phase = PhaseLoading
	return true
}

// EndLoad settles the active cycle as a success or failure. The phase
// is immediately actionable again: Success and Failed accept new
// actions just like Idle.
func (s *State) EndLoad(ok bool) {
	if ok {
		s.phase = PhaseSuccess
		return
	}
	s.phase = PhaseFailed
}
