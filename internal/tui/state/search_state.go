package state

import (
	"charm.land/bubbles/v2/textinput"

	"github.com/thenoetrevino/adflow/internal/search"
)

// maxQueryLength caps the search input
const maxQueryLength = 100

// SearchState backs the search overlay: the query input, the latest
// results and the highlighted result.
type SearchState struct {
	Input   textinput.Model
	Results []search.Result
	Cursor  int
}

// NewSearchState creates an empty search overlay.
func NewSearchState() *SearchState {
	input := textinput.New()
	input.Placeholder = "Search campaigns, tasks and notes..."
	input.CharLimit = maxQueryLength
	return &SearchState{Input: input}
}

// Query returns the current query text.
func (s *SearchState) Query() string {
	return s.Input.Value()
}

// SetResults replaces the results and keeps the cursor in range.
func (s *SearchState) SetResults(results []search.Result) {
	s.Results = results
	s.Cursor = min(s.Cursor, max(len(results)-1, 0))
}

// Move shifts the highlighted result by delta, clamped to the list.
func (s *SearchState) Move(delta int) {
	if len(s.Results) == 0 {
		s.Cursor = 0
		return
	}
	s.Cursor = max(0, min(s.Cursor+delta, len(s.Results)-1))
}

// Selected returns the highlighted result.
func (s *SearchState) Selected() (search.Result, bool) {
	if s.Cursor < 0 || s.Cursor >= len(s.Results) {
		return search.Result{}, false
	}
	return s.Results[s.Cursor], true
}

// Reset clears the query and results.
func (s *SearchState) Reset() {
	s.Input.SetValue("")
	s.Results = nil
	s.Cursor = 0
}
