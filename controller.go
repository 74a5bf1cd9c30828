package docsearch

import (
	"strings"
	"unicode/utf8"
)

// State is the interaction controller's current mode.
type State int

// Controller states.
const (
	StateClosed State = iota
	StateOpenIdle
	StateOpenResults
	StateOpenNoResults
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpenIdle:
		return "open-idle"
	case StateOpenResults:
		return "open-with-results"
	case StateOpenNoResults:
		return "open-no-results"
	}
	return "unknown"
}

// NoSelection means no result is currently selected.
const NoSelection = -1

// NoResultsSuggestions is the static guidance every surface shows
// alongside the no-results message.
var NoResultsSuggestions = []string{
	"Try a shorter or more general term",
	"Check the spelling of technical terms",
}

// Surface renders search results to some presentation layer. A nil
// Surface is valid: the controller silently skips rendering so the
// rest of the application keeps working without a results container.
type Surface interface {
	// Render displays the result list with the given selected index
	// (NoSelection for none).
	Render(results []Result, selected int)

	// RenderNoResults displays a "no results" message for the query.
	RenderNoResults(query string)

	// Clear removes any displayed results.
	Clear()

	// Focus moves input focus to the query field.
	Focus()
}

// Navigator receives the chosen result's URL and performs the actual
// page transition. The controller has no opinion on what happens next.
type Navigator interface {
	Navigate(url string)
}

// Controller binds a text input, a result list, and keyboard events to
// a SearchService and a Navigator. It owns the selection state and the
// current result list exclusively; no other component mutates them.
//
// Construct one Controller per search surface and pass it to whatever
// owns the UI. It registers nothing globally and holds no hidden
// state, so dropping it is sufficient teardown.
type Controller struct {
	search  SearchService
	surface Surface
	nav     Navigator

	state     State
	query     string
	results   []Result
	selection int
}

// NewController creates a closed controller. surface and nav may be
// nil, in which case rendering and navigation are no-ops.
func NewController(search SearchService, surface Surface, nav Navigator) *Controller {
	return &Controller{
		search:    search,
		surface:   surface,
		nav:       nav,
		state:     StateClosed,
		selection: NoSelection,
	}
}

// Open transitions closed → open-idle and focuses the query input.
// No-op if already open.
func (c *Controller) Open() {
	if c.state != StateClosed {
		return
	}
	c.state = StateOpenIdle
	if c.surface != nil {
		c.surface.Focus()
	}
}

// Close transitions any state → closed, clearing the query, the result
// list, and the selection.
func (c *Controller) Close() {
	c.state = StateClosed
	c.query = ""
	c.results = nil
	c.selection = NoSelection
	if c.surface != nil {
		c.surface.Clear()
	}
}

// SetQuery re-runs the full search pipeline for the current input
// value. Called on every keystroke; there is no debounce because the
// corpus is small and bounded. No-op while closed.
func (c *Controller) SetQuery(text string) {
	if c.state == StateClosed {
		return
	}
	c.query = text
	c.selection = NoSelection

	if utf8.RuneCountInString(strings.TrimSpace(text)) < MinQueryLength {
		c.state = StateOpenIdle
		c.results = nil
		if c.surface != nil {
			c.surface.Clear()
		}
		return
	}

	c.results = c.search.Search(text)
	if len(c.results) == 0 {
		c.state = StateOpenNoResults
		if c.surface != nil {
			c.surface.RenderNoResults(text)
		}
		return
	}
	c.state = StateOpenResults
	if c.surface != nil {
		c.surface.Render(c.results, c.selection)
	}
}

// MoveDown moves the selection one result down, clamped to the last
// index. From no selection it selects the first result. No-op if the
// result list is empty.
func (c *Controller) MoveDown() {
	if len(c.results) == 0 {
		return
	}
	if c.selection < len(c.results)-1 {
		c.selection++
	}
	if c.surface != nil {
		c.surface.Render(c.results, c.selection)
	}
}

// MoveUp moves the selection one result up, clamped to index 0. From
// no selection it selects the first result. No-op if the result list
// is empty.
func (c *Controller) MoveUp() {
	if len(c.results) == 0 {
		return
	}
	if c.selection > 0 {
		c.selection--
	} else {
		c.selection = 0
	}
	if c.surface != nil {
		c.surface.Render(c.results, c.selection)
	}
}

// Activate navigates to the selected result and closes the
// controller. No-op if nothing is selected.
func (c *Controller) Activate() {
	if c.selection < 0 || c.selection >= len(c.results) {
		return
	}
	c.ActivateIndex(c.selection)
}

// ActivateIndex navigates directly to the result at index i, exactly
// like pressing Enter with that result selected. Used for clicks on
// rendered results. No-op for out-of-range indexes.
func (c *Controller) ActivateIndex(i int) {
	if i < 0 || i >= len(c.results) {
		return
	}
	url := c.results[i].Entry.URL
	if c.nav != nil {
		c.nav.Navigate(url)
	}
	c.Close()
}

// HandleKey dispatches a named key event ("ArrowDown", "ArrowUp",
// "Enter", "Escape") to the corresponding transition. Returns false
// for keys the controller does not handle.
func (c *Controller) HandleKey(key string) bool {
	switch key {
	case "ArrowDown":
		c.MoveDown()
	case "ArrowUp":
		c.MoveUp()
	case "Enter":
		c.Activate()
	case "Escape":
		c.Close()
	default:
		return false
	}
	return true
}

// State returns the controller's current state.
func (c *Controller) State() State {
	return c.state
}

// Query returns the current query text.
func (c *Controller) Query() string {
	return c.query
}

// Results returns the current result list.
// Callers must not modify the returned slice.
func (c *Controller) Results() []Result {
	return c.results
}

// Selection returns the selected result index, or NoSelection.
func (c *Controller) Selection() int {
	return c.selection
}
