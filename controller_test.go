package docsearch_test

import (
	"testing"

	"github.com/fwojciec/docsearch"
	"github.com/fwojciec/docsearch/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestController takes the interface types so that passing nil
// yields a truly nil collaborator, not an interface wrapping a nil
// pointer.
func newTestController(surface docsearch.Surface, nav docsearch.Navigator) *docsearch.Controller {
	searcher := docsearch.NewSearcher(testCorpus())
	return docsearch.NewController(searcher, surface, nav)
}

func TestController_OpenClose(t *testing.T) {
	t.Parallel()

	t.Run("open focuses the input and goes idle", func(t *testing.T) {
		t.Parallel()

		surface := &mock.Surface{}
		c := newTestController(surface, nil)

		c.Open()

		assert.Equal(t, docsearch.StateOpenIdle, c.State())
		assert.Equal(t, 1, surface.FocusCalls)
	})

	t.Run("open is a no-op while already open", func(t *testing.T) {
		t.Parallel()

		surface := &mock.Surface{}
		c := newTestController(surface, nil)

		c.Open()
		c.SetQuery("architecture")
		c.Open()

		assert.Equal(t, docsearch.StateOpenResults, c.State())
		assert.Equal(t, 1, surface.FocusCalls)
	})

	t.Run("close clears query, results, and selection", func(t *testing.T) {
		t.Parallel()

		surface := &mock.Surface{}
		c := newTestController(surface, nil)

		c.Open()
		c.SetQuery("architecture")
		c.MoveDown()
		c.Close()

		assert.Equal(t, docsearch.StateClosed, c.State())
		assert.Empty(t, c.Query())
		assert.Empty(t, c.Results())
		assert.Equal(t, docsearch.NoSelection, c.Selection())
		assert.Equal(t, 1, surface.ClearCalls)
	})
}

func TestController_SetQuery(t *testing.T) {
	t.Parallel()

	t.Run("short query goes idle and clears the surface", func(t *testing.T) {
		t.Parallel()

		surface := &mock.Surface{}
		c := newTestController(surface, nil)

		c.Open()
		c.SetQuery("a")

		assert.Equal(t, docsearch.StateOpenIdle, c.State())
		assert.Empty(t, c.Results())
		assert.Equal(t, 1, surface.ClearCalls)
	})

	t.Run("results render with selection reset", func(t *testing.T) {
		t.Parallel()

		var renderedSelected int
		surface := &mock.Surface{
			RenderFn: func(results []docsearch.Result, selected int) {
				renderedSelected = selected
			},
		}
		c := newTestController(surface, nil)

		c.Open()
		c.SetQuery("architecture")
		c.MoveDown()
		c.SetQuery("architectur")

		assert.Equal(t, docsearch.StateOpenResults, c.State())
		assert.Equal(t, docsearch.NoSelection, c.Selection())
		assert.Equal(t, docsearch.NoSelection, renderedSelected)
	})

	t.Run("no matches transitions to open-no-results", func(t *testing.T) {
		t.Parallel()

		surface := &mock.Surface{}
		c := newTestController(surface, nil)

		c.Open()
		c.SetQuery("zzz-nonexistent")

		assert.Equal(t, docsearch.StateOpenNoResults, c.State())
		assert.Equal(t, 1, surface.NoResultsCalls)
	})

	t.Run("no-op while closed", func(t *testing.T) {
		t.Parallel()

		c := newTestController(&mock.Surface{}, nil)

		c.SetQuery("architecture")

		assert.Equal(t, docsearch.StateClosed, c.State())
		assert.Empty(t, c.Results())
	})

	t.Run("nil surface and navigator never panic", func(t *testing.T) {
		t.Parallel()

		c := newTestController(nil, nil)

		c.Open()
		c.SetQuery("architecture")
		c.MoveDown()
		c.Activate()
		c.Open()
		c.SetQuery("zzz-nonexistent")
		c.Close()
	})
}

func TestController_Navigation(t *testing.T) {
	t.Parallel()

	t.Run("arrow down from no selection selects the first result", func(t *testing.T) {
		t.Parallel()

		c := newTestController(&mock.Surface{}, nil)

		c.Open()
		c.SetQuery("architecture")
		c.MoveDown()

		assert.Equal(t, 0, c.Selection())
	})

	t.Run("arrow down clamps at the last index", func(t *testing.T) {
		t.Parallel()

		c := newTestController(&mock.Surface{}, nil)

		c.Open()
		c.SetQuery("architecture")
		last := len(c.Results()) - 1
		for i := 0; i < len(c.Results())+5; i++ {
			c.MoveDown()
		}

		assert.Equal(t, last, c.Selection())
	})

	t.Run("arrow up clamps at index zero", func(t *testing.T) {
		t.Parallel()

		c := newTestController(&mock.Surface{}, nil)

		c.Open()
		c.SetQuery("architecture")
		c.MoveDown()
		c.MoveUp()
		c.MoveUp()

		assert.Equal(t, 0, c.Selection())
	})

	t.Run("arrows are no-ops without results", func(t *testing.T) {
		t.Parallel()

		surface := &mock.Surface{}
		c := newTestController(surface, nil)

		c.Open()
		c.MoveDown()
		c.MoveUp()

		assert.Equal(t, docsearch.NoSelection, c.Selection())
		assert.Zero(t, surface.RenderCalls)
	})
}

func TestController_Activate(t *testing.T) {
	t.Parallel()

	t.Run("enter navigates to the selected result and closes", func(t *testing.T) {
		t.Parallel()

		var navigated string
		nav := &mock.Navigator{NavigateFn: func(url string) { navigated = url }}
		c := newTestController(&mock.Surface{}, nav)

		c.Open()
		c.SetQuery("architecture")
		c.MoveDown()
		c.Activate()

		assert.Equal(t, "/architecture", navigated)
		assert.Equal(t, docsearch.StateClosed, c.State())
	})

	t.Run("enter without selection is a no-op", func(t *testing.T) {
		t.Parallel()

		nav := &mock.Navigator{NavigateFn: func(url string) {
			t.Fatal("unexpected navigation")
		}}
		c := newTestController(&mock.Surface{}, nav)

		c.Open()
		c.SetQuery("architecture")
		c.Activate()

		assert.Equal(t, docsearch.StateOpenResults, c.State())
	})

	t.Run("navigator without a function records the call", func(t *testing.T) {
		t.Parallel()

		nav := &mock.Navigator{}
		c := newTestController(&mock.Surface{}, nav)

		c.Open()
		c.SetQuery("architecture")
		c.MoveDown()
		c.Activate()

		assert.Equal(t, 1, nav.NavigateCalls)
		assert.Equal(t, docsearch.StateClosed, c.State())
	})

	t.Run("click activates a result directly", func(t *testing.T) {
		t.Parallel()

		var navigated string
		nav := &mock.Navigator{NavigateFn: func(url string) { navigated = url }}
		c := newTestController(&mock.Surface{}, nav)

		c.Open()
		c.SetQuery("architecture")
		require.NotEmpty(t, c.Results())
		c.ActivateIndex(0)

		assert.Equal(t, "/architecture", navigated)
		assert.Equal(t, docsearch.StateClosed, c.State())
	})

	t.Run("out-of-range click is a no-op", func(t *testing.T) {
		t.Parallel()

		nav := &mock.Navigator{NavigateFn: func(url string) {
			t.Fatal("unexpected navigation")
		}}
		c := newTestController(&mock.Surface{}, nav)

		c.Open()
		c.SetQuery("architecture")
		c.ActivateIndex(99)

		assert.Equal(t, docsearch.StateOpenResults, c.State())
	})
}

func TestController_HandleKey(t *testing.T) {
	t.Parallel()

	t.Run("dispatches named keys", func(t *testing.T) {
		t.Parallel()

		c := newTestController(&mock.Surface{}, &mock.Navigator{NavigateFn: func(string) {}})

		c.Open()
		c.SetQuery("architecture")

		assert.True(t, c.HandleKey("ArrowDown"))
		assert.Equal(t, 0, c.Selection())
		assert.True(t, c.HandleKey("ArrowUp"))
		assert.Equal(t, 0, c.Selection())
		assert.True(t, c.HandleKey("Escape"))
		assert.Equal(t, docsearch.StateClosed, c.State())
	})

	t.Run("unknown keys are not handled", func(t *testing.T) {
		t.Parallel()

		c := newTestController(&mock.Surface{}, nil)

		assert.False(t, c.HandleKey("Tab"))
	})
}

func TestController_State_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "closed", docsearch.StateClosed.String())
	assert.Equal(t, "open-idle", docsearch.StateOpenIdle.String())
	assert.Equal(t, "open-with-results", docsearch.StateOpenResults.String())
	assert.Equal(t, "open-no-results", docsearch.StateOpenNoResults.String())
}
