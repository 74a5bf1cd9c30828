package mock

import "github.com/fwojciec/docsearch"

var _ docsearch.Surface = (*Surface)(nil)

// Surface is a mock implementation of docsearch.Surface. It records
// calls so controller tests can assert on rendering behavior; nil
// function fields are no-ops.
type Surface struct {
	RenderFn          func(results []docsearch.Result, selected int)
	RenderNoResultsFn func(query string)
	ClearFn           func()
	FocusFn           func()

	RenderCalls    int
	NoResultsCalls int
	ClearCalls     int
	FocusCalls     int
}

func (s *Surface) Render(results []docsearch.Result, selected int) {
	s.RenderCalls++
	if s.RenderFn != nil {
		s.RenderFn(results, selected)
	}
}

func (s *Surface) RenderNoResults(query string) {
	s.NoResultsCalls++
	if s.RenderNoResultsFn != nil {
		s.RenderNoResultsFn(query)
	}
}

func (s *Surface) Clear() {
	s.ClearCalls++
	if s.ClearFn != nil {
		s.ClearFn()
	}
}

func (s *Surface) Focus() {
	s.FocusCalls++
	if s.FocusFn != nil {
		s.FocusFn()
	}
}
