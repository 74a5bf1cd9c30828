package mock

import "github.com/fwojciec/docsearch"

var _ docsearch.Navigator = (*Navigator)(nil)

// Navigator is a mock implementation of docsearch.Navigator. It
// counts navigations; a nil NavigateFn is a no-op.
type Navigator struct {
	NavigateFn func(url string)

	NavigateCalls int
}

func (n *Navigator) Navigate(url string) {
	n.NavigateCalls++
	if n.NavigateFn != nil {
		n.NavigateFn(url)
	}
}
