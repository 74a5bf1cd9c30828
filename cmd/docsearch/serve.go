package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	dochttp "github.com/fwojciec/docsearch/http"
)

// Run executes the serve command.
func (c *ServeCmd) Run(deps *Dependencies) error {
	searcher, err := loadSearcher(deps, c.Category)
	if err != nil {
		return err
	}

	handler := dochttp.NewSearchHandler(searcher)
	srv := &http.Server{
		Addr:              c.Addr,
		Handler:           handler.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	fmt.Fprintf(deps.Stdout, "Serving search API on %s\n", c.Addr)

	select {
	case err := <-errCh:
		return err
	case <-deps.Ctx.Done():
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	}
}
