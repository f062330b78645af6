package catalog

import (
	"context"
	"strings"

	"property-listings/internal/listing/repository"
	"property-listings/internal/model"
	"property-listings/pkg/fetchstate"
)

// Load fetches the listings matching query. It returns the fetch error, if any.
// A result that arrives after a newer Load started is dropped and reported as nil.
func (c *implController) Load(ctx context.Context, query string) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	c.gen++
	gen := c.gen
	c.state = State{
		Fetch: fetchstate.Loading[[]model.Listing](),
		Query: query,
	}
	c.mu.Unlock()
	c.notify()

	reqCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	stop := context.AfterFunc(c.base, cancel)
	defer stop()

	listings, err := c.repo.ListListings(reqCtx, repository.ListListingsOptions{Search: query})

	c.mu.Lock()
	if c.closed || gen != c.gen {
		c.mu.Unlock()
		c.l.Debugf(ctx, "catalog.Load: dropped stale result for query %q", query)
		return nil
	}
	if err != nil {
		c.state.Fetch = fetchstate.Failed[[]model.Listing](err)
	} else {
		c.state.Fetch = fetchstate.Succeeded(listings)
	}
	c.mu.Unlock()
	c.notify()

	if err != nil {
		c.l.Errorf(ctx, "catalog.Load ListListings(%q): %v", query, err)
		return err
	}
	return nil
}

// Search trims text and loads it as the new query. Empty text means no filter.
func (c *implController) Search(ctx context.Context, text string) error {
	return c.Load(ctx, strings.TrimSpace(text))
}

// ClearSearch drops the filter and reloads the whole collection.
func (c *implController) ClearSearch(ctx context.Context) error {
	return c.Search(ctx, "")
}

// Retry reloads the current query, typically after a failure.
func (c *implController) Retry(ctx context.Context) error {
	c.mu.Lock()
	query := c.state.Query
	c.mu.Unlock()
	return c.Load(ctx, query)
}
