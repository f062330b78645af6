package detail

import (
	"context"

	"property-listings/internal/model"
	"property-listings/pkg/fetchstate"
)

// RequestSummary generates a summary for the current listing.
func (c *implController) RequestSummary(ctx context.Context) error {
	c.mu.Lock()
	id := c.state.ID
	c.mu.Unlock()
	return c.RequestSummaryFor(ctx, id)
}

// RequestSummaryFor generates a summary for id, independently of the listing state.
// A failed generation is replaced by a fallback summary instead of a Failure state.
func (c *implController) RequestSummaryFor(ctx context.Context, id string) error {
	if id == "" {
		return ErrNoListing
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	c.summaryGen++
	gen := c.summaryGen
	c.state.Summary = fetchstate.Loading[model.Summary]()
	c.mu.Unlock()
	c.notify()

	reqCtx, done := c.requestContext(ctx)
	defer done()

	summary, err := c.repo.GenerateSummary(reqCtx, id)
	if err != nil {
		c.l.Warnf(ctx, "detail.RequestSummary GenerateSummary(%s): %v; using fallback", id, err)
		summary = c.fallbackSummary(id)
	}

	c.mu.Lock()
	if c.closed || gen != c.summaryGen {
		c.mu.Unlock()
		c.l.Debugf(ctx, "detail.RequestSummary: dropped stale summary for listing %s", id)
		return nil
	}
	c.state.Summary = fetchstate.Succeeded(summary)
	c.mu.Unlock()
	c.notify()

	return nil
}

func (c *implController) fallbackSummary(id string) model.Summary {
	return model.Summary{
		ListingID:   id,
		Points:      append([]string(nil), FallbackPoints...),
		GeneratedAt: model.NewTimestamp(c.now()),
		Fallback:    true,
	}
}
