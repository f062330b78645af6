package detail

import (
	"context"
	"time"

	"property-listings/internal/listing/repository"
	"property-listings/internal/model"
	"property-listings/pkg/fetchstate"
)

// Load fetches the listing id. A not-found failure schedules OnRedirect after
// the redirect delay. Results superseded by a newer Load are dropped silently.
func (c *implController) Load(ctx context.Context, id string) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	c.stopRedirectLocked()
	if id != c.state.ID {
		// The summary belongs to the previous listing.
		c.summaryGen++
		c.state.Summary = fetchstate.Idle[model.Summary]()
	}
	c.listingGen++
	gen := c.listingGen
	c.state.ID = id
	c.state.Listing = fetchstate.Loading[model.Listing]()
	c.mu.Unlock()
	c.notify()

	reqCtx, done := c.requestContext(ctx)
	defer done()

	l, err := c.repo.GetListing(reqCtx, id)

	c.mu.Lock()
	if c.closed || gen != c.listingGen {
		c.mu.Unlock()
		c.l.Debugf(ctx, "detail.Load: dropped stale result for listing %s", id)
		return nil
	}
	if err != nil {
		c.state.Listing = fetchstate.Failed[model.Listing](err)
		if repository.IsNotFound(err) {
			c.scheduleRedirectLocked()
		}
	} else {
		c.state.Listing = fetchstate.Succeeded(l)
	}
	c.mu.Unlock()
	c.notify()

	if err != nil {
		c.l.Errorf(ctx, "detail.Load GetListing(%s): %v", id, err)
		return err
	}
	return nil
}

// Retry reloads the current listing.
func (c *implController) Retry(ctx context.Context) error {
	c.mu.Lock()
	id := c.state.ID
	c.mu.Unlock()
	return c.Load(ctx, id)
}

func (c *implController) scheduleRedirectLocked() {
	c.stopRedirectLocked()
	if c.onRedirect == nil {
		return
	}
	seq := c.redirectSeq
	c.redirect = time.AfterFunc(c.redirectDelay, func() { c.fireRedirect(seq) })
	c.state.RedirectPending = true
}

// stopRedirectLocked cancels the pending redirect. Bumping the sequence also
// neutralizes a timer that already fired and is waiting for the lock.
func (c *implController) stopRedirectLocked() {
	c.redirectSeq++
	if c.redirect != nil {
		c.redirect.Stop()
		c.redirect = nil
	}
	c.state.RedirectPending = false
}

func (c *implController) fireRedirect(seq uint64) {
	c.mu.Lock()
	if c.closed || seq != c.redirectSeq {
		c.mu.Unlock()
		return
	}
	c.redirect = nil
	c.redirectSeq++
	c.state.RedirectPending = false
	c.mu.Unlock()

	c.notify()
	c.onRedirect()
}
