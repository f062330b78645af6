package creation

import (
	"context"
	"errors"

	"property-listings/internal/listing"
	"property-listings/internal/listing/repository"
	"property-listings/internal/model"
	"property-listings/pkg/fetchstate"
)

// UpdateField stores value as typed and clears the error of that field only.
func (c *implController) UpdateField(name, value string) error {
	f, err := listing.ParseField(name)
	if err != nil {
		return err
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	if err := c.state.Draft.Set(f, value); err != nil {
		c.mu.Unlock()
		return err
	}
	if _, ok := c.state.Errors[f]; ok {
		errs := c.state.Errors.Clone()
		delete(errs, f)
		c.state.Errors = errs
	}
	c.mu.Unlock()
	c.notify()

	return nil
}

// Submit validates the draft and creates the listing. It returns the
// server-assigned id to navigate to. Invalid drafts never reach the network
// and fail with a *listing.ValidationError.
func (c *implController) Submit(ctx context.Context) (string, error) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return "", ErrClosed
	}
	if c.state.Submit.IsLoading() {
		c.mu.Unlock()
		return "", ErrSubmitInProgress
	}

	draft := c.state.Draft
	errs := listing.Validate(draft)
	c.state.Errors = errs
	if !errs.Valid() {
		c.mu.Unlock()
		c.notify()
		return "", &listing.ValidationError{Errors: errs.Clone()}
	}

	sub, err := draft.Normalize()
	if err != nil {
		var verr *listing.ValidationError
		if errors.As(err, &verr) {
			c.state.Errors = verr.Errors.Clone()
		}
		c.mu.Unlock()
		c.notify()
		return "", err
	}

	c.gen++
	gen := c.gen
	c.state.Submit = fetchstate.Loading[model.Listing]()
	c.mu.Unlock()
	c.notify()

	reqCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	stop := context.AfterFunc(c.base, cancel)
	defer stop()

	created, err := c.repo.CreateListing(reqCtx, repository.CreateListingOptions{
		Title:       sub.Title,
		Price:       sub.Price,
		Location:    sub.Location,
		Description: sub.Description,
	})

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return "", ErrClosed
	}
	if gen != c.gen {
		c.mu.Unlock()
		c.l.Debugf(ctx, "creation.Submit: dropped result of a reset submit")
		return "", ErrSuperseded
	}
	if err != nil {
		c.state.Submit = fetchstate.Failed[model.Listing](err)
		c.mu.Unlock()
		c.notify()
		c.l.Errorf(ctx, "creation.Submit CreateListing: %v", err)
		return "", err
	}
	c.state.Draft = listing.Draft{}
	c.state.Errors = listing.ErrorMap{}
	c.state.Submit = fetchstate.Succeeded(created)
	c.mu.Unlock()
	c.notify()

	c.l.Infof(ctx, "creation.Submit: created listing %s", created.ID)
	return created.ID, nil
}

// Reset returns the form to its initial state and invalidates an in-flight submit.
func (c *implController) Reset() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.gen++
	c.state = initialState()
	c.mu.Unlock()
	c.notify()
}
