package catalog

import (
	"context"
	"sync"

	"property-listings/internal/listing/repository"
	"property-listings/internal/model"
	"property-listings/pkg/fetchstate"
	"property-listings/pkg/log"
)

// implController is the private implementation of Controller.
type implController struct {
	repo     repository.Repository
	l        log.Logger
	onChange func(State)

	// base is cancelled by Close and aborts every in-flight request.
	base   context.Context
	cancel context.CancelFunc

	notifyMu sync.Mutex

	mu     sync.Mutex
	gen    uint64 // bumped by every Load; results from older generations are dropped
	closed bool
	state  State
}

// New creates a catalog controller in the Idle state.
func New(repo repository.Repository, l log.Logger, opt Options) *implController {
	if l == nil {
		l = log.NewNopLogger()
	}
	base, cancel := context.WithCancel(context.Background())
	return &implController{
		repo:     repo,
		l:        l,
		onChange: opt.OnChange,
		base:     base,
		cancel:   cancel,
		state:    State{Fetch: fetchstate.Idle[[]model.Listing]()},
	}
}

// State returns a snapshot of the current state.
func (c *implController) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.state
	if s.Fetch.Data != nil {
		s.Fetch.Data = append([]model.Listing(nil), s.Fetch.Data...)
	}
	return s
}

// Close cancels in-flight requests; later results and calls leave the state untouched.
func (c *implController) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	c.cancel()
}

func (c *implController) notify() {
	if c.onChange == nil {
		return
	}
	c.notifyMu.Lock()
	defer c.notifyMu.Unlock()
	c.onChange(c.State())
}

var _ Controller = (*implController)(nil)
