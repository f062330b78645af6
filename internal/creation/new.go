package creation

import (
	"context"
	"sync"

	"property-listings/internal/listing"
	"property-listings/internal/listing/repository"
	"property-listings/internal/model"
	"property-listings/pkg/fetchstate"
	"property-listings/pkg/log"
)

type implController struct {
	repo     repository.Repository
	l        log.Logger
	onChange func(State)

	base   context.Context
	cancel context.CancelFunc

	notifyMu sync.Mutex

	mu     sync.Mutex
	gen    uint64 // bumped by Reset and every submit
	closed bool
	state  State
}

var _ Controller = (*implController)(nil)

// New creates a controller holding an empty draft.
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
		state:    initialState(),
	}
}

func initialState() State {
	return State{
		Errors: listing.ErrorMap{},
		Submit: fetchstate.Idle[model.Listing](),
	}
}

func (c *implController) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.state
	s.Errors = c.state.Errors.Clone()
	return s
}

// Close cancels an in-flight submit.
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
