package detail

import (
	"context"
	"sync"
	"time"

	"property-listings/internal/listing/repository"
	"property-listings/internal/model"
	"property-listings/pkg/fetchstate"
	"property-listings/pkg/log"
)

// implController is the private implementation of Controller.
type implController struct {
	repo          repository.Repository
	l             log.Logger
	redirectDelay time.Duration
	onRedirect    func()
	onChange      func(State)
	now           func() time.Time

	base   context.Context
	cancel context.CancelFunc

	notifyMu sync.Mutex

	mu         sync.Mutex
	listingGen uint64
	summaryGen uint64
	closed     bool
	state      State

	redirect    *time.Timer
	redirectSeq uint64 // identifies the only timer allowed to fire
}

var _ Controller = (*implController)(nil)

// New creates a detail controller in the Idle state.
func New(repo repository.Repository, l log.Logger, opt Options) *implController {
	if l == nil {
		l = log.NewNopLogger()
	}
	if opt.RedirectDelay <= 0 {
		opt.RedirectDelay = DefaultRedirectDelay
	}
	if opt.Now == nil {
		opt.Now = time.Now
	}
	base, cancel := context.WithCancel(context.Background())
	return &implController{
		repo:          repo,
		l:             l,
		redirectDelay: opt.RedirectDelay,
		onRedirect:    opt.OnRedirect,
		onChange:      opt.OnChange,
		now:           opt.Now,
		base:          base,
		cancel:        cancel,
		state: State{
			Listing: fetchstate.Idle[model.Listing](),
			Summary: fetchstate.Idle[model.Summary](),
		},
	}
}

// State returns a snapshot of the current state.
func (c *implController) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.state
	if s.Summary.Data.Points != nil {
		s.Summary.Data.Points = append([]string(nil), s.Summary.Data.Points...)
	}
	return s
}

// Close cancels in-flight requests and the pending redirect.
func (c *implController) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	c.stopRedirectLocked()
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

// requestContext derives a context that is also cancelled by Close.
func (c *implController) requestContext(ctx context.Context) (context.Context, func()) {
	reqCtx, cancel := context.WithCancel(ctx)
	stop := context.AfterFunc(c.base, cancel)
	return reqCtx, func() {
		stop()
		cancel()
	}
}
