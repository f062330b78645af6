package detail

import (
	"time"

	"property-listings/internal/listing/repository"
	"property-listings/internal/model"
	"property-listings/pkg/fetchstate"
)

const DefaultRedirectDelay = 3 * time.Second

// FallbackPoints are shown when a summary cannot be generated.
var FallbackPoints = []string{
	"Unable to generate AI summary at this time",
	"Please check the listing details below",
	"Contact support if this issue persists",
}

// Options configures a detail controller.
type Options struct {
	// RedirectDelay is how long a not-found listing stays on screen before OnRedirect.
	RedirectDelay time.Duration
	// OnRedirect navigates away from a listing that does not exist.
	OnRedirect func()
	// OnChange, when set, receives the current state after every transition.
	// It must not call mutating controller methods synchronously.
	OnChange func(State)
	// Now stamps fallback summaries; defaults to time.Now.
	Now func() time.Time
}

// State is a snapshot of the detail view. Listing and Summary have independent lifecycles.
type State struct {
	ID      string
	Listing fetchstate.State[model.Listing]
	Summary fetchstate.State[model.Summary]

	// RedirectPending is set while the not-found redirect is scheduled.
	RedirectPending bool
}

// NotFound reports whether the listing load failed because it does not exist.
func (s State) NotFound() bool {
	return s.Listing.IsFailure() && repository.IsNotFound(s.Listing.Err)
}
