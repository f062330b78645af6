package catalog

import (
	"fmt"

	"property-listings/internal/model"
	"property-listings/pkg/fetchstate"
)

// Options configures a catalog controller.
type Options struct {
	// OnChange, when set, receives the current state after every transition.
	// It must not call mutating controller methods synchronously.
	OnChange func(State)
}

// State is a snapshot of the catalog view.
type State struct {
	Fetch fetchstate.State[[]model.Listing]
	Query string // last requested query; a Success always belongs to it
}

// EmptyKind distinguishes why a successful load has nothing to show.
type EmptyKind int

const (
	EmptyNone       EmptyKind = iota // not a successful empty result
	EmptyNoListings                  // nothing exists at all
	EmptyNoMatch                     // the current query filtered everything out
)

// Count is the number of listings in a successful result.
func (s State) Count() int {
	if !s.Fetch.IsSuccess() {
		return 0
	}
	return len(s.Fetch.Data)
}

// Empty classifies an empty successful result.
func (s State) Empty() EmptyKind {
	if !s.Fetch.IsSuccess() || len(s.Fetch.Data) > 0 {
		return EmptyNone
	}
	if s.Query == "" {
		return EmptyNoListings
	}
	return EmptyNoMatch
}

// EmptyMessage is the text shown for an empty result, or "" when not empty.
func (s State) EmptyMessage() string {
	switch s.Empty() {
	case EmptyNoListings:
		return "No properties available at the moment."
	case EmptyNoMatch:
		return fmt.Sprintf("No properties match %q. Try a different search term.", s.Query)
	default:
		return ""
	}
}

// CanClearFilter reports whether the view should offer to show all properties again.
func (s State) CanClearFilter() bool {
	return s.Empty() == EmptyNoMatch
}

// CanRetry reports whether the last load failed.
func (s State) CanRetry() bool {
	return s.Fetch.IsFailure()
}
