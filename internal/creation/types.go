package creation

import (
	"property-listings/internal/listing"
	"property-listings/internal/model"
	"property-listings/pkg/fetchstate"
)

type Options struct {
	// OnChange, when set, receives the current state after every transition.
	OnChange func(State)
}

// State is a snapshot of the form.
type State struct {
	Draft  listing.Draft
	Errors listing.ErrorMap
	Submit fetchstate.State[model.Listing]
}

// FieldError returns the message shown under f, if any.
func (s State) FieldError(f listing.Field) string {
	return s.Errors[f]
}

// Submitting reports whether the form must be locked.
func (s State) Submitting() bool {
	return s.Submit.IsLoading()
}
