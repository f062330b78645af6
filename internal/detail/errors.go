package detail

import "errors"

var (
	ErrClosed    = errors.New("detail controller is closed")
	ErrNoListing = errors.New("no listing id to summarize")
)
