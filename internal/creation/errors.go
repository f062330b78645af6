package creation

import "errors"

var (
	ErrClosed           = errors.New("creation controller is closed")
	ErrSubmitInProgress = errors.New("a submit is already in progress")
	ErrSuperseded       = errors.New("submit superseded by reset")
)
