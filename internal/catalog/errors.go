package catalog

import "errors"

var ErrClosed = errors.New("catalog controller is closed")
