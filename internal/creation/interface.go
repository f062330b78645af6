package creation

import "context"

// Controller drives the new-listing form.
type Controller interface {
	UpdateField(name, value string) error
	Submit(ctx context.Context) (string, error)
	Reset()
	State() State
	Close()
}
