package catalog

import "context"

// Controller drives the listings catalog view: the collection plus its search query.
// Methods may be called from different goroutines; the latest Load always wins.
type Controller interface {
	Load(ctx context.Context, query string) error
	Search(ctx context.Context, text string) error
	ClearSearch(ctx context.Context) error
	Retry(ctx context.Context) error
	State() State
	Close()
}
