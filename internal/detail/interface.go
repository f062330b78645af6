package detail

import "context"

// Controller drives a single-listing view and its on-demand summary.
type Controller interface {
	Load(ctx context.Context, id string) error
	Retry(ctx context.Context) error
	RequestSummary(ctx context.Context) error
	RequestSummaryFor(ctx context.Context, id string) error
	State() State
	Close()
}
