// Package fake provides a programmable repository.Repository for tests.
package fake

import (
	"context"
	"sync"

	"property-listings/internal/listing/repository"
	"property-listings/internal/model"
)

// Call records one invocation.
type Call struct {
	Method string
	Arg    any
}

// Repository dispatches every method to the matching func field.
// Unset funcs return zero values.
type Repository struct {
	ListFunc    func(ctx context.Context, opt repository.ListListingsOptions) ([]model.Listing, error)
	GetFunc     func(ctx context.Context, id string) (model.Listing, error)
	CreateFunc  func(ctx context.Context, opt repository.CreateListingOptions) (model.Listing, error)
	SummaryFunc func(ctx context.Context, id string) (model.Summary, error)
	HealthFunc  func(ctx context.Context) (model.Health, error)

	mu    sync.Mutex
	calls []Call
}

var _ repository.Repository = (*Repository)(nil)

func (r *Repository) record(method string, arg any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, Call{Method: method, Arg: arg})
}

// Calls returns the recorded invocations of method ("" for all).
func (r *Repository) Calls(method string) []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []Call
	for _, c := range r.calls {
		if method == "" || c.Method == method {
			out = append(out, c)
		}
	}
	return out
}

func (r *Repository) ListListings(ctx context.Context, opt repository.ListListingsOptions) ([]model.Listing, error) {
	r.record("ListListings", opt)
	if r.ListFunc == nil {
		return []model.Listing{}, nil
	}
	return r.ListFunc(ctx, opt)
}

func (r *Repository) GetListing(ctx context.Context, id string) (model.Listing, error) {
	r.record("GetListing", id)
	if r.GetFunc == nil {
		return model.Listing{}, nil
	}
	return r.GetFunc(ctx, id)
}

func (r *Repository) CreateListing(ctx context.Context, opt repository.CreateListingOptions) (model.Listing, error) {
	r.record("CreateListing", opt)
	if r.CreateFunc == nil {
		return model.Listing{}, nil
	}
	return r.CreateFunc(ctx, opt)
}

func (r *Repository) GenerateSummary(ctx context.Context, id string) (model.Summary, error) {
	r.record("GenerateSummary", id)
	if r.SummaryFunc == nil {
		return model.Summary{}, nil
	}
	return r.SummaryFunc(ctx, id)
}

func (r *Repository) Health(ctx context.Context) (model.Health, error) {
	r.record("Health", nil)
	if r.HealthFunc == nil {
		return model.Health{Status: "healthy"}, nil
	}
	return r.HealthFunc(ctx)
}
