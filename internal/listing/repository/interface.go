package repository

import (
	"context"

	"property-listings/internal/model"
)

// Repository is the client-side view of the remote listings service.
// Every failure is an *APIError; no call is retried.
type Repository interface {
	ListListings(ctx context.Context, opt ListListingsOptions) ([]model.Listing, error)
	GetListing(ctx context.Context, id string) (model.Listing, error)
	CreateListing(ctx context.Context, opt CreateListingOptions) (model.Listing, error)
	GenerateSummary(ctx context.Context, id string) (model.Summary, error)
	Health(ctx context.Context) (model.Health, error)
}
