package httpapi

import (
	"context"
	"net/http"
	"net/url"

	"property-listings/internal/listing/repository"
	"property-listings/internal/model"
)

// ListListings fetches GET /listings, filtered server-side when opt.Search is set.
func (c *Client) ListListings(ctx context.Context, opt repository.ListListingsOptions) ([]model.Listing, error) {
	path := "/listings"
	if opt.Search != "" {
		path += "?" + url.Values{"search": []string{opt.Search}}.Encode()
	}

	var listings []model.Listing
	if err := c.call(ctx, http.MethodGet, "/listings", path, nil, &listings); err != nil {
		return nil, err
	}
	if listings == nil {
		listings = []model.Listing{}
	}
	return listings, nil
}

// GetListing fetches GET /listings/<id>.
func (c *Client) GetListing(ctx context.Context, id string) (model.Listing, error) {
	var l model.Listing
	if err := c.call(ctx, http.MethodGet, "/listings/:id", "/listings/"+url.PathEscape(id), nil, &l); err != nil {
		return model.Listing{}, err
	}
	return l, nil
}

// CreateListing posts a new listing; the server assigns id and created_at.
func (c *Client) CreateListing(ctx context.Context, opt repository.CreateListingOptions) (model.Listing, error) {
	var l model.Listing
	if err := c.call(ctx, http.MethodPost, "/listings", "/listings", opt, &l); err != nil {
		return model.Listing{}, err
	}
	return l, nil
}

// GenerateSummary requests POST /listings/<id>/summary.
func (c *Client) GenerateSummary(ctx context.Context, id string) (model.Summary, error) {
	var s model.Summary
	path := "/listings/" + url.PathEscape(id) + "/summary"
	if err := c.call(ctx, http.MethodPost, "/listings/:id/summary", path, nil, &s); err != nil {
		return model.Summary{}, err
	}
	return s, nil
}

// Health calls the liveness probe.
func (c *Client) Health(ctx context.Context) (model.Health, error) {
	var h model.Health
	if err := c.call(ctx, http.MethodGet, "/health", "/health", nil, &h); err != nil {
		return model.Health{}, err
	}
	return h, nil
}
