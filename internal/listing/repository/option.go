package repository

// ListListingsOptions filters the collection. An empty Search returns everything;
// matching over title, location and description happens server-side.
type ListListingsOptions struct {
	Search string
}

// CreateListingOptions is the body of a create request. Strings are expected trimmed.
type CreateListingOptions struct {
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Location    string  `json:"location"`
	Description string  `json:"description"`
}
