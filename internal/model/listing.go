package model

// Listing is a property-for-sale record owned by the listings service.
// The client only ever holds read-only copies.
type Listing struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Price       float64   `json:"price"` // USD
	Location    string    `json:"location"`
	Description string    `json:"description"`
	CreatedAt   Timestamp `json:"created_at"`
}

// Health is the payload of the service liveness probe.
type Health struct {
	Status        string    `json:"status"`
	Timestamp     Timestamp `json:"timestamp"`
	ListingsCount int       `json:"listings_count"`
}
