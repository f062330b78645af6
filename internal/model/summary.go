package model

// Summary is an on-demand bullet-point digest of a listing.
type Summary struct {
	ListingID   string    `json:"listing_id"`
	Points      []string  `json:"summary"`
	GeneratedAt Timestamp `json:"generated_at"`

	// Fallback marks a locally synthesized placeholder used when generation failed.
	Fallback bool `json:"-"`
}
