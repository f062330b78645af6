// Package apitest provides an in-memory listings service speaking the same
// HTTP contract as the real one, for use in tests.
package apitest

import (
	"net/http/httptest"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"property-listings/internal/model"
)

// Request is a request received by the fake service.
type Request struct {
	Method    string
	Path      string
	Query     string
	Body      []byte
	RequestID string
}

type failure struct {
	status  int
	message string
	raw     string
}

// Server is a running fake listings service.
type Server struct {
	*httptest.Server

	mu        sync.Mutex
	listings  map[string]model.Listing
	order     []string
	requests  []Request
	failures  map[string]failure // keyed by "METHOD /route"
	summaries int
	now       func() time.Time
}

// New starts a fake service seeded with listings. Call Close when done.
func New(seed ...model.Listing) *Server {
	gin.SetMode(gin.TestMode)

	srv := &Server{
		listings: make(map[string]model.Listing),
		failures: make(map[string]failure),
		now:      time.Now,
	}
	for _, l := range seed {
		srv.put(l)
	}

	engine := gin.New()
	engine.Use(gin.Recovery(), srv.record)
	srv.mapHandlers(engine)

	srv.Server = httptest.NewServer(engine)
	return srv
}

// BaseURL is the API root including the /api prefix.
func (srv *Server) BaseURL() string {
	return srv.URL + "/api"
}

// FailWithError makes every request matching route ("GET /listings/:id") answer
// with status and an {"error": message} body.
func (srv *Server) FailWithError(route string, status int, message string) {
	srv.mu.Lock()
	defer srv.mu.Unlock()
	srv.failures[route] = failure{status: status, message: message}
}

// FailWithBody makes route answer with status and a raw, non-JSON body.
func (srv *Server) FailWithBody(route string, status int, raw string) {
	srv.mu.Lock()
	defer srv.mu.Unlock()
	srv.failures[route] = failure{status: status, raw: raw}
}

// Recover clears every injected failure.
func (srv *Server) Recover() {
	srv.mu.Lock()
	defer srv.mu.Unlock()
	srv.failures = make(map[string]failure)
}

// Requests returns a copy of the requests received so far.
func (srv *Server) Requests() []Request {
	srv.mu.Lock()
	defer srv.mu.Unlock()
	out := make([]Request, len(srv.requests))
	copy(out, srv.requests)
	return out
}

// Listing returns a stored listing by id.
func (srv *Server) Listing(id string) (model.Listing, bool) {
	srv.mu.Lock()
	defer srv.mu.Unlock()
	l, ok := srv.listings[id]
	return l, ok
}

func (srv *Server) put(l model.Listing) {
	if _, exists := srv.listings[l.ID]; !exists {
		srv.order = append(srv.order, l.ID)
	}
	srv.listings[l.ID] = l
}

// SampleListings returns the three listings the reference service starts with.
func SampleListings() []model.Listing {
	created := model.NewTimestamp(time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC))
	return []model.Listing{
		{
			ID:          "sample-apartment",
			Title:       "Modern Downtown Apartment",
			Price:       350000,
			Location:    "Downtown Seattle, WA",
			Description: "Beautiful 2-bedroom apartment with city views, modern amenities, and walking distance to shops and restaurants.",
			CreatedAt:   created,
		},
		{
			ID:          "sample-house",
			Title:       "Cozy Suburban House",
			Price:       480000,
			Location:    "Bellevue, WA",
			Description: "Charming 3-bedroom house with large backyard, perfect for families. Updated kitchen and bathrooms.",
			CreatedAt:   created,
		},
		{
			ID:          "sample-condo",
			Title:       "Luxury Waterfront Condo",
			Price:       750000,
			Location:    "Lake Washington, WA",
			Description: "Stunning waterfront condominium with panoramic lake views, high-end finishes, and resort-style amenities.",
			CreatedAt:   created,
		},
	}
}
