package apitest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"property-listings/internal/model"
	"property-listings/pkg/response"
)

var mockSummaries = [][]string{
	{
		"Prime location with excellent walkability and transit access",
		"Modern amenities and updated fixtures throughout the property",
		"Competitive pricing for the local market and property type",
	},
	{
		"Spacious layout perfect for families or professionals",
		"Well-maintained property with recent renovations",
		"Great investment opportunity in a growing neighborhood",
	},
	{
		"Stunning views and premium finishes justify the price point",
		"Low maintenance lifestyle with community amenities included",
		"Excellent resale potential in this desirable area",
	},
}

func (srv *Server) mapHandlers(r *gin.Engine) {
	api := r.Group("/api")
	api.GET("/health", srv.health)
	api.GET("/listings", srv.list)
	api.POST("/listings", srv.create)
	api.GET("/listings/:id", srv.detail)
	api.POST("/listings/:id/summary", srv.summary)

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "Endpoint not found")
	})
}

// record captures the request and applies injected failures.
func (srv *Server) record(c *gin.Context) {
	var body []byte
	if c.Request.Body != nil {
		body, _ = io.ReadAll(c.Request.Body)
		c.Request.Body = io.NopCloser(bytes.NewReader(body))
	}

	srv.mu.Lock()
	srv.requests = append(srv.requests, Request{
		Method:    c.Request.Method,
		Path:      c.Request.URL.Path,
		Query:     c.Request.URL.RawQuery,
		Body:      body,
		RequestID: c.GetHeader("X-Request-ID"),
	})
	srv.mu.Unlock()

	c.Next()
}

func (srv *Server) injected(c *gin.Context) bool {
	route := c.Request.Method + " " + strings.TrimPrefix(c.FullPath(), "/api")

	srv.mu.Lock()
	f, ok := srv.failures[route]
	srv.mu.Unlock()
	if !ok {
		return false
	}

	if f.raw != "" || f.message == "" {
		c.Data(f.status, "text/html; charset=utf-8", []byte(f.raw))
		c.Abort()
		return true
	}
	response.Error(c, f.status, f.message)
	return true
}

func (srv *Server) health(c *gin.Context) {
	if srv.injected(c) {
		return
	}
	srv.mu.Lock()
	count := len(srv.listings)
	srv.mu.Unlock()

	response.OK(c, gin.H{
		"status":         "healthy",
		"timestamp":      model.NewTimestamp(srv.now()),
		"listings_count": count,
	})
}

func (srv *Server) list(c *gin.Context) {
	if srv.injected(c) {
		return
	}
	search := strings.ToLower(c.Query("search"))

	srv.mu.Lock()
	defer srv.mu.Unlock()

	out := make([]model.Listing, 0, len(srv.order))
	for _, id := range srv.order {
		l := srv.listings[id]
		if search == "" ||
			strings.Contains(strings.ToLower(l.Title), search) ||
			strings.Contains(strings.ToLower(l.Location), search) ||
			strings.Contains(strings.ToLower(l.Description), search) {
			out = append(out, l)
		}
	}
	response.OK(c, out)
}

func (srv *Server) detail(c *gin.Context) {
	if srv.injected(c) {
		return
	}
	l, ok := srv.Listing(c.Param("id"))
	if !ok {
		response.NotFound(c, "Listing not found")
		return
	}
	response.OK(c, l)
}

func (srv *Server) create(c *gin.Context) {
	if srv.injected(c) {
		return
	}

	var req map[string]any
	if err := json.NewDecoder(c.Request.Body).Decode(&req); err != nil {
		response.BadRequest(c, "Invalid JSON body")
		return
	}
	for _, field := range []string{"title", "price", "location", "description"} {
		if v, ok := req[field]; !ok || v == nil || v == "" {
			response.BadRequest(c, "Missing required field: "+field)
			return
		}
	}

	price, ok := toFloat(req["price"])
	if !ok {
		response.BadRequest(c, "Price must be a valid number")
		return
	}
	if price <= 0 {
		response.BadRequest(c, "Price must be a positive number")
		return
	}

	l := model.Listing{
		ID:          uuid.NewString(),
		Title:       strings.TrimSpace(fmt.Sprint(req["title"])),
		Price:       price,
		Location:    strings.TrimSpace(fmt.Sprint(req["location"])),
		Description: strings.TrimSpace(fmt.Sprint(req["description"])),
		CreatedAt:   model.NewTimestamp(srv.now()),
	}

	srv.mu.Lock()
	srv.put(l)
	srv.mu.Unlock()

	response.Created(c, l)
}

func (srv *Server) summary(c *gin.Context) {
	if srv.injected(c) {
		return
	}
	id := c.Param("id")
	if _, ok := srv.Listing(id); !ok {
		response.NotFound(c, "Listing not found")
		return
	}

	srv.mu.Lock()
	points := mockSummaries[srv.summaries%len(mockSummaries)]
	srv.summaries++
	srv.mu.Unlock()

	response.OK(c, model.Summary{
		ListingID:   id,
		Points:      points,
		GeneratedAt: model.NewTimestamp(srv.now()),
	})
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	default:
		return 0, false
	}
}
