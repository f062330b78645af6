package view

import (
	"fmt"
	"strings"

	"property-listings/internal/detail"
)

// Detail renders a single listing with its summary, if any.
func Detail(s detail.State) string {
	var b strings.Builder

	switch {
	case s.Listing.IsIdle(), s.Listing.IsLoading():
		b.WriteString("Loading property details...\n")
		return b.String()
	case s.Listing.IsFailure():
		fmt.Fprintf(&b, "Error: %s\n", s.Listing.Message())
		if s.RedirectPending {
			b.WriteString("Redirecting to home page...\n")
		}
		return b.String()
	}

	l := s.Listing.Data
	fmt.Fprintf(&b, "%s\n%s\n\n", Text(l.Title), Price(l.Price))
	fmt.Fprintf(&b, "Location: %s\n", Text(l.Location))
	fmt.Fprintf(&b, "Listed on %s\n\n", LongDate(l.CreatedAt))
	fmt.Fprintf(&b, "Description\n%s\n", Text(l.Description))

	switch {
	case s.Summary.IsLoading():
		b.WriteString("\nGenerating...\n")
	case s.Summary.IsSuccess():
		sum := s.Summary.Data
		b.WriteString("\nAI-Generated Summary\n")
		for _, p := range sum.Points {
			fmt.Fprintf(&b, "  - %s\n", Text(p))
		}
		fmt.Fprintf(&b, "Generated on %s\n", LongDate(sum.GeneratedAt))
	}
	return b.String()
}
