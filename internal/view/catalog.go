package view

import (
	"fmt"
	"strings"

	"property-listings/internal/catalog"
	"property-listings/internal/model"
)

// Catalog renders the listings overview.
func Catalog(s catalog.State) string {
	var b strings.Builder

	switch {
	case s.Fetch.IsIdle(), s.Fetch.IsLoading():
		b.WriteString("Loading properties...\n")
	case s.Fetch.IsFailure():
		fmt.Fprintf(&b, "Error: %s\n", s.Fetch.Message())
	case s.Empty() != catalog.EmptyNone:
		b.WriteString(s.EmptyMessage())
		b.WriteString("\n")
	default:
		fmt.Fprintf(&b, "%s found\n\n", countLabel(s.Count()))
		for i, l := range s.Fetch.Data {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(Card(l))
		}
	}
	return b.String()
}

// Card renders one listing in the overview.
func Card(l model.Listing) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n", Price(l.Price), Text(l.Title))
	fmt.Fprintf(&b, "  Location: %s\n", Text(l.Location))
	fmt.Fprintf(&b, "  %s\n", Excerpt(Text(l.Description)))
	fmt.Fprintf(&b, "  Listed %s\n", ShortDate(l.CreatedAt))
	return b.String()
}

// Choice is the one-line label of a listing in a selection prompt.
func Choice(l model.Listing) string {
	return fmt.Sprintf("%s - %s (%s)", Text(l.Title), Price(l.Price), Text(l.Location))
}

func countLabel(n int) string {
	if n == 1 {
		return "1 property"
	}
	return fmt.Sprintf("%d properties", n)
}
