package view

import (
	"fmt"
	"strings"

	"property-listings/internal/creation"
	"property-listings/internal/listing"
)

var fieldLabels = map[listing.Field]string{
	listing.FieldTitle:       "Property Title",
	listing.FieldPrice:       "Price (USD)",
	listing.FieldLocation:    "Location",
	listing.FieldDescription: "Description",
}

// FieldLabel is the form label of f.
func FieldLabel(f listing.Field) string {
	if label, ok := fieldLabels[f]; ok {
		return label
	}
	return string(f)
}

// Creation renders the form with its field errors and submit banner.
func Creation(s creation.State) string {
	var b strings.Builder

	switch {
	case s.Submit.IsFailure():
		fmt.Fprintf(&b, "Error: %s\n\n", s.Submit.Message())
	case s.Submit.IsLoading():
		b.WriteString("Creating...\n\n")
	case s.Submit.IsSuccess():
		fmt.Fprintf(&b, "Created %q\n\n", Text(s.Submit.Data.Title))
	}

	for _, f := range listing.Fields {
		value, _ := s.Draft.Get(f)
		fmt.Fprintf(&b, "%s: %s\n", FieldLabel(f), value)
		if msg := s.FieldError(f); msg != "" {
			fmt.Fprintf(&b, "  ! %s\n", msg)
		}
	}
	return b.String()
}
