package listing_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"property-listings/internal/listing"
)

func validDraft() listing.Draft {
	return listing.Draft{
		Title:       "Test Property",
		Price:       "300000",
		Location:    "Test Location",
		Description: "This is a test property description with enough characters.",
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name  string
		draft listing.Draft
		want  listing.ErrorMap
	}{
		{
			name:  "Valid Draft",
			draft: validDraft(),
			want:  listing.ErrorMap{},
		},
		{
			name:  "All Empty",
			draft: listing.Draft{},
			want: listing.ErrorMap{
				listing.FieldTitle:       "Title is required",
				listing.FieldPrice:       "Price is required",
				listing.FieldLocation:    "Location is required",
				listing.FieldDescription: "Description is required",
			},
		},
		{
			name:  "Whitespace Only Counts As Empty",
			draft: listing.Draft{Title: "   ", Price: " \t", Location: "\n", Description: "  "},
			want: listing.ErrorMap{
				listing.FieldTitle:       "Title is required",
				listing.FieldPrice:       "Price is required",
				listing.FieldLocation:    "Location is required",
				listing.FieldDescription: "Description is required",
			},
		},
		{
			name: "Too Short Fields",
			draft: listing.Draft{
				Title:       "123",
				Price:       "100000",
				Location:    "NY",
				Description: "Too short",
			},
			want: listing.ErrorMap{
				listing.FieldTitle:       "Title must be at least 5 characters long",
				listing.FieldLocation:    "Location must be at least 3 characters long",
				listing.FieldDescription: "Description must be at least 20 characters long",
			},
		},
		{
			name: "Length Counted After Trim",
			draft: listing.Draft{
				Title:       "  abcd  ",
				Price:       "1",
				Location:    "  ab ",
				Description: "   " + strings.Repeat("x", 19) + "   ",
			},
			want: listing.ErrorMap{
				listing.FieldTitle:       "Title must be at least 5 characters long",
				listing.FieldLocation:    "Location must be at least 3 characters long",
				listing.FieldDescription: "Description must be at least 20 characters long",
			},
		},
		{
			name: "Too Long Fields",
			draft: listing.Draft{
				Title:       strings.Repeat("t", 101),
				Price:       "10000000",
				Location:    strings.Repeat("l", 101),
				Description: strings.Repeat("d", 1001),
			},
			want: listing.ErrorMap{
				listing.FieldTitle:       "Title must be less than 100 characters",
				listing.FieldLocation:    "Location must be less than 100 characters",
				listing.FieldDescription: "Description must be less than 1000 characters",
			},
		},
		{
			name: "Exact Upper Bounds Are Valid",
			draft: listing.Draft{
				Title:       strings.Repeat("t", 100),
				Price:       "10000000",
				Location:    strings.Repeat("l", 100),
				Description: strings.Repeat("d", 1000),
			},
			want: listing.ErrorMap{},
		},
		{
			name: "Multibyte Characters Count As One",
			draft: listing.Draft{
				Title:       "Café",
				Price:       "5",
				Location:    "Zürich, CH",
				Description: "Wohnung mit Seeblick über der Stadt",
			},
			want: listing.ErrorMap{
				listing.FieldTitle: "Title must be at least 5 characters long",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := listing.Validate(tt.draft)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Validate() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestValidatePrice(t *testing.T) {
	tests := []struct {
		price string
		want  string
	}{
		{price: "", want: "Price is required"},
		{price: "   ", want: "Price is required"},
		{price: "abc", want: "Price must be a positive number"},
		{price: "12abc", want: "Price must be a positive number"},
		{price: "NaN", want: "Price must be a positive number"},
		{price: "0", want: "Price must be a positive number"},
		{price: "-1000", want: "Price must be a positive number"},
		{price: "10000000.01", want: "Price seems unreasonably high"},
		{price: "1e400", want: "Price seems unreasonably high"},
		{price: "Inf", want: "Price seems unreasonably high"},
		{price: "0.5", want: ""},
		{price: " 450000 ", want: ""},
		{price: "10000000", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.price, func(t *testing.T) {
			d := validDraft()
			d.Price = tt.price

			got := listing.Validate(d)[listing.FieldPrice]
			if got != tt.want {
				t.Errorf("price %q: got %q, want %q", tt.price, got, tt.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	t.Run("Trims And Parses", func(t *testing.T) {
		d := listing.Draft{
			Title:       "  Test Property ",
			Price:       " 300000 ",
			Location:    "Test Location  ",
			Description: "  This is a test property description with enough characters.",
		}

		got, err := d.Normalize()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := listing.Submission{
			Title:       "Test Property",
			Price:       300000,
			Location:    "Test Location",
			Description: "This is a test property description with enough characters.",
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Normalize() mismatch (-want +got):\n%s", diff)
		}
		if d.Title != "  Test Property " {
			t.Errorf("draft must keep the untrimmed value, got %q", d.Title)
		}
	})

	t.Run("Invalid Draft", func(t *testing.T) {
		_, err := listing.Draft{}.Normalize()
		if !errors.Is(err, listing.ErrValidationFailed) {
			t.Fatalf("expected ErrValidationFailed, got %v", err)
		}
		var vErr *listing.ValidationError
		if !errors.As(err, &vErr) || len(vErr.Errors) != 4 {
			t.Fatalf("expected 4 field errors, got %v", err)
		}
	})
}

func TestDraftFields(t *testing.T) {
	var d listing.Draft
	for _, f := range listing.Fields {
		if err := d.Set(f, "value-"+string(f)); err != nil {
			t.Fatalf("Set(%s): %v", f, err)
		}
		got, err := d.Get(f)
		if err != nil || got != "value-"+string(f) {
			t.Errorf("Get(%s) = %q, %v", f, got, err)
		}
	}

	if err := d.Set("bedrooms", "3"); !errors.Is(err, listing.ErrUnknownField) {
		t.Errorf("expected ErrUnknownField, got %v", err)
	}
	if _, err := listing.ParseField("bedrooms"); !errors.Is(err, listing.ErrUnknownField) {
		t.Errorf("expected ErrUnknownField, got %v", err)
	}
	if f, err := listing.ParseField("price"); err != nil || f != listing.FieldPrice {
		t.Errorf("ParseField(price) = %q, %v", f, err)
	}
}
