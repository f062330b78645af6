package listing

import (
	"errors"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	MaxTitleLength       = 100
	MaxLocationLength    = 100
	MaxDescriptionLength = 1000
	MaxPrice             = 10_000_000
)

// textFields holds the trimmed text fields; lengths are counted in runes.
type textFields struct {
	Title       string `json:"title"       validate:"required,min=5,max=100"`
	Location    string `json:"location"    validate:"required,min=3,max=100"`
	Description string `json:"description" validate:"required,min=20,max=1000"`
}

// messages is keyed by field, then by the validator tag that failed.
var messages = map[Field]map[string]string{
	FieldTitle: {
		"required": "Title is required",
		"min":      "Title must be at least 5 characters long",
		"max":      "Title must be less than 100 characters",
	},
	FieldPrice: {
		"required": "Price is required",
		"numeric":  "Price must be a positive number",
		"gt":       "Price must be a positive number",
		"lte":      "Price seems unreasonably high",
	},
	FieldLocation: {
		"required": "Location is required",
		"min":      "Location must be at least 3 characters long",
		"max":      "Location must be less than 100 characters",
	},
	FieldDescription: {
		"required": "Description is required",
		"min":      "Description must be at least 20 characters long",
		"max":      "Description must be less than 1000 characters",
	},
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		return name
	})
	return v
}

// Validate checks every field of d independently and returns one message per
// failing field. The result is empty iff d can be submitted.
func Validate(d Draft) ErrorMap {
	errs := ErrorMap{}

	text := textFields{
		Title:       strings.TrimSpace(d.Title),
		Location:    strings.TrimSpace(d.Location),
		Description: strings.TrimSpace(d.Description),
	}
	if err := validate.Struct(text); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			for _, fe := range fieldErrs {
				f := Field(fe.Field())
				errs[f] = message(f, fe.Tag())
			}
		}
	}

	if msg, ok := validatePrice(d.Price); !ok {
		errs[FieldPrice] = msg
	}

	return errs
}

func validatePrice(raw string) (string, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return message(FieldPrice, "required"), false
	}

	price, err := parsePrice(trimmed)
	if err != nil {
		return message(FieldPrice, "numeric"), false
	}

	if err := validate.Var(price, "gt=0,lte=10000000"); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return message(FieldPrice, fieldErrs[0].Tag()), false
		}
		return message(FieldPrice, "numeric"), false
	}
	return "", true
}

// parsePrice parses s as a float. Out-of-range values saturate to ±Inf
// so they are reported as too high rather than non-numeric.
func parsePrice(s string) (float64, error) {
	price, err := strconv.ParseFloat(s, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return price, nil
		}
		return 0, err
	}
	if math.IsNaN(price) {
		return 0, strconv.ErrSyntax
	}
	return price, nil
}

func message(f Field, tag string) string {
	if msg, ok := messages[f][tag]; ok {
		return msg
	}
	return string(f) + " is invalid"
}

// Normalize validates d and returns the trimmed, typed submission.
// It fails with a *ValidationError when any rule is violated.
func (d Draft) Normalize() (Submission, error) {
	if errs := Validate(d); !errs.Valid() {
		return Submission{}, &ValidationError{Errors: errs}
	}

	price, err := parsePrice(strings.TrimSpace(d.Price))
	if err != nil {
		return Submission{}, &ValidationError{Errors: ErrorMap{FieldPrice: message(FieldPrice, "numeric")}}
	}

	return Submission{
		Title:       strings.TrimSpace(d.Title),
		Price:       price,
		Location:    strings.TrimSpace(d.Location),
		Description: strings.TrimSpace(d.Description),
	}, nil
}
