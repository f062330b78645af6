// Package view renders controller states as plain terminal text.
package view

import (
	"html"
	"math"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"property-listings/internal/model"
)

const (
	ExcerptLength = 120

	shortDateLayout = "Jan 2, 2006"
	longDateLayout  = "January 2, 2006 at 03:04 PM"
)

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy

	printer = message.NewPrinter(language.AmericanEnglish)
)

// Text strips any markup from server-supplied text and decodes entities.
func Text(raw string) string {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return strings.TrimSpace(html.UnescapeString(textPolicy.Sanitize(raw)))
}

// Price formats p as whole US dollars, e.g. $1,250,000.
func Price(p float64) string {
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return "$-"
	}
	if p < 0 {
		return "-" + Price(-p)
	}
	return printer.Sprintf("$%d", int64(math.Round(p)))
}

// ShortDate is the card date, e.g. "Jan 15, 2025".
func ShortDate(ts model.Timestamp) string {
	if ts.IsZero() {
		return "unknown date"
	}
	return ts.Format(shortDateLayout)
}

// LongDate is the detail date, e.g. "January 15, 2025 at 10:30 AM".
func LongDate(ts model.Timestamp) string {
	if ts.IsZero() {
		return "unknown date"
	}
	return ts.Format(longDateLayout)
}

// Excerpt shortens a description to ExcerptLength runes followed by "...".
func Excerpt(description string) string {
	r := []rune(description)
	if len(r) <= ExcerptLength {
		return description
	}
	return string(r[:ExcerptLength]) + "..."
}
