package domain

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Field limits of the search form, in characters.
const (
	MaxCityLength       = 64
	MaxPostalCodeLength = 20
)

// ErrCriteriaTooLong reports a search field over its length limit.
var ErrCriteriaTooLong = errors.New("search criteria too long")

// Search input supplied by the visitor. Values are forwarded to the
// location finder as-is; only emptiness and length are checked.
type SearchCriteria struct {
	Country    string
	PostalCode string
	City       string
}

// Return an error naming every empty field, or one wrapping
// ErrCriteriaTooLong for fields over their limit. Nil means the criteria can
// be searched.
func (c SearchCriteria) Validate() error {
	var missing []string
	if strings.TrimSpace(c.Country) == "" {
		missing = append(missing, "country")
	}
	if strings.TrimSpace(c.PostalCode) == "" {
		missing = append(missing, "postal_code")
	}
	if strings.TrimSpace(c.City) == "" {
		missing = append(missing, "city")
	}

	if len(missing) > 0 {
		return fmt.Errorf("search criteria: missing %s", strings.Join(missing, ", "))
	}

	var long []string
	if n := utf8.RuneCountInString(c.City); n > MaxCityLength {
		long = append(long, fmt.Sprintf("city has %d characters, limit %d", n, MaxCityLength))
	}
	if n := utf8.RuneCountInString(c.PostalCode); n > MaxPostalCodeLength {
		long = append(long, fmt.Sprintf("postal_code has %d characters, limit %d", n, MaxPostalCodeLength))
	}
	if len(long) > 0 {
		return fmt.Errorf("%w: %s", ErrCriteriaTooLong, strings.Join(long, "; "))
	}

	return nil
}
