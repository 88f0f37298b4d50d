package domain

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Weekday markers used by the DHL API in openingHours.dayOfWeek.
const (
	DaySaturday = "http://schema.org/Saturday"
	DaySunday   = "http://schema.org/Sunday"
)

type LocationID struct {
	LocationID string `json:"locationId"`
	Provider   string `json:"provider"`
}

type LocationInfo struct {
	IDs       []LocationID `json:"ids"`
	Keyword   string       `json:"keyword,omitempty"`
	KeywordID string       `json:"keywordId,omitempty"`
	Type      string       `json:"type"`
}

type Address struct {
	CountryCode     string `json:"countryCode,omitempty"`
	PostalCode      string `json:"postalCode,omitempty"`
	AddressLocality string `json:"addressLocality,omitempty"`
	StreetAddress   string `json:"streetAddress"`
}

type Geo struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type Place struct {
	Address Address `json:"address"`
	Geo     *Geo    `json:"geo,omitempty"`
}

type OpeningHours struct {
	Opens     string `json:"opens,omitempty"`
	Closes    string `json:"closes,omitempty"`
	DayOfWeek string `json:"dayOfWeek"`
}

// Location is a DHL service point or parcel station record.
//
// Only a handful of fields are modelled. The received JSON object is kept
// and re-emitted on marshal so unknown fields pass through untouched.
//
// Decoding is strict only for the fields the filter inspects: the street
// address and the opening-hours weekdays. The other modelled fields are for
// display and are left zero when their JSON type does not match.
type Location struct {
	URL          string         `json:"url"`
	Location     LocationInfo   `json:"location"`
	Name         string         `json:"name"`
	Distance     float64        `json:"distance,omitempty"`
	Place        Place          `json:"place"`
	OpeningHours []OpeningHours `json:"openingHours"`
	ServiceTypes []string       `json:"serviceTypes,omitempty"`

	raw json.RawMessage
}

// locationFields breaks the MarshalJSON/UnmarshalJSON recursion.
type locationFields Location

// filterFields are the parts of a record that filtering depends on.
type filterFields struct {
	Place struct {
		Address struct {
			StreetAddress string `json:"streetAddress"`
		} `json:"address"`
	} `json:"place"`
	OpeningHours []struct {
		DayOfWeek string `json:"dayOfWeek"`
	} `json:"openingHours"`
}

func (l *Location) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}

	var strict filterFields
	if err := json.Unmarshal(b, &strict); err != nil {
		return fmt.Errorf("decode location: %w", err)
	}

	// Type mismatches leave the affected field zero; the rest still decodes.
	var f locationFields
	if err := json.Unmarshal(b, &f); err != nil {
		var te *json.UnmarshalTypeError
		if !errors.As(err, &te) {
			return fmt.Errorf("decode location: %w", err)
		}
	}

	f.Place.Address.StreetAddress = strict.Place.Address.StreetAddress
	if strict.OpeningHours != nil {
		hours := make([]OpeningHours, len(strict.OpeningHours))
		for i, oh := range strict.OpeningHours {
			if i < len(f.OpeningHours) {
				hours[i] = f.OpeningHours[i]
			}
			hours[i].DayOfWeek = oh.DayOfWeek
		}
		f.OpeningHours = hours
	} else {
		f.OpeningHours = nil
	}

	*l = Location(f)
	l.raw = append(json.RawMessage(nil), b...)
	return nil
}

func (l Location) MarshalJSON() ([]byte, error) {
	if len(l.raw) > 0 {
		return l.raw, nil
	}
	return json.Marshal(locationFields(l))
}

// Raw returns the decoded record as generic JSON values, including fields
// that Location does not model.
func (l Location) Raw() (map[string]any, error) {
	b, err := l.MarshalJSON()
	if err != nil {
		return nil, err
	}

	var out map[string]any
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, fmt.Errorf("decode raw location: %w", err)
	}
	return out, nil
}
