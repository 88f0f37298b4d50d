package services

import (
	"dhl-location-service/internal/domain"
	"regexp"
)

var digitRun = regexp.MustCompile(`[0-9]+`)

// FilterLocations keeps locations that are open on at least one weekend day
// and have no odd number in their street address.
//
// This is a demo policy, not a business rule. It is passed to the location
// finder as a ports.LocationFilter and can be replaced without touching it.
func FilterLocations(locations []domain.Location) []domain.Location {
	out := make([]domain.Location, 0, len(locations))
	for _, loc := range locations {
		if IsClosedOnWeekends(loc.OpeningHours) {
			continue
		}
		if ContainsOddNumber(loc.Place.Address.StreetAddress) {
			continue
		}
		out = append(out, loc)
	}

	return out
}

// IsClosedOnWeekends reports whether no entry falls on Saturday or Sunday.
// Empty opening hours count as closed.
func IsClosedOnWeekends(hours []domain.OpeningHours) bool {
	for _, h := range hours {
		if h.DayOfWeek == domain.DaySaturday || h.DayOfWeek == domain.DaySunday {
			return false
		}
	}

	return true
}

// ContainsOddNumber reports whether any maximal run of digits in address is
// an odd number. Parity is read from the last digit so arbitrarily long runs
// never overflow.
func ContainsOddNumber(address string) bool {
	for _, run := range digitRun.FindAllString(address, -1) {
		if (run[len(run)-1]-'0')%2 == 1 {
			return true
		}
	}

	return false
}
