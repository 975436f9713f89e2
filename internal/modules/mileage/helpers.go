package mileage

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// RatePerMile is the fixed reimbursement rate applied to total trip distance.
const RatePerMile = 0.45

// MetersPerMile conversion factor used when relaying upstream distances.
const metersToMiles = 0.000621371

var milesPattern = regexp.MustCompile(`([0-9]+(?:\.[0-9]+)?)\s*miles`)

// ParseMiles extracts the leading decimal number from a "<number> miles"
// distance string. Text that doesn't match yields 0, so a malformed upstream
// value zeroes out rather than failing the caller.
func ParseMiles(text string) float64 {
	m := milesPattern.FindStringSubmatch(text)
	if m == nil {
		return 0
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0
	}
	return v
}

// Reimbursement converts total miles to a currency amount at RatePerMile,
// rounded to 2 decimal places.
func Reimbursement(miles float64) float64 {
	return math.Round(miles*RatePerMile*100) / 100
}

// FormatMeters renders a meter count the way the mileage endpoint reports
// distances: miles to 2 decimals with a "miles" suffix.
func FormatMeters(meters int) string {
	return fmt.Sprintf("%.2f miles", float64(meters)*metersToMiles)
}

// FormatTripDatetime combines a date and an optional clock time into the
// timestamp stored on a trip. A date without a time saves as midnight.
// Returns ok=false when no date is given.
func FormatTripDatetime(date, clock string) (string, bool) {
	if date == "" {
		return "", false
	}
	if clock == "" {
		clock = "00:00"
	}
	return fmt.Sprintf("%sT%s:00", date, clock), true
}
