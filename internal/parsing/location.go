package parsing

import "strings"

// Location is a decomposed place string. Fields that the source string does
// not carry stay nil.
type Location struct {
	City     *string `json:"city"`
	Province *string `json:"province"`
	Country  *string `json:"country"`
}

// ParseLocation splits a comma-separated location string into its parts.
// One segment is treated as a country, two as city and country, and three or
// more as city, province, and country.
func ParseLocation(value string) Location {
	cleaned := CleanText(value)
	if cleaned == "" {
		return Location{}
	}

	parts := strings.Split(cleaned, ",")
	segments := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			segments = append(segments, s)
		}
	}

	switch len(segments) {
	case 0:
		return Location{}
	case 1:
		return Location{Country: &segments[0]}
	case 2:
		return Location{City: &segments[0], Country: &segments[1]}
	default:
		return Location{City: &segments[0], Province: &segments[1], Country: &segments[2]}
	}
}
