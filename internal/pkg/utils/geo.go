package utils

import (
	"math"
	"strconv"
	"strings"
)

// Rough degrees-to-kilometers factor at the equator.
const kmPerDegree = 111.0

// ParseCoordinates splits a "lat, lon" string into two floats. The catalog
// stores coordinates as a single free-text field, so anything that is not
// exactly two numeric comma-separated tokens is reported as invalid.
func ParseCoordinates(s string) (lat, lon float64, ok bool) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, false
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, false
	}
	lon, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, false
	}

	return lat, lon, true
}

// PlanarDistanceKm approximates the distance between two points by treating
// degree deltas as planar coordinates. Not a great-circle calculation: it
// degrades near the poles and over large spans, which is acceptable for a
// catalog confined to one small region.
func PlanarDistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := lat1 - lat2
	dLon := lon1 - lon2
	return math.Sqrt(dLat*dLat+dLon*dLon) * kmPerDegree
}

// Round2 rounds to two decimal places, matching the wire precision of
// ratings and distances.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
