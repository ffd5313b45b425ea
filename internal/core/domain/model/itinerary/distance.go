package itinerary

import "reservation/internal/core/domain/model/airport"

// cruiseSpeedKmh is the assumed cruise speed used to estimate flight time
// from distance.
const cruiseSpeedKmh = 800.0

// DistanceFunc estimates the distance in kilometers between two airports.
// The distance model is deliberately pluggable; the default is a flat
// placeholder, not great-circle math.
type DistanceFunc func(from, to airport.Airport) int

// FixedDistance returns a DistanceFunc reporting the same distance for every
// pair of airports.
func FixedDistance(km int) DistanceFunc {
	return func(airport.Airport, airport.Airport) int {
		return km
	}
}

// defaultDistance is the placeholder model used when no estimator is supplied.
var defaultDistance = FixedDistance(500)
