// Package geo holds great-circle math on orb points (X = longitude, Y = latitude).
package geo

import (
	"math"

	"github.com/paulmach/orb"
)

// EarthRadiusKm is the mean Earth radius used for all distance math.
const EarthRadiusKm = 6371.0

// Point builds an orb.Point from latitude and longitude in decimal degrees.
func Point(lat, lng float64) orb.Point {
	return orb.Point{lng, lat}
}

// DistanceKm returns the Haversine distance between p1 and p2 in kilometers.
func DistanceKm(p1, p2 orb.Point) float64 {
	lat1Rad := p1.Lat() * math.Pi / 180
	lng1Rad := p1.Lon() * math.Pi / 180
	lat2Rad := p2.Lat() * math.Pi / 180
	lng2Rad := p2.Lon() * math.Pi / 180

	deltaLat := lat2Rad - lat1Rad
	deltaLng := lng2Rad - lng1Rad

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLng/2)*math.Sin(deltaLng/2)
	// Rounding can push a a hair above 1 for antipodal points.
	a = math.Min(1, math.Max(0, a))
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}

// IsValidPoint reports whether p is finite and within Earth bounds.
func IsValidPoint(p orb.Point) bool {
	return IsValidLatLng(p.Lat(), p.Lon())
}

// IsValidLatLng reports whether lat is in [-90, 90] and lng in [-180, 180], rejecting NaN and infinities.
func IsValidLatLng(lat, lng float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lng) ||
		math.IsInf(lat, 0) || math.IsInf(lng, 0) {
		return false
	}

	return lat >= -90 && lat <= 90 &&
		lng >= -180 && lng <= 180
}
