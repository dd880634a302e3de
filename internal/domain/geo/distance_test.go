package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceKm_KnownPairs(t *testing.T) {
	tests := []struct {
		name      string
		a, b      [2]float64 // lat, lng
		expected  float64
		tolerance float64
	}{
		{name: "Riyadh to Jeddah", a: [2]float64{24.7136, 46.6753}, b: [2]float64{21.4858, 39.1925}, expected: 845, tolerance: 5},
		{name: "Taipei 101 to Taipei Main Station", a: [2]float64{25.0330, 121.5654}, b: [2]float64{25.0478, 121.5170}, expected: 5.1, tolerance: 0.3},
		{name: "across the antimeridian", a: [2]float64{0, 179.5}, b: [2]float64{0, -179.5}, expected: 111.19, tolerance: 0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := DistanceKm(Point(tt.a[0], tt.a[1]), Point(tt.b[0], tt.b[1]))
			assert.InDelta(t, tt.expected, d, tt.tolerance)
		})
	}
}

func TestDistanceKm_Symmetric(t *testing.T) {
	points := [][2]float64{
		{24.7136, 46.6753},
		{-33.8688, 151.2093},
		{51.5074, -0.1278},
		{90, 0},
		{-90, 180},
		{0, 0},
	}

	for _, a := range points {
		for _, b := range points {
			ab := DistanceKm(Point(a[0], a[1]), Point(b[0], b[1]))
			ba := DistanceKm(Point(b[0], b[1]), Point(a[0], a[1]))

			assert.InDelta(t, ab, ba, 1e-9)
			assert.GreaterOrEqual(t, ab, 0.0)
		}
	}
}

func TestDistanceKm_ZeroForSamePoint(t *testing.T) {
	p := Point(24.7136, 46.6753)

	assert.Zero(t, DistanceKm(p, p))
}

func TestDistanceKm_Antipodal(t *testing.T) {
	d := DistanceKm(Point(0, 0), Point(0, 180))

	assert.InDelta(t, math.Pi*EarthRadiusKm, d, 1e-6)
}

func TestIsValidLatLng(t *testing.T) {
	assert.True(t, IsValidLatLng(90, 180))
	assert.True(t, IsValidLatLng(-90, -180))
	assert.False(t, IsValidLatLng(90.0001, 0))
	assert.False(t, IsValidLatLng(0, 180.0001))
	assert.False(t, IsValidLatLng(math.NaN(), 0))
	assert.False(t, IsValidLatLng(0, math.Inf(1)))
}
