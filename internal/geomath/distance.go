package geomath

import (
	"math"

	"github.com/golang/geo/s2"

	"github.com/kaidroger/logistics-analytics-go/internal/models"
)

// Constants
const (
	EarthRadiusKm = 6371.0 // Earth's mean radius in kilometers
)

// DistanceKm calculates the great-circle distance between two points in
// kilometers using the Haversine formula. Symmetric, and zero for equal
// points. The intermediate term is clamped into [0,1] so that antipodal or
// otherwise degenerate inputs never produce NaN from the square root.
func DistanceKm(a, b models.GeoPoint) float64 {
	lat1 := a.Latitude * math.Pi / 180
	lat2 := b.Latitude * math.Pi / 180
	dLat := (b.Latitude - a.Latitude) * math.Pi / 180
	dLon := (b.Longitude - a.Longitude) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	if h < 0 {
		h = 0
	}
	if h > 1 {
		h = 1
	}

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return EarthRadiusKm * c
}

// Bearing calculates the initial bearing (forward azimuth) from a to b.
// Returns degrees in [0, 360), where 0 is North and 90 is East.
func Bearing(a, b models.GeoPoint) float64 {
	p1 := s2.LatLngFromDegrees(a.Latitude, a.Longitude)
	p2 := s2.LatLngFromDegrees(b.Latitude, b.Longitude)

	lat1 := p1.Lat.Radians()
	lat2 := p2.Lat.Radians()
	lonDiff := p2.Lng.Radians() - p1.Lng.Radians()

	y := math.Sin(lonDiff) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(lonDiff)
	bearing := math.Atan2(y, x)

	bearingDeg := bearing * 180 / math.Pi
	return math.Mod(bearingDeg+360, 360)
}

// Sector names in clockwise order starting at North
var sectorNames = [8]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

// CompassSector maps a bearing in degrees to one of the eight compass
// sectors. Each sector spans 45 degrees centered on its cardinal direction.
func CompassSector(bearing float64) string {
	b := math.Mod(bearing+360, 360)
	idx := int(math.Floor((b+22.5)/45)) % 8
	return sectorNames[idx]
}

// SectorNames returns the eight compass sector labels in clockwise order
func SectorNames() []string {
	out := make([]string, len(sectorNames))
	copy(out, sectorNames[:])
	return out
}
