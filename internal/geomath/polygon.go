package geomath

import (
	"math"

	"github.com/kaidroger/logistics-analytics-go/internal/models"
)

// Kilometers per degree used by the circle and area approximations. These
// match the boundary-file conventions: one degree of latitude is ~110.574 km,
// one degree of longitude is ~111.320 km at the equator shrinking with
// cos(lat).
const (
	kmPerDegreeLon = 111.320
	kmPerDegreeLat = 110.574
	kmPerDegree    = 111.0
)

// DefaultCircleSegments is the segment count used when callers pass 0
const DefaultCircleSegments = 64

// CirclePolygon approximates a circle of radiusKm around center as a closed
// ring of segments points (plus the repeated first point). The longitude
// step is widened by 1/cos(lat) so the ring stays circular away from the
// equator.
func CirclePolygon(center models.GeoPoint, radiusKm float64, segments int) []models.GeoPoint {
	if segments <= 0 {
		segments = DefaultCircleSegments
	}

	distanceX := radiusKm / (kmPerDegreeLon * math.Cos(center.Latitude*math.Pi/180))
	distanceY := radiusKm / kmPerDegreeLat

	ring := make([]models.GeoPoint, 0, segments+1)
	for i := 0; i < segments; i++ {
		theta := (float64(i) / float64(segments)) * (2 * math.Pi)
		ring = append(ring, models.GeoPoint{
			Latitude:  center.Latitude + distanceY*math.Sin(theta),
			Longitude: center.Longitude + distanceX*math.Cos(theta),
		})
	}
	ring = append(ring, ring[0]) // Close the ring

	return ring
}

// PolygonAreaKm2 estimates the area of a ring in square kilometers using
// the shoelace formula on raw coordinate values scaled by (111 km/deg)^2.
// This is a planar approximation: it is only accurate for small polygons
// near the equator and degrades with latitude. Callers wanting survey-grade
// areas need a spherical formula instead.
// Rings with fewer than 3 points yield 0.
func PolygonAreaKm2(ring []models.GeoPoint) float64 {
	if len(ring) < 3 {
		return 0
	}

	var sum float64
	for i := 0; i < len(ring)-1; i++ {
		x1, y1 := ring[i].Longitude, ring[i].Latitude
		x2, y2 := ring[i+1].Longitude, ring[i+1].Latitude
		sum += x1*y2 - x2*y1
	}

	area := math.Abs(sum) / 2
	return area * kmPerDegree * kmPerDegree
}

// Centroid calculates the coordinate centroid of a set of points
func Centroid(points []models.GeoPoint) models.GeoPoint {
	if len(points) == 0 {
		return models.GeoPoint{}
	}

	var sumLat, sumLon float64
	for _, p := range points {
		sumLat += p.Latitude
		sumLon += p.Longitude
	}

	return models.GeoPoint{
		Latitude:  sumLat / float64(len(points)),
		Longitude: sumLon / float64(len(points)),
	}
}

// MaxDistanceKm returns the largest great-circle distance from origin to
// any of the points. Empty input yields 0.
func MaxDistanceKm(origin models.GeoPoint, points []models.GeoPoint) float64 {
	var max float64
	for _, p := range points {
		if d := DistanceKm(origin, p); d > max {
			max = d
		}
	}
	return max
}

// PointInPolygon checks if a point is inside a ring using ray casting.
// Rings with fewer than 3 points contain nothing.
func PointInPolygon(point models.GeoPoint, ring []models.GeoPoint) bool {
	if len(ring) < 3 {
		return false
	}

	inside := false
	j := len(ring) - 1

	for i := 0; i < len(ring); i++ {
		if ((ring[i].Latitude > point.Latitude) != (ring[j].Latitude > point.Latitude)) &&
			(point.Longitude < (ring[j].Longitude-ring[i].Longitude)*(point.Latitude-ring[i].Latitude)/(ring[j].Latitude-ring[i].Latitude)+ring[i].Longitude) {
			inside = !inside
		}
		j = i
	}

	return inside
}

// BoundingBox calculates the bounding box of a set of points.
// Returns (minLat, minLon, maxLat, maxLon); all zeros for empty input.
func BoundingBox(points []models.GeoPoint) (float64, float64, float64, float64) {
	if len(points) == 0 {
		return 0, 0, 0, 0
	}

	minLat, maxLat := points[0].Latitude, points[0].Latitude
	minLon, maxLon := points[0].Longitude, points[0].Longitude

	for _, p := range points[1:] {
		if p.Latitude < minLat {
			minLat = p.Latitude
		}
		if p.Latitude > maxLat {
			maxLat = p.Latitude
		}
		if p.Longitude < minLon {
			minLon = p.Longitude
		}
		if p.Longitude > maxLon {
			maxLon = p.Longitude
		}
	}

	return minLat, minLon, maxLat, maxLon
}
