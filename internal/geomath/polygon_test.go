package geomath

import (
	"math"
	"testing"

	"github.com/kaidroger/logistics-analytics-go/internal/models"
)

func TestCirclePolygonPointCount(t *testing.T) {
	center := models.GeoPoint{Latitude: 11.55, Longitude: 104.92}

	ring := CirclePolygon(center, 5, 64)
	if len(ring) != 65 {
		t.Fatalf("expected 65 points (64 + closing duplicate), got %d", len(ring))
	}
	if ring[0] != ring[len(ring)-1] {
		t.Error("ring is not closed: first and last points differ")
	}
}

func TestCirclePolygonDefaultSegments(t *testing.T) {
	ring := CirclePolygon(models.GeoPoint{}, 1, 0)
	if len(ring) != DefaultCircleSegments+1 {
		t.Fatalf("expected %d points with default segments, got %d", DefaultCircleSegments+1, len(ring))
	}
}

func TestCirclePolygonRadius(t *testing.T) {
	center := models.GeoPoint{Latitude: 11.55, Longitude: 104.92}
	radius := 10.0

	ring := CirclePolygon(center, radius, 64)
	for i, p := range ring[:len(ring)-1] {
		d := DistanceKm(center, p)
		if math.Abs(d-radius)/radius > 0.02 {
			t.Fatalf("point %d is %.3f km from center, want ~%v km", i, d, radius)
		}
	}
}

func TestPolygonAreaKm2DegenerateRings(t *testing.T) {
	if got := PolygonAreaKm2(nil); got != 0 {
		t.Errorf("area of nil ring = %v, want 0", got)
	}
	two := []models.GeoPoint{{Latitude: 1, Longitude: 1}, {Latitude: 2, Longitude: 2}}
	if got := PolygonAreaKm2(two); got != 0 {
		t.Errorf("area of 2-point ring = %v, want 0", got)
	}
}

func TestPolygonAreaKm2UnitSquare(t *testing.T) {
	// 1x1 degree closed square near the equator: shoelace area 1 deg^2,
	// scaled by 111^2
	ring := []models.GeoPoint{
		{Latitude: 0, Longitude: 0},
		{Latitude: 0, Longitude: 1},
		{Latitude: 1, Longitude: 1},
		{Latitude: 1, Longitude: 0},
		{Latitude: 0, Longitude: 0},
	}

	got := PolygonAreaKm2(ring)
	want := 111.0 * 111.0
	if math.Abs(got-want) > 1e-6 {
		t.Errorf("unit square area = %v, want %v", got, want)
	}
}

func TestCircleAreaMatchesAnalyticArea(t *testing.T) {
	// Near the equator the planar approximation should land close to pi*r^2
	center := models.GeoPoint{Latitude: 2.0, Longitude: 104.0}
	radius := 5.0

	ring := CirclePolygon(center, radius, 64)
	got := PolygonAreaKm2(ring)
	want := math.Pi * radius * radius
	if math.Abs(got-want)/want > 0.05 {
		t.Errorf("circle area = %v, want within 5%% of %v", got, want)
	}
}

func TestPointInPolygon(t *testing.T) {
	square := []models.GeoPoint{
		{Latitude: 0, Longitude: 0},
		{Latitude: 0, Longitude: 2},
		{Latitude: 2, Longitude: 2},
		{Latitude: 2, Longitude: 0},
	}

	if !PointInPolygon(models.GeoPoint{Latitude: 1, Longitude: 1}, square) {
		t.Error("center of square reported outside")
	}
	if PointInPolygon(models.GeoPoint{Latitude: 3, Longitude: 1}, square) {
		t.Error("point above square reported inside")
	}
	if PointInPolygon(models.GeoPoint{Latitude: 1, Longitude: 1}, square[:2]) {
		t.Error("2-point ring should contain nothing")
	}
}

func TestCentroid(t *testing.T) {
	points := []models.GeoPoint{
		{Latitude: 0, Longitude: 0},
		{Latitude: 2, Longitude: 2},
	}

	c := Centroid(points)
	if c.Latitude != 1 || c.Longitude != 1 {
		t.Errorf("centroid = %+v, want (1, 1)", c)
	}

	if z := Centroid(nil); z != (models.GeoPoint{}) {
		t.Errorf("centroid of empty set = %+v, want zero point", z)
	}
}

func TestMaxDistanceKm(t *testing.T) {
	origin := models.GeoPoint{Latitude: 10, Longitude: 105}
	points := []models.GeoPoint{
		{Latitude: 10.1, Longitude: 105},
		{Latitude: 11, Longitude: 105},
		{Latitude: 10, Longitude: 105.2},
	}

	got := MaxDistanceKm(origin, points)
	want := DistanceKm(origin, points[1])
	if got != want {
		t.Errorf("MaxDistanceKm = %v, want %v", got, want)
	}
	if MaxDistanceKm(origin, nil) != 0 {
		t.Error("MaxDistanceKm of empty set should be 0")
	}
}
