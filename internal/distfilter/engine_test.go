package distfilter

import (
	"math"
	"testing"

	"github.com/kaidroger/logistics-analytics-go/internal/models"
)

var origin = models.GeoPoint{Latitude: 11.5564, Longitude: 104.9282}

// destinationAtKm builds a destination approximately km kilometers due
// north of the origin
func destinationAtKm(km float64, carrier models.CarrierType) models.Destination {
	return models.Destination{
		CarrierType: carrier,
		Location: &models.GeoPoint{
			Latitude:  origin.Latitude + km/111.2,
			Longitude: origin.Longitude,
		},
	}
}

func TestClassifyDistanceBound(t *testing.T) {
	d := destinationAtKm(15, models.Carrier2PL)

	c := Classify(origin, d, Options{MaxDistanceKm: 10})
	if c.DistanceKm == nil {
		t.Fatal("expected a distance for a located destination")
	}
	if math.Abs(*c.DistanceKm-15) > 0.5 {
		t.Errorf("distance = %v, want ~15", *c.DistanceKm)
	}
	if c.MatchesDistance {
		t.Error("15 km destination should fail a 10 km bound")
	}
	if c.MatchesFilter {
		t.Error("MatchesFilter must be false when distance fails")
	}

	c = Classify(origin, d, Options{MaxDistanceKm: 20})
	if !c.MatchesDistance || !c.MatchesFilter {
		t.Error("15 km destination should pass a 20 km bound")
	}
}

func TestClassifyMissingCoordinates(t *testing.T) {
	d := models.Destination{CarrierType: models.Carrier2PL} // no location

	bounded := Classify(origin, d, Options{MaxDistanceKm: 10})
	if bounded.DistanceKm != nil {
		t.Error("missing coordinates must yield a nil distance")
	}
	if bounded.MatchesDistance {
		t.Error("a distance bound cannot be satisfied without coordinates")
	}

	unbounded := Classify(origin, d, Options{})
	if !unbounded.MatchesDistance || !unbounded.MatchesFilter {
		t.Error("without a distance bound, missing coordinates still match")
	}
}

func TestClassifyZeroCoordinateIsNotMissing(t *testing.T) {
	// A destination at the equator/prime meridian has legitimate
	// coordinates; presence is a nil check, not a zero check
	d := models.Destination{
		CarrierType: models.Carrier2PL,
		Location:    &models.GeoPoint{Latitude: 0, Longitude: 0},
	}

	c := Classify(models.GeoPoint{Latitude: 0, Longitude: 0.05}, d, Options{MaxDistanceKm: 10})
	if c.DistanceKm == nil {
		t.Fatal("(0,0) location must not be treated as missing")
	}
	if !c.MatchesDistance {
		t.Error("nearby (0,0) destination should pass the bound")
	}
}

func TestClassifyCarrier(t *testing.T) {
	d := destinationAtKm(5, models.Carrier3PL)

	if c := Classify(origin, d, Options{CarrierType: models.Carrier2PL}); c.MatchesCarrier {
		t.Error("3PL destination should fail a 2PL filter")
	}
	if c := Classify(origin, d, Options{}); !c.MatchesCarrier {
		t.Error("unset carrier filter matches everything")
	}
}

func TestSummarizeBucketsArePartition(t *testing.T) {
	candidates := []models.Destination{
		destinationAtKm(5, models.Carrier2PL),   // matches
		destinationAtKm(25, models.Carrier2PL),  // distance only
		destinationAtKm(5, models.Carrier3PL),   // carrier only
		destinationAtKm(25, models.Carrier3PL),  // both
		{CarrierType: models.Carrier2PL},        // no coords: distance only
		{CarrierType: models.Carrier1PL},        // no coords + carrier: both
	}

	s := Summarize(origin, candidates, Options{CarrierType: models.Carrier2PL, MaxDistanceKm: 10})

	if s.TotalCount != 6 {
		t.Fatalf("TotalCount = %d", s.TotalCount)
	}
	if s.MatchingCount != 1 || s.ExcludedByDistanceOnly != 2 || s.ExcludedByCarrierOnly != 1 || s.ExcludedByBoth != 2 {
		t.Errorf("summary = %+v", s)
	}

	sum := s.MatchingCount + s.ExcludedByCarrierOnly + s.ExcludedByDistanceOnly + s.ExcludedByBoth
	if sum != s.TotalCount {
		t.Errorf("buckets sum to %d, want %d", sum, s.TotalCount)
	}
}

func TestSummarizeEmptyInput(t *testing.T) {
	s := Summarize(origin, nil, Options{MaxDistanceKm: 10})
	if s.TotalCount != 0 || s.MatchingCount != 0 {
		t.Errorf("empty summary = %+v", s)
	}
}

func TestApplyCombinedFilter(t *testing.T) {
	minOrders := 10
	dests := []models.Destination{
		{Name: "keep", ProvinceName: "Hà Nội", CarrierType: models.Carrier2PL, OrdersPerMonth: 20,
			Location: &models.GeoPoint{Latitude: origin.Latitude + 0.01, Longitude: origin.Longitude}},
		{Name: "wrong province", ProvinceName: "Đà Nẵng", CarrierType: models.Carrier2PL, OrdersPerMonth: 20,
			Location: &models.GeoPoint{Latitude: origin.Latitude + 0.01, Longitude: origin.Longitude}},
		{Name: "too few orders", ProvinceName: "Hà Nội", CarrierType: models.Carrier2PL, OrdersPerMonth: 5,
			Location: &models.GeoPoint{Latitude: origin.Latitude + 0.01, Longitude: origin.Longitude}},
		{Name: "too far", ProvinceName: "Hà Nội", CarrierType: models.Carrier2PL, OrdersPerMonth: 20,
			Location: &models.GeoPoint{Latitude: origin.Latitude + 1, Longitude: origin.Longitude}},
	}

	got := Apply(origin, dests, models.DestinationFilter{
		Province:      "hà",
		CarrierType:   models.Carrier2PL,
		MaxDistanceKm: 10,
		MinOrders:     &minOrders,
	})

	if len(got) != 1 || got[0].Name != "keep" {
		t.Fatalf("Apply kept %d destinations: %+v", len(got), got)
	}
	if got[0].Classification.DistanceKm == nil {
		t.Error("kept destination should carry its distance annotation")
	}
}
