package boundary

import (
	"testing"

	"github.com/kaidroger/logistics-analytics-go/internal/models"
)

const sampleGeoJSON = `{
	"type": "FeatureCollection",
	"features": [
		{
			"properties": {"NAME_2": "Cầu Giấy"},
			"geometry": {
				"type": "Polygon",
				"coordinates": [[[105.78, 21.02], [105.82, 21.02], [105.82, 21.06], [105.78, 21.06], [105.78, 21.02]]]
			}
		},
		{
			"properties": {"NAME_2": "Hải Châu"},
			"geometry": {
				"type": "MultiPolygon",
				"coordinates": [[[[108.20, 16.04], [108.24, 16.04], [108.24, 16.08], [108.20, 16.08], [108.20, 16.04]]]]
			}
		},
		{
			"properties": {"NAME_2": "Point District"},
			"geometry": {"type": "Point", "coordinates": [105.0, 21.0]}
		},
		{
			"properties": {},
			"geometry": {"type": "Polygon", "coordinates": [[[0,0],[1,0],[1,1],[0,0]]]}
		}
	]
}`

func TestParseFeatureCollection(t *testing.T) {
	features, err := ParseFeatureCollection([]byte(sampleGeoJSON))
	if err != nil {
		t.Fatalf("ParseFeatureCollection: %v", err)
	}

	// Unnamed feature dropped, the other three kept
	if len(features) != 3 {
		t.Fatalf("got %d features, want 3", len(features))
	}

	if features[0].Name != "Cầu Giấy" || len(features[0].Ring) != 5 {
		t.Errorf("polygon feature = %q with %d points", features[0].Name, len(features[0].Ring))
	}
	// GeoJSON positions are [lng, lat]
	if features[0].Ring[0].Longitude != 105.78 || features[0].Ring[0].Latitude != 21.02 {
		t.Errorf("ring point decoded wrong: %+v", features[0].Ring[0])
	}

	if features[1].Name != "Hải Châu" || len(features[1].Ring) != 5 {
		t.Errorf("multipolygon feature = %q with %d points", features[1].Name, len(features[1].Ring))
	}

	// Non-polygon geometry keeps its name but has no ring
	if features[2].Name != "Point District" || features[2].Ring != nil {
		t.Errorf("point feature = %+v", features[2])
	}
}

func TestParseFeatureCollectionInvalidJSON(t *testing.T) {
	if _, err := ParseFeatureCollection([]byte("{not json")); err == nil {
		t.Error("expected an error for malformed input")
	}
}

func coverageFor(districts ...models.DistrictCoverage) models.CoverageReport {
	report := models.CoverageReport{Districts: districts}
	for _, d := range districts {
		report.TotalDestinations += d.Count
		report.TotalOrders += d.TotalOrders
	}
	return report
}

func TestMatchDistricts(t *testing.T) {
	features, err := ParseFeatureCollection([]byte(sampleGeoJSON))
	if err != nil {
		t.Fatal(err)
	}

	coverage := coverageFor(
		models.DistrictCoverage{DistrictName: "Cau Giay", Count: 3, TotalOrders: 45},
		models.DistrictCoverage{DistrictName: "Nowhere District", Count: 1, TotalOrders: 5},
		models.DistrictCoverage{DistrictName: "", Count: 2, TotalOrders: 10}, // malformed addresses
	)

	matched, unmatched := MatchDistricts(features, coverage)

	if len(matched) != 1 {
		t.Fatalf("got %d matches, want 1", len(matched))
	}
	m := matched[0]
	if m.DistrictName != "Cau Giay" || m.BoundaryName != "Cầu Giấy" {
		t.Errorf("match = %+v", m)
	}
	if m.Count != 3 || m.TotalOrders != 45 {
		t.Errorf("match stats = %d/%d", m.Count, m.TotalOrders)
	}
	if m.AreaKm2 <= 0 {
		t.Errorf("matched polygon area = %v, want > 0", m.AreaKm2)
	}
	if m.Color == "" {
		t.Error("matched district should carry a color")
	}

	if len(unmatched) != 1 || unmatched[0] != "Nowhere District" {
		t.Errorf("unmatched = %v", unmatched)
	}
}

func TestMatchDistrictsStableColor(t *testing.T) {
	features, _ := ParseFeatureCollection([]byte(sampleGeoJSON))
	coverage := coverageFor(models.DistrictCoverage{DistrictName: "cau giay", Count: 1})

	first, _ := MatchDistricts(features, coverage)
	second, _ := MatchDistricts(features, coverage)
	if first[0].Color != second[0].Color {
		t.Error("district color changed between recomputations")
	}
}

func TestMatchDistrictsNonPolygonAreaZero(t *testing.T) {
	features, _ := ParseFeatureCollection([]byte(sampleGeoJSON))
	coverage := coverageFor(models.DistrictCoverage{DistrictName: "Point District", Count: 1})

	matched, unmatched := MatchDistricts(features, coverage)
	if len(unmatched) != 0 {
		t.Fatalf("point feature should still match by name, unmatched = %v", unmatched)
	}
	if matched[0].AreaKm2 != 0 {
		t.Errorf("non-polygon geometry area = %v, want 0", matched[0].AreaKm2)
	}
}

func TestFallbackTerritory(t *testing.T) {
	center := models.GeoPoint{Latitude: 11.55, Longitude: 104.92}

	ring, area := FallbackTerritory(center, 5)
	if len(ring) != 65 {
		t.Errorf("fallback ring has %d points, want 65", len(ring))
	}
	if area <= 0 {
		t.Errorf("fallback area = %v, want > 0", area)
	}
}
