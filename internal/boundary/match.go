package boundary

import (
	"github.com/kaidroger/logistics-analytics-go/internal/colors"
	"github.com/kaidroger/logistics-analytics-go/internal/geomath"
	"github.com/kaidroger/logistics-analytics-go/internal/models"
	"github.com/kaidroger/logistics-analytics-go/internal/names"
)

// MatchDistricts reconciles a hub's district coverage against the boundary
// features. Address-derived names and boundary labels come from different
// sources, so equality runs through names.Normalize. Districts with no
// matching feature come back in the unmatched list for diagnostics; an
// unmatched name never fails the rest of the set.
func MatchDistricts(features []DistrictFeature, coverage models.CoverageReport) (matched []models.MatchedDistrict, unmatched []string) {
	matched = []models.MatchedDistrict{}

	// Normalize boundary labels once
	normalized := make([]string, len(features))
	for i, f := range features {
		normalized[i] = names.Normalize(f.Name)
	}

	for _, cov := range coverage.Districts {
		if cov.DistrictName == "" {
			continue // malformed addresses have no district to match
		}

		want := names.Normalize(cov.DistrictName)
		found := false
		for i, f := range features {
			if normalized[i] != want {
				continue
			}

			matched = append(matched, models.MatchedDistrict{
				DistrictName: cov.DistrictName,
				BoundaryName: f.Name,
				Ring:         f.Ring,
				AreaKm2:      geomath.PolygonAreaKm2(f.Ring),
				Color:        colors.ForName(f.Name).String(),
				Count:        cov.Count,
				TotalOrders:  cov.TotalOrders,
			})
			found = true
			break
		}

		if !found {
			unmatched = append(unmatched, cov.DistrictName)
		}
	}

	return matched, unmatched
}

// FallbackTerritory builds the circle territory used when no boundary
// feature covers a district: a closed ring around center plus its
// approximate area.
func FallbackTerritory(center models.GeoPoint, radiusKm float64) ([]models.GeoPoint, float64) {
	ring := geomath.CirclePolygon(center, radiusKm, geomath.DefaultCircleSegments)
	return ring, geomath.PolygonAreaKm2(ring)
}
