package aggregate

import (
	"strings"

	"github.com/kaidroger/logistics-analytics-go/internal/models"
	"github.com/kaidroger/logistics-analytics-go/internal/stats"
)

// SplitAddress extracts (district, province) from a comma-separated
// address by position: province is the second-to-last component, district
// the third-to-last. An address with fewer components yields empty labels,
// not an error; such destinations group under the empty key.
func SplitAddress(address string) (district, province string) {
	parts := strings.Split(address, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	if len(parts) >= 2 {
		province = parts[len(parts)-2]
	}
	if len(parts) >= 3 {
		district = parts[len(parts)-3]
	}
	return district, province
}

type districtKey struct {
	district string
	province string
}

// CoverageByDistrict groups a hub's destinations by the district parsed
// from their address and aggregates order volume per district. Destinations
// without coordinates are counted (here and per district) but never touch
// a distance computation.
func CoverageByDistrict(destinations []models.Destination) models.CoverageReport {
	report := models.CoverageReport{Districts: []models.DistrictCoverage{}}

	groups := GroupBy(destinations, func(d models.Destination) districtKey {
		district, province := SplitAddress(d.Address)
		return districtKey{district: district, province: province}
	})

	for _, key := range groups.Keys() {
		members := groups.Get(key)

		cov := models.DistrictCoverage{
			DistrictName: key.district,
			ProvinceName: key.province,
			Count:        len(members),
		}

		orders := make([]float64, 0, len(members))
		for _, d := range members {
			cov.TotalOrders += d.OrdersPerMonth
			orders = append(orders, float64(d.OrdersPerMonth))
			if !d.HasLocation() {
				cov.MissingCoordinates++
			}
		}
		cov.MedianOrders = stats.MedianTrimmed(orders)

		report.Districts = append(report.Districts, cov)
		report.TotalDestinations += cov.Count
		report.TotalOrders += cov.TotalOrders
		report.MissingCoordinates += cov.MissingCoordinates
	}

	report.Districts = TopN(report.Districts, 0, func(c models.DistrictCoverage) float64 {
		return float64(c.TotalOrders)
	})

	return report
}

// DistrictNames returns the distinct district labels of a coverage report,
// in ranking order, skipping the empty label of malformed addresses
func DistrictNames(report models.CoverageReport) []string {
	names := make([]string, 0, len(report.Districts))
	for _, d := range report.Districts {
		if d.DistrictName != "" {
			names = append(names, d.DistrictName)
		}
	}
	return names
}
