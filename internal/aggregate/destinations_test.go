package aggregate

import (
	"testing"

	"github.com/kaidroger/logistics-analytics-go/internal/models"
)

func TestSplitAddress(t *testing.T) {
	tests := []struct {
		address      string
		wantDistrict string
		wantProvince string
	}{
		{"12 Street, Dich Vong, Cau Giay, Ha Noi, Vietnam", "Cau Giay", "Ha Noi"},
		{"Banteay Neang, Mongkol Borei, Banteay Meanchey", "Banteay Neang", "Mongkol Borei"},
		{"Cau Giay, Ha Noi", "", "Cau Giay"},
		{"Ha Noi", "", ""},
		{"", "", ""},
	}

	for _, tt := range tests {
		district, province := SplitAddress(tt.address)
		if district != tt.wantDistrict || province != tt.wantProvince {
			t.Errorf("SplitAddress(%q) = (%q, %q), want (%q, %q)",
				tt.address, district, province, tt.wantDistrict, tt.wantProvince)
		}
	}
}

func loc(lat, lng float64) *models.GeoPoint {
	return &models.GeoPoint{Latitude: lat, Longitude: lng}
}

func TestCoverageByDistrict(t *testing.T) {
	dests := []models.Destination{
		{Address: "Shop 1, W1, Cau Giay, Ha Noi, VN", OrdersPerMonth: 10, Location: loc(21.03, 105.79)},
		{Address: "Shop 2, W2, Cau Giay, Ha Noi, VN", OrdersPerMonth: 20, Location: loc(21.04, 105.80)},
		{Address: "Shop 3, W3, Hai Chau, Da Nang, VN", OrdersPerMonth: 30}, // no coordinates
	}

	report := CoverageByDistrict(dests)

	if report.TotalDestinations != 3 || report.TotalOrders != 60 {
		t.Errorf("totals = %d destinations / %d orders", report.TotalDestinations, report.TotalOrders)
	}
	if report.MissingCoordinates != 1 {
		t.Errorf("MissingCoordinates = %d, want 1", report.MissingCoordinates)
	}
	if len(report.Districts) != 2 {
		t.Fatalf("got %d districts", len(report.Districts))
	}

	// Ranked by total orders: Cau Giay 30 vs Hai Chau 30 — stable tie
	// keeps first-seen Cau Giay ahead
	top := report.Districts[0]
	if top.DistrictName != "Cau Giay" || top.Count != 2 || top.TotalOrders != 30 {
		t.Errorf("top district = %+v", top)
	}
	if top.MedianOrders != 15 {
		t.Errorf("Cau Giay median = %v, want 15", top.MedianOrders)
	}

	haichau := report.Districts[1]
	if haichau.MissingCoordinates != 1 {
		t.Errorf("Hai Chau missing coords = %d, want 1", haichau.MissingCoordinates)
	}
}

func TestCoverageByDistrictMalformedAddress(t *testing.T) {
	dests := []models.Destination{
		{Address: "just one part", OrdersPerMonth: 5},
	}

	report := CoverageByDistrict(dests)
	if len(report.Districts) != 1 {
		t.Fatalf("got %d districts", len(report.Districts))
	}
	if report.Districts[0].DistrictName != "" {
		t.Errorf("malformed address should group under the empty label, got %q", report.Districts[0].DistrictName)
	}

	if names := DistrictNames(report); len(names) != 0 {
		t.Errorf("DistrictNames should skip the empty label, got %v", names)
	}
}

func TestCoverageByDistrictEmptyInput(t *testing.T) {
	report := CoverageByDistrict(nil)
	if report.TotalDestinations != 0 || len(report.Districts) != 0 {
		t.Errorf("empty input report = %+v", report)
	}
}
