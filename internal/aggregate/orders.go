package aggregate

import (
	"time"

	"github.com/kaidroger/logistics-analytics-go/internal/models"
)

// Order-value distribution bucket edges in VND
const (
	bucket2M  = 2_000_000
	bucket3M  = 3_000_000
	bucket5M  = 5_000_000
	bucket10M = 10_000_000
)

// ProcessOrders computes the full analytics report for one dataset of
// order rows. Rows with a blank fc_code are dropped and counted in
// SkippedRows; an all-invalid or empty input yields a zero-valued report,
// never an error.
func ProcessOrders(rows []models.OrderRecord) *models.OrderReport {
	report := &models.OrderReport{
		FCPerformance:       []models.FCPerformance{},
		ProvincePerformance: []models.ProvincePerformance{},
		DistrictPerformance: []models.DistrictPerformance{},
	}

	valid := make([]models.OrderRecord, 0, len(rows))
	for _, r := range rows {
		if r.Valid() {
			valid = append(valid, r)
		} else {
			report.SkippedRows++
		}
	}
	if len(valid) == 0 {
		return report
	}

	report.Summary = summarize(valid)
	report.FCPerformance = fcPerformance(valid, report.Summary)
	report.ProvincePerformance = provincePerformance(valid)
	report.DistrictPerformance = districtPerformance(valid)
	report.ValueDistribution = valueDistribution(valid)

	return report
}

func summarize(rows []models.OrderRecord) models.OrderSummary {
	s := models.OrderSummary{TotalOrders: len(rows)}

	provinces := map[string]struct{}{}
	districts := map[string]struct{}{}
	wards := map[string]struct{}{}

	for _, r := range rows {
		s.TotalPackages += r.TotalPackages
		s.TotalRevenue += r.DeliveryAmount

		if r.ProvinceName != "" {
			provinces[r.ProvinceName] = struct{}{}
		}
		if r.DistrictName != "" {
			districts[r.DistrictName] = struct{}{}
		}
		if r.WardName != "" {
			wards[r.WardName] = struct{}{}
		}

		if r.CustomerID != nil {
			s.HasCustomerData = true
		}
		if r.NoBins != nil {
			s.HasBinData = true
		}
	}

	s.UniqueProvinces = len(provinces)
	s.UniqueDistricts = len(districts)
	s.UniqueWards = len(wards)

	if s.TotalOrders > 0 {
		s.AvgOrderValue = s.TotalRevenue / float64(s.TotalOrders)
		s.AvgPackagesPerOrder = float64(s.TotalPackages) / float64(s.TotalOrders)
	}

	if s.HasCustomerData {
		s.TotalCustomers = CustomerSetSize(rows)
		if s.TotalCustomers > 0 {
			s.AvgOrdersPerCustomer = float64(len(rows)) / float64(s.TotalCustomers)
		}
	}

	if s.HasBinData {
		for _, r := range rows {
			if r.NoBins == nil {
				s.CartonOrders++
			} else {
				s.BinOrders++
				s.TotalBins += *r.NoBins
			}
		}
		if s.BinOrders > 0 {
			s.AvgBinsPerOrder = s.TotalBins / float64(s.BinOrders)
		}
	}

	return s
}

func fcPerformance(rows []models.OrderRecord, summary models.OrderSummary) []models.FCPerformance {
	groups := GroupBy(rows, func(r models.OrderRecord) string { return r.FCCode })

	perf := make([]models.FCPerformance, 0, groups.Len())
	for _, fc := range groups.Keys() {
		members := groups.Get(fc)

		entry := models.FCPerformance{FCCode: fc, Orders: len(members)}
		for _, r := range members {
			entry.Packages += r.TotalPackages
			entry.Revenue += r.DeliveryAmount
		}
		if entry.Orders > 0 {
			entry.AvgOrderValue = entry.Revenue / float64(entry.Orders)
		}
		if summary.TotalOrders > 0 {
			entry.MarketShare = float64(entry.Orders) / float64(summary.TotalOrders) * 100
		}
		if summary.TotalRevenue > 0 {
			entry.RevenueShare = entry.Revenue / summary.TotalRevenue * 100
		}

		perf = append(perf, entry)
	}

	return TopN(perf, 0, func(p models.FCPerformance) float64 { return float64(p.Orders) })
}

func provincePerformance(rows []models.OrderRecord) []models.ProvincePerformance {
	withProvince := make([]models.OrderRecord, 0, len(rows))
	for _, r := range rows {
		if r.ProvinceName != "" {
			withProvince = append(withProvince, r)
		}
	}

	groups := GroupBy(withProvince, func(r models.OrderRecord) string { return r.ProvinceName })

	perf := make([]models.ProvincePerformance, 0, groups.Len())
	for _, province := range groups.Keys() {
		members := groups.Get(province)

		entry := models.ProvincePerformance{ProvinceName: province, Orders: len(members)}
		customers := map[int64]struct{}{}
		for _, r := range members {
			entry.Packages += r.TotalPackages
			entry.Revenue += r.DeliveryAmount
			if r.CustomerID != nil {
				customers[*r.CustomerID] = struct{}{}
			}
		}
		if entry.Orders > 0 {
			entry.AvgOrderValue = entry.Revenue / float64(entry.Orders)
		}
		entry.TotalCustomers = len(customers)

		perf = append(perf, entry)
	}

	return TopN(perf, 0, func(p models.ProvincePerformance) float64 { return float64(p.Orders) })
}

type provinceDistrict struct {
	province string
	district string
}

func districtPerformance(rows []models.OrderRecord) []models.DistrictPerformance {
	located := make([]models.OrderRecord, 0, len(rows))
	for _, r := range rows {
		if r.ProvinceName != "" && r.DistrictName != "" {
			located = append(located, r)
		}
	}

	groups := GroupBy(located, func(r models.OrderRecord) provinceDistrict {
		return provinceDistrict{province: r.ProvinceName, district: r.DistrictName}
	})

	perf := make([]models.DistrictPerformance, 0, groups.Len())
	for _, key := range groups.Keys() {
		members := groups.Get(key)

		entry := models.DistrictPerformance{
			ProvinceName: key.province,
			DistrictName: key.district,
			Orders:       len(members),
		}
		for _, r := range members {
			entry.Packages += r.TotalPackages
			entry.Revenue += r.DeliveryAmount
		}
		if entry.Orders > 0 {
			entry.AvgOrderValue = entry.Revenue / float64(entry.Orders)
		}

		perf = append(perf, entry)
	}

	return TopN(perf, 0, func(p models.DistrictPerformance) float64 { return float64(p.Orders) })
}

func valueDistribution(rows []models.OrderRecord) models.ValueDistribution {
	var dist models.ValueDistribution
	for _, r := range rows {
		switch v := r.DeliveryAmount; {
		case v < bucket2M:
			dist.Under2M++
		case v < bucket3M:
			dist.From2To3++
		case v < bucket5M:
			dist.From3To5++
		case v < bucket10M:
			dist.From5To10++
		default:
			dist.Over10M++
		}
	}
	return dist
}

// CustomerSetSize counts distinct non-nil customer IDs
func CustomerSetSize(rows []models.OrderRecord) int {
	ids := map[int64]struct{}{}
	for _, r := range rows {
		if r.CustomerID != nil {
			ids[*r.CustomerID] = struct{}{}
		}
	}
	return len(ids)
}

// RepeatCustomerRates reports, per (fulfillment center, province) pair, how
// many of its customers placed more than one order there. Rows without a
// customer ID do not participate. Pairs appear in first-seen order.
func RepeatCustomerRates(rows []models.OrderRecord) []models.RepeatCustomerStat {
	type fcProvince struct {
		fc       string
		province string
	}

	identified := make([]models.OrderRecord, 0, len(rows))
	for _, r := range rows {
		if r.Valid() && r.CustomerID != nil {
			identified = append(identified, r)
		}
	}

	groups := GroupBy(identified, func(r models.OrderRecord) fcProvince {
		return fcProvince{fc: r.FCCode, province: r.ProvinceName}
	})

	out := make([]models.RepeatCustomerStat, 0, groups.Len())
	for _, key := range groups.Keys() {
		orderCounts := map[int64]int{}
		for _, r := range groups.Get(key) {
			orderCounts[*r.CustomerID]++
		}

		stat := models.RepeatCustomerStat{
			FCCode:         key.fc,
			ProvinceName:   key.province,
			TotalCustomers: len(orderCounts),
		}
		for _, n := range orderCounts {
			if n > 1 {
				stat.RepeatCustomers++
			}
		}
		if stat.TotalCustomers > 0 {
			stat.RepeatRate = float64(stat.RepeatCustomers) / float64(stat.TotalCustomers) * 100
		}

		out = append(out, stat)
	}

	return out
}

// Timestamp layouts the upload pipeline produces
var tsLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// DetectMonth labels a dataset by the month of its first parseable order
// timestamp, preferring order_created_ts over carrier_delivered_ts.
// Returns "Unknown" when no row carries a usable timestamp.
func DetectMonth(rows []models.OrderRecord) string {
	for _, r := range rows {
		for _, raw := range []string{r.OrderCreatedTS, r.CarrierDeliveredTS} {
			if raw == "" {
				continue
			}
			for _, layout := range tsLayouts {
				if ts, err := time.Parse(layout, raw); err == nil {
					return ts.Format("Jan 2006")
				}
			}
		}
	}
	return "Unknown"
}
