package models

// OrderSummary holds the dataset-wide KPIs computed from valid order rows
type OrderSummary struct {
	TotalOrders         int     `json:"total_orders"`
	TotalPackages       int     `json:"total_packages"`
	TotalRevenue        float64 `json:"total_revenue"`
	AvgOrderValue       float64 `json:"avg_order_value"`
	AvgPackagesPerOrder float64 `json:"avg_packages_per_order"`
	UniqueProvinces     int     `json:"unique_provinces"`
	UniqueDistricts     int     `json:"unique_districts"`
	UniqueWards         int     `json:"unique_wards"`

	// Customer metrics (only meaningful when HasCustomerData)
	TotalCustomers       int     `json:"total_customers"`
	AvgOrdersPerCustomer float64 `json:"avg_orders_per_customer"`

	// Bin metrics (only meaningful when HasBinData)
	TotalBins       float64 `json:"total_bins"`
	CartonOrders    int     `json:"carton_orders"`
	BinOrders       int     `json:"bin_orders"`
	AvgBinsPerOrder float64 `json:"avg_bins_per_order"`

	HasCustomerData bool `json:"has_customer_data"`
	HasBinData      bool `json:"has_bin_data"`
}

// FCPerformance is the per-fulfillment-center ranking entry
type FCPerformance struct {
	FCCode        string  `json:"fc_code"`
	Orders        int     `json:"orders"`
	Packages      int     `json:"packages"`
	Revenue       float64 `json:"revenue"`
	AvgOrderValue float64 `json:"avg_order_value"`
	MarketShare   float64 `json:"market_share"`
	RevenueShare  float64 `json:"revenue_share"`
}

// ProvincePerformance is the per-province ranking entry
type ProvincePerformance struct {
	ProvinceName   string  `json:"province_name"`
	Orders         int     `json:"orders"`
	Packages       int     `json:"packages"`
	Revenue        float64 `json:"revenue"`
	AvgOrderValue  float64 `json:"avg_order_value"`
	TotalCustomers int     `json:"total_customers"`
}

// DistrictPerformance is the per-(province, district) ranking entry
type DistrictPerformance struct {
	ProvinceName  string  `json:"province_name"`
	DistrictName  string  `json:"district_name"`
	Orders        int     `json:"orders"`
	Packages      int     `json:"packages"`
	Revenue       float64 `json:"revenue"`
	AvgOrderValue float64 `json:"avg_order_value"`
}

// ValueDistribution buckets orders by delivery amount (VND)
type ValueDistribution struct {
	Under2M   int `json:"under_2m"`
	From2To3  int `json:"from_2m_to_3m"`
	From3To5  int `json:"from_3m_to_5m"`
	From5To10 int `json:"from_5m_to_10m"`
	Over10M   int `json:"over_10m"`
}

// RepeatCustomerStat reports repeat-customer behaviour for one
// (fulfillment center, province) pair
type RepeatCustomerStat struct {
	FCCode          string  `json:"fc_code"`
	ProvinceName    string  `json:"province_name"`
	TotalCustomers  int     `json:"total_customers"`
	RepeatCustomers int     `json:"repeat_customers"`
	RepeatRate      float64 `json:"repeat_rate"`
}

// OrderReport is the full derived view-model for one dataset. It is
// recomputed from scratch whenever the underlying rows change; nothing in
// it is updated in place.
type OrderReport struct {
	Summary             OrderSummary          `json:"summary"`
	FCPerformance       []FCPerformance       `json:"fc_performance"`
	ProvincePerformance []ProvincePerformance `json:"province_performance"`
	DistrictPerformance []DistrictPerformance `json:"district_performance"`
	ValueDistribution   ValueDistribution     `json:"value_distribution"`
	SkippedRows         int                   `json:"skipped_rows"`
}

// DistrictCoverage aggregates a hub's destinations inside one district
type DistrictCoverage struct {
	DistrictName       string  `json:"district_name"`
	ProvinceName       string  `json:"province_name"`
	Count              int     `json:"count"`
	TotalOrders        int     `json:"total_orders"`
	MedianOrders       float64 `json:"median_orders"`
	MissingCoordinates int     `json:"missing_coordinates"`
}

// CoverageReport is the per-district breakdown of a hub's destinations
type CoverageReport struct {
	Districts          []DistrictCoverage `json:"districts"`
	TotalDestinations  int                `json:"total_destinations"`
	TotalOrders        int                `json:"total_orders"`
	MissingCoordinates int                `json:"missing_coordinates"`
}
