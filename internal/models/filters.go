package models

// DestinationFilter represents filter parameters for querying a hub's
// destinations. Zero values mean "not set".
type DestinationFilter struct {
	Province      string      `form:"province"`
	District      string      `form:"district"`
	Ward          string      `form:"ward"`
	CarrierType   CarrierType `form:"carrierType"`
	MaxDistanceKm float64     `form:"maxDistanceKm"`
	MinOrders     *int        `form:"minOrders"`
	MaxOrders     *int        `form:"maxOrders"`
}

// StatsFilter represents filter parameters for ranking queries
type StatsFilter struct {
	GroupBy string `form:"groupBy"` // fc, province, district, ward
	OrderBy string `form:"orderBy"` // orders, revenue, packages
	Limit   int    `form:"limit"`   // Max results, 0 = all
}
