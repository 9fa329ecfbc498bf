package models

import "strings"

// OrderRecord is one row of the fulfillment-analytics dataset.
// CustomerID and NoBins are pointers because the older upload schema does
// not carry them; absence is meaningful (carton order, no customer data).
type OrderRecord struct {
	FCCode             string   `json:"fc_code" db:"fc_code"`
	CustomerID         *int64   `json:"customer_id,omitempty" db:"customer_id"`
	TotalPackages      int      `json:"total_packages" db:"total_packages"`
	DeliveryAmount     float64  `json:"delivery_amount" db:"delivery_amount"`
	ProvinceName       string   `json:"province_name" db:"province_name"`
	DistrictName       string   `json:"district_name" db:"district_name"`
	WardName           string   `json:"ward_name" db:"ward_name"`
	NoBins             *float64 `json:"no_bins,omitempty" db:"no_bins"`
	OrderCreatedTS     string   `json:"order_created_ts,omitempty" db:"order_created_ts"`
	CarrierDeliveredTS string   `json:"carrier_delivered_ts,omitempty" db:"carrier_delivered_ts"`
}

// Valid reports whether the row participates in aggregation.
// A blank fc_code marks the row invalid for every aggregate.
func (r *OrderRecord) Valid() bool {
	return strings.TrimSpace(r.FCCode) != ""
}

// Dataset describes one stored upload of order records
type Dataset struct {
	ID        string `json:"id" db:"id"`
	Name      string `json:"name" db:"name"`
	RowCount  int    `json:"row_count" db:"row_count"`
	Month     string `json:"month" db:"month"`
	CreatedAt string `json:"created_at" db:"created_at"`
}
