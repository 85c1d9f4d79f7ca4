package model

import "time"

// OtherServiceKey is the sentinel key for records without a usable service name
const OtherServiceKey = "Other"

// RawServiceRecord is one per-service billing entry as delivered by a cost
// data source, before normalization. Tax and usage fields are optional and
// source-dependent.
type RawServiceRecord struct {
	ServiceName   string
	Amount        float64
	PreTaxAmount  *float64
	UsageQuantity *float64
	UsageUnit     string
}

// LineItem is one service's normalized cost contribution
type LineItem struct {
	ServiceKey    string
	DisplayName   string
	Amount        float64
	PreTaxAmount  *float64
	TaxAmount     float64
	UsageQuantity *float64
	UsageUnit     string
}

// UnitCost returns cost per usage unit. The second return is false when
// usage quantity is absent or not positive.
func (l LineItem) UnitCost() (float64, bool) {
	if l.UsageQuantity == nil || *l.UsageQuantity <= 0 {
		return 0, false
	}
	return l.Amount / *l.UsageQuantity, true
}

// HasTaxSplit reports whether the source provided a pre-tax amount
func (l LineItem) HasTaxSplit() bool {
	return l.PreTaxAmount != nil
}

// CostObservation is a point-in-time spend total with its per-service
// breakdown. LineItems keep source order.
type CostObservation struct {
	Date        time.Time
	TotalAmount float64
	LineItems   []LineItem
}

// DailyCost is one point of total-spend history
type DailyCost struct {
	Date   time.Time
	Amount float64
}
