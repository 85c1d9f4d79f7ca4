package normalizer

import (
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/elC0mpa/budget-doctor/model"
)

func NewService() *service {
	return &service{}
}

// Normalize builds a cost observation from raw billing records. Rows with a
// negative or non-numeric amount are rejected and counted; every valid row is
// preserved in source order, down to sub-microcent amounts. Grouping tiny
// lines under "Other minor services" is a display concern, not done here.
func (s *service) Normalize(asOf time.Time, records []model.RawServiceRecord) (model.CostObservation, int) {
	items := make([]model.LineItem, 0, len(records))
	rejected := 0
	total := 0.0

	for _, record := range records {
		if !validAmount(record.Amount) {
			slog.Warn("rejecting malformed billing record",
				"service", record.ServiceName,
				"amount", record.Amount,
				"err", model.ErrMalformedRecord)
			rejected++
			continue
		}

		item := model.LineItem{
			ServiceKey:    serviceKey(record.ServiceName),
			DisplayName:   displayName(record.ServiceName),
			Amount:        record.Amount,
			UsageQuantity: record.UsageQuantity,
			UsageUnit:     record.UsageUnit,
		}

		if record.PreTaxAmount != nil && validAmount(*record.PreTaxAmount) {
			preTax := *record.PreTaxAmount
			item.PreTaxAmount = &preTax
			item.TaxAmount = record.Amount - preTax
		}

		items = append(items, item)
		total += record.Amount
	}

	return model.CostObservation{
		Date:        asOf,
		TotalAmount: total,
		LineItems:   items,
	}, rejected
}

func validAmount(amount float64) bool {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return false
	}
	return amount >= 0
}

func serviceKey(name string) string {
	if strings.TrimSpace(name) == "" {
		return model.OtherServiceKey
	}
	return name
}

func displayName(name string) string {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "Other services"
	}
	return trimmed
}
