package normalizer

import (
	"time"

	"github.com/elC0mpa/budget-doctor/model"
)

type service struct{}

// NormalizerService converts raw per-service billing entries into a
// canonical cost observation
type NormalizerService interface {
	Normalize(asOf time.Time, records []model.RawServiceRecord) (obs model.CostObservation, rejected int)
}
