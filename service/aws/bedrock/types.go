package awsbedrock

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/elC0mpa/budget-doctor/model"
	"github.com/elC0mpa/budget-doctor/service/apitracker"
)

type service struct {
	client  *bedrockruntime.Client
	modelID string
	tracker apitracker.TrackerService
}

// AdvisorService answers free-text cost questions through Bedrock. Token
// usage of every invocation is metered through the tracker, so asking the
// advisor is itself visible in the budget.
type AdvisorService interface {
	Advise(ctx context.Context, summary *model.UsageSummary, question string) (string, error)
}
