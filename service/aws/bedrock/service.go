package awsbedrock

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/elC0mpa/budget-doctor/model"
	"github.com/elC0mpa/budget-doctor/service/apitracker"
)

const DefaultModelID = "anthropic.claude-3-haiku-20240307-v1:0"

type invokeRequest struct {
	AnthropicVersion string          `json:"anthropic_version"`
	MaxTokens        int             `json:"max_tokens"`
	System           string          `json:"system,omitempty"`
	Messages         []invokeMessage `json:"messages"`
}

type invokeMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type invokeResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Usage struct {
		InputTokens  int `json:"input_tokens"`
		OutputTokens int `json:"output_tokens"`
	} `json:"usage"`
}

func NewService(awsconfig aws.Config, modelID string, tracker apitracker.TrackerService) *service {
	if modelID == "" {
		modelID = DefaultModelID
	}
	client := bedrockruntime.NewFromConfig(awsconfig)
	return &service{
		client:  client,
		modelID: modelID,
		tracker: tracker,
	}
}

// Advise implements service.NaturalLanguageAdvisor
func (s *service) Advise(ctx context.Context, summary *model.UsageSummary, question string) (string, error) {
	body, err := json.Marshal(invokeRequest{
		AnthropicVersion: "bedrock-2023-05-31",
		MaxTokens:        1024,
		System:           summaryContext(summary),
		Messages: []invokeMessage{
			{Role: "user", Content: question},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode advisor request: %w", err)
	}

	output, err := s.client.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(s.modelID),
		ContentType: aws.String("application/json"),
		Body:        body,
	})
	if err != nil {
		return "", fmt.Errorf("failed to invoke model: %w", err)
	}

	var response invokeResponse
	if err := json.Unmarshal(output.Body, &response); err != nil {
		return "", fmt.Errorf("failed to decode advisor response: %w", err)
	}

	s.tracker.RecordBedrockInvoke(s.modelID, response.Usage.InputTokens, response.Usage.OutputTokens)

	var answer strings.Builder
	for _, block := range response.Content {
		if block.Type == "text" {
			answer.WriteString(block.Text)
		}
	}

	return answer.String(), nil
}

// summaryContext renders the usage summary as plain text context for the model
func summaryContext(summary *model.UsageSummary) string {
	if summary == nil {
		return "You are a cloud cost advisor. No usage data is available."
	}

	var b strings.Builder
	b.WriteString("You are a cloud cost advisor. Answer using this usage summary.\n\n")
	fmt.Fprintf(&b, "Total spend: $%.2f\n", summary.Observation.TotalAmount)
	fmt.Fprintf(&b, "Budget state: %s (%.1f%% of critical limit)\n",
		summary.Status.State, summary.Status.UtilizationPercent)
	fmt.Fprintf(&b, "Recommendation: %s\n", summary.Status.Recommendation)

	if len(summary.Observation.LineItems) > 0 {
		b.WriteString("\nPer-service breakdown:\n")
		for _, item := range summary.Observation.LineItems {
			fmt.Fprintf(&b, "- %s: $%.4f\n", item.DisplayName, item.Amount)
		}
	}

	forecast := summary.Forecast
	fmt.Fprintf(&b, "\nDaily growth rate: $%.4f/day\n", forecast.DailyGrowthRate)
	fmt.Fprintf(&b, "Days to warning limit: %s\n", describeDays(forecast.DaysToWarning))
	fmt.Fprintf(&b, "Days to critical limit: %s\n", describeDays(forecast.DaysToCritical))
	fmt.Fprintf(&b, "Session API self-cost so far: $%.4f over %d calls\n",
		summary.SessionCosts.TotalCost, summary.SessionCosts.CallCount)

	return b.String()
}

func describeDays(days model.DaysToThreshold) string {
	switch days.Outcome {
	case model.OutcomeReached:
		return fmt.Sprintf("%d days", days.Days)
	case model.OutcomeAlreadyAtOrOver:
		return "already at or over the limit"
	case model.OutcomeNoGrowth:
		return "not approaching (flat or shrinking spend)"
	case model.OutcomeBeyondHorizon:
		return "more than ten years away"
	default:
		return "unknown (not enough history)"
	}
}
