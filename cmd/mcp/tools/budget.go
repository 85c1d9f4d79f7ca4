package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/elC0mpa/budget-doctor/cmd/mcp/response"
	"github.com/elC0mpa/budget-doctor/service/apitracker"
	"github.com/elC0mpa/budget-doctor/service/summary"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Deps carries the session-scoped services the budget tools share. The
// tracker and observation store live for the whole server session so the
// self-cost ledger accumulates across tool calls.
type Deps struct {
	Builder summary.BuilderService
	Tracker apitracker.TrackerService
}

// RegisterBudgetTools registers all budget diagnosis tools with the MCP server
func RegisterBudgetTools(s *server.MCPServer, deps Deps) {
	s.AddTool(
		mcp.NewTool("budget_get_usage_summary",
			mcp.WithDescription("Get the full reconciled budget report: per-service cost breakdown, budget health, growth forecast, session API self-costs and reconciliation result"),
		),
		makeUsageSummaryHandler(deps),
	)

	s.AddTool(
		mcp.NewTool("budget_get_status",
			mcp.WithDescription("Get the current budget health classification (HEALTHY, CAUTION, WARNING or CRITICAL) with utilization and a recommendation"),
		),
		makeStatusHandler(deps),
	)

	s.AddTool(
		mcp.NewTool("budget_get_forecast",
			mcp.WithDescription("Get the spend growth forecast: daily growth rate, projected period totals and days until the warning and critical limits are crossed"),
		),
		makeForecastHandler(deps),
	)

	s.AddTool(
		mcp.NewTool("budget_get_session_costs",
			mcp.WithDescription("Get the API self-cost ledger for this server session, broken down by metered API"),
		),
		makeSessionCostsHandler(deps),
	)

	s.AddTool(
		mcp.NewTool("budget_ask_advisor",
			mcp.WithDescription("Ask a free-text question about current cloud spend. The advisor answers with the full budget report as context; the tokens it consumes are metered into the session ledger"),
			mcp.WithString("question",
				mcp.Required(),
				mcp.Description("The question to ask about current spend, budget health or growth"),
			),
		),
		makeAskAdvisorHandler(deps),
	)
}

func makeUsageSummaryHandler(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		usageSummary, err := deps.Builder.BuildSummary(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to build usage summary: %v", err)), nil
		}

		resp := response.ConvertUsageSummary(usageSummary)
		data, _ := json.MarshalIndent(resp, "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	}
}

func makeStatusHandler(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		usageSummary, err := deps.Builder.BuildSummary(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to classify budget: %v", err)), nil
		}

		resp := response.ConvertStatus(usageSummary.Status)
		data, _ := json.MarshalIndent(resp, "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	}
}

func makeForecastHandler(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		usageSummary, err := deps.Builder.BuildSummary(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to build forecast: %v", err)), nil
		}

		resp := response.ConvertForecast(usageSummary.Forecast)
		data, _ := json.MarshalIndent(resp, "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	}
}

func makeSessionCostsHandler(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		resp := response.ConvertSessionCosts(deps.Tracker.SessionSummary())
		data, _ := json.MarshalIndent(resp, "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	}
}

func makeAskAdvisorHandler(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		question, err := request.RequireString("question")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		answer, err := deps.Builder.Ask(ctx, question)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to ask advisor: %v", err)), nil
		}

		resp := response.AdvisorAnswer{
			Question:    question,
			Answer:      answer,
			SessionCost: deps.Tracker.SessionSummary().TotalCost,
		}
		data, _ := json.MarshalIndent(resp, "", "  ")
		return mcp.NewToolResultText(string(data)), nil
	}
}
