package tools

import "github.com/finscope/alphavantage-mcp-server/internal/alphavantage"

// CompanyOverview constructs the company overview tool.
func CompanyOverview(client *alphavantage.Client) *symbolTool {
	return newSymbolTool(client, "get_company_overview", "Get company overview and key metrics", alphavantage.FuncOverview)
}
