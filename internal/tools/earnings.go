package tools

import "github.com/finscope/alphavantage-mcp-server/internal/alphavantage"

// Earnings constructs the earnings tool.
func Earnings(client *alphavantage.Client) *symbolTool {
	return newSymbolTool(client, "get_earnings", "Get earnings data for a company", alphavantage.FuncEarnings)
}
