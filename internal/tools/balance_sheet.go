package tools

import "github.com/finscope/alphavantage-mcp-server/internal/alphavantage"

// BalanceSheet constructs the balance sheet tool.
func BalanceSheet(client *alphavantage.Client) *symbolTool {
	return newSymbolTool(client, "get_balance_sheet", "Get annual balance sheet for a company", alphavantage.FuncBalanceSheet)
}
