package tools

import "github.com/finscope/alphavantage-mcp-server/internal/alphavantage"

// CashFlow constructs the cash flow tool.
func CashFlow(client *alphavantage.Client) *symbolTool {
	return newSymbolTool(client, "get_cash_flow", "Get annual cash flow statement for a company", alphavantage.FuncCashFlow)
}
