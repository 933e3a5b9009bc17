package tools

import "github.com/finscope/alphavantage-mcp-server/internal/alphavantage"

// IncomeStatement constructs the income statement tool.
func IncomeStatement(client *alphavantage.Client) *symbolTool {
	return newSymbolTool(client, "get_income_statement", "Get annual income statement for a company", alphavantage.FuncIncomeStatement)
}
