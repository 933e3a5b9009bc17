package tools

import "github.com/finscope/alphavantage-mcp-server/internal/alphavantage"

// StockQuote constructs the stock quote tool.
func StockQuote(client *alphavantage.Client) *symbolTool {
	return newSymbolTool(client, "get_stock_quote", "Get current stock quote", alphavantage.FuncGlobalQuote)
}
