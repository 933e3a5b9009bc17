package tools

import "github.com/finscope/alphavantage-mcp-server/internal/alphavantage"

// DailyPrices constructs the daily prices tool.
func DailyPrices(client *alphavantage.Client) *symbolTool {
	return newSymbolTool(client, "get_daily_prices", "Get daily time series data for a stock", alphavantage.FuncTimeSeriesDaily)
}
