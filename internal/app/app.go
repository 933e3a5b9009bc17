package app

import (
	"github.com/finscope/alphavantage-mcp-server/internal/alphavantage"
	"github.com/finscope/alphavantage-mcp-server/internal/config"
	"github.com/finscope/alphavantage-mcp-server/internal/mcp"
	"github.com/finscope/alphavantage-mcp-server/internal/tools"
)

// NewToolbox builds the Alpha Vantage toolbox. Registration order is the
// tools/list discovery order.
func NewToolbox(cfg config.Config) *mcp.Toolbox {
	var opts []alphavantage.Option
	if cfg.BaseURL != "" {
		opts = append(opts, alphavantage.WithBaseURL(cfg.BaseURL))
	}
	client := alphavantage.New(cfg.APIKey, opts...)

	return mcp.NewToolbox(
		// Quotes and prices
		tools.StockQuote(client),
		tools.DailyPrices(client),

		// Financial statements
		tools.IncomeStatement(client),
		tools.BalanceSheet(client),
		tools.CashFlow(client),

		// Fundamentals
		tools.CompanyOverview(client),

		// News and earnings
		tools.NewsSentiment(client),
		tools.Earnings(client),
	)
}

// NewServer constructs an MCP server with the shared toolbox.
func NewServer(cfg config.Config) *mcp.Server {
	return mcp.NewServer(NewToolbox(cfg))
}
