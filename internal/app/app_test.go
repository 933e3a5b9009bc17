package app

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/finscope/alphavantage-mcp-server/internal/config"
)

func TestNewToolboxCatalog(t *testing.T) {
	tb := NewToolbox(config.Config{APIKey: "test-key"})

	want := []string{
		"get_stock_quote",
		"get_daily_prices",
		"get_income_statement",
		"get_balance_sheet",
		"get_cash_flow",
		"get_company_overview",
		"get_news_sentiment",
		"get_earnings",
	}

	descs := tb.Describe()
	require.Len(t, descs, len(want))
	for i, d := range descs {
		require.Equal(t, want[i], d.Name)
		require.NotEmpty(t, d.Description)
		require.NotNil(t, d.InputSchema)
	}

	// Discovery is idempotent.
	require.Equal(t, descs, tb.Describe())
}
