package tools

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
	"strings"

	"github.com/finscope/alphavantage-mcp-server/internal/alphavantage"
	"github.com/finscope/alphavantage-mcp-server/internal/protocol"
)

// defaultNewsLimit is applied when the caller omits limit.
const defaultNewsLimit = 50

// newsSentimentTool queries market news and sentiment. Every argument is
// optional; without tickers the upstream returns general market news.
type newsSentimentTool struct {
	client *alphavantage.Client
}

// NewsSentiment constructs the news and sentiment tool.
func NewsSentiment(client *alphavantage.Client) *newsSentimentTool {
	return &newsSentimentTool{client: client}
}

func (t *newsSentimentTool) Descriptor() protocol.ToolDescriptor {
	return protocol.ToolDescriptor{
		Name:        "get_news_sentiment",
		Description: "Get latest news and sentiment for a stock or topic",
		InputSchema: &protocol.JSONSchema{
			Type: "object",
			Properties: map[string]protocol.JSONSchema{
				"tickers": {
					Type:        "string",
					Description: "Stock symbol(s) separated by comma (e.g., AAPL,MSFT) or leave empty for general market news",
				},
				"topics": {
					Type:        "string",
					Description: "Optional: News topics like 'earnings', 'merger', 'technology', etc.",
				},
				"limit": {
					Type:        "integer",
					Description: "Number of articles to return (default: 50, max: 1000)",
					Default:     defaultNewsLimit,
				},
			},
			Required: []string{},
		},
	}
}

// newsSentimentArgs captures supported parameters. Limit is a pointer so
// an explicit zero survives the absent-vs-zero distinction.
type newsSentimentArgs struct {
	Tickers string `json:"tickers"`
	Topics  string `json:"topics"`
	Limit   *int   `json:"limit"`
}

func (t *newsSentimentTool) Invoke(ctx context.Context, raw json.RawMessage) (protocol.CallResult, *protocol.ResponseError) {
	var args newsSentimentArgs
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &args); err != nil {
			return protocol.CallResult{}, &protocol.ResponseError{Code: -32602, Message: "invalid arguments"}
		}
	}

	limit := defaultNewsLimit
	if args.Limit != nil {
		limit = *args.Limit
	}

	// Optional parameters are appended only when non-empty.
	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))
	if tickers := strings.TrimSpace(args.Tickers); tickers != "" {
		params.Set("tickers", tickers)
	}
	if topics := strings.TrimSpace(args.Topics); topics != "" {
		params.Set("topics", topics)
	}
	return textResult(t.client.Query(ctx, alphavantage.FuncNewsSentiment, params)), nil
}
