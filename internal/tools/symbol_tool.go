package tools

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"

	"github.com/finscope/alphavantage-mcp-server/internal/alphavantage"
	"github.com/finscope/alphavantage-mcp-server/internal/protocol"
)

// symbolTool covers every operation whose only argument is a stock
// symbol. The upstream function identifier is the only thing that varies
// between them; request construction and normalization are shared.
type symbolTool struct {
	name        string
	description string
	function    string
	client      *alphavantage.Client
}

func newSymbolTool(client *alphavantage.Client, name, description, function string) *symbolTool {
	return &symbolTool{name: name, description: description, function: function, client: client}
}

func (t *symbolTool) Descriptor() protocol.ToolDescriptor {
	return protocol.ToolDescriptor{
		Name:        t.name,
		Description: t.description,
		InputSchema: &protocol.JSONSchema{
			Type: "object",
			Properties: map[string]protocol.JSONSchema{
				"symbol": {Type: "string", Description: "Stock symbol (e.g., AAPL)"},
			},
			Required: []string{"symbol"},
		},
	}
}

func (t *symbolTool) Invoke(ctx context.Context, raw json.RawMessage) (protocol.CallResult, *protocol.ResponseError) {
	var args struct {
		Symbol string `json:"symbol"`
	}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &args); err != nil {
			return protocol.CallResult{}, &protocol.ResponseError{Code: -32602, Message: "invalid arguments"}
		}
	}

	// Required arguments are rejected before any network access.
	symbol := strings.TrimSpace(args.Symbol)
	if symbol == "" {
		return protocol.CallResult{}, &protocol.ResponseError{Code: -32602, Message: "symbol is required"}
	}

	params := url.Values{}
	params.Set("symbol", symbol)
	return textResult(t.client.Query(ctx, t.function, params)), nil
}

// textResult frames an envelope as a single indented-JSON text block.
func textResult(env alphavantage.Envelope) protocol.CallResult {
	return protocol.CallResult{Content: []protocol.ContentPart{{Type: "text", Text: env.Render()}}}
}
