package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/finscope/alphavantage-mcp-server/internal/protocol"
)

// Tool defines the behavior of a single MCP tool.
type Tool interface {
	Descriptor() protocol.ToolDescriptor
	Invoke(ctx context.Context, raw json.RawMessage) (protocol.CallResult, *protocol.ResponseError)
}

// Toolbox stores and dispatches tools by name. Registration order is the
// discovery order, so tools/list output is stable across calls.
type Toolbox struct {
	order []string
	tools map[string]Tool
}

// NewToolbox constructs a toolbox with the provided tools. A duplicate
// name keeps the first registration.
func NewToolbox(tools ...Tool) *Toolbox {
	tb := &Toolbox{tools: make(map[string]Tool, len(tools))}
	for _, t := range tools {
		desc := t.Descriptor()
		if _, dup := tb.tools[desc.Name]; dup {
			continue
		}
		tb.order = append(tb.order, desc.Name)
		tb.tools[desc.Name] = t
	}
	return tb
}

// Describe returns all tool descriptors in registration order.
func (tb *Toolbox) Describe() []protocol.ToolDescriptor {
	list := make([]protocol.ToolDescriptor, 0, len(tb.order))
	for _, name := range tb.order {
		list = append(list, tb.tools[name].Descriptor())
	}
	return list
}

// Call invokes a named tool. An unknown name is a protocol fault, never
// an error-shaped tool result.
func (tb *Toolbox) Call(ctx context.Context, name string, args json.RawMessage) (protocol.CallResult, *protocol.ResponseError) {
	tool, ok := tb.tools[name]
	if !ok {
		return protocol.CallResult{}, &protocol.ResponseError{Code: -32601, Message: fmt.Sprintf("tool not found: %s", name)}
	}
	return tool.Invoke(ctx, args)
}
