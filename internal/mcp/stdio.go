package mcp

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/finscope/alphavantage-mcp-server/internal/protocol"
)

// maxLineBytes bounds a single JSON-RPC line on the stdio transport.
const maxLineBytes = 1024 * 1024

// ServeStdio reads newline-delimited JSON-RPC requests from r and writes
// one response line per request to w. It returns when r is exhausted.
// Logs must go elsewhere (stderr); w carries only the protocol stream.
func ServeStdio(ctx context.Context, server *Server, r io.Reader, w io.Writer, logger *logrus.Entry) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, maxLineBytes), maxLineBytes)

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}

		var req protocol.Request
		if err := json.Unmarshal(line, &req); err != nil {
			logger.WithError(err).Warn("parse request")
			if err := enc.Encode(protocol.Response{JSONRPC: "2.0", ID: nil, Error: &protocol.ResponseError{Code: -32700, Message: "parse error"}}); err != nil {
				return err
			}
			continue
		}

		resp, err := server.Handle(ctx, req)
		if err != nil {
			logger.WithError(err).Error("handle request")
			resp = WriteError(req.ID, -32603, "internal error", err)
		}
		if err := enc.Encode(resp); err != nil {
			return err
		}
	}
	return scanner.Err()
}
