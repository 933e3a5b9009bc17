package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/finscope/alphavantage-mcp-server/internal/protocol"
)

func testLogger() *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger.WithField("component", "test")
}

func TestServeStdioRoundTrip(t *testing.T) {
	in := strings.Join([]string{
		`{"jsonrpc":"2.0","id":1,"method":"ping"}`,
		``,
		`{"jsonrpc":"2.0","id":2,"method":"tools/list"}`,
	}, "\n") + "\n"

	var out bytes.Buffer
	err := ServeStdio(context.Background(), testServer(), strings.NewReader(in), &out, testLogger())
	require.NoError(t, err)

	lines := nonEmptyLines(out.String())
	require.Len(t, lines, 2)

	var first protocol.Response
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	require.Nil(t, first.Error)
	require.Equal(t, float64(1), first.ID)

	var second struct {
		Result struct {
			Tools []protocol.ToolDescriptor `json:"tools"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))
	require.Len(t, second.Result.Tools, 1)
}

func TestServeStdioParseError(t *testing.T) {
	var out bytes.Buffer
	err := ServeStdio(context.Background(), testServer(), strings.NewReader("{not json}\n"), &out, testLogger())
	require.NoError(t, err)

	lines := nonEmptyLines(out.String())
	require.Len(t, lines, 1)

	var resp protocol.Response
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &resp))
	require.NotNil(t, resp.Error)
	require.Equal(t, -32700, resp.Error.Code)
}

func TestServeStdioOneResponsePerLine(t *testing.T) {
	in := strings.Repeat(`{"jsonrpc":"2.0","id":9,"method":"ping"}`+"\n", 5)

	var out bytes.Buffer
	require.NoError(t, ServeStdio(context.Background(), testServer(), strings.NewReader(in), &out, testLogger()))
	require.Len(t, nonEmptyLines(out.String()), 5)
}

func nonEmptyLines(s string) []string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
