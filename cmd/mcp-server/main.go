package main

import (
	"flag"

	"github.com/joho/godotenv"

	"github.com/finscope/alphavantage-mcp-server/internal/app"
	"github.com/finscope/alphavantage-mcp-server/internal/config"
	"github.com/finscope/alphavantage-mcp-server/internal/logging"
	"github.com/finscope/alphavantage-mcp-server/internal/mcp"
)

func main() {
	_ = godotenv.Load()

	httpAddr := flag.String("http", ":3333", "MCP HTTP listen address (e.g., :3333)")
	flag.Parse()

	logger := logging.New("mcp-server")

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("config: %v", err)
	}

	if err := mcp.RunHTTP(app.NewServer(cfg), *httpAddr, logger); err != nil {
		logger.Fatalf("MCP server error: %v", err)
	}
}
