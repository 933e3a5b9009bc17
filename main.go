package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"

	"github.com/finscope/alphavantage-mcp-server/internal/app"
	"github.com/finscope/alphavantage-mcp-server/internal/config"
	"github.com/finscope/alphavantage-mcp-server/internal/logging"
	"github.com/finscope/alphavantage-mcp-server/internal/mcp"
)

func main() {
	_ = godotenv.Load()

	logger := logging.New("mcp-stdio")

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("config: %v", err)
	}

	logger.Info("MCP server serving on stdio")
	if err := mcp.ServeStdio(context.Background(), app.NewServer(cfg), os.Stdin, os.Stdout, logger); err != nil {
		logger.Fatalf("stdio server error: %v", err)
	}
}
