package main

import (
	"context"
	"fmt"
	"os"

	"llm-stock-report/internal/bootstrap"
	"llm-stock-report/internal/logger"
	"llm-stock-report/internal/report"
	"llm-stock-report/internal/types"
)

// tickersFor prefers tickers given on the command line over the configured list
func tickersFor(args, configured []string) []types.Ticker {
	src := configured
	if len(args) > 0 {
		src = args
	}
	out := make([]types.Ticker, 0, len(src))
	for _, raw := range src {
		if t := types.NormalizeTicker(raw); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if err := bootstrap.InitializeSystem(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		return 1
	}
	defer bootstrap.Shutdown()

	ctx := context.Background()
	cfg, err := bootstrap.LoadConfig(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		return 1
	}

	pipeline := bootstrap.InitializePipeline(ctx, cfg)
	tickers := tickersFor(args, cfg.CLI.Tickers)
	logger.Info(ctx, "Generating report", "tickers", tickers)

	out := report.NewConsoleRenderer(os.Stdout, os.Stderr)
	if err := pipeline.Deliver(ctx, tickers, out); err != nil {
		logger.ErrorWithErr(ctx, "Failed to write report", err)
		return 1
	}
	if out.Failed() {
		return 1
	}
	return 0
}
