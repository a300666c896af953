package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"llm-stock-report/internal/bootstrap"
	"llm-stock-report/internal/logger"
	"llm-stock-report/internal/server"
)

func main() {
	if err := bootstrap.InitializeSystem(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer bootstrap.Shutdown()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := bootstrap.LoadConfig(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	srv := server.New(server.Config{
		Port:           cfg.Port,
		AllowedOrigins: cfg.Server.AllowedOrigins,
	}, bootstrap.InitializePipeline(ctx, cfg))

	if err := srv.Run(ctx); err != nil {
		logger.ErrorWithErr(ctx, "Server stopped", err)
		bootstrap.Shutdown()
		os.Exit(1)
	}
}
