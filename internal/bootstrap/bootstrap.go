package bootstrap

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"llm-stock-report/internal/interfaces"
	"llm-stock-report/internal/llm"
	"llm-stock-report/internal/llm/claude"
	"llm-stock-report/internal/llm/llmobs"
	"llm-stock-report/internal/llm/openai"
	"llm-stock-report/internal/logger"
	"llm-stock-report/internal/marketdata"
	"llm-stock-report/internal/marketdata/marketobs"
	"llm-stock-report/internal/report"
	"llm-stock-report/internal/store"
	"llm-stock-report/internal/trace"
)

// ConfigPath is overridable through REPORT_CONFIG.
func ConfigPath() string {
	if v := os.Getenv("REPORT_CONFIG"); v != "" {
		return v
	}
	return "config.yaml"
}

// InitializeSystem loads .env and initializes logger and tracer
func InitializeSystem() error {
	// Load environment variables
	_ = godotenv.Load()

	if err := logger.Init(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := trace.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize tracer: %v\n", err)
	}
	return nil
}

// Shutdown flushes pending spans
func Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = trace.Shutdown(ctx)
}

// LoadConfig loads and returns the configuration
func LoadConfig(ctx context.Context) (*store.Config, error) {
	cfg, err := store.LoadConfig(ConfigPath())
	if err != nil {
		logger.ErrorWithErr(ctx, "Failed to load config", err)
		return nil, err
	}
	return cfg, nil
}

// InitializeFetcher returns the market-data fetcher with observability
func InitializeFetcher(cfg *store.Config) interfaces.Fetcher {
	f := marketdata.NewPolygonFetcher(marketdata.Params{
		BaseURL: cfg.MarketData.BaseURL,
		APIKey:  cfg.MarketDataAPIKey,
		Timeout: time.Duration(cfg.MarketData.TimeoutSeconds) * time.Second,
	})
	return marketobs.Wrap(f)
}

// InitializeSynthesizer picks the completion provider and wraps it with observability
func InitializeSynthesizer(ctx context.Context, cfg *store.Config) interfaces.Synthesizer {
	opts := llm.Options{
		APIKey:      cfg.CompletionAPIKey,
		Model:       cfg.LLM.Model,
		BaseURL:     cfg.LLM.BaseURL,
		System:      cfg.LLM.System,
		MaxTokens:   cfg.LLM.MaxTokens,
		Temperature: cfg.LLM.Temperature,
	}

	var s interfaces.Synthesizer
	switch cfg.LLM.Provider {
	case store.ProviderClaude:
		s = claude.NewClaudeSynthesizer(opts)
	default:
		s = openai.NewOpenAISynthesizer(opts)
	}
	logger.Info(ctx, "Completion provider configured", "provider", cfg.LLM.Provider, "model", cfg.LLM.Model)

	return llmobs.Wrap(s, cfg.LLM.Provider, cfg.LLM.Model)
}

// InitializePipeline wires fetcher and synthesizer into one pipeline
func InitializePipeline(ctx context.Context, cfg *store.Config) *report.Pipeline {
	return report.New(
		InitializeFetcher(cfg),
		InitializeSynthesizer(ctx, cfg),
		cfg.MarketData.LookbackDays,
	)
}
