package interfaces

import (
	"context"

	"llm-stock-report/internal/types"
)

// ReportPipeline is what a delivery shell drives: run once, render once.
type ReportPipeline interface {
	Run(ctx context.Context, tickers []types.Ticker) (types.Report, error)
	Deliver(ctx context.Context, tickers []types.Ticker, out Renderer) error
}
