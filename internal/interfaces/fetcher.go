package interfaces

import (
	"context"

	"llm-stock-report/internal/types"
)

// Fetcher retrieves the raw price series for every ticker in one batch.
// A single failing ticker fails the batch; no partial dataset is returned.
type Fetcher interface {
	Fetch(ctx context.Context, tickers []types.Ticker, dates types.DateRange) (types.Dataset, error)
}
