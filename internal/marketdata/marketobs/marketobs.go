package marketobs

import (
	"context"
	"errors"
	"time"

	"llm-stock-report/internal/interfaces"
	"llm-stock-report/internal/logger"
	"llm-stock-report/internal/marketdata"
	"llm-stock-report/internal/trace"
	"llm-stock-report/internal/types"
)

// observableFetcher wraps a Fetcher with logging & tracing
type observableFetcher struct {
	fetcher interfaces.Fetcher
}

var _ interfaces.Fetcher = (*observableFetcher)(nil)

// Wrap wraps a fetcher with observability middleware
func Wrap(fetcher interfaces.Fetcher) interfaces.Fetcher {
	return &observableFetcher{fetcher: fetcher}
}

func (of *observableFetcher) Fetch(ctx context.Context, tickers []types.Ticker, dates types.DateRange) (types.Dataset, error) {
	ctx, span := trace.StartSpan(ctx, "marketdata.Fetch")
	defer span.End()

	start := time.Now()
	logger.DebugSkip(ctx, 1, "Fetching market data",
		"tickers", tickers,
		"start_date", dates.StartDate(),
		"end_date", dates.EndDate(),
	)

	dataset, err := of.fetcher.Fetch(ctx, tickers, dates)
	if err != nil {
		args := []any{"tickers", tickers, "duration_ms", time.Since(start).Milliseconds()}
		var fe *marketdata.FetchError
		if errors.As(err, &fe) {
			args = append(args, "failed_ticker", fe.Ticker, "status", fe.StatusCode)
		}
		logger.ErrorWithErrSkip(ctx, 1, "Market data fetch failed", err, args...)
		return nil, err
	}

	logger.InfoSkip(ctx, 1, "Market data fetched",
		"tickers", dataset.Tickers(),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return dataset, nil
}
