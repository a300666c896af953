package marketdata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"time"

	"golang.org/x/sync/errgroup"

	"llm-stock-report/internal/api"
	"llm-stock-report/internal/interfaces"
	"llm-stock-report/internal/trace"
	"llm-stock-report/internal/types"
)

const DefaultBaseURL = "https://api.polygon.io"

// FetchError identifies the ticker that failed a batch.
// StatusCode is zero when no HTTP response was received.
type FetchError struct {
	Ticker     types.Ticker
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("market data for %s: %v", e.Ticker, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

var ErrMalformedBody = errors.New("response body is not valid JSON")

// PolygonFetcher pulls daily aggregate bars, one GET per ticker.
type PolygonFetcher struct {
	client *api.Client
	apiKey string
}

var _ interfaces.Fetcher = (*PolygonFetcher)(nil)

type Params struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

func NewPolygonFetcher(p Params) *PolygonFetcher {
	baseURL := p.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	opts := []api.ClientOption{
		api.WithBaseURL(baseURL),
		api.WithHeader("Accept", "application/json"),
		api.WithLogging(true),
	}
	if p.Timeout > 0 {
		opts = append(opts, api.WithTimeout(p.Timeout))
	}
	return &PolygonFetcher{
		client: api.NewClient(opts...),
		apiKey: p.APIKey,
	}
}

// Fetch issues all requests concurrently. Each goroutine writes only its own
// slot, so the dataset keeps the caller's order whatever the completion order.
// Siblings are not cancelled when one fails; their results are discarded.
func (f *PolygonFetcher) Fetch(ctx context.Context, tickers []types.Ticker, dates types.DateRange) (types.Dataset, error) {
	ctx, span := trace.StartSpan(ctx, "polygon-fetch")
	defer span.End()

	slots := make(types.Dataset, len(tickers))

	var g errgroup.Group
	for i, ticker := range tickers {
		i, ticker := i, ticker
		g.Go(func() error {
			data, err := f.fetchOne(ctx, ticker, dates)
			if err != nil {
				return err
			}
			slots[i] = types.TickerData{Ticker: ticker, Data: data}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return slots, nil
}

func (f *PolygonFetcher) fetchOne(ctx context.Context, ticker types.Ticker, dates types.DateRange) (json.RawMessage, error) {
	path := fmt.Sprintf("/v2/aggs/ticker/%s/range/1/day/%s/%s?%s",
		url.PathEscape(ticker.String()),
		dates.StartDate(),
		dates.EndDate(),
		url.Values{"apiKey": {f.apiKey}}.Encode(),
	)

	resp, err := f.client.GET(ctx, path)
	if err != nil {
		fe := &FetchError{Ticker: ticker, Err: err}
		var httpErr *api.HTTPError
		if errors.As(err, &httpErr) {
			fe.StatusCode = httpErr.StatusCode
		}
		return nil, fe
	}

	if !json.Valid(resp.Body) {
		return nil, &FetchError{Ticker: ticker, StatusCode: resp.StatusCode, Err: ErrMalformedBody}
	}
	return json.RawMessage(resp.Body), nil
}
