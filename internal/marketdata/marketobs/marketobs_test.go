package marketobs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"llm-stock-report/internal/logger"
	"llm-stock-report/internal/marketdata"
	"llm-stock-report/internal/types"
)

type stubFetcher struct {
	ds  types.Dataset
	err error
}

func (s stubFetcher) Fetch(context.Context, []types.Ticker, types.DateRange) (types.Dataset, error) {
	return s.ds, s.err
}

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, logger.InitWithConfig(logger.LogConfig{Level: "INFO", Format: "json", Output: &buf}))
	t.Cleanup(func() { _ = logger.InitWithConfig(logger.LogConfig{Level: "INFO", Format: "text"}) })
	return &buf
}

var dates = types.NewDateRange(time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC), 3)

func TestWrapPassesDatasetThrough(t *testing.T) {
	logs := captureLogs(t)
	want := types.Dataset{{Ticker: "AAPL", Data: json.RawMessage(`{"c":1}`)}}

	got, err := Wrap(stubFetcher{ds: want}).Fetch(context.Background(), []types.Ticker{"AAPL"}, dates)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Contains(t, logs.String(), `"msg":"Market data fetched"`)
}

func TestWrapLogsFailedTicker(t *testing.T) {
	logs := captureLogs(t)
	fetchErr := &marketdata.FetchError{Ticker: "TSLA", StatusCode: http.StatusForbidden, Err: errors.New("denied")}

	got, err := Wrap(stubFetcher{err: fetchErr}).Fetch(context.Background(), []types.Ticker{"AAPL", "TSLA"}, dates)
	assert.Nil(t, got)
	assert.Same(t, fetchErr, err)

	var line map[string]any
	require.NoError(t, json.Unmarshal(logs.Bytes(), &line))
	assert.Equal(t, "Market data fetch failed", line["msg"])
	assert.Equal(t, "TSLA", line["failed_ticker"])
	assert.Equal(t, float64(http.StatusForbidden), line["status"])
}
