package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeTicker(t *testing.T) {
	assert.Equal(t, Ticker("AAPL"), NormalizeTicker("  aapl "))
	assert.Equal(t, Ticker(""), NormalizeTicker("   "))
}

func TestValidTicker(t *testing.T) {
	assert.True(t, ValidTicker("TSLA"))
	assert.True(t, ValidTicker("IBM"))
	assert.False(t, ValidTicker("GE"))
	assert.False(t, ValidTicker("  F  "))
}

func TestNewDateRange(t *testing.T) {
	now := time.Date(2024, time.March, 4, 17, 30, 0, 0, time.UTC)
	r := NewDateRange(now, 3)

	assert.Equal(t, "2024-03-01", r.StartDate())
	assert.Equal(t, "2024-03-04", r.EndDate())
}

func TestNewDateRangeCrossesMonth(t *testing.T) {
	now := time.Date(2024, time.January, 2, 0, 0, 1, 0, time.UTC)
	r := NewDateRange(now, 3)

	assert.Equal(t, "2023-12-30", r.StartDate())
	assert.Equal(t, "2024-01-02", r.EndDate())
}

func TestDatasetMarshalKeepsRawPayload(t *testing.T) {
	ds := Dataset{
		{Ticker: "AAPL", Data: json.RawMessage(`{"results":[{"c":1.5}]}`)},
		{Ticker: "TSLA", Data: json.RawMessage(`{"results":[]}`)},
	}

	b, err := json.Marshal(ds)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"ticker":"AAPL","data":{"results":[{"c":1.5}]}},{"ticker":"TSLA","data":{"results":[]}}]`, string(b))
	assert.Equal(t, []Ticker{"AAPL", "TSLA"}, ds.Tickers())
}
