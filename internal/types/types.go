package types

import (
	"encoding/json"
	"strings"
	"time"
)

// MinTickerLength is the shortest ticker the browser form accepts.
const MinTickerLength = 3

const dateLayout = "2006-01-02"

// Ticker identifies a publicly traded security, e.g. "AAPL".
type Ticker string

// NormalizeTicker trims surrounding whitespace and upper-cases the symbol
func NormalizeTicker(s string) Ticker {
	return Ticker(strings.ToUpper(strings.TrimSpace(s)))
}

// ValidTicker applies the browser form rule: at least MinTickerLength characters.
func ValidTicker(s string) bool {
	return len(strings.TrimSpace(s)) >= MinTickerLength
}

func (t Ticker) String() string { return string(t) }

// DateRange is the calendar window requested from the market-data provider.
type DateRange struct {
	Start, End time.Time
}

// NewDateRange returns [now - lookbackDays, now] truncated to calendar days.
func NewDateRange(now time.Time, lookbackDays int) DateRange {
	end := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return DateRange{
		Start: end.AddDate(0, 0, -lookbackDays),
		End:   end,
	}
}

func (r DateRange) StartDate() string { return r.Start.Format(dateLayout) }
func (r DateRange) EndDate() string   { return r.End.Format(dateLayout) }

// TickerData pairs a ticker with the provider's raw JSON body.
type TickerData struct {
	Ticker Ticker          `json:"ticker"`
	Data   json.RawMessage `json:"data"`
}

// Dataset is ordered by the caller-supplied ticker order.
type Dataset []TickerData

// Tickers lists the symbols in dataset order
func (d Dataset) Tickers() []Ticker {
	out := make([]Ticker, 0, len(d))
	for _, td := range d {
		out = append(out, td.Ticker)
	}
	return out
}

// Report is the model-generated text handed to exactly one output adapter.
type Report string

func (r Report) String() string { return string(r) }
