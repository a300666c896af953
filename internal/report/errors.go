package report

import (
	"errors"
	"fmt"

	"llm-stock-report/internal/marketdata"
	"llm-stock-report/internal/types"
)

// Stage tags which half of the pipeline failed.
type Stage int

const (
	FetchFailure Stage = iota + 1
	SynthesisFailure
)

func (s Stage) String() string {
	switch s {
	case FetchFailure:
		return "fetch"
	case SynthesisFailure:
		return "synthesis"
	default:
		return "unknown"
	}
}

// ErrNoTickers is returned before any network call when the ticker list is empty.
var ErrNoTickers = errors.New("no tickers supplied")

// PipelineError is the failure variant of a run. Ticker is set for fetch
// failures when the failing request can be identified.
type PipelineError struct {
	Stage  Stage
	Ticker types.Ticker
	Err    error
}

func (e *PipelineError) Error() string {
	if e.Ticker != "" {
		return fmt.Sprintf("%s failure (%s): %v", e.Stage, e.Ticker, e.Err)
	}
	return fmt.Sprintf("%s failure: %v", e.Stage, e.Err)
}

func (e *PipelineError) Unwrap() error { return e.Err }

func newFetchFailure(err error) *PipelineError {
	pe := &PipelineError{Stage: FetchFailure, Err: err}
	var fe *marketdata.FetchError
	if errors.As(err, &fe) {
		pe.Ticker = fe.Ticker
	}
	return pe
}

func newSynthesisFailure(err error) *PipelineError {
	return &PipelineError{Stage: SynthesisFailure, Err: err}
}

func stageOf(err error) (Stage, bool) {
	var pe *PipelineError
	if errors.As(err, &pe) {
		return pe.Stage, true
	}
	return 0, false
}

func IsFetchFailure(err error) bool {
	s, ok := stageOf(err)
	return ok && s == FetchFailure
}

func IsSynthesisFailure(err error) bool {
	s, ok := stageOf(err)
	return ok && s == SynthesisFailure
}
