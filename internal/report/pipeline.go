package report

import (
	"context"
	"time"

	"llm-stock-report/internal/interfaces"
	"llm-stock-report/internal/logger"
	"llm-stock-report/internal/types"
)

// Pipeline sequences fetch then synthesize. It holds no per-run state and is
// safe for concurrent use by independent runs.
type Pipeline struct {
	fetcher      interfaces.Fetcher
	synthesizer  interfaces.Synthesizer
	lookbackDays int
	now          func() time.Time
}

type Option func(*Pipeline)

// WithClock overrides the time source used to compute each run's date range
func WithClock(now func() time.Time) Option {
	return func(p *Pipeline) {
		p.now = now
	}
}

func New(fetcher interfaces.Fetcher, synthesizer interfaces.Synthesizer, lookbackDays int, opts ...Option) *Pipeline {
	p := &Pipeline{
		fetcher:      fetcher,
		synthesizer:  synthesizer,
		lookbackDays: lookbackDays,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run fetches every ticker and, only if all succeed, asks for one report.
// The date range is computed once here and shared by all fetches of the run.
func (p *Pipeline) Run(ctx context.Context, tickers []types.Ticker) (types.Report, error) {
	op := logger.StartOperation(ctx, "report.Run", "ticker_count", len(tickers))
	ctx = op.GetContext()

	state := Idle
	transition := func(next State) {
		logger.Event(ctx, "pipeline.state", "from", state.String(), "to", next.String())
		state = next
	}

	if len(tickers) == 0 {
		transition(FetchFailed)
		op.EndWithError(ErrNoTickers, "state", state.String())
		return "", &PipelineError{Stage: FetchFailure, Err: ErrNoTickers}
	}

	dates := types.NewDateRange(p.now(), p.lookbackDays)

	transition(FetchingData)
	dataset, err := p.fetcher.Fetch(ctx, tickers, dates)
	if err != nil {
		transition(FetchFailed)
		op.EndWithError(err, "state", state.String())
		return "", newFetchFailure(err)
	}

	transition(Synthesizing)
	report, err := p.synthesizer.Synthesize(ctx, dataset)
	if err != nil {
		transition(SynthesisFailed)
		op.EndWithError(err, "state", state.String())
		return "", newSynthesisFailure(err)
	}

	transition(Delivered)
	op.End("state", state.String(), "report_chars", len(report))
	return report, nil
}

// Deliver runs the pipeline and hands the outcome to exactly one renderer call.
// The returned error is the renderer's, not the pipeline's.
func (p *Pipeline) Deliver(ctx context.Context, tickers []types.Ticker, out interfaces.Renderer) error {
	report, err := p.Run(ctx, tickers)
	if err != nil {
		return out.RenderError(ctx, err)
	}
	return out.RenderReport(ctx, report)
}

var _ interfaces.ReportPipeline = (*Pipeline)(nil)
