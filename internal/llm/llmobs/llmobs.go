package llmobs

import (
	"context"
	"time"

	"llm-stock-report/internal/interfaces"
	"llm-stock-report/internal/logger"
	"llm-stock-report/internal/trace"
	"llm-stock-report/internal/types"
)

// observableSynthesizer wraps a Synthesizer with observability (logging & tracing)
type observableSynthesizer struct {
	synthesizer interfaces.Synthesizer
	provider    string
	model       string
}

// Compile-time interface check
var _ interfaces.Synthesizer = (*observableSynthesizer)(nil)

// Wrap wraps a synthesizer with observability middleware
func Wrap(synthesizer interfaces.Synthesizer, provider, model string) interfaces.Synthesizer {
	return &observableSynthesizer{
		synthesizer: synthesizer,
		provider:    provider,
		model:       model,
	}
}

// Synthesize requests a report with observability
func (ob *observableSynthesizer) Synthesize(ctx context.Context, dataset types.Dataset) (types.Report, error) {
	ctx, span := trace.StartSpan(ctx, "llm.Synthesize")
	defer span.End()

	start := time.Now()

	// Use DebugSkip(1) to report the actual caller, not this middleware wrapper
	logger.DebugSkip(ctx, 1, "Requesting report",
		"provider", ob.provider,
		"model", ob.model,
		"tickers", dataset.Tickers(),
	)

	report, err := ob.synthesizer.Synthesize(ctx, dataset)
	if err != nil {
		logger.ErrorWithErrSkip(ctx, 1, "Report synthesis failed", err,
			"provider", ob.provider,
			"model", ob.model,
			"duration_ms", time.Since(start).Milliseconds(),
		)
		return "", err
	}

	logger.InfoSkip(ctx, 1, "Report received",
		"provider", ob.provider,
		"model", ob.model,
		"report_chars", len(report),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return report, nil
}
