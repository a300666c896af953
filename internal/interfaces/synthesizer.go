package interfaces

import (
	"context"

	"llm-stock-report/internal/types"
)

type Synthesizer interface {
	Synthesize(ctx context.Context, dataset types.Dataset) (types.Report, error)
}
