package interfaces

import (
	"context"

	"llm-stock-report/internal/types"
)

// Renderer is the output side of a delivery shell.
type Renderer interface {
	RenderReport(ctx context.Context, report types.Report) error
	RenderError(ctx context.Context, err error) error
}
