package report

import (
	"context"
	"fmt"
	"io"

	"llm-stock-report/internal/interfaces"
	"llm-stock-report/internal/types"
)

// ConsoleRenderer prints the report to out and failures to errOut.
type ConsoleRenderer struct {
	out    io.Writer
	errOut io.Writer
	failed bool
}

var _ interfaces.Renderer = (*ConsoleRenderer)(nil)

func NewConsoleRenderer(out, errOut io.Writer) *ConsoleRenderer {
	return &ConsoleRenderer{out: out, errOut: errOut}
}

func (r *ConsoleRenderer) RenderReport(_ context.Context, report types.Report) error {
	_, err := fmt.Fprintf(r.out, "Stock Report:\n%s\n", report)
	return err
}

func (r *ConsoleRenderer) RenderError(_ context.Context, err error) error {
	r.failed = true
	_, werr := fmt.Fprintf(r.errOut, "Error generating report: %v\n", err)
	return werr
}

// Failed reports whether RenderError was called.
func (r *ConsoleRenderer) Failed() bool {
	return r.failed
}
