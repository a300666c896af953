package claude

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"llm-stock-report/internal/interfaces"
	"llm-stock-report/internal/llm"
	"llm-stock-report/internal/trace"
	"llm-stock-report/internal/types"
)

const (
	DefaultModel     = "claude-sonnet-4-20250514"
	defaultMaxTokens = 1024
)

// ClaudeSynthesizer implements the Synthesizer interface using the Anthropic Messages API
type ClaudeSynthesizer struct {
	client anthropic.Client
	opts   llm.Options
}

var _ interfaces.Synthesizer = (*ClaudeSynthesizer)(nil)

// NewClaudeSynthesizer creates a Claude-backed synthesizer. The SDK's
// built-in retries are turned off: a failed call fails the run.
func NewClaudeSynthesizer(opts llm.Options) *ClaudeSynthesizer {
	if opts.Model == "" {
		opts.Model = DefaultModel
	}
	if opts.MaxTokens <= 0 {
		opts.MaxTokens = defaultMaxTokens
	}

	clientOpts := []option.RequestOption{
		option.WithAPIKey(opts.APIKey),
		option.WithMaxRetries(0),
	}
	if opts.BaseURL != "" {
		clientOpts = append(clientOpts, option.WithBaseURL(opts.BaseURL))
	}

	return &ClaudeSynthesizer{
		client: anthropic.NewClient(clientOpts...),
		opts:   opts,
	}
}

func (s *ClaudeSynthesizer) Synthesize(ctx context.Context, dataset types.Dataset) (types.Report, error) {
	ctx, span := trace.StartSpan(ctx, "claude-api-call")
	defer span.End()

	msgs, err := llm.BuildMessages(s.opts.System, dataset)
	if err != nil {
		return "", err
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(s.opts.Model),
		MaxTokens: int64(s.opts.MaxTokens),
	}
	if s.opts.Temperature > 0 {
		params.Temperature = anthropic.Float(float64(s.opts.Temperature))
	}

	// The Messages API takes the system instruction out of band.
	for _, m := range msgs {
		if m.Role == llm.RoleSystem {
			if m.Content != "" {
				params.System = []anthropic.TextBlockParam{{Text: m.Content}}
			}
			continue
		}
		params.Messages = append(params.Messages, anthropic.NewUserMessage(anthropic.NewTextBlock(m.Content)))
	}

	resp, err := s.client.Messages.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("claude messages: %w", err)
	}

	var out strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			out.WriteString(block.Text)
		}
	}
	if out.Len() == 0 {
		return "", llm.ErrEmptyCompletion
	}

	return types.Report(out.String()), nil
}
