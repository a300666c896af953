package openai

import (
	"context"
	"fmt"

	goopenai "github.com/sashabaranov/go-openai"

	"llm-stock-report/internal/interfaces"
	"llm-stock-report/internal/llm"
	"llm-stock-report/internal/trace"
	"llm-stock-report/internal/types"
)

const DefaultModel = "gpt-4"

// OpenAISynthesizer turns a dataset into a report with one chat completion.
type OpenAISynthesizer struct {
	client *goopenai.Client
	opts   llm.Options
}

var _ interfaces.Synthesizer = (*OpenAISynthesizer)(nil)

func NewOpenAISynthesizer(opts llm.Options) *OpenAISynthesizer {
	cfg := goopenai.DefaultConfig(opts.APIKey)
	if opts.BaseURL != "" {
		cfg.BaseURL = opts.BaseURL
	}
	if opts.Model == "" {
		opts.Model = DefaultModel
	}
	return &OpenAISynthesizer{
		client: goopenai.NewClientWithConfig(cfg),
		opts:   opts,
	}
}

func (s *OpenAISynthesizer) Synthesize(ctx context.Context, dataset types.Dataset) (types.Report, error) {
	ctx, span := trace.StartSpan(ctx, "openai-api-call")
	defer span.End()

	msgs, err := llm.BuildMessages(s.opts.System, dataset)
	if err != nil {
		return "", err
	}

	req := goopenai.ChatCompletionRequest{
		Model:       s.opts.Model,
		Messages:    make([]goopenai.ChatCompletionMessage, 0, len(msgs)),
		MaxTokens:   s.opts.MaxTokens,
		Temperature: s.opts.Temperature,
	}
	for _, m := range msgs {
		role := goopenai.ChatMessageRoleUser
		if m.Role == llm.RoleSystem {
			role = goopenai.ChatMessageRoleSystem
		}
		req.Messages = append(req.Messages, goopenai.ChatCompletionMessage{Role: role, Content: m.Content})
	}

	resp, err := s.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("openai chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", llm.ErrEmptyCompletion
	}

	return types.Report(resp.Choices[0].Message.Content), nil
}
