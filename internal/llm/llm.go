package llm

import (
	"encoding/json"
	"errors"
	"fmt"

	"llm-stock-report/internal/types"
)

const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// ErrEmptyCompletion is returned when the provider answers without any text.
var ErrEmptyCompletion = errors.New("completion returned no choices")

// Message is a provider-neutral chat message
type Message struct {
	Role    string
	Content string
}

// Options carries the fixed per-process model settings.
type Options struct {
	APIKey      string
	Model       string
	BaseURL     string
	System      string
	MaxTokens   int
	Temperature float32
}

// BuildMessages frames the dataset for a single-turn completion: the system
// instruction, then the dataset as indented JSON in one user message.
func BuildMessages(system string, dataset types.Dataset) ([]Message, error) {
	body, err := json.MarshalIndent(dataset, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal dataset: %w", err)
	}
	return []Message{
		{Role: RoleSystem, Content: system},
		{Role: RoleUser, Content: string(body)},
	}, nil
}
