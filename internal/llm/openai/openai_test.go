package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"llm-stock-report/internal/llm"
	"llm-stock-report/internal/types"
)

type chatRequest struct {
	Model    string `json:"model"`
	Stream   bool   `json:"stream"`
	Messages []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

var dataset = types.Dataset{
	{Ticker: "AAPL", Data: json.RawMessage(`{"results":[{"c":170}]}`)},
	{Ticker: "TSLA", Data: json.RawMessage(`{"results":[{"c":180}]}`)},
}

func completionServer(t *testing.T, check func(chatRequest), status int, body string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		var req chatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if check != nil {
			check(req)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
}

func TestSynthesizeReturnsFirstChoiceVerbatim(t *testing.T) {
	srv := completionServer(t, func(req chatRequest) {
		assert.Equal(t, "gpt-4", req.Model)
		assert.False(t, req.Stream)
		require.Len(t, req.Messages, 2)
		assert.Equal(t, "system", req.Messages[0].Role)
		assert.Equal(t, "you are a guru", req.Messages[0].Content)
		assert.Equal(t, "user", req.Messages[1].Role)
		assert.JSONEq(t, `[{"ticker":"AAPL","data":{"results":[{"c":170}]}},{"ticker":"TSLA","data":{"results":[{"c":180}]}}]`, req.Messages[1].Content)
	}, http.StatusOK, `{
		"id": "chatcmpl-1",
		"object": "chat.completion",
		"model": "gpt-4",
		"choices": [
			{"index": 0, "message": {"role": "assistant", "content": "  AAPL rose. Recommendation: HOLD.\n"}, "finish_reason": "stop"},
			{"index": 1, "message": {"role": "assistant", "content": "ignored"}, "finish_reason": "stop"}
		]
	}`)
	defer srv.Close()

	s := NewOpenAISynthesizer(llm.Options{APIKey: "sk-test", BaseURL: srv.URL + "/v1", System: "you are a guru"})
	report, err := s.Synthesize(context.Background(), dataset)
	require.NoError(t, err)
	assert.Equal(t, types.Report("  AAPL rose. Recommendation: HOLD.\n"), report)
}

func TestSynthesizeNoChoices(t *testing.T) {
	srv := completionServer(t, nil, http.StatusOK, `{"id":"x","object":"chat.completion","choices":[]}`)
	defer srv.Close()

	s := NewOpenAISynthesizer(llm.Options{APIKey: "sk-test", BaseURL: srv.URL + "/v1"})
	_, err := s.Synthesize(context.Background(), dataset)
	assert.ErrorIs(t, err, llm.ErrEmptyCompletion)
}

func TestSynthesizeAPIError(t *testing.T) {
	srv := completionServer(t, nil, http.StatusUnauthorized,
		`{"error":{"message":"Incorrect API key provided","type":"invalid_request_error","code":"invalid_api_key"}}`)
	defer srv.Close()

	s := NewOpenAISynthesizer(llm.Options{APIKey: "sk-test", BaseURL: srv.URL + "/v1"})
	_, err := s.Synthesize(context.Background(), dataset)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Incorrect API key")
}
