package llm

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"llm-stock-report/internal/types"
)

func TestBuildMessages(t *testing.T) {
	ds := types.Dataset{
		{Ticker: "AAPL", Data: json.RawMessage(`{"results":[{"c":1}]}`)},
		{Ticker: "TSLA", Data: json.RawMessage(`{"results":[]}`)},
	}

	msgs, err := BuildMessages("be brief", ds)
	require.NoError(t, err)
	require.Len(t, msgs, 2)

	assert.Equal(t, RoleSystem, msgs[0].Role)
	assert.Equal(t, "be brief", msgs[0].Content)

	assert.Equal(t, RoleUser, msgs[1].Role)
	assert.True(t, strings.HasPrefix(msgs[1].Content, "[\n  {\n    \"ticker\": \"AAPL\""), msgs[1].Content)
	assert.JSONEq(t, `[{"ticker":"AAPL","data":{"results":[{"c":1}]}},{"ticker":"TSLA","data":{"results":[]}}]`, msgs[1].Content)
	assert.Less(t, strings.Index(msgs[1].Content, "AAPL"), strings.Index(msgs[1].Content, "TSLA"))
}
