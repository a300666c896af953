package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONOutputCarriesFields(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, InitWithConfig(LogConfig{Level: "INFO", Format: "json", Output: &buf}))

	ErrorWithErr(context.Background(), "fetch failed", errors.New("boom"), "ticker", "AAPL")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "fetch failed", line["msg"])
	assert.Equal(t, "ERROR", line["level"])
	assert.Equal(t, "boom", line["error"])
	assert.Equal(t, "AAPL", line["ticker"])
}

func TestDebugSuppressedWithoutDetailedLogging(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, InitWithConfig(LogConfig{Level: "DEBUG", Format: "text", Output: &buf}))

	Debug(context.Background(), "hidden")
	assert.Empty(t, buf.String())

	require.NoError(t, InitWithConfig(LogConfig{Level: "DEBUG", Format: "text", DetailedLogging: true, Output: &buf}))
	Debug(context.Background(), "shown")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "source")
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, "WARN", parseLogLevel("warn").String())
	assert.Equal(t, "INFO", parseLogLevel("nonsense").String())
}

func TestEventLogsAtInfo(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, InitWithConfig(LogConfig{Level: "INFO", Format: "json", Output: &buf}))

	Event(context.Background(), "pipeline.state", "to", "delivered")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "pipeline.state", line["msg"])
	assert.Equal(t, "INFO", line["level"])
	assert.Equal(t, "delivered", line["to"])
}
