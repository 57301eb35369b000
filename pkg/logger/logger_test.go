package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJSONEncoder(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Config{Level: "debug", Encoding: "json", Output: &buf})
	require.NoError(t, err)

	log.Debug("arithmetic rejected")
	require.NoError(t, log.Sync())

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "arithmetic rejected", entry["msg"])
	assert.Equal(t, "debug", entry["level"])
	assert.Contains(t, entry, "timestamp")
	assert.Contains(t, entry, "caller")
}

func TestNewLevelFallback(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Config{Level: "chatty", Output: &buf})
	require.NoError(t, err)

	log.Debug("hidden")
	log.Info("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestNewConsoleEncoder(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Config{Level: "info", Encoding: "console", Output: &buf})
	require.NoError(t, err)

	log.Info("server started")
	line := buf.String()
	assert.Contains(t, line, "server started")
	assert.False(t, strings.HasPrefix(line, "{"))
}

func TestWithRequestID(t *testing.T) {
	var buf bytes.Buffer
	base, err := New(Config{Level: "info", Output: &buf})
	require.NoError(t, err)

	ctx := ContextWithRequestID(context.Background(), "req-1")
	assert.Equal(t, "req-1", RequestID(ctx))

	WithRequestID(ctx, base).Info("tagged")
	assert.Contains(t, buf.String(), `"request_id":"req-1"`)

	buf.Reset()
	WithRequestID(context.Background(), base).Info("untagged")
	assert.NotContains(t, buf.String(), "request_id")

	assert.Nil(t, WithRequestID(ctx, nil))
	assert.Equal(t, "", RequestID(nil))
}
