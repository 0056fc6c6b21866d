package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("nonsense"))
}

func TestNewWithWriterJSON(t *testing.T) {
	var buf bytes.Buffer
	log := ForService(NewWithWriter(&buf, "json", "info"), "customer-service", "dev")

	log.Debug("hidden")
	log.Info("lookup done", "pid", "199001011234")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "lookup done", rec["msg"])
	assert.Equal(t, "customer-service", rec["service"])
	assert.Equal(t, "199001011234", rec["pid"])
}

func TestNewWithWriterText(t *testing.T) {
	var buf bytes.Buffer
	NewWithWriter(&buf, "text", "debug").Debug("visible")

	assert.Contains(t, buf.String(), "msg=visible")
}
