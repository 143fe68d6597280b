package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, raw []byte) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(raw, &entry))
	return entry
}

func TestNewLogger_RoleAndTimestamp(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("relay")
	l.Logger = l.Output(&buf)

	l.Info().Msg("hello")

	entry := decodeEntry(t, buf.Bytes())
	assert.Equal(t, "relay", entry["role"])
	assert.Contains(t, entry, "time")
}

func TestNewLogger_CallerFieldName(t *testing.T) {
	NewLogger("caller")
	assert.Equal(t, "func", zerolog.CallerFieldName)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestNewFileLogger_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.log")
	l := NewFileLogger("board-client", path)

	l.Info().Str("event", "connect").Msg("connected")

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	entry := decodeEntry(t, bytes.TrimSpace(raw))
	assert.Equal(t, "board-client", entry["role"])
	assert.Equal(t, "connect", entry["event"])
}

func TestNewFileLogger_UnwritablePathDiscards(t *testing.T) {
	l := NewFileLogger("board-client", filepath.Join(t.TempDir(), "missing", "dir", "x.log"))
	require.NotNil(t, l)
	l.Info().Msg("dropped")
}

func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Info().Msg("should be discarded")

	assert.Empty(t, buf.String())
}

func TestGetChildLogger_InheritsFields(t *testing.T) {
	var buf bytes.Buffer
	parent := NewLogger("inherited-role")
	parent.Logger = parent.Output(&buf)

	child := parent.GetChildLogger()
	assert.NotSame(t, parent, child)
	child.Info().Msg("child message")

	assert.Equal(t, "inherited-role", decodeEntry(t, buf.Bytes())["role"])
}

func TestWithStr_AddsField(t *testing.T) {
	var buf bytes.Buffer
	parent := NewLogger("relay")
	parent.Logger = parent.Output(&buf)

	parent.WithStr("peer", "p-1").Info().Msg("joined")

	assert.Equal(t, "p-1", decodeEntry(t, buf.Bytes())["peer"])
}

func TestFromContext_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("ctx-key", "ctx-value").Logger()
	ctx := zl.WithContext(context.Background())

	FromContext(ctx).Info().Msg("from context")

	assert.Equal(t, "ctx-value", decodeEntry(t, buf.Bytes())["ctx-key"])
}

func TestFromRequest_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("req-key", "req-value").Logger()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(zl.WithContext(req.Context()))

	FromRequest(req).Info().Msg("from request")

	assert.Equal(t, "req-value", decodeEntry(t, buf.Bytes())["req-key"])
}
