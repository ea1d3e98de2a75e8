package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

// ── NewLogger ────────────────────────────────────────────────────────────────

func TestNewLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "server")

	l.Info().Msg("hello")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "server", entry["role"])
	assert.Equal(t, "hello", entry["message"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry, "func")
}

func TestNewLogger_CallerFieldName(t *testing.T) {
	NewLogger("caller-role")
	assert.Equal(t, "func", zerolog.CallerFieldName)
}

func TestNewLogger_LevelFromEnv(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  zerolog.Level
	}{
		{"unset", "", zerolog.DebugLevel},
		{"info", "info", zerolog.InfoLevel},
		{"upper case", "WARN", zerolog.WarnLevel},
		{"garbage", "loud", zerolog.DebugLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(LevelEnv, tt.value)
			NewLogger("level-role")
			assert.Equal(t, tt.want, zerolog.GlobalLevel())
		})
	}
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
}

func TestNewCLILogger_NotNil(t *testing.T) {
	require.NotNil(t, NewCLILogger("dashctl"))
}

// ── Nop ──────────────────────────────────────────────────────────────────────

func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Info().Msg("should be discarded")

	assert.Empty(t, buf.String())
}

// ── GetChildLogger ───────────────────────────────────────────────────────────

func TestGetChildLogger_InheritsFields(t *testing.T) {
	var buf bytes.Buffer
	parent := newLogger(&buf, "inherited-role")

	child := parent.GetChildLogger()
	assert.NotSame(t, parent, child)
	child.Info().Msg("child message")

	assert.Equal(t, "inherited-role", decodeEntry(t, &buf)["role"])
}

// ── context helpers ──────────────────────────────────────────────────────────

func TestFromContext_NotNil(t *testing.T) {
	require.NotNil(t, FromContext(context.Background()))
}

func TestWithContext_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	l := &Logger{zerolog.New(&buf).With().Str("trace_id", "abc").Logger()}
	ctx := l.WithContext(context.Background())

	FromContext(ctx).Info().Msg("from context")

	assert.Equal(t, "abc", decodeEntry(t, &buf)["trace_id"])
}

func TestFromRequest_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("req-key", "req-value").Logger()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(zl.WithContext(req.Context()))

	FromRequest(req).Info().Msg("from request")

	assert.Equal(t, "req-value", decodeEntry(t, &buf)["req-key"])
}
