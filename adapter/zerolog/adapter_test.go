package zerologadapter

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trickstertwo/xclock/adapter/frozen"

	"github.com/trickstertwo/logprovider"
)

func decode(t *testing.T, line []byte) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(line, &m), "line=%s", string(line))
	return m
}

func TestZerologAdapter_JSON_EmitsEntry(t *testing.T) {
	var buf bytes.Buffer
	a := New(zerolog.New(&buf))

	at := time.Date(2024, 12, 31, 23, 59, 59, 123456789, time.UTC)
	p, err := logprovider.NewBuilder().
		WithReceiveFunc(a.Receive).
		WithClock(frozen.New(at)).
		Build()
	require.NoError(t, err)

	p.Warn("state changed",
		logprovider.WithTag("cache"),
		logprovider.WithError(errors.New("boom")),
		logprovider.WithFields(
			logprovider.Str("from", "old"),
			logprovider.Int("count", 2),
			logprovider.Bool("ok", true),
		),
	)

	m := decode(t, buf.Bytes())
	assert.Equal(t, "warn", m["level"])
	assert.Equal(t, "state changed", m["message"])
	assert.Equal(t, at.Format(time.RFC3339Nano), m["ts"])
	assert.Equal(t, "WARN", m["type"])
	assert.Equal(t, "cache", m["tag"])
	assert.Equal(t, "boom", m["error"])
	assert.Equal(t, "old", m["from"])
	assert.Equal(t, float64(2), m["count"])
	assert.Equal(t, true, m["ok"])
}

func TestZerologAdapter_StackFrames(t *testing.T) {
	var buf bytes.Buffer
	p, err := logprovider.New(New(zerolog.New(&buf)).Receive)
	require.NoError(t, err)

	p.StackTrace(logprovider.TypeError, "boom")

	m := decode(t, buf.Bytes())
	stack, ok := m["stack"].([]any)
	require.True(t, ok, "stack should be an array: %v", m["stack"])
	require.NotEmpty(t, stack)
	assert.Contains(t, stack[0], "TestZerologAdapter_StackFrames")
}

func TestZerologAdapter_UnknownHasNoLevel(t *testing.T) {
	var buf bytes.Buffer
	New(zerolog.New(&buf)).Receive(logprovider.NewEntry(logprovider.TypeUnknown, "?"))

	m := decode(t, buf.Bytes())
	assert.NotContains(t, m, "level")
	assert.Equal(t, "UNKNOWN", m["type"])
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("LOGPROVIDER_CONSOLE", "true")
	t.Setenv("LOGPROVIDER_CALLER_SKIP", "3")

	env, err := loadEnv()
	require.NoError(t, err)
	assert.True(t, env.Console)
	assert.False(t, env.Caller)
	assert.Equal(t, 3, env.CallerSkip)
}

func TestDefaultFactoryRegistered(t *testing.T) {
	t.Setenv("LOGPROVIDER_CONSOLE", "false")

	// init() registered the zerolog factory; Default must not panic.
	p := logprovider.Default()
	require.NotNil(t, p.Receiver())
	assert.NotNil(t, p.Receiver().Func())
}

func TestCaller_PointsAtCallSite(t *testing.T) {
	var buf bytes.Buffer
	p := Use(Config{Writer: &buf, Caller: true})

	logprovider.Info("via facade")
	assert.Contains(t, decode(t, buf.Bytes())["caller"], "adapter_test.go")

	buf.Reset()
	p.Warn("via provider")
	assert.Contains(t, decode(t, buf.Bytes())["caller"], "adapter_test.go")

	buf.Reset()
	p.LogEntry(logprovider.NewEntry(logprovider.TypeError, "via entry"))
	assert.Contains(t, decode(t, buf.Bytes())["caller"], "adapter_test.go")
}

func TestLoadEnv_DefaultCallerSkip(t *testing.T) {
	env, err := loadEnv()
	require.NoError(t, err)
	assert.Equal(t, DefaultCallerSkip, env.CallerSkip)
}

func TestConfigLogger_ConsoleSetsTimestampFieldName(t *testing.T) {
	old := zerolog.TimestampFieldName
	t.Cleanup(func() { zerolog.TimestampFieldName = old })
	zerolog.TimestampFieldName = "time"

	_ = Config{Writer: io.Discard}.Logger()
	assert.Equal(t, "time", zerolog.TimestampFieldName, "JSON mode must leave the global alone")

	_ = Config{Writer: io.Discard, Console: true}.Logger()
	assert.Equal(t, "ts", zerolog.TimestampFieldName)
}
