package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_respectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, InfoLevel)
	l.Debug("hidden")
	l.Info("visible", String("key", "value"))
	require.NoError(t, l.Sync())

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"msg":"visible"`)
	assert.Contains(t, out, `"key":"value"`)
}

func TestNamed(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, DebugLevel).Named("openf1")
	l.Debug("request")
	assert.Contains(t, buf.String(), `"logger":"openf1"`)
}

func TestWithFilterRules(t *testing.T) {
	var buf bytes.Buffer
	opt, err := WithFilterRules("debug:openf1")
	require.NoError(t, err)
	l := New(&buf, DebugLevel, opt)
	l.Named("openf1").Debug("kept")
	l.Named("dashboard").Debug("dropped")

	out := buf.String()
	assert.Contains(t, out, "kept")
	assert.NotContains(t, out, "dropped")
}

func TestContext(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, InfoLevel)
	ctx := AddToContext(context.Background(), l)
	assert.Same(t, l, GetFromContext(ctx))
	assert.Same(t, Default(), GetFromContext(context.Background()))
}

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("warn")
	require.NoError(t, err)
	assert.Equal(t, WarnLevel, lvl)
	_, err = ParseLevel("chatty")
	assert.Error(t, err)
}
