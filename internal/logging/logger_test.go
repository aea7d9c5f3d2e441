package logging

import (
	"bytes"
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"WARN", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"nonsense", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, ParseLevel(tc.in), "level %q", tc.in)
	}
}

func TestNewFromConfigValues(t *testing.T) {
	log := NewFromConfigValues("debug", "json")
	assert.Equal(t, zerolog.DebugLevel, log.GetLevel())

	// Bad format falls back to the default.
	log = NewFromConfigValues("error", "xml")
	assert.Equal(t, zerolog.ErrorLevel, log.GetLevel())
}

func TestNewFromEnv(t *testing.T) {
	t.Setenv("PANEWM_LOG_LEVEL", "trace")
	t.Setenv("PANEWM_LOG_FORMAT", "json")

	log := NewFromEnv()
	assert.Equal(t, zerolog.TraceLevel, log.GetLevel())
}

func TestContextRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	ctx := WithContext(context.Background(), log)
	ctx = WithComponent(ctx, "dock")
	ctx = WithPaneID(ctx, "notes")

	FromContext(ctx).Info().Msg("hello")

	out := buf.String()
	assert.Contains(t, out, `"component":"dock"`)
	assert.Contains(t, out, `"pane_id":"notes"`)
	assert.Contains(t, out, `"message":"hello"`)
}
