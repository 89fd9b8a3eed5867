package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"DEBUG", zerolog.DebugLevel},
		{" warning ", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"off", zerolog.Disabled},
		{"", zerolog.InfoLevel},
		{"verbose", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestNew_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: zerolog.DebugLevel, Format: "json", Output: &buf})

	logger.Debug().Str("part", "panel").Msg("hidden")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "debug", line["level"])
	assert.Equal(t, "panel", line["part"])
	assert.Equal(t, "hidden", line["message"])
}

func TestNew_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: zerolog.WarnLevel, Format: "json", Output: &buf})

	logger.Info().Msg("ignored")

	assert.Zero(t, buf.Len())
}

func TestContextHelpers(t *testing.T) {
	var buf bytes.Buffer
	ctx := WithContext(context.Background(), New(Config{Level: zerolog.DebugLevel, Format: "json", Output: &buf}))

	ctx = WithComponent(ctx, "layout")
	ctx = WithPart(ctx, "sidebar")
	ctx = WithScope(ctx, "ws-1", "")
	FromContext(ctx).Info().Msg("resized")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "layout", line["component"])
	assert.Equal(t, "sidebar", line["part"])
	assert.Equal(t, "ws-1", line["workspace"])
	assert.NotContains(t, line, "profile")
}

func TestFromContext_NoLogger(t *testing.T) {
	logger := FromContext(context.Background())

	require.NotNil(t, logger)
	assert.NotPanics(t, func() { logger.Info().Msg("dropped") })
}

func TestStartupTrace(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: zerolog.DebugLevel, Format: "json", Output: &buf})

	clock := time.Unix(0, 0)
	now := func() time.Time { return clock }
	st := newStartupTrace(&logger, now)
	require.NotNil(t, st)

	clock = clock.Add(5 * time.Millisecond)
	st.Mark("config_loaded")
	clock = clock.Add(20 * time.Millisecond)
	st.Mark("layout_restored")
	st.Finish()
	st.Mark("ignored_after_finish")

	milestones := st.Milestones()
	require.Len(t, milestones, 2)
	assert.Equal(t, 25*time.Millisecond, milestones[1].Elapsed)
	assert.Equal(t, 20*time.Millisecond, milestones[1].Delta)
	assert.Contains(t, buf.String(), "config_loaded:5,layout_restored:25")
}

func TestStartupTrace_DisabledAboveDebug(t *testing.T) {
	logger := New(Config{Level: zerolog.InfoLevel, Format: "json", Output: &bytes.Buffer{}})

	st := NewStartupTrace(&logger)

	assert.Nil(t, st)
	assert.NotPanics(t, func() {
		st.Mark("x")
		st.Finish()
	})
	assert.Nil(t, st.Milestones())
}
