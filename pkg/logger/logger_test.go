package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitWithWriter(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter("tryon-test", false, &buf)
	SetLevel("debug")
	t.Cleanup(func() { SetLevel("info") })

	Info(context.Background()).Str("product", "Air Cloud Runner").Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "tryon-test", entry["service"])
	assert.Equal(t, "Air Cloud Runner", entry["product"])
	assert.Equal(t, "hello", entry["message"])
	assert.NotContains(t, entry, "trace_id")
}

func TestSetLevel(t *testing.T) {
	t.Cleanup(func() { SetLevel("info") })

	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"warn", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"", zerolog.InfoLevel},
		{"loud", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			SetLevel(tt.in)
			assert.Equal(t, tt.want, zerolog.GlobalLevel())
		})
	}
}

func TestComponent(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter("tryon-test", false, &buf)

	log := Component("ar_scene")
	log.Info().Msg("scene ready")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "ar_scene", entry["component"])
	assert.Equal(t, "tryon-test", entry["service"])
}
