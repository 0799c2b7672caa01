package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFromFlags(t *testing.T) {
	tests := []struct {
		name     string
		vv, v, q bool
		want     slog.Level
	}{
		{"debug", true, false, false, slog.LevelDebug},
		{"verbose wins over quiet", false, true, true, slog.LevelInfo},
		{"quiet", false, false, true, slog.LevelError},
		{"fallback", false, false, false, slog.LevelWarn},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LevelFromFlags(tt.vv, tt.v, tt.q, slog.LevelWarn))
		})
	}
}

func TestSetupFiltersByLevel(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	var buf bytes.Buffer
	logger := Setup(&buf, slog.LevelInfo)
	logger.Debug("hidden")
	slog.Info("frame", "n", 3)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "msg=frame")
	assert.Contains(t, out, "n=3")
}
