package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, defaultTopK, cfg.TopK)
	assert.InDelta(t, 1.2, cfg.K1, 1e-9)
	assert.InDelta(t, 0.75, cfg.B, 1e-9)
	assert.Equal(t, defaultAndMarker, cfg.AndMarker)
	assert.Equal(t, defaultOrMarker, cfg.OrMarker)
}
