package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	home := t.TempDir()

	cfg := Defaults()
	cfg.DefaultBitsize = 512
	cfg.DefaultScheme = "random"
	cfg.LogLevel = "debug"

	require.NoError(t, Save(cfg, home))

	loaded, err := Load(home)
	require.NoError(t, err)
	require.Equal(t, cfg, loaded)
}

func TestLoadMissingReturnsDefaults(t *testing.T) {
	home := t.TempDir()
	loaded, err := Load(home)
	require.NoError(t, err)
	require.Equal(t, Defaults(), loaded)
}
