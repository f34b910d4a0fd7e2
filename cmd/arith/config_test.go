package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	src := `{
		// Trailing commas and comments are allowed.
		prompt: "calc> ",
		interactive: false,
		echo: true,
		format: "%.2f",
		max_depth: 10,
	}`
	cfg, err := LoadConfig(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, "calc> ", cfg.Prompt)
	require.NotNil(t, cfg.Interactive)
	assert.False(t, *cfg.Interactive)
	assert.True(t, cfg.Echo)
	assert.Equal(t, "%.2f", cfg.Format)
	assert.Equal(t, 10, cfg.MaxDepth)
	assert.False(t, cfg.Strict)
	// Unset fields keep their defaults.
	assert.Equal(t, "q", cfg.Quit)
	assert.Len(t, cfg.ParseOptions(), 1)
}

func TestLoadConfigErrors(t *testing.T) {
	for _, src := range []string{"{", "{max_depth: -1}", `{echo: "yes"}`} {
		_, err := LoadConfig(strings.NewReader(src))
		assert.Error(t, err, src)
	}
}

func TestLoadConfigFile(t *testing.T) {
	cfg, err := LoadConfigFile("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Empty(t, cfg.ParseOptions())

	dir := t.TempDir()
	name := filepath.Join(dir, "arith.json5")
	require.NoError(t, os.WriteFile(name, []byte(`{strict: true, quit: "qx"}`), 0o644))
	cfg, err = LoadConfigFile(name)
	require.NoError(t, err)
	assert.True(t, cfg.Strict)
	assert.Equal(t, "qx", cfg.Quit)
	assert.Len(t, cfg.ParseOptions(), 1)

	bad := filepath.Join(dir, "bad.json5")
	require.NoError(t, os.WriteFile(bad, []byte("{strict: }"), 0o644))
	_, err = LoadConfigFile(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), bad)

	_, err = LoadConfigFile(filepath.Join(dir, "missing"))
	assert.Error(t, err)
}
