package config

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oerrors "github.com/opmodel/crust/internal/errors"
	"github.com/opmodel/crust/internal/testutil"
)

func TestLoaderLoad(t *testing.T) {
	t.Run("missing file yields defaults", func(t *testing.T) {
		testutil.IsolateConfig(t)

		cfg, err := NewLoader().Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig().Width, cfg.Width)
		assert.Equal(t, "    ", cfg.Tags)
		assert.Equal(t, []string{"setup", "helpers"}, cfg.Blocks)
		assert.Equal(t, "figlet", cfg.Figlet.Path)
		assert.Nil(t, cfg.Log.Timestamps)
	})

	t.Run("loads config from file", func(t *testing.T) {
		testutil.IsolateConfig(t)
		dir := t.TempDir()
		path := testutil.WriteFile(t, dir, "config.yaml", `
width: 60
length: 2
tags: "<>  "
blocks: [io, math]
figlet:
  header_profile: big
preset:
  hashbang: "#!/usr/bin/python3\n"
log:
  timestamps: true
`)

		loader := NewLoader()
		cfg, err := loader.Load(path)
		require.NoError(t, err)

		assert.Equal(t, 60, cfg.Width)
		assert.Equal(t, 2, cfg.Length)
		assert.Equal(t, 1, cfg.Pad, "unset keys keep defaults")
		assert.Equal(t, "<>  ", cfg.Tags)
		assert.Equal(t, []string{"io", "math"}, cfg.Blocks)
		assert.Equal(t, "big", cfg.Figlet.HeaderProfile)
		assert.Equal(t, "big", cfg.Figlet.FooterProfile)
		assert.Equal(t, "#!/usr/bin/python3\n", cfg.Preset.Hashbang)
		assert.Equal(t, ".py", cfg.Preset.Suffix)
		require.NotNil(t, cfg.Log.Timestamps)
		assert.True(t, *cfg.Log.Timestamps)
		assert.Equal(t, path, loader.Path())
	})

	t.Run("environment overrides file", func(t *testing.T) {
		testutil.IsolateConfig(t)
		dir := t.TempDir()
		path := testutil.WriteFile(t, dir, "config.yaml", "width: 60\npad: 2\n")

		t.Setenv("CRUST_WIDTH", "100")
		t.Setenv("CRUST_FIGLET_PATH", "/opt/figlet")
		t.Setenv("CRUST_BLOCKS", "a,b,c")

		loader := NewLoader()
		cfg, err := loader.Load(path)
		require.NoError(t, err)

		assert.Equal(t, 100, cfg.Width)
		assert.Equal(t, 2, cfg.Pad)
		assert.Equal(t, "/opt/figlet", cfg.Figlet.Path)
		assert.Equal(t, []string{"a", "b", "c"}, cfg.Blocks)

		assert.Equal(t, SourceEnv, loader.Source("width"))
		assert.Equal(t, SourceEnv, loader.Source("figlet.path"))
		assert.Equal(t, SourceConfig, loader.Source("pad"))
		assert.Equal(t, SourceDefault, loader.Source("bar"))
	})

	t.Run("CRUST_CONFIG selects the file", func(t *testing.T) {
		testutil.IsolateConfig(t)
		dir := t.TempDir()
		path := testutil.WriteFile(t, dir, "alt.yaml", "bar: \"=\"\n")
		t.Setenv("CRUST_CONFIG", path)

		cfg, err := NewLoader().Load("")
		require.NoError(t, err)
		assert.Equal(t, "=", cfg.Bar)
	})

	t.Run("rejects non-string tags", func(t *testing.T) {
		testutil.IsolateConfig(t)
		path := testutil.WriteFile(t, t.TempDir(), "config.yaml", "tags: 4\n")

		_, err := NewLoader().Load(path)
		require.Error(t, err)
		assert.True(t, errors.Is(err, oerrors.ErrValidation))
		assert.Contains(t, err.Error(), "tags")
	})

	t.Run("rejects malformed yaml", func(t *testing.T) {
		testutil.IsolateConfig(t)
		path := testutil.WriteFile(t, t.TempDir(), "config.yaml", "width: [\n")

		_, err := NewLoader().Load(path)
		require.Error(t, err)
		assert.True(t, errors.Is(err, oerrors.ErrValidation))
	})
}

func TestConfigFileExists(t *testing.T) {
	testutil.IsolateConfig(t)
	dir := t.TempDir()

	exists, err := ConfigFileExists(filepath.Join(dir, "config.yaml"))
	require.NoError(t, err)
	assert.False(t, exists)

	path := testutil.WriteFile(t, dir, "config.yaml", "width: 80\n")
	exists, err = ConfigFileExists(path)
	require.NoError(t, err)
	assert.True(t, exists)
}
