package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsWhenMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "large", cfg.Clock.Size)
	assert.Equal(t, "cyan", cfg.Clock.Color)
	assert.Equal(t, 60, cfg.Plot.Width)
	assert.False(t, cfg.Tree.SkipHidden)
}

func TestLoadOverridesFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
clock:
  size: small
  color: magenta
tree:
  skip_hidden: true
cloudconvert:
  api_key: from-file
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "small", cfg.Clock.Size)
	assert.Equal(t, "magenta", cfg.Clock.Color)
	assert.True(t, cfg.Tree.SkipHidden)
	assert.Equal(t, "from-file", cfg.CloudConvert.APIKey)
	// untouched sections keep defaults
	assert.Equal(t, 16, cfg.Plot.Height)
}

func TestLoadEnvWinsForAPIKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cloudconvert:\n  api_key: from-file\n"), 0o644))
	t.Setenv(APIKeyEnv, "from-env")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.CloudConvert.APIKey)
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("clock: [oops"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
