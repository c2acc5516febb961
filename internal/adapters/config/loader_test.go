package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/bdep/internal/adapters/config"
	"go.trai.ch/bdep/internal/core/domain"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	loader := config.NewLoader()
	cfg, err := loader.Load(filepath.Join(t.TempDir(), "bdep.yaml"))
	require.NoError(t, err)

	defaults := domain.DefaultConfig()
	require.Equal(t, defaults.APIURL, cfg.APIURL)
	require.Equal(t, defaults.Architecture, cfg.Architecture)
	require.Equal(t, defaults.NameIgnore, cfg.NameIgnore)
	require.False(t, cfg.Lenient)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bdep.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
apiurl: https://api.suse.de
cacheroot: /var/cache/bdep
architecture: aarch64
lenient: true
`), 0o644))

	cfg, err := config.NewLoader().Load(path)
	require.NoError(t, err)
	require.Equal(t, "https://api.suse.de", cfg.APIURL)
	require.Equal(t, "/var/cache/bdep", cfg.CacheRoot)
	require.Equal(t, "aarch64", cfg.Architecture)
	require.Equal(t, domain.DefaultConfig().NameIgnore, cfg.NameIgnore)
	require.True(t, cfg.Lenient)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bdep.yaml")
	require.NoError(t, os.WriteFile(path, []byte("apiurl: [unterminated"), 0o644))

	_, err := config.NewLoader().Load(path)
	require.Error(t, err)
}
