package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/p0lemic/SIFO/pkg/server"
	"github.com/p0lemic/SIFO/pkg/server/config"
)

func TestLoadFromPath_FileOverridesDefaults(t *testing.T) {
	// given:
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: 8081
  metadata_dir: /etc/sifo/metadata
  supported_languages: [en, es, fr]
`), 0o600))

	// when:
	cfg, err := config.LoadFromPath(path, "SIFO")

	// then: overridden values apply, the rest keeps defaults
	require.NoError(t, err)
	require.Equal(t, 8081, cfg.Port)
	require.Equal(t, "/etc/sifo/metadata", cfg.MetadataDir)
	require.Equal(t, []string{"en", "es", "fr"}, cfg.SupportedLanguages)
	require.Equal(t, server.DefaultConfig.AppName, cfg.AppName)
	require.Equal(t, server.DefaultConfig.FallbackLanguage, cfg.FallbackLanguage)
}

func TestLoadFromPath_UnsupportedExtensionIsRejected(t *testing.T) {
	_, err := config.LoadFromPath("config.toml", "SIFO")
	require.Error(t, err)
}

func TestExport_WrittenConfigLoadsBack(t *testing.T) {
	// given:
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg := config.NewDefault()
	cfg.Server.Port = 9000

	// when:
	require.NoError(t, cfg.Export(path))
	loaded, err := config.LoadFromPath(path, "SIFO")

	// then:
	require.NoError(t, err)
	require.Equal(t, 9000, loaded.Port)
}
