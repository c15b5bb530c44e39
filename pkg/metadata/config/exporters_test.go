package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/p0lemic/SIFO/pkg/metadata"
	"github.com/p0lemic/SIFO/pkg/metadata/config"
)

func TestExport_WrittenTableLoadsBack(t *testing.T) {
	// given:
	dir := t.TempDir()
	table := metadata.Table{
		"default":      metadata.Template{"title": "Home"},
		"user_profile": metadata.Template{"title": "%name% | Profiles"},
	}
	path := filepath.Join(dir, "lang", "metadata_en.yaml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))

	// when:
	require.NoError(t, config.Export(table, path))
	loaded, err := config.NewLoader(dir).Table("en")

	// then:
	require.NoError(t, err)
	require.Equal(t, table, loaded)
}

func TestExport_JSONByExtension(t *testing.T) {
	// given:
	path := filepath.Join(t.TempDir(), "metadata_en.json")
	table := metadata.Table{"default": metadata.Template{"title": "Home"}}

	// when:
	err := config.Export(table, path)

	// then:
	require.NoError(t, err)
	bb, err := os.ReadFile(path)
	require.NoError(t, err)
	require.JSONEq(t, `{"default": {"title": "Home"}}`, string(bb))
}

func TestExport_EmptyDocumentIsRejected(t *testing.T) {
	err := config.Export(metadata.Table{}, filepath.Join(t.TempDir(), "empty.yaml"))
	require.Error(t, err)
}
