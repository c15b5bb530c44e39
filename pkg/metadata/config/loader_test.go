package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/p0lemic/SIFO/pkg/metadata"
	"github.com/p0lemic/SIFO/pkg/metadata/config"
)

func writeTableResource(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, "lang", name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestLoader_LoadsYAMLTable(t *testing.T) {
	// given:
	dir := t.TempDir()
	writeTableResource(t, dir, "metadata_en.yaml", `
default:
  title: Home
  description: Welcome to %brand%
test:
  title: "%name% - %section%. Brand"
`)
	loader := config.NewLoader(dir)

	// when:
	table, err := loader.Table("en")

	// then:
	require.NoError(t, err)
	require.Equal(t, metadata.Table{
		"default": metadata.Template{
			"title":       "Home",
			"description": "Welcome to %brand%",
		},
		"test": metadata.Template{
			"title": "%name% - %section%. Brand",
		},
	}, table)
}

func TestLoader_LoadsJSONTable(t *testing.T) {
	// given:
	dir := t.TempDir()
	writeTableResource(t, dir, "metadata_es.json", `{
  "default": {"title": "Inicio"},
  "test": {"title": "%name%"}
}`)
	loader := config.NewLoader(dir)

	// when:
	table, err := loader.Table("es")

	// then:
	require.NoError(t, err)
	require.Equal(t, "Inicio", table["default"]["title"])
}

func TestLoader_PreservesAuthoredKeyCase(t *testing.T) {
	// given: entry keys and field names authored with mixed case
	dir := t.TempDir()
	writeTableResource(t, dir, "metadata_en.yaml", `
default:
  Title: Home
userProfile:
  Title: "%name% | Profiles"
`)
	loader := config.NewLoader(dir)

	// when:
	table, err := loader.Table("en")

	// then: the loaded table matches the document verbatim
	require.NoError(t, err)
	require.Equal(t, metadata.Table{
		"default":     metadata.Template{"Title": "Home"},
		"userProfile": metadata.Template{"Title": "%name% | Profiles"},
	}, table)
}

func TestLoader_MissingResourceIsConfigurationFailure(t *testing.T) {
	// given:
	loader := config.NewLoader(t.TempDir())

	// when:
	table, err := loader.Table("en")

	// then:
	require.Nil(t, table)
	var appErr metadata.Error
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, metadata.ErrorTypeConfigurationFailure, appErr.ErrorType())
}

func TestLoader_TableWithoutDefaultEntryIsRejected(t *testing.T) {
	// given:
	dir := t.TempDir()
	writeTableResource(t, dir, "metadata_en.yaml", `
test:
  title: "%name%"
`)
	loader := config.NewLoader(dir)

	// when:
	table, err := loader.Table("en")

	// then:
	require.Nil(t, table)
	var appErr metadata.Error
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, metadata.ErrorTypeConfigurationFailure, appErr.ErrorType())
}

func TestLoader_MalformedEntryIsConfigurationFailure(t *testing.T) {
	// given: an entry whose value is not a string mapping
	dir := t.TempDir()
	writeTableResource(t, dir, "metadata_en.yaml", `
default:
  title: Home
broken: just-a-string
`)
	loader := config.NewLoader(dir)

	// when:
	table, err := loader.Table("en")

	// then:
	require.Nil(t, table)
	var appErr metadata.Error
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, metadata.ErrorTypeConfigurationFailure, appErr.ErrorType())
}
