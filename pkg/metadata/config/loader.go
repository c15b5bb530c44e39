// Package config loads per-language metadata tables from configuration
// resources. The on-disk resource for language <lang> is
// "lang/metadata_<lang>" with a yaml, yml or json extension, relative to the
// loader's base directory.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-viper/mapstructure/v2"
	"github.com/gookit/slog"
	"gopkg.in/yaml.v3"

	"github.com/p0lemic/SIFO/pkg/metadata"
)

// ResourcePrefix is the path stem of every metadata table resource, keyed by
// language code.
const ResourcePrefix = "lang/metadata_"

// supportedExts lists the resource file extensions probed in order.
var supportedExts = []string{"yaml", "yml", "json"}

// Loader reads metadata tables from disk. It implements metadata.TableSource.
// Loading is synchronous and uncached; wrap the loader in a Cache for the
// per-language caching the resolver contract assumes.
type Loader struct {
	dir string
}

// NewLoader creates a loader rooted at the given configuration directory.
func NewLoader(dir string) *Loader {
	return &Loader{dir: dir}
}

// Table loads, decodes and validates the metadata table for the given
// language. Entry keys and field names keep their authored case, so explicit
// key selection matches the document verbatim. A missing resource, an
// undecodable document, or a table without a default entry is a configuration
// failure; the caller of resolution cannot sensibly continue without the
// table, so the error is meant to propagate.
func (l *Loader) Table(language string) (metadata.Table, error) {
	resource := ResourcePrefix + language

	path, err := l.resourcePath(resource)
	if err != nil {
		return nil, err
	}

	blob, err := os.ReadFile(path)
	if err != nil {
		return nil, metadata.NewTableResourceError(resource, err)
	}

	raw := make(map[string]any)
	if filepath.Ext(path) == ".json" {
		err = json.Unmarshal(blob, &raw)
	} else {
		err = yaml.Unmarshal(blob, &raw)
	}
	if err != nil {
		return nil, metadata.NewTableResourceError(resource, err)
	}

	table, err := decodeTable(resource, raw)
	if err != nil {
		return nil, err
	}

	slog.Infof("Loaded metadata table %q (%d entries) from file: %s", resource, len(table), path)
	return table, nil
}

// resourcePath probes the supported extensions and returns the first resource
// file that exists on disk.
func (l *Loader) resourcePath(resource string) (string, error) {
	for _, ext := range supportedExts {
		path := filepath.Join(l.dir, resource+"."+ext)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", metadata.NewTableResourceError(resource, fmt.Errorf("no %v resource under %s", supportedExts, l.dir))
}

// decodeTable converts a raw settings map into a validated metadata.Table.
// Entries whose values are not string mappings fail the decode and surface as
// a configuration failure, which is where the malformed-entry edge case of a
// dynamically typed table lands in a typed one.
func decodeTable(resource string, raw map[string]any) (metadata.Table, error) {
	var table metadata.Table
	if err := mapstructure.Decode(raw, &table); err != nil {
		return nil, metadata.NewTableResourceError(resource, err)
	}
	if err := table.Validate(resource); err != nil {
		return nil, err
	}
	return table, nil
}
