// Command exportconfig writes a starter configuration set to disk: the
// default server configuration plus an English metadata table, ready to be
// edited and served.
package main

import (
	"flag"
	"os"
	"path/filepath"

	"github.com/gookit/slog"

	"github.com/p0lemic/SIFO/pkg/metadata"
	metadatacfg "github.com/p0lemic/SIFO/pkg/metadata/config"
	"github.com/p0lemic/SIFO/pkg/server/config"
)

func main() {
	outDir := flag.String("o", ".", "directory the configuration files are written to")
	flag.Parse()

	cfg := config.NewDefault()
	cfgPath := filepath.Join(*outDir, "config.yaml")
	if err := cfg.Export(cfgPath); err != nil {
		slog.Fatalf("Server config export failed: %v", err)
	}
	slog.Infof("Wrote server config: %s", cfgPath)

	tablePath := filepath.Join(*outDir, cfg.Server.MetadataDir, metadatacfg.ResourcePrefix+cfg.Server.FallbackLanguage+".yaml")
	if err := os.MkdirAll(filepath.Dir(tablePath), 0o755); err != nil {
		slog.Fatalf("Metadata table directory creation failed: %v", err)
	}
	if err := metadatacfg.Export(starterTable(), tablePath); err != nil {
		slog.Fatalf("Metadata table export failed: %v", err)
	}
	slog.Infof("Wrote metadata table: %s", tablePath)
}

// starterTable returns a minimal table covering the declared page routes.
func starterTable() metadata.Table {
	return metadata.Table{
		metadata.DefaultKey: metadata.Template{
			"title":       "Home",
			"description": "Welcome to %brand%",
			"keywords":    "home",
		},
		"home": metadata.Template{
			"title":       "Home | %brand%",
			"description": "Welcome to %brand%",
		},
		"user_profile": metadata.Template{
			"title":    "%name% | Profiles",
			"keywords": "profile, %name%",
		},
	}
}
