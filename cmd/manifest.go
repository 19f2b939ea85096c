package cmd

import (
	"fmt"
	"os"

	"github.com/digitalsleuth/go-mbdb/internal/config"
	"github.com/digitalsleuth/go-mbdb/internal/parsers/manifest"
	"github.com/digitalsleuth/go-mbdb/internal/services"
)

// loadCatalog reads and decodes a manifest file, falling back to the
// configured default filename when path is empty.
func loadCatalog(path string) (*services.CatalogService, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if path == "" {
		path = cfg.ManifestName
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest file: %w", err)
	}

	reader, err := manifest.NewManifestReader(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	if verbose && !quiet {
		fmt.Fprintf(os.Stderr, "decoded %d records from %s (%d bytes)\n",
			reader.RecordCount(), path, len(data))
	}

	return services.NewCatalogService(reader), nil
}
