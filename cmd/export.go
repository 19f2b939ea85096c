package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/digitalsleuth/go-mbdb/internal/config"
	"github.com/digitalsleuth/go-mbdb/internal/services"
)

var (
	exportFile   string
	exportFormat string
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Dump the decoded catalog as JSON or YAML",
	Long: `Decode a Manifest.mbdb catalog and serialize every record, in file
order, for downstream tooling.

Examples:
  # JSON to stdout
  go-mbdb export -f Manifest.mbdb

  # YAML to a file
  go-mbdb export -f Manifest.mbdb --format yaml --out catalog.yaml`,

	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runExport(); err != nil {
			cobra.CheckErr(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportFile, "file", "f", "", "manifest file to parse (default Manifest.mbdb)")
	exportCmd.Flags().StringVar(&exportFormat, "format", "", "export format (json, yaml)")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "output file (default stdout)")
}

func runExport() error {
	catalog, err := loadCatalog(exportFile)
	if err != nil {
		return err
	}

	format := exportFormat
	if format == "" {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		format = cfg.ExportFormat
	}

	out := os.Stdout
	if exportOut != "" {
		f, err := os.Create(exportOut)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	return services.NewExportService().Export(out, catalog.Records(), services.ExportFormat(format))
}
