package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global output flags only
	verbose bool
	quiet   bool
)

var rootCmd = &cobra.Command{
	Use:   "go-mbdb",
	Short: "Parse Manifest.mbdb files from iTunes backup directories",
	Long: `go-mbdb is a read-only command-line tool for decoding the Manifest.mbdb
catalog found in iTunes-style device backup directories.

The catalog records metadata for every backed-up file: domain, path,
ownership, timestamps, size, symlink target, content hash and arbitrary
key/value properties. Records are tightly packed with no delimiters, so
the file is decoded in a single sequential pass.

Commands:
  list        List backup records, optionally sorted and detailed
  stats       Summarize records per backup domain
  export      Dump the decoded catalog as JSON or YAML`,
	Version: "1.0.0",
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Only global output control flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress output except errors")
}
