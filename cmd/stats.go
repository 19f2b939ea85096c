package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsFile string

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize records per backup domain",
	Long: `Summarize a Manifest.mbdb catalog per backup domain: how many files,
directories and symlinks each domain holds, and their total size.

Example:
  go-mbdb stats -f Manifest.mbdb`,

	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runStats(); err != nil {
			cobra.CheckErr(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().StringVarP(&statsFile, "file", "f", "", "manifest file to parse (default Manifest.mbdb)")
}

func runStats() error {
	catalog, err := loadCatalog(statsFile)
	if err != nil {
		return err
	}

	fmt.Printf("%-52s %8s %6s %6s %6s %14s\n", "DOMAIN", "FILES", "DIRS", "LINKS", "OTHER", "BYTES")
	var files, dirs, links, other int
	var bytes uint64
	for _, stats := range catalog.DomainStats() {
		fmt.Printf("%-52s %8d %6d %6d %6d %14d\n",
			stats.Domain, stats.FileCount, stats.DirectoryCount,
			stats.SymlinkCount, stats.OtherCount, stats.TotalSize)
		files += stats.FileCount
		dirs += stats.DirectoryCount
		links += stats.SymlinkCount
		other += stats.OtherCount
		bytes += stats.TotalSize
	}
	fmt.Printf("%-52s %8d %6d %6d %6d %14d\n", "TOTAL", files, dirs, links, other, bytes)
	return nil
}
