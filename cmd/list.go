package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/digitalsleuth/go-mbdb/internal/services"
)

var (
	// Input selection (list command only)
	listFile string

	// Row rendering (list-specific)
	listDetailed  bool
	listPathsOnly bool
	listTab       bool
	listTimeFmt   string

	// Sort options (list-specific)
	listTimeSort string
	listSizeSort bool
	listReverse  bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List backup records",
	Long: `List the records of a Manifest.mbdb catalog.

Examples:
  # File IDs and paths, sorted by path
  go-mbdb list -f Manifest.mbdb

  # Detailed listing, newest modification first
  go-mbdb list -f Manifest.mbdb -l -t m

  # Tab-delimited detailed listing with epoch timestamps, largest first
  go-mbdb list -f Manifest.mbdb --tab -T e -S`,

	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runList(); err != nil {
			cobra.CheckErr(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVarP(&listFile, "file", "f", "", "manifest file to parse (default Manifest.mbdb)")

	// Row rendering
	listCmd.Flags().BoolVarP(&listDetailed, "long", "l", false, "detailed listing")
	listCmd.Flags().BoolVarP(&listPathsOnly, "short", "s", false, "display file paths only")
	listCmd.Flags().BoolVar(&listTab, "tab", false, "tab-delimited output (implies --long)")
	listCmd.Flags().StringVarP(&listTimeFmt, "time-fmt", "T", "", "timestamp rendering: l(ocal), u(tc) or e(poch)")

	// Sorting
	listCmd.Flags().StringVarP(&listTimeSort, "time-sort", "t", "", "sort by m(odified), a(ccessed) or c(hanged) time")
	listCmd.Flags().BoolVarP(&listSizeSort, "size-sort", "S", false, "sort by file size")
	listCmd.Flags().BoolVarP(&listReverse, "reverse", "r", false, "reverse sort order")

	// Mutual exclusions
	listCmd.MarkFlagsMutuallyExclusive("long", "short")
	listCmd.MarkFlagsMutuallyExclusive("time-sort", "size-sort")
}

func runList() error {
	catalog, err := loadCatalog(listFile)
	if err != nil {
		return err
	}

	sortKey, err := resolveSortKey()
	if err != nil {
		return err
	}

	timeFormat, err := resolveTimeFormat()
	if err != nil {
		return err
	}

	mode := services.ModeDefault
	if listDetailed {
		mode = services.ModeDetailed
	}
	if listPathsOnly {
		mode = services.ModePathsOnly
	}

	formatter := services.NewListingFormatter(services.ListingOptions{
		Mode:         mode,
		TabDelimited: listTab,
		TimeFormat:   timeFormat,
	})

	records, err := catalog.SortedRecords(sortKey, listReverse)
	if err != nil {
		return err
	}

	for _, record := range records {
		fmt.Println(formatter.FormatRecord(record))
	}
	return nil
}

func resolveSortKey() (services.SortKey, error) {
	if listSizeSort {
		return services.SortBySize, nil
	}
	switch listTimeSort {
	case "":
		return services.SortByPath, nil
	case "m":
		return services.SortByModified, nil
	case "a":
		return services.SortByAccessed, nil
	case "c":
		return services.SortByChanged, nil
	default:
		return "", fmt.Errorf("invalid time sort %q: must be m, a or c", listTimeSort)
	}
}

func resolveTimeFormat() (services.TimeFormat, error) {
	switch listTimeFmt {
	case "", "l", "local":
		return services.TimeLocal, nil
	case "u", "utc":
		return services.TimeUTC, nil
	case "e", "epoch":
		return services.TimeEpoch, nil
	default:
		return "", fmt.Errorf("invalid time format %q: must be l, u or e", listTimeFmt)
	}
}
