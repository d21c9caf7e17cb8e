package cmd

import (
	"log"

	"github.com/spf13/cobra"
)

// Verbosity flags shared by every subcommand, matching the original
// import/export scripts.
var (
	verbose bool
	debug   bool
)

var RootCmd = &cobra.Command{
	Use:   "hot100-service",
	Short: "Billboard Hot 100 chart store, importer and exporter",
	Long: `hot100-service manages the hot100 table: it serves the chart over
HTTP, imports scraped chart JSON files, and exports the chart as an HTML
page of search links.`,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	RootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable debug output")
}
