package cmd

import (
	"fmt"
	"log"

	"hot100-service/config"
	"hot100-service/repositories"
	"hot100-service/services"

	"github.com/spf13/cobra"
)

var ImportCmd = &cobra.Command{
	Use:   "import [files or directories...]",
	Short: "Import chart JSON files into the hot100 table",
	Long: `Imports scraped chart JSON files into the hot100 table. Directory
arguments expand to their *.json files. Entries whose (artist, song) pair
is already stored are skipped.

Example:
  hot100-service import --verbose charts/ extra-week.json`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		db := config.InitDB()

		entryRepo := repositories.NewHotEntryRepository(db)
		importService := services.NewImportService(entryRepo, verbose, debug)

		summary, err := importService.ImportPaths(args)
		if err != nil {
			log.Fatalf("Import failed: %v", err)
		}

		fmt.Printf("Processed %d files: %d inserted, %d duplicates skipped, %d invalid, %d failed\n",
			summary.Files, summary.Inserted, summary.Duplicates, summary.Invalid, summary.Failed)
	},
}

func init() {
	RootCmd.AddCommand(ImportCmd)
}
