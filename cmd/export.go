package cmd

import (
	"log"
	"os"

	"hot100-service/config"
	"hot100-service/repositories"
	"hot100-service/services"

	"github.com/spf13/cobra"
)

var outputFlag string

var ExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the chart as an HTML page of search links",
	Long: `Reads every chart entry ordered by artist and song and writes an
HTML page with Apple Music and Spotify search links per entry.

Example:
  hot100-service export --output hot100.html`,
	Run: func(cmd *cobra.Command, args []string) {
		db := config.InitDB()

		entryRepo := repositories.NewHotEntryRepository(db)
		exportService := services.NewExportService(entryRepo)

		file, err := os.Create(outputFlag)
		if err != nil {
			log.Fatalf("Failed to create output file: %v", err)
		}
		defer file.Close()

		if err := exportService.WriteHTML(file); err != nil {
			log.Fatalf("Export failed: %v", err)
		}

		if verbose {
			log.Printf("HTML file has been generated: %s", outputFlag)
		}
	},
}

func init() {
	ExportCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Output HTML file path (required)")
	if err := ExportCmd.MarkFlagRequired("output"); err != nil {
		log.Fatalf("Failed to mark output flag required: %v", err)
	}

	RootCmd.AddCommand(ExportCmd)
}
