package cmd

import (
	"fmt"
	"log"

	"hot100-service/config"
	"hot100-service/models"

	"github.com/spf13/cobra"
)

var MigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database tables",
	Long: `Connects to the configured database and runs the gorm migrations
for the hot100 and users tables. migration/init.sql holds the equivalent
DDL for provisioning postgres by hand.`,
	Run: func(cmd *cobra.Command, args []string) {
		db := config.InitDB()

		if err := db.AutoMigrate(&models.HotEntry{}, &models.User{}); err != nil {
			log.Fatalf("Migration failed: %v", err)
		}

		fmt.Println("Database migrations completed successfully.")
	},
}

func init() {
	RootCmd.AddCommand(MigrateCmd)
}
