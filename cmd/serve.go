package cmd

import (
	"log"
	"net/http"
	"os"

	"hot100-service/config"
	"hot100-service/handlers"
	"hot100-service/middleware"
	"hot100-service/repositories"
	"hot100-service/services"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

var ServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the chart HTTP API",
	Run: func(cmd *cobra.Command, args []string) {
		// Initialize database
		db := config.InitDB()

		// Initialize repositories
		userRepo := repositories.NewUserRepository(db)
		entryRepo := repositories.NewHotEntryRepository(db)

		// Initialize services
		authService := services.NewAuthService(userRepo)
		chartService := services.NewChartService(entryRepo)
		exportService := services.NewExportService(entryRepo)

		// Initialize handlers
		authHandler := handlers.NewAuthHandler(authService)
		entryHandler := handlers.NewEntryHandler(chartService)
		exportHandler := handlers.NewExportHandler(exportService)

		// Setup router
		router := gin.Default()

		// CORS middleware
		router.Use(func(c *gin.Context) {
			c.Header("Access-Control-Allow-Origin", "*")
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

			if c.Request.Method == "OPTIONS" {
				c.AbortWithStatus(204)
				return
			}

			c.Next()
		})

		// Health check
		router.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "healthy"})
		})

		// API routes
		v1 := router.Group("/api/v1")
		{
			// Auth routes (public)
			auth := v1.Group("/auth")
			{
				auth.POST("/register", authHandler.Register)
				auth.POST("/login", authHandler.Login)
			}

			// Chart reads (public)
			v1.GET("/entries", entryHandler.GetEntries)
			v1.GET("/entries/:id", entryHandler.GetEntry)
			v1.GET("/export/html", exportHandler.ExportHTML)

			// Protected routes
			protected := v1.Group("/")
			protected.Use(middleware.AuthMiddleware())
			{
				protected.GET("/profile", authHandler.GetProfile)
				protected.POST("/entries", middleware.RequireRole("curator", "admin"), entryHandler.CreateEntry)
			}
		}

		// Start server
		port := os.Getenv("PORT")
		if port == "" {
			port = "8080"
		}

		log.Printf("Server starting on port %s", port)
		log.Fatal(http.ListenAndServe(":"+port, router))
	},
}

func init() {
	RootCmd.AddCommand(ServeCmd)
}
