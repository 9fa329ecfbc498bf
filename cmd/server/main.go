package main

import (
	"log"

	"github.com/kaidroger/logistics-analytics-go/internal/api"
	"github.com/kaidroger/logistics-analytics-go/internal/config"
	"github.com/kaidroger/logistics-analytics-go/internal/database"
)

func main() {
	cfg := config.Load()

	if err := database.Init(database.Config{Path: cfg.DBPath}); err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	defer database.Close()

	router, err := api.SetupRouter(cfg)
	if err != nil {
		log.Fatal("Failed to set up router:", err)
	}

	log.Printf("Server starting on port %s", cfg.Port)
	if err := router.Run(cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
