package main

import (
	"log"

	"github.com/joho/godotenv"

	"goeda/internal/config"
	"goeda/ui"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	server, err := ui.NewServer(appConfig)
	if err != nil {
		log.Fatalf("Failed to initialize server: %v", err)
	}

	if appConfig.Data.File != "" {
		if err := server.PreloadFile(appConfig.Data.File); err != nil {
			log.Fatalf("Failed to preload dataset from %s: %v", appConfig.Data.File, err)
		}
	}

	log.Fatal(server.Start(":" + appConfig.Server.Port))
}
