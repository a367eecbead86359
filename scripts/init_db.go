package main

import (
	"log"

	"alfredoptarigan/resume-matcher/internal/config"
)

func main() {
	log.Println("🚀 Initializing database...")

	cfg := config.Load()

	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	if err := config.MigrateDatabase(db); err != nil {
		log.Fatalf("❌ Failed to create tables: %v", err)
	}

	log.Println("✅ Database initialized.")
}
