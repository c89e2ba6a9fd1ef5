package main

import (
	"log"

	"ai-helper-be/internal/config"
	"ai-helper-be/pkg/database"
)

// Seeds the demo account into an external database. The REST server seeds
// its own store on boot, so this is only needed for a shared postgres setup.
func main() {
	cfg := config.Load()

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatalf("Error: Failed to connect to database: %v", err)
	}

	if err := database.SeedDemoUser(db); err != nil {
		log.Fatalf("Error: Failed to seed demo user: %v", err)
	}

	log.Println("Seeding complete")
}
