package main

import (
	"database/sql"
	"log"
	"os"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"drone-dispatch-service/internal/adapters/repositories"
	"drone-dispatch-service/internal/platform/db"
)

// dbtool initializes the Postgres schema and loads the order and fleet seed
// files. It is run once against a fresh DATABASE_URL before the server starts.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	pg, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer pg.Close()

	orderSeedPath := getEnv("ORDER_SEED_PATH", "data/seeds/orders.json")
	fleetSeedPath := getEnv("FLEET_SEED_PATH", "data/seeds/fleet.yaml")

	if err := initAndSeed(pg, orderSeedPath, fleetSeedPath); err != nil {
		log.Fatal(err)
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func initAndSeed(pg *sql.DB, orderSeedPath, fleetSeedPath string) error {
	log.Println("Initializing database schema...")
	if err := repositories.InitPostgresSchema(pg); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	log.Println("Seeding orders...")
	if err := repositories.SeedPostgresOrders(pg, orderSeedPath); err != nil {
		log.Fatalf("order seeding failed: %v", err)
	}

	log.Println("Seeding fleet...")
	if err := repositories.SeedPostgresFleet(pg, fleetSeedPath); err != nil {
		log.Fatalf("fleet seeding failed: %v", err)
	}
	log.Println("Seeding complete.")

	return nil
}
