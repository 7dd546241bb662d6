package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/time/rate"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"drone-dispatch-service/internal/adapters/cache"
	"drone-dispatch-service/internal/adapters/repositories"
	"drone-dispatch-service/internal/api"
	"drone-dispatch-service/internal/platform/db"
	"drone-dispatch-service/internal/platform/obs"
	"drone-dispatch-service/internal/ports"
)

// main is the application composition root.
// It wires concrete adapters (SQLite or Postgres storage, Redis or SQL plan
// cache) behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	port := getEnv("PORT", "8080")
	dbPath := getEnv("DB_PATH", "data/app.db")
	orderSeedPath := getEnv("ORDER_SEED_PATH", "data/seeds/orders.json")
	fleetSeedPath := getEnv("FLEET_SEED_PATH", "data/seeds/fleet.yaml")
	cacheTTL := getDurationEnv("PLAN_CACHE_TTL", 10*time.Minute)

	obs.RegisterMetrics()

	var (
		repo      ports.DispatchRepository
		planCache ports.PlanCache
	)

	// DATABASE_URL selects Postgres; local runs default to a SQLite file.
	if databaseURL := strings.TrimSpace(os.Getenv("DATABASE_URL")); databaseURL != "" {
		pg, err := db.Open(databaseURL)
		if err != nil {
			log.Fatal(err)
		}
		defer pg.Close()

		if err := initAndSeedPostgres(pg, orderSeedPath, fleetSeedPath); err != nil {
			log.Fatal(err)
		}

		repo = repositories.NewPostgresDispatchRepository(pg)
		planCache = cache.NewSQLPlanCache(pg, cacheTTL)
	} else {
		lite, err := db.OpenSqlite(dbPath)
		if err != nil {
			log.Fatal(err)
		}
		defer lite.Close()

		if err := initAndSeedSqlite(lite, orderSeedPath, fleetSeedPath); err != nil {
			log.Fatal(err)
		}

		repo = repositories.NewSqliteDispatchRepository(lite)
		planCache = cache.NewSqlitePlanCache(lite, cacheTTL)
	}

	// A Redis cache replaces the database-backed one when several instances
	// should share cached plans.
	if redisURL := strings.TrimSpace(os.Getenv("REDIS_URL")); redisURL != "" {
		redisCache, err := cache.NewRedisPlanCache(redisURL, cacheTTL)
		if err != nil {
			log.Fatal(err)
		}
		planCache = redisCache
	}

	limiter := rate.NewLimiter(
		rate.Limit(getFloatEnv("PLAN_RATE_RPS", 2)),
		getIntEnv("PLAN_RATE_BURST", 4),
	)

	router := api.NewRouter(repo, planCache, api.RouterConfig{PlanRateLimit: limiter})

	// The write timeout leaves room for a worst-case exhaustive search.
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getIntEnv(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("%s must be an integer, got %q", key, v)
	}
	return n
}

func getFloatEnv(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Fatalf("%s must be a number, got %q", key, v)
	}
	return f
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("%s must be a duration like 10m, got %q", key, v)
	}
	return d
}

func initAndSeedSqlite(database *sql.DB, orderSeedPath, fleetSeedPath string) error {
	if err := repositories.InitSchema(database); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}
	if err := repositories.SeedOrders(database, orderSeedPath); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}
	if err := repositories.SeedFleet(database, fleetSeedPath); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}
	return nil
}

func initAndSeedPostgres(database *sql.DB, orderSeedPath, fleetSeedPath string) error {
	if err := repositories.InitPostgresSchema(database); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}
	if err := repositories.SeedPostgresOrders(database, orderSeedPath); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}
	if err := repositories.SeedPostgresFleet(database, fleetSeedPath); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}
	return nil
}
