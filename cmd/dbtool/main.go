package main

import (
	"bike-route-service/internal/adapters/repositories"
	"bike-route-service/internal/config"
	"bike-route-service/internal/platform/db"
	"database/sql"
	"flag"
	"log"
	"strings"

	"github.com/joho/godotenv"
)

// dbtool creates the stations table and seeds it from a CSV file.
//
//	dbtool -driver sqlite -db data/app.db -seed data/stations.csv
//	dbtool -driver postgres -seed data/stations.csv   (uses DATABASE_URL)
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	driver := flag.String("driver", config.Get("DB_DRIVER", config.SourceSQLite), "database driver: sqlite or postgres")
	dbPath := flag.String("db", config.Get("DB_PATH", "data/app.db"), "sqlite database path")
	seedPath := flag.String("seed", config.Get("SEED_PATH", "data/stations.csv"), "station CSV to load")
	flag.Parse()

	var (
		conn    *sql.DB
		dialect repositories.Dialect
		err     error
	)

	switch strings.ToLower(*driver) {
	case config.SourceSQLite:
		conn, err = db.OpenSQLite(*dbPath)
		dialect = repositories.DialectSQLite
	case config.SourcePostgres:
		databaseURL := config.Get("DATABASE_URL", "")
		if strings.TrimSpace(databaseURL) == "" {
			log.Fatal("DATABASE_URL is required")
		}
		conn, err = db.Open(databaseURL)
		dialect = repositories.DialectPostgres
	default:
		log.Fatalf("unsupported driver %q (want sqlite or postgres)", *driver)
	}
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	if err := initAndSeed(conn, dialect, *seedPath); err != nil {
		log.Fatal(err)
	}
}

func initAndSeed(conn *sql.DB, dialect repositories.Dialect, seedPath string) error {
	log.Println("Initializing database schema...")
	if err := repositories.InitSchema(conn); err != nil {
		return err
	}
	log.Println("Schema ready.")

	log.Printf("Seeding stations from %s...", seedPath)
	n, err := repositories.SeedFromCSV(conn, dialect, seedPath)
	if err != nil {
		return err
	}
	log.Printf("Seeding complete. rows=%d", n)

	return nil
}
