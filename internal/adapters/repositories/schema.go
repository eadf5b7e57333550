package repositories

import (
	"bike-route-service/internal/domain"
	"database/sql"
	"errors"
	"fmt"
	"os"
)

// Dialect selects the bind-parameter syntax for seeding statements.
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite"
	DialectPostgres Dialect = "postgres"
)

func (d Dialect) bind(n int) string {
	if d == DialectPostgres {
		return fmt.Sprintf("$%d", n)
	}
	return "?"
}

// Initialize the stations schema. The DDL is valid for SQLite and PostgreSQL.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createStationsQuery := `
	CREATE TABLE IF NOT EXISTS stations (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		lat DOUBLE PRECISION NOT NULL,
		lon DOUBLE PRECISION NOT NULL,
		type TEXT NOT NULL CHECK (type IN ('depot', 'station'))
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_stations_type
	ON stations(type);
	`

	statements := []string{
		createStationsQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// Populate the stations table from a CSV file. Existing ids are updated in place.
func SeedFromCSV(db *sql.DB, dialect Dialect, csvPath string) (int, error) {
	f, err := os.Open(csvPath)
	if err != nil {
		return 0, fmt.Errorf("seed stations: open %q: %w", csvPath, err)
	}
	defer f.Close()

	points, err := ParseStationsCSV(f)
	if err != nil {
		return 0, fmt.Errorf("seed stations: %w", err)
	}

	if err := SeedPoints(db, dialect, points); err != nil {
		return 0, err
	}
	return len(points), nil
}

// Upsert points into the stations table in a single transaction.
func SeedPoints(db *sql.DB, dialect Dialect, points []domain.Point) error {
	if db == nil {
		return errors.New("seed stations: DB is nil")
	}

	seen := make(map[int]struct{}, len(points))
	for i, p := range points {
		if _, ok := seen[p.ID]; ok {
			return fmt.Errorf("seed stations: duplicate id=%d at index %d", p.ID, i+1)
		}
		seen[p.ID] = struct{}{}
		if err := checkCoordinates(p.Lat, p.Lon); err != nil {
			return fmt.Errorf("seed stations: id=%d: %w", p.ID, err)
		}
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed stations: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := fmt.Sprintf(`
	INSERT INTO stations (
		id,
		name,
		lat,
		lon,
		type
	)
	VALUES (%s, %s, %s, %s, %s)
	ON CONFLICT (id) DO UPDATE
	SET name = excluded.name,
		lat = excluded.lat,
		lon = excluded.lon,
		type = excluded.type;
	`, dialect.bind(1), dialect.bind(2), dialect.bind(3), dialect.bind(4), dialect.bind(5))

	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed stations: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range points {
		if _, err := stmt.Exec(p.ID, p.Name, p.Lat, p.Lon, string(p.Kind)); err != nil {
			return fmt.Errorf("seed stations: insert id=%d: %w", p.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed stations: commit tx: %w", err)
	}

	return nil
}
