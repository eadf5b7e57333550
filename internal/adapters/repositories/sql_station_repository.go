package repositories

import (
	"bike-route-service/internal/domain"
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// SQL-backed implementation of the StationRepository port.
// The query is portable across the SQLite and PostgreSQL drivers.
type SQLStationRepository struct {
	DB     *sql.DB
	Source string
}

func NewSQLStationRepository(db *sql.DB, source string) *SQLStationRepository {
	return &SQLStationRepository{DB: db, Source: source}
}

// Return all points ordered by id.
func (s *SQLStationRepository) ListPoints(ctx context.Context) ([]domain.Point, error) {
	if s.DB == nil {
		return nil, &domain.DataSourceError{Source: s.Source, Err: errors.New("sql station repository: DB is nil")}
	}

	points, err := s.listPoints(ctx)
	if err != nil {
		return nil, &domain.DataSourceError{Source: s.Source, Err: err}
	}

	return points, nil
}

func (s *SQLStationRepository) listPoints(ctx context.Context) ([]domain.Point, error) {
	query := `
	SELECT
		id,
		name,
		lat,
		lon,
		type
	FROM stations
	ORDER BY id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list points: query stations table: %w", err)
	}
	defer rows.Close()

	points := make([]domain.Point, 0, 64)
	for rows.Next() {
		var (
			p    domain.Point
			kind string
		)
		if err := rows.Scan(&p.ID, &p.Name, &p.Lat, &p.Lon, &kind); err != nil {
			return nil, fmt.Errorf("list points: scan row: %w", err)
		}

		if err := checkCoordinates(p.Lat, p.Lon); err != nil {
			return nil, fmt.Errorf("list points: id=%d: %w", p.ID, err)
		}

		p.Kind, err = domain.ParseKind(kind)
		if err != nil {
			return nil, fmt.Errorf("list points: id=%d: %w", p.ID, err)
		}
		points = append(points, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list points: row iteration: %w", err)
	}

	return points, nil
}
