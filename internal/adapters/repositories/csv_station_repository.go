package repositories

import (
	"bike-route-service/internal/domain"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// Columns every station file must carry, in any order.
var stationColumns = []string{"id", "name", "lat", "lon", "type"}

// CSV-backed implementation of the StationRepository port.
// The file is re-read on every call so edits are visible without a restart.
type CSVStationRepository struct {
	Path string
}

func NewCSVStationRepository(path string) *CSVStationRepository {
	return &CSVStationRepository{Path: path}
}

// Return all points in file order.
func (c *CSVStationRepository) ListPoints(ctx context.Context) ([]domain.Point, error) {
	if err := ctx.Err(); err != nil {
		return nil, &domain.DataSourceError{Source: c.Path, Err: err}
	}

	if strings.TrimSpace(c.Path) == "" {
		return nil, &domain.DataSourceError{Err: errors.New("csv path is empty")}
	}

	f, err := os.Open(c.Path)
	if err != nil {
		return nil, &domain.DataSourceError{Source: c.Path, Err: err}
	}
	defer f.Close()

	points, err := ParseStationsCSV(f)
	if err != nil {
		return nil, &domain.DataSourceError{Source: c.Path, Err: err}
	}

	return points, nil
}

// ParseStationsCSV decodes an id,name,lat,lon,type table. Columns are
// located by header name; row numbers in errors are 1-based file lines.
func ParseStationsCSV(r io.Reader) ([]domain.Point, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, errors.New("parse stations csv: missing header row")
	}
	if err != nil {
		return nil, fmt.Errorf("parse stations csv: read header: %w", err)
	}

	colIdx := make(map[string]int, len(header))
	for i, col := range header {
		if i == 0 {
			col = strings.TrimPrefix(col, "\ufeff")
		}
		colIdx[strings.ToLower(strings.TrimSpace(col))] = i
	}
	for _, col := range stationColumns {
		if _, ok := colIdx[col]; !ok {
			return nil, fmt.Errorf("parse stations csv: missing column %q", col)
		}
	}

	points := make([]domain.Point, 0, 64)
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("parse stations csv: line %d: %w", line, err)
		}

		p, err := parseStationRecord(record, colIdx)
		if err != nil {
			return nil, fmt.Errorf("parse stations csv: line %d: %w", line, err)
		}
		points = append(points, p)
	}

	return points, nil
}

func parseStationRecord(record []string, colIdx map[string]int) (domain.Point, error) {
	field := func(name string) string {
		return strings.TrimSpace(record[colIdx[name]])
	}

	id, err := strconv.Atoi(field("id"))
	if err != nil {
		return domain.Point{}, fmt.Errorf("invalid id %q: %w", field("id"), err)
	}

	lat, err := strconv.ParseFloat(field("lat"), 64)
	if err != nil {
		return domain.Point{}, fmt.Errorf("invalid lat %q for id=%d: %w", field("lat"), id, err)
	}

	lon, err := strconv.ParseFloat(field("lon"), 64)
	if err != nil {
		return domain.Point{}, fmt.Errorf("invalid lon %q for id=%d: %w", field("lon"), id, err)
	}

	if err := checkCoordinates(lat, lon); err != nil {
		return domain.Point{}, fmt.Errorf("id=%d: %w", id, err)
	}

	kind, err := domain.ParseKind(field("type"))
	if err != nil {
		return domain.Point{}, fmt.Errorf("id=%d: %w", id, err)
	}

	return domain.Point{
		ID:   id,
		Name: field("name"),
		Lat:  lat,
		Lon:  lon,
		Kind: kind,
	}, nil
}

// NaN and Inf parse as floats but cannot be measured or encoded.
func checkCoordinates(lat, lon float64) error {
	if math.IsNaN(lat) || math.IsInf(lat, 0) {
		return fmt.Errorf("invalid lat %v: not a finite number", lat)
	}
	if math.IsNaN(lon) || math.IsInf(lon, 0) {
		return fmt.Errorf("invalid lon %v: not a finite number", lon)
	}
	return nil
}
