package repositories

import (
	"bike-route-service/internal/domain"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleCSV = `id,name,lat,lon,type
0,Songpa Depot,37.50,127.10,depot
1,Station A,37.51,127.11,station
2,Station B,37.52,127.09,station
3,Station C,37.505,127.105,station
`

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stations.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write csv: %v", err)
	}
	return path
}

func TestCSVStationRepositoryListPoints(t *testing.T) {
	repo := NewCSVStationRepository(writeCSV(t, sampleCSV))

	points, err := repo.ListPoints(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(points) != 4 {
		t.Fatalf("expected 4 points, got %d", len(points))
	}

	want := domain.Point{ID: 0, Name: "Songpa Depot", Lat: 37.50, Lon: 127.10, Kind: domain.KindDepot}
	if points[0] != want {
		t.Fatalf("points[0] = %+v, want %+v", points[0], want)
	}
	for i, p := range points[1:] {
		if p.ID != i+1 {
			t.Errorf("points[%d].ID = %d, want %d (file order)", i+1, p.ID, i+1)
		}
		if p.Kind != domain.KindStation {
			t.Errorf("points[%d].Kind = %q, want station", i+1, p.Kind)
		}
	}
}

func TestParseStationsCSVHeaderOrderAndBOM(t *testing.T) {
	in := "\ufefftype, lon, lat, name, id\nstation, 127.11, 37.51, \"Gil-dong, North\", 7\n"

	points, err := ParseStationsCSV(strings.NewReader(in))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := domain.Point{ID: 7, Name: "Gil-dong, North", Lat: 37.51, Lon: 127.11, Kind: domain.KindStation}
	if len(points) != 1 || points[0] != want {
		t.Fatalf("points = %+v, want [%+v]", points, want)
	}
}

func TestParseStationsCSVErrors(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantSub string
	}{
		{name: "empty", in: "", wantSub: "missing header"},
		{name: "missing column", in: "id,name,lat,lon\n1,A,1,2\n", wantSub: `missing column "type"`},
		{name: "bad id", in: "id,name,lat,lon,type\nx,A,1,2,station\n", wantSub: "line 2: invalid id"},
		{name: "bad lat", in: "id,name,lat,lon,type\n1,A,north,2,station\n", wantSub: "invalid lat"},
		{name: "bad lon", in: "id,name,lat,lon,type\n1,A,1,,station\n", wantSub: "invalid lon"},
		{name: "nan lat", in: "id,name,lat,lon,type\n1,A,NaN,127.11,station\n", wantSub: "invalid lat"},
		{name: "inf lon", in: "id,name,lat,lon,type\n1,A,37.51,+Inf,station\n", wantSub: "invalid lon"},
		{name: "bad type", in: "id,name,lat,lon,type\n1,A,1,2,station\n2,B,1,2,warehouse\n", wantSub: "line 3"},
		{name: "short row", in: "id,name,lat,lon,type\n1,A,1\n", wantSub: "line 2"},
	}

	for _, tt := range tests {
		_, err := ParseStationsCSV(strings.NewReader(tt.in))
		if err == nil {
			t.Errorf("%s: expected error", tt.name)
			continue
		}
		if !strings.Contains(err.Error(), tt.wantSub) {
			t.Errorf("%s: error %q does not contain %q", tt.name, err, tt.wantSub)
		}
	}
}

func TestCSVStationRepositoryMissingFile(t *testing.T) {
	repo := NewCSVStationRepository(filepath.Join(t.TempDir(), "nope.csv"))

	_, err := repo.ListPoints(context.Background())

	var dsErr *domain.DataSourceError
	if !errors.As(err, &dsErr) {
		t.Fatalf("expected DataSourceError, got %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected wrapped os.ErrNotExist, got %v", err)
	}
}

func TestCSVStationRepositoryMalformedIsDataSourceError(t *testing.T) {
	repo := NewCSVStationRepository(writeCSV(t, "id,name,lat,lon,type\n1,A,oops,2,station\n"))

	_, err := repo.ListPoints(context.Background())

	var dsErr *domain.DataSourceError
	if !errors.As(err, &dsErr) {
		t.Fatalf("expected DataSourceError, got %v", err)
	}
}

func TestCSVStationRepositoryNonFiniteCoordinate(t *testing.T) {
	repo := NewCSVStationRepository(writeCSV(t, "id,name,lat,lon,type\n0,D,37.5,127.1,depot\n1,A,NaN,127.11,station\n"))

	_, err := repo.ListPoints(context.Background())

	var dsErr *domain.DataSourceError
	if !errors.As(err, &dsErr) {
		t.Fatalf("expected DataSourceError, got %v", err)
	}
	if !strings.Contains(err.Error(), "line 3") {
		t.Fatalf("error %q does not name the line", err)
	}
}

func TestCSVStationRepositoryCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewCSVStationRepository(writeCSV(t, sampleCSV)).ListPoints(ctx)

	var dsErr *domain.DataSourceError
	if !errors.As(err, &dsErr) {
		t.Fatalf("expected DataSourceError, got %v", err)
	}
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected wrapped context.Canceled, got %v", err)
	}
}
