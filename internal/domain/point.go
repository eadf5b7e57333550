package domain

import (
	"fmt"
	"strings"
)

// Kind distinguishes the depot from the stations the vehicle visits.
type Kind string

const (
	KindDepot   Kind = "depot"
	KindStation Kind = "station"
)

// ParseKind maps the tabular "type" column onto a Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case KindDepot:
		return KindDepot, nil
	case KindStation:
		return KindStation, nil
	default:
		return "", fmt.Errorf("parse kind: unknown point type %q", s)
	}
}

// Represents a single location loaded from the station data source.
// A Point is either the depot or a bike-share station. Points are
// immutable once loaded; the route builder only ever reads them.
type Point struct {
	ID   int
	Name string
	Lat  float64
	Lon  float64
	Kind Kind
}

func (p Point) Coordinates() Coordinates {
	return Coordinates{Lat: p.Lat, Lon: p.Lon}
}

func (p Point) IsDepot() bool { return p.Kind == KindDepot }
