// Package store persists generated mesh cells so envelope and intersection
// results can be queried later by code, level, or containing point.
package store

import (
	"context"
	"time"

	"github.com/sells-group/jismesh/pkg/jismesh"
)

// Cell is a persisted mesh cell: the code, its level, and the decoded
// rectangle corners.
type Cell struct {
	Code    uint64    `json:"code"`
	Level   string    `json:"level"`
	SWLat   float64   `json:"sw_lat"`
	SWLon   float64   `json:"sw_lon"`
	NELat   float64   `json:"ne_lat"`
	NELon   float64   `json:"ne_lon"`
	SavedAt time.Time `json:"saved_at"`
}

// CellFromCode decodes a mesh code into a persistable Cell.
func CellFromCode(code jismesh.Code) Cell {
	swLat, swLon := code.SW()
	neLat, neLon := code.NE()
	return Cell{
		Code:  code.Value(),
		Level: code.Level().String(),
		SWLat: swLat,
		SWLon: swLon,
		NELat: neLat,
		NELon: neLon,
	}
}

// Store defines the persistence interface for mesh cells.
type Store interface {
	SaveCells(ctx context.Context, cells []Cell) (int, error)
	CellByCode(ctx context.Context, code uint64) (*Cell, error)
	CellsByLevel(ctx context.Context, level string, limit int) ([]Cell, error)
	CellsAt(ctx context.Context, lat, lon float64) ([]Cell, error)
	Count(ctx context.Context) (int64, error)

	Migrate(ctx context.Context) error
	Close() error
}
