package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/jismesh/pkg/jismesh"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	require.NoError(t, s.Migrate(context.Background()))
	return s
}

func testCells(t *testing.T, values ...uint64) []Cell {
	t.Helper()
	cells := make([]Cell, 0, len(values))
	for _, v := range values {
		code, err := jismesh.TryCode(v)
		require.NoError(t, err)
		cells = append(cells, CellFromCode(code))
	}
	return cells
}

func TestSaveAndGetCell(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	ctx := context.Background()

	n, err := s.SaveCells(ctx, testCells(t, 5339, 533935, 53393599))
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	cell, err := s.CellByCode(ctx, 533935)
	require.NoError(t, err)
	require.NotNil(t, cell)
	assert.Equal(t, uint64(533935), cell.Code)
	assert.Equal(t, "Lv2", cell.Level)
	assert.InDelta(t, 35.5833333, cell.SWLat, 1e-7)
	assert.InDelta(t, 139.625, cell.SWLon, 1e-7)
	assert.False(t, cell.SavedAt.IsZero())

	missing, err := s.CellByCode(ctx, 5235)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestSaveCellsUpsert(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.SaveCells(ctx, testCells(t, 5339))
	require.NoError(t, err)
	_, err = s.SaveCells(ctx, testCells(t, 5339))
	require.NoError(t, err)

	count, err := s.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestCellsByLevel(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.SaveCells(ctx, testCells(t, 533935, 5339, 533900, 5235))
	require.NoError(t, err)

	cells, err := s.CellsByLevel(ctx, "Lv2", 0)
	require.NoError(t, err)
	require.Len(t, cells, 2)
	assert.Equal(t, uint64(533900), cells[0].Code)
	assert.Equal(t, uint64(533935), cells[1].Code)

	cells, err = s.CellsByLevel(ctx, "Lv1", 1)
	require.NoError(t, err)
	assert.Len(t, cells, 1)
}

func TestCellsAt(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)
	ctx := context.Background()

	// Tokyo Tower point is inside 5339 and 533935 but not in the Kyoto cell.
	_, err := s.SaveCells(ctx, testCells(t, 5339, 533935, 5235))
	require.NoError(t, err)

	cells, err := s.CellsAt(ctx, 35.658581, 139.745433)
	require.NoError(t, err)
	require.Len(t, cells, 2)
	assert.Equal(t, uint64(5339), cells[0].Code)
	assert.Equal(t, uint64(533935), cells[1].Code)

	cells, err = s.CellsAt(ctx, 10.0, 110.0)
	require.NoError(t, err)
	assert.Empty(t, cells)
}

func TestSaveCellsEmpty(t *testing.T) {
	t.Parallel()
	s := newTestStore(t)

	n, err := s.SaveCells(context.Background(), nil)
	require.NoError(t, err)
	assert.Zero(t, n)
}
