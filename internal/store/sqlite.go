package store

import (
	"context"
	"database/sql"

	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"
)

// SQLiteStore implements Store using modernc.org/sqlite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at the given path and configures WAL mode.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	return &SQLiteStore{db: db}, nil
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS mesh_cells (
	code     INTEGER PRIMARY KEY,
	level    TEXT NOT NULL,
	sw_lat   REAL NOT NULL,
	sw_lon   REAL NOT NULL,
	ne_lat   REAL NOT NULL,
	ne_lon   REAL NOT NULL,
	saved_at DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_mesh_cells_level ON mesh_cells(level);
CREATE INDEX IF NOT EXISTS idx_mesh_cells_sw ON mesh_cells(sw_lat, sw_lon);
`

// Migrate creates the schema if it does not exist.
func (s *SQLiteStore) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, sqliteMigration); err != nil {
		return eris.Wrap(err, "sqlite: migrate")
	}
	return nil
}

// SaveCells upserts cells in a single transaction and returns the number
// written.
func (s *SQLiteStore) SaveCells(ctx context.Context, cells []Cell) (int, error) {
	if len(cells) == 0 {
		return 0, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, eris.Wrap(err, "sqlite: begin")
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO mesh_cells (code, level, sw_lat, sw_lon, ne_lat, ne_lon)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (code) DO UPDATE SET
			level = excluded.level,
			sw_lat = excluded.sw_lat,
			sw_lon = excluded.sw_lon,
			ne_lat = excluded.ne_lat,
			ne_lon = excluded.ne_lon,
			saved_at = datetime('now')`)
	if err != nil {
		return 0, eris.Wrap(err, "sqlite: prepare upsert")
	}
	defer stmt.Close()

	for _, cell := range cells {
		if _, err := stmt.ExecContext(ctx, cell.Code, cell.Level,
			cell.SWLat, cell.SWLon, cell.NELat, cell.NELon); err != nil {
			return 0, eris.Wrapf(err, "sqlite: upsert cell %d", cell.Code)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, eris.Wrap(err, "sqlite: commit")
	}
	return len(cells), nil
}

// CellByCode returns the cell with the given code, or nil if absent.
func (s *SQLiteStore) CellByCode(ctx context.Context, code uint64) (*Cell, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT code, level, sw_lat, sw_lon, ne_lat, ne_lon, saved_at
		FROM mesh_cells WHERE code = ?`, code)

	var cell Cell
	err := row.Scan(&cell.Code, &cell.Level, &cell.SWLat, &cell.SWLon,
		&cell.NELat, &cell.NELon, &cell.SavedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, eris.Wrapf(err, "sqlite: get cell %d", code)
	}
	return &cell, nil
}

// CellsByLevel returns up to limit cells at the given level, ordered by code.
func (s *SQLiteStore) CellsByLevel(ctx context.Context, level string, limit int) ([]Cell, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT code, level, sw_lat, sw_lon, ne_lat, ne_lon, saved_at
		FROM mesh_cells WHERE level = ? ORDER BY code LIMIT ?`, level, limit)
	if err != nil {
		return nil, eris.Wrapf(err, "sqlite: cells at level %s", level)
	}
	defer rows.Close()

	return scanCells(rows)
}

// CellsAt returns every saved cell whose rectangle contains the point. Cell
// rectangles are half-open: the northeast edges belong to the neighbors.
func (s *SQLiteStore) CellsAt(ctx context.Context, lat, lon float64) ([]Cell, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT code, level, sw_lat, sw_lon, ne_lat, ne_lon, saved_at
		FROM mesh_cells
		WHERE sw_lat <= ? AND ? < ne_lat AND sw_lon <= ? AND ? < ne_lon
		ORDER BY code`, lat, lat, lon, lon)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: cells at point")
	}
	defer rows.Close()

	return scanCells(rows)
}

// Count returns the number of saved cells.
func (s *SQLiteStore) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM mesh_cells`).Scan(&count); err != nil {
		return 0, eris.Wrap(err, "sqlite: count cells")
	}
	return count, nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func scanCells(rows *sql.Rows) ([]Cell, error) {
	var cells []Cell
	for rows.Next() {
		var cell Cell
		if err := rows.Scan(&cell.Code, &cell.Level, &cell.SWLat, &cell.SWLon,
			&cell.NELat, &cell.NELon, &cell.SavedAt); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan cell")
		}
		cells = append(cells, cell)
	}
	if err := rows.Err(); err != nil {
		return nil, eris.Wrap(err, "sqlite: iterate cells")
	}
	return cells, nil
}
