package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"SpotSentinel/internal/entsoe"
)

// SQLiteRecorder persists price history to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode for better concurrent read performance (Grafana reads while the daemon writes).
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS spot_prices (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			zone       TEXT NOT NULL,
			start_time INTEGER NOT NULL,
			resolution TEXT NOT NULL,
			price      REAL NOT NULL,
			unit       TEXT NOT NULL,
			fetched_at INTEGER NOT NULL,
			UNIQUE(zone, start_time, resolution)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_spot_start ON spot_prices(start_time)`,

		`CREATE TABLE IF NOT EXISTS fetch_log (
			id           INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp    INTEGER NOT NULL,
			zone         TEXT,
			window_start INTEGER,
			window_end   INTEGER,
			point_count  INTEGER,
			average      REAL,
			status       TEXT,
			note         TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_fetch_ts ON fetch_log(timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// RecordPrices upserts one batch of prices. Re-fetching a day simply
// replaces the previous rows.
func (r *SQLiteRecorder) RecordPrices(zone string, prices []entsoe.Price) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	stmt, err := tx.Prepare(`INSERT OR REPLACE INTO spot_prices
		(zone, start_time, resolution, price, unit, fetched_at)
		VALUES (?,?,?,?,?,?)`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	now := time.Now().Unix()
	for _, p := range prices {
		if _, err := stmt.Exec(zone, p.StartTime.Unix(), string(p.Resolution), p.Price, string(p.Unit), now); err != nil {
			tx.Rollback()
			return fmt.Errorf("insert price: %w", err)
		}
	}
	return tx.Commit()
}

func (r *SQLiteRecorder) RecordFetch(evt *FetchEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO fetch_log
		(timestamp, zone, window_start, window_end, point_count, average, status, note)
		VALUES (?,?,?,?,?,?,?,?)`,
		time.Now().Unix(), evt.Zone,
		evt.WindowStart.Unix(), evt.WindowEnd.Unix(),
		evt.PointCount, evt.Average, evt.Status, evt.Note,
	)
	return err
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
