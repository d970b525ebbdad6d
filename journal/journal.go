// Package journal persists swipe outcomes to SQLite.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package journal

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/phanxgames/fling"
)

// Journal records exits and zone clicks. It implements fling.EventStore.
type Journal struct {
	db     *sql.DB
	logger *log.Logger
}

// Entry is one recorded outcome.
type Entry struct {
	ID        int64
	Kind      string // "exit" or "zone_click"
	Direction string // edge for exits, zone for clicks
	Card      string
	OriginX   float64
	OriginY   float64
	CreatedAt time.Time
}

// Open creates or opens a journal database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Journal, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("journal: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("journal: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("journal: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("journal: cannot connect to database: %w", err)
	}

	j := &Journal{db: db}
	if err := j.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("journal: migration failed: %w", err)
	}

	return j, nil
}

func (j *Journal) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS outcomes (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			kind TEXT NOT NULL,
			direction TEXT NOT NULL,
			card TEXT NOT NULL DEFAULT '',
			origin_x REAL NOT NULL DEFAULT 0,
			origin_y REAL NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_outcomes_kind ON outcomes(kind, direction);
	`
	_, err := j.db.Exec(schema)
	return err
}

// SetLogger sets where EmitEvent reports write failures. Pass nil to
// discard them.
func (j *Journal) SetLogger(l *log.Logger) { j.logger = l }

// Close closes the database connection.
func (j *Journal) Close() error {
	if j.db != nil {
		return j.db.Close()
	}
	return nil
}

// Record stores an exit or zone click. Scroll events are not journaled and
// are ignored.
func (j *Journal) Record(e fling.SwipeEvent) error {
	var direction string
	switch e.Type {
	case fling.EventExit:
		direction = e.Edge.String()
	case fling.EventZoneClick:
		direction = e.Zone.String()
	default:
		return nil
	}

	card := ""
	if e.Data != nil {
		card = fmt.Sprint(e.Data)
	}
	_, err := j.db.Exec(
		"INSERT INTO outcomes (kind, direction, card, origin_x, origin_y) VALUES (?, ?, ?, ?, ?)",
		e.Type.String(), direction, card, e.Origin.X, e.Origin.Y,
	)
	if err != nil {
		return fmt.Errorf("journal: cannot record %s: %w", e.Type, err)
	}
	return nil
}

// EmitEvent implements fling.EventStore. Failures are logged, not returned:
// the gesture path has nowhere to send them.
func (j *Journal) EmitEvent(e fling.SwipeEvent) {
	if err := j.Record(e); err != nil && j.logger != nil {
		j.logger.Error("journal write failed", "err", err)
	}
}

// Recent returns the latest entries, newest first.
func (j *Journal) Recent(limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := j.db.Query(
		`SELECT id, kind, direction, card, origin_x, origin_y, created_at
		 FROM outcomes
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("journal: cannot query outcomes: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Kind, &e.Direction, &e.Card, &e.OriginX, &e.OriginY, &createdAt); err != nil {
			return nil, fmt.Errorf("journal: cannot scan row: %w", err)
		}

		// Parse the datetime - handle both time.Time and string
		switch v := createdAt.(type) {
		case time.Time:
			e.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				e.CreatedAt = parsed
			}
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("journal: row iteration error: %w", err)
	}

	return entries, nil
}

// CountByEdge returns the number of recorded exits per edge name.
func (j *Journal) CountByEdge() (map[string]int, error) {
	rows, err := j.db.Query(
		`SELECT direction, COUNT(*)
		 FROM outcomes
		 WHERE kind = ?
		 GROUP BY direction`,
		fling.EventExit.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("journal: cannot count exits: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var dir string
		var n int
		if err := rows.Scan(&dir, &n); err != nil {
			return nil, fmt.Errorf("journal: cannot scan count row: %w", err)
		}
		counts[dir] = n
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("journal: row iteration error: %w", err)
	}

	return counts, nil
}

// Ensure Journal implements EventStore
var _ fling.EventStore = (*Journal)(nil)
