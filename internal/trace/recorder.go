// Package trace records the emitted event stream to SQLite for
// diagnostics and replay. The Recorder wraps another sink, forwards
// every event unchanged, and persists a copy. The listener core itself
// stays stateless on disk.
package trace

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"keybridge/internal/key"
	"keybridge/internal/listener"
)

// Event kinds as stored.
const (
	KindKeyDown              = "key_down"
	KindKeyUp                = "key_up"
	KindCompositionChanged   = "composition_changed"
	KindCompositionFinished  = "composition_finished"
	KindCompositionCancelled = "composition_cancelled"
)

const schema = `
CREATE TABLE IF NOT EXISTS key_events (
    id            INTEGER PRIMARY KEY AUTOINCREMENT,
    timestamp_ns  INTEGER NOT NULL,
    kind          TEXT NOT NULL,
    key_name      TEXT,
    modifiers     INTEGER NOT NULL DEFAULT 0,
    text          TEXT
);

CREATE INDEX IF NOT EXISTS idx_key_events_timestamp ON key_events(timestamp_ns);
CREATE INDEX IF NOT EXISTS idx_key_events_kind ON key_events(kind);
`

// Record is one persisted event row.
type Record struct {
	ID          int64
	TimestampNs int64
	Kind        string
	KeyName     string
	Modifiers   key.Modifier
	Text        string
}

// Recorder persists the event stream while forwarding it to the next sink.
type Recorder struct {
	db   *sql.DB
	next listener.Sink
	now  func() time.Time
}

// Open creates a Recorder over the database at path, forwarding events to
// next. next may be nil when only recording is wanted.
func Open(path string, next listener.Sink) (*Recorder, error) {
	if path == "" {
		return nil, errors.New("trace database path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create trace directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("open trace database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply trace schema: %w", err)
	}

	return &Recorder{db: db, next: next, now: time.Now}, nil
}

// Close closes the underlying database.
func (r *Recorder) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

func (r *Recorder) KeyDown(ev key.Event) {
	r.insert(KindKeyDown, ev.Name, ev.Modifiers, "")
	if r.next != nil {
		r.next.KeyDown(ev)
	}
}

func (r *Recorder) KeyUp(ev key.Event) {
	r.insert(KindKeyUp, ev.Name, ev.Modifiers, "")
	if r.next != nil {
		r.next.KeyUp(ev)
	}
}

func (r *Recorder) CompositionChanged(text string) {
	r.insert(KindCompositionChanged, "", key.ModNone, text)
	if r.next != nil {
		r.next.CompositionChanged(text)
	}
}

func (r *Recorder) CompositionFinished(text string) {
	r.insert(KindCompositionFinished, "", key.ModNone, text)
	if r.next != nil {
		r.next.CompositionFinished(text)
	}
}

func (r *Recorder) CompositionCancelled() {
	r.insert(KindCompositionCancelled, "", key.ModNone, "")
	if r.next != nil {
		r.next.CompositionCancelled()
	}
}

func (r *Recorder) insert(kind, name string, mods key.Modifier, text string) {
	// Recording failures must not disturb event delivery; they surface
	// through Events/Count when the trace is read back.
	_, _ = r.db.Exec(`
		INSERT INTO key_events (timestamp_ns, kind, key_name, modifiers, text)
		VALUES (?, ?, ?, ?, ?)`,
		r.now().UnixNano(), kind, name, uint8(mods), text,
	)
}

// Events returns up to limit recorded events, oldest first.
func (r *Recorder) Events(limit int) ([]Record, error) {
	rows, err := r.db.Query(`
		SELECT id, timestamp_ns, kind, key_name, modifiers, text
		FROM key_events ORDER BY id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query trace events: %w", err)
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var rec Record
		var mods uint8
		if err := rows.Scan(&rec.ID, &rec.TimestampNs, &rec.Kind, &rec.KeyName, &mods, &rec.Text); err != nil {
			return nil, fmt.Errorf("scan trace event: %w", err)
		}
		rec.Modifiers = key.Modifier(mods)
		out = append(out, rec)
	}
	return out, rows.Err()
}

// Count returns the number of recorded events.
func (r *Recorder) Count() (int64, error) {
	var n int64
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM key_events`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count trace events: %w", err)
	}
	return n, nil
}
