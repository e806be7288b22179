package sqlite

import (
	"context"
	"database/sql"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/cognicore/wordfreq/pkg/wordfreq/aggregate"
	"github.com/cognicore/wordfreq/pkg/wordfreq/pos"
	"github.com/cognicore/wordfreq/pkg/wordfreq/store"
)

// sqliteStore implements store.Store on a SQLite database.
type sqliteStore struct {
	db *sql.DB
}

// Open opens (creating if needed) a SQLite snapshot database with WAL
// mode enabled.
func Open(ctx context.Context, path string) (store.Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Enable WAL mode for better concurrency
	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, err
	}

	if err := initSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}

	return &sqliteStore{db: db}, nil
}

// Close closes the database connection.
func (s *sqliteStore) Close() error {
	return s.db.Close()
}

func initSchema(ctx context.Context, db *sql.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS runs (
	id TEXT PRIMARY KEY,
	created_at TEXT NOT NULL DEFAULT (datetime('now'))
);

CREATE TABLE IF NOT EXISTS words (
	run_id TEXT NOT NULL,
	rank INTEGER NOT NULL,
	word TEXT NOT NULL,
	freq REAL NOT NULL,
	tags TEXT NOT NULL,
	PRIMARY KEY(run_id, word),
	FOREIGN KEY(run_id) REFERENCES runs(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_words_rank ON words(run_id, rank);
`
	_, err := db.ExecContext(ctx, schema)
	return err
}

// SaveRun replaces the snapshot for runID inside one transaction.
func (s *sqliteStore) SaveRun(ctx context.Context, runID string, words []aggregate.Word) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `INSERT OR REPLACE INTO runs(id) VALUES(?)`, runID); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM words WHERE run_id = ?`, runID); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO words(run_id, rank, word, freq, tags) VALUES(?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, w := range words {
		if _, err := stmt.ExecContext(ctx, runID, i+1, w.Word, w.Freq, w.Tags.String()); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// Runs lists stored run IDs, most recent first.
func (s *sqliteStore) Runs(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id FROM runs ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// TopWords returns up to limit words of a run in rank order.
func (s *sqliteStore) TopWords(ctx context.Context, runID string, limit int) ([]aggregate.Word, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT word, freq, tags FROM words WHERE run_id = ? ORDER BY rank LIMIT ?`, runID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var words []aggregate.Word
	for rows.Next() {
		var w aggregate.Word
		var tags string
		if err := rows.Scan(&w.Word, &w.Freq, &tags); err != nil {
			return nil, err
		}
		w.Tags = parseTags(tags)
		words = append(words, w)
	}
	return words, rows.Err()
}

// TagCounts returns per-tag word counts for a run.
func (s *sqliteStore) TagCounts(ctx context.Context, runID string) (map[pos.Tag]int, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT tags FROM words WHERE run_id = ?`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[pos.Tag]int)
	for rows.Next() {
		var tags string
		if err := rows.Scan(&tags); err != nil {
			return nil, err
		}
		for t := range parseTags(tags) {
			counts[t]++
		}
	}
	return counts, rows.Err()
}

func parseTags(s string) pos.TagSet {
	set := pos.NewTagSet()
	if s == "" {
		return set
	}
	for _, part := range strings.Split(s, ",") {
		t := pos.Tag(part)
		if pos.Valid(t) {
			set.Add(t)
		}
	}
	return set
}
